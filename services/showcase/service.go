// services/showcase/service.go
package showcase

import (
	"context"
	"time"

	"colorwheel-go/bus"
	"colorwheel-go/services/hal"
	"colorwheel-go/types"
	"colorwheel-go/x/mathx"
	"colorwheel-go/x/timex"
)

var (
	topicConfigShowcase = bus.T("config", "showcase")
	topicShowcaseState  = bus.T("showcase", "state")
)

// Service runs the colour wheel against an output at a fixed update rate and
// exposes it on the bus: runtime config in on "config/showcase", retained
// state snapshots out on "showcase/state" once per revolution.
type Service struct {
	out      hal.Output
	wheel    *Wheel
	updateHz uint32
}

func NewService(out hal.Output, cfg WheelConfig) *Service {
	return &Service{
		out:      out,
		wheel:    NewWheel(cfg),
		updateHz: DefaultUpdateHz,
	}
}

// Start launches the showcase loop.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	if err := s.out.Init(); err != nil {
		return err
	}
	go s.serviceLoop(ctx, conn)
	return nil
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(topicConfigShowcase)
	defer conn.Unsubscribe(cfgSub)
	defer s.out.DeInit()

	tick := time.NewTicker(timex.DurationFromHz(s.updateHz))
	defer tick.Stop()

	s.publishState(conn)
	lastRevs := s.wheel.Revs()

	for {
		select {
		case <-ctx.Done():
			println("Info: showcase service stopping")
			return
		case <-tick.C:
			s.wheel.Tick(s.out)
			if r := s.wheel.Revs(); r != lastRevs {
				lastRevs = r
				s.publishState(conn)
			}
		case msg := <-cfgSub.Channel():
			s.applyConfig(msg.Payload, tick)
		}
	}
}

func (s *Service) publishState(conn *bus.Connection) {
	st := s.wheel.State()
	st.TsMs = timex.NowMs()
	conn.Publish(conn.NewMessage(topicShowcaseState, st, true))
}

// applyConfig accepts either a typed ShowcaseConfig (direct publishers) or
// the map form the config service produces from embedded JSON.
func (s *Service) applyConfig(payload any, tick *time.Ticker) {
	switch cfg := payload.(type) {
	case types.ShowcaseConfig:
		if cfg.Brightness != nil {
			s.wheel.SetBrightness(*cfg.Brightness)
		}
		if cfg.Seed != nil {
			s.wheel.Reseed(*cfg.Seed)
		}
		if cfg.UpdateHz != nil && *cfg.UpdateHz > 0 {
			s.updateHz = *cfg.UpdateHz
			tick.Reset(timex.DurationFromHz(s.updateHz))
		}
	case map[string]any:
		if v, ok := cfg["brightness"].(float64); ok {
			s.wheel.SetBrightness(uint8(mathx.Clamp(v, 0, 255)))
		}
		if v, ok := cfg["seed"].(float64); ok {
			s.wheel.Reseed(uint32(v))
		}
		if v, ok := cfg["update_hz"].(float64); ok && v > 0 {
			s.updateHz = uint32(v)
			tick.Reset(timex.DurationFromHz(s.updateHz))
			println("Info: showcase update rate set to", s.updateHz, "Hz")
		}
	default:
		println("Warn: showcase config payload ignored")
	}
}
