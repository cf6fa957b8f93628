package showcase

import (
	"context"
	"testing"
	"time"

	"colorwheel-go/bus"
	"colorwheel-go/services/hal/platform"
	"colorwheel-go/types"
)

func TestService_PublishesRetainedStateOnStart(t *testing.T) {
	b := bus.NewBus(8)
	conn := b.NewConnection("showcase")
	out, _ := platform.DefaultOutput()
	svc := NewService(out, WheelConfig{Seed: 0x12345678})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := svc.Start(ctx, conn); err != nil {
		t.Fatalf("Start error: %v", err)
	}

	// Give the loop a moment to publish, then subscribe; the state message
	// is retained so it must arrive immediately.
	time.Sleep(50 * time.Millisecond)
	obs := b.NewConnection("observer")
	sub := obs.Subscribe(bus.T("showcase", "state"))
	defer obs.Unsubscribe(sub)

	select {
	case m := <-sub.Channel():
		st, ok := m.Payload.(types.ShowcaseState)
		if !ok {
			t.Fatalf("state payload type %T", m.Payload)
		}
		if st.Speed != 5 || st.Brightness != DefaultBrightness {
			t.Fatalf("unexpected initial state: %+v", st)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timeout waiting for retained state")
	}
}

func TestService_TicksDriveOutput(t *testing.T) {
	b := bus.NewBus(8)
	conn := b.NewConnection("showcase")
	out, chans := platform.DefaultOutput()
	svc := NewService(out, WheelConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	if err := svc.Start(ctx, conn); err != nil {
		t.Fatalf("Start error: %v", err)
	}

	// At 66 Hz a few ticks land comfortably inside 200 ms.
	time.Sleep(200 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)

	// Init writes once per channel; ticks add one write per channel each.
	if chans[0].Writes < 3 {
		t.Fatalf("red channel saw %d writes, want several", chans[0].Writes)
	}
	for i, c := range chans {
		if c.Level != 0 {
			t.Fatalf("channel %d level = %d after stop, want 0", i, c.Level)
		}
	}
}

func TestService_ApplyConfig_TypedPayload(t *testing.T) {
	out, _ := platform.DefaultOutput()
	svc := NewService(out, WheelConfig{})
	tick := time.NewTicker(time.Second)
	defer tick.Stop()

	brightness := uint8(100)
	hz := uint32(100)
	svc.applyConfig(types.ShowcaseConfig{Brightness: &brightness, UpdateHz: &hz}, tick)

	if svc.wheel.Brightness() != 100 {
		t.Fatalf("brightness = %d, want 100", svc.wheel.Brightness())
	}
	if svc.updateHz != 100 {
		t.Fatalf("updateHz = %d, want 100", svc.updateHz)
	}
}

func TestService_ApplyConfig_MapPayload(t *testing.T) {
	out, _ := platform.DefaultOutput()
	svc := NewService(out, WheelConfig{})
	tick := time.NewTicker(time.Second)
	defer tick.Stop()

	svc.applyConfig(map[string]any{
		"brightness": float64(180),
		"update_hz":  float64(33),
		"seed":       float64(0x12345678),
	}, tick)

	if svc.wheel.Brightness() != 180 {
		t.Fatalf("brightness = %d, want 180", svc.wheel.Brightness())
	}
	if svc.updateHz != 33 {
		t.Fatalf("updateHz = %d, want 33", svc.updateHz)
	}
	if svc.wheel.Speed() != 5 {
		t.Fatalf("reseeded speed = %d, want 5 (first draw of 0x12345678)", svc.wheel.Speed())
	}
}

func TestService_ApplyConfig_BadPayloadIgnored(t *testing.T) {
	out, _ := platform.DefaultOutput()
	svc := NewService(out, WheelConfig{})
	tick := time.NewTicker(time.Second)
	defer tick.Stop()

	before := svc.wheel.State()
	svc.applyConfig("not a config", tick)
	after := svc.wheel.State()

	if before != after {
		t.Fatalf("state changed on bad payload: %+v -> %+v", before, after)
	}
}
