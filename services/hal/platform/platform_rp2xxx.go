// services/hal/platform/platform_rp2xxx.go
//go:build rp2040 || rp2350

package platform

import (
	"machine"

	"colorwheel-go/services/hal"
	"colorwheel-go/x/mathx"
	"colorwheel-go/x/timex"
)

// Local interface to avoid depending on an unexported concrete type in machine.
type pwmCtrl interface {
	Configure(cfg machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// Select controller handle for a given slice number (0..7).
func pwmGroupBySlice(slice uint8) pwmCtrl {
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}

// sliceForPin follows the RP2 GPIO-to-slice mapping.
func sliceForPin(pin machine.Pin) uint8 {
	return uint8((uint32(pin) / 2) % 8)
}

// rp2PWM is a channel-level hal.PWMHandle on one RP2 PWM slice.
type rp2PWM struct {
	pin  machine.Pin
	ctrl pwmCtrl

	chIdx  uint8
	reqTop uint16 // logical resolution (0..reqTop)
	hwTop  uint32 // controller top after Configure
}

// NewPWM returns a PWM handle for one GP pin.
func NewPWM(pin machine.Pin) hal.PWMHandle {
	return &rp2PWM{pin: pin, ctrl: pwmGroupBySlice(sliceForPin(pin))}
}

func (p *rp2PWM) Configure(freqHz uint64, top uint16) error {
	freqHz = mathx.Max(freqHz, 1)
	if err := p.ctrl.Configure(machine.PWMConfig{
		Period: timex.PeriodFromHz(uint32(freqHz)),
	}); err != nil {
		return err
	}
	p.pin.Configure(machine.PinConfig{Mode: machine.PinPWM})
	ch, err := p.ctrl.Channel(p.pin)
	if err != nil {
		return err
	}
	p.chIdx = ch
	p.reqTop = mathx.Max(top, 1)
	p.hwTop = p.ctrl.Top()
	return nil
}

func (p *rp2PWM) Set(level uint16) {
	if p.hwTop == 0 || p.reqTop == 0 {
		return
	}
	level = mathx.Min(level, p.reqTop)
	// Scale from logical [0..reqTop] to hardware [0..hwTop].
	p.ctrl.Set(p.chIdx, (uint32(level)*p.hwTop)/uint32(p.reqTop))
}

// DefaultOutput wires the showcase's RGB LED pins. The red/green/blue pins
// sit on distinct slices so their carrier frequencies configure independently.
func DefaultOutput(red, green, blue machine.Pin) *hal.RGBOutput {
	return hal.NewRGBOutput(NewPWM(red), NewPWM(green), NewPWM(blue))
}
