// services/hal/hal.go
package hal

import (
	"colorwheel-go/drivers/rgbled"
	"colorwheel-go/errcode"
	"colorwheel-go/types"
	"colorwheel-go/x/mathx"
)

// PWMFreqHz is the carrier frequency requested from every backend. Fast
// enough to be invisible; the animator updates duty at 66 Hz on top of it.
const PWMFreqHz uint64 = 1000

// PWMHandle is one hardware PWM channel as a backend provides it.
type PWMHandle interface {
	// Configure sets carrier frequency and the logical counter top.
	Configure(freqHz uint64, top uint16) error
	// Set drives the logical duty level, 0..top.
	Set(level uint16)
}

// Output is what the animator writes to. Implementations are single-writer:
// the tick path owns them and no call is re-entrant.
type Output interface {
	// Init configures all channels and drives them to zero.
	Init() error
	// SetDuty sets one channel's duty level, clamped to SafeMaxDuty.
	SetDuty(ch types.Channel, level uint16) error
	// DeInit drives all channels to zero and releases the output.
	DeInit()
}

// RGBOutput maps the three logical channels onto PWM handles.
type RGBOutput struct {
	handles [types.NumChannels]PWMHandle
	ready   bool
}

// NewRGBOutput wires red, green and blue handles in channel order.
func NewRGBOutput(red, green, blue PWMHandle) *RGBOutput {
	return &RGBOutput{handles: [types.NumChannels]PWMHandle{red, green, blue}}
}

// Init configures each channel with the shared period, mirroring the
// counter-bus setup the PWM hardware expects, then drives everything to zero.
func (o *RGBOutput) Init() error {
	for _, h := range o.handles {
		if err := h.Configure(PWMFreqHz, rgbled.PWMPeriod); err != nil {
			return err
		}
	}
	o.ready = true
	for ch := types.Channel(0); ch < types.NumChannels; ch++ {
		if err := o.SetDuty(ch, 0); err != nil {
			return err
		}
	}
	return nil
}

func (o *RGBOutput) SetDuty(ch types.Channel, level uint16) error {
	if !o.ready {
		return errcode.NotInitialised
	}
	if ch >= types.NumChannels {
		return errcode.UnknownChannel
	}
	o.handles[ch].Set(mathx.Min(level, uint16(rgbled.SafeMaxDuty)))
	return nil
}

func (o *RGBOutput) DeInit() {
	if !o.ready {
		return
	}
	for _, h := range o.handles {
		h.Set(0)
	}
	o.ready = false
}
