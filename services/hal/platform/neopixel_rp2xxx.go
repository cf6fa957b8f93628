// services/hal/platform/neopixel_rp2xxx.go
//go:build rp2040 || rp2350

package platform

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"

	"colorwheel-go/drivers/rgbled"
	"colorwheel-go/errcode"
	"colorwheel-go/services/hal"
	"colorwheel-go/types"
	"colorwheel-go/x/mathx"
)

// Ensure the pixel backend satisfies the output contract at compile time.
var _ hal.Output = (*NeoPixelOutput)(nil)

// NeoPixelOutput drives a single WS2812 pixel instead of three PWM pins,
// for boards whose RGB LED is a serial pixel. Duty levels are folded down
// to the pixel's 8-bit channels.
type NeoPixelOutput struct {
	pin   machine.Pin
	dev   ws2812.Device
	px    [1]color.RGBA
	ready bool
}

func NewNeoPixelOutput(pin machine.Pin) *NeoPixelOutput {
	return &NeoPixelOutput{pin: pin}
}

func (o *NeoPixelOutput) Init() error {
	o.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	o.dev = ws2812.New(o.pin)
	o.px[0] = color.RGBA{A: 0xFF}
	o.ready = true
	return o.dev.WriteColors(o.px[:])
}

// SetDuty buffers the channel value and flushes the pixel on the blue
// write. The animator writes red, green, blue in order each tick, so the
// pixel latches exactly once per tick.
func (o *NeoPixelOutput) SetDuty(ch types.Channel, level uint16) error {
	if !o.ready {
		return errcode.NotInitialised
	}
	level = mathx.Min(level, uint16(rgbled.SafeMaxDuty))
	v := uint8(mathx.RoundDiv(uint32(level)*255, uint32(rgbled.SafeMaxDuty)))
	switch ch {
	case types.ChannelRed:
		o.px[0].R = v
	case types.ChannelGreen:
		o.px[0].G = v
	case types.ChannelBlue:
		o.px[0].B = v
		return o.dev.WriteColors(o.px[:])
	default:
		return errcode.UnknownChannel
	}
	return nil
}

func (o *NeoPixelOutput) DeInit() {
	if !o.ready {
		return
	}
	o.px[0] = color.RGBA{A: 0xFF}
	_ = o.dev.WriteColors(o.px[:])
	o.ready = false
}
