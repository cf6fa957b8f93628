// services/showcase/wheel.go
package showcase

import (
	"colorwheel-go/drivers/rgbled"
	"colorwheel-go/services/hal"
	"colorwheel-go/types"
	"colorwheel-go/x/mathx"
	"colorwheel-go/x/prng"
)

const (
	HueSteps    = 360 // full colour wheel
	MinHueSpeed = 1
	MaxHueSpeed = 5

	// Fixed levels for the showcase: maximum saturation for pure colours,
	// 86% brightness so the calibrated channels stay vivid without pinning.
	SaturationLevel   = 255
	DefaultBrightness = 220

	DefaultUpdateHz = 66 // smooth transitions at ~15 ms per tick
)

// WheelConfig seeds a Wheel. Zero values select the showcase defaults.
type WheelConfig struct {
	Brightness uint8
	Seed       uint32
	Cal        rgbled.Calibration
}

// Wheel is the colour-wheel state machine. It is single-writer: only the
// tick path mutates it, and ticks are never re-entrant.
type Wheel struct {
	hueStep    uint16 // 0..359
	hueSpeed   uint8  // ticks per hue step, 1..5
	hueCounter uint8  // always < hueSpeed after a tick
	brightness uint8

	cal  rgbled.Calibration
	rng  *prng.Sequence
	last types.RgbColor
	revs uint32
}

func NewWheel(cfg WheelConfig) *Wheel {
	if cfg.Brightness == 0 {
		cfg.Brightness = DefaultBrightness
	}
	if cfg.Seed == 0 {
		cfg.Seed = prng.DefaultSeed
	}
	if cfg.Cal == (rgbled.Calibration{}) {
		cfg.Cal = rgbled.CreeCLP6C
	}
	w := &Wheel{
		brightness: cfg.Brightness,
		cal:        cfg.Cal,
		rng:        prng.WithSeed(cfg.Seed),
	}
	w.hueSpeed = w.randomSpeed()
	return w
}

func (w *Wheel) randomSpeed() uint8 {
	return w.rng.IntIn(MinHueSpeed, MaxHueSpeed)
}

// Tick advances the wheel by one update period and forwards the resulting
// duty levels to the output, one write per channel. Speed changes only at
// wheel-completion boundaries, never mid-sweep, to avoid visible stutter.
func (w *Wheel) Tick(out hal.Output) types.RgbColor {
	w.hueCounter++
	if w.hueCounter >= w.hueSpeed {
		w.hueCounter = 0
		w.hueStep++
		if w.hueStep >= HueSteps {
			w.hueStep = 0
			w.revs++
			w.hueSpeed = w.randomSpeed()
		}
	}

	hsv := types.HsvColor{
		Hue:        w.hueStep,
		Saturation: SaturationLevel,
		Value:      w.brightness,
	}
	rgb := rgbled.HsvToRgb(hsv, w.cal)

	// Duty must never reach the full PWM period; clamp again at the output
	// boundary even though the converter already does.
	rgb.Red = mathx.Min(rgb.Red, uint16(rgbled.SafeMaxDuty))
	rgb.Green = mathx.Min(rgb.Green, uint16(rgbled.SafeMaxDuty))
	rgb.Blue = mathx.Min(rgb.Blue, uint16(rgbled.SafeMaxDuty))

	_ = out.SetDuty(types.ChannelRed, rgb.Red)
	_ = out.SetDuty(types.ChannelGreen, rgb.Green)
	_ = out.SetDuty(types.ChannelBlue, rgb.Blue)

	w.last = rgb
	return rgb
}

func (w *Wheel) Hue() uint16       { return w.hueStep }
func (w *Wheel) Speed() uint8      { return w.hueSpeed }
func (w *Wheel) Brightness() uint8 { return w.brightness }
func (w *Wheel) Revs() uint32      { return w.revs }

// SetBrightness applies a runtime brightness change; it takes effect on the
// next tick.
func (w *Wheel) SetBrightness(b uint8) { w.brightness = b }

// Reseed restarts the speed generator and redraws the current speed.
func (w *Wheel) Reseed(seed uint32) {
	w.rng = prng.WithSeed(seed)
	w.hueSpeed = w.randomSpeed()
	if w.hueCounter >= w.hueSpeed {
		w.hueCounter = 0
	}
}

// State snapshots the wheel for the retained state topic.
func (w *Wheel) State() types.ShowcaseState {
	return types.ShowcaseState{
		Hue:        w.hueStep,
		Speed:      w.hueSpeed,
		Brightness: w.brightness,
		Rgb:        w.last,
		Revs:       w.revs,
	}
}
