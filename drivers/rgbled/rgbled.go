// Package rgbled holds the colour maths for a common-cathode RGB LED driven
// by three PWM duty channels. Pure functions only: no bus, no goroutines,
// no hardware access.
package rgbled

import (
	"colorwheel-go/types"
	"colorwheel-go/x/mathx"
)

// PWM counter geometry shared by every backend.
const (
	PWMPeriod   = 0x8000 // counter period (32768)
	SafeMaxDuty = 0x7FFF // one below the period; a full-period duty can glitch
)

// Calibration scales each channel by an integer percentage to even out the
// perceived brightness of the LED's three dies.
type Calibration struct {
	Red   uint32
	Green uint32
	Blue  uint32
}

// CreeCLP6C is the calibration for the Cree CLP6C-FKB part this firmware
// ships with: green die is the brightest, blue the dimmest.
var CreeCLP6C = Calibration{Red: 100, Green: 85, Blue: 110}

// Uncalibrated leaves all channels at 100%.
var Uncalibrated = Calibration{Red: 100, Green: 100, Blue: 100}

// HsvToRgb converts an HSV colour to calibrated PWM duty levels.
//
// All arithmetic is truncating integer maths with 32-bit intermediates;
// operation order (multiply before divide) is load-bearing for bit-exact
// outputs, so keep it. Inputs are total: any hue 0..359 and 8-bit s/v are
// in range, and outputs are always within [0, SafeMaxDuty].
func HsvToRgb(hsv types.HsvColor, cal Calibration) types.RgbColor {
	if hsv.Saturation == 0 {
		// Grayscale. Calibration is skipped so the three channels stay equal.
		gray := uint32(hsv.Value) * PWMPeriod / 255
		gray = mathx.Min(gray, uint32(SafeMaxDuty))
		g := uint16(gray)
		return types.RgbColor{Red: g, Green: g, Blue: g}
	}

	region := hsv.Hue / 60
	remainder := uint32(hsv.Hue%60) * 255 / 60

	v := uint32(hsv.Value)
	s := uint32(hsv.Saturation)

	p := v * (255 - s) / 255
	q := v * (255 - (s * remainder / 255)) / 255
	t := v * (255 - (s * (255 - remainder) / 255)) / 255

	var r32, g32, b32 uint32
	switch region {
	case 0:
		r32, g32, b32 = v, t, p
	case 1:
		r32, g32, b32 = q, v, p
	case 2:
		r32, g32, b32 = p, v, t
	case 3:
		r32, g32, b32 = p, q, v
	case 4:
		r32, g32, b32 = t, p, v
	default: // region 5
		r32, g32, b32 = v, p, q
	}

	// Scale 0..255 channel values into the PWM counter domain.
	r32 = r32 * PWMPeriod / 255
	g32 = g32 * PWMPeriod / 255
	b32 = b32 * PWMPeriod / 255

	// Per-die percentage calibration.
	r32 = r32 * cal.Red / 100
	g32 = g32 * cal.Green / 100
	b32 = b32 * cal.Blue / 100

	return types.RgbColor{
		Red:   uint16(mathx.Min(r32, uint32(SafeMaxDuty))),
		Green: uint16(mathx.Min(g32, uint32(SafeMaxDuty))),
		Blue:  uint16(mathx.Min(b32, uint32(SafeMaxDuty))),
	}
}
