// cmd/pico-showcase/output_pwm.go
//go:build (rp2040 || rp2350) && !neopixel

package main

import (
	"colorwheel-go/services/hal"
	"colorwheel-go/services/hal/platform"
)

// Default board wiring: one PWM channel per LED die.
func selectOutput() hal.Output {
	return platform.DefaultOutput(pinRed, pinGreen, pinBlue)
}
