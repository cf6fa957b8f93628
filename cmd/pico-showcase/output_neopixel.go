// cmd/pico-showcase/output_neopixel.go
//go:build (rp2040 || rp2350) && neopixel

package main

import (
	"colorwheel-go/services/hal"
	"colorwheel-go/services/hal/platform"
)

// Boards whose RGB LED is a single WS2812 pixel.
func selectOutput() hal.Output {
	return platform.NewNeoPixelOutput(pinPixel)
}
