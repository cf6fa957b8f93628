// services/hal/platform/platform_host.go
//go:build !rp2040 && !rp2350

package platform

import (
	"colorwheel-go/services/hal"
)

// HostPWM implements hal.PWMHandle for host runs and tests. It records what
// a real channel would be driven with.
type HostPWM struct {
	FreqHz     uint64
	Top        uint16
	Level      uint16
	Configured bool
	Writes     int
}

func (h *HostPWM) Configure(freqHz uint64, top uint16) error {
	h.FreqHz, h.Top, h.Configured = freqHz, top, true
	return nil
}

func (h *HostPWM) Set(level uint16) {
	h.Level = level
	h.Writes++
}

// DefaultOutput returns an RGB output over three inert host channels.
func DefaultOutput() (*hal.RGBOutput, [3]*HostPWM) {
	chans := [3]*HostPWM{{}, {}, {}}
	return hal.NewRGBOutput(chans[0], chans[1], chans[2]), chans
}
