package hal

import (
	"testing"

	"colorwheel-go/drivers/rgbled"
	"colorwheel-go/errcode"
	"colorwheel-go/types"
)

// fake PWM handle

type fakePWM struct {
	freq       uint64
	top        uint16
	level      uint16
	configured bool
	sets       int
}

func (f *fakePWM) Configure(freqHz uint64, top uint16) error {
	f.freq, f.top, f.configured = freqHz, top, true
	return nil
}

func (f *fakePWM) Set(level uint16) {
	f.level = level
	f.sets++
}

var _ PWMHandle = (*fakePWM)(nil)

func newFakeOutput() (*RGBOutput, [3]*fakePWM) {
	h := [3]*fakePWM{{}, {}, {}}
	return NewRGBOutput(h[0], h[1], h[2]), h
}

func TestInit_ConfiguresAndZeroes(t *testing.T) {
	out, h := newFakeOutput()
	if err := out.Init(); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	for i, f := range h {
		if !f.configured {
			t.Fatalf("channel %d not configured", i)
		}
		if f.freq != PWMFreqHz || f.top != rgbled.PWMPeriod {
			t.Fatalf("channel %d configured (%d Hz, top %d), want (%d, %d)",
				i, f.freq, f.top, PWMFreqHz, rgbled.PWMPeriod)
		}
		if f.level != 0 || f.sets != 1 {
			t.Fatalf("channel %d level=%d sets=%d after Init, want 0/1", i, f.level, f.sets)
		}
	}
}

func TestSetDuty_ClampsToSafeMax(t *testing.T) {
	out, h := newFakeOutput()
	if err := out.Init(); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if err := out.SetDuty(types.ChannelGreen, 0xFFFF); err != nil {
		t.Fatalf("SetDuty error: %v", err)
	}
	if h[1].level != rgbled.SafeMaxDuty {
		t.Fatalf("green level = %d, want %d", h[1].level, rgbled.SafeMaxDuty)
	}
	if err := out.SetDuty(types.ChannelBlue, 1234); err != nil {
		t.Fatalf("SetDuty error: %v", err)
	}
	if h[2].level != 1234 {
		t.Fatalf("blue level = %d, want 1234", h[2].level)
	}
}

func TestSetDuty_UnknownChannel(t *testing.T) {
	out, _ := newFakeOutput()
	if err := out.Init(); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if err := out.SetDuty(types.Channel(3), 100); err != errcode.UnknownChannel {
		t.Fatalf("SetDuty(3) error = %v, want %v", err, errcode.UnknownChannel)
	}
}

func TestSetDuty_BeforeInit(t *testing.T) {
	out, _ := newFakeOutput()
	if err := out.SetDuty(types.ChannelRed, 1); err != errcode.NotInitialised {
		t.Fatalf("SetDuty before Init error = %v, want %v", err, errcode.NotInitialised)
	}
}

func TestDeInit_ZeroesAndDisables(t *testing.T) {
	out, h := newFakeOutput()
	if err := out.Init(); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	_ = out.SetDuty(types.ChannelRed, 20000)
	out.DeInit()
	for i, f := range h {
		if f.level != 0 {
			t.Fatalf("channel %d level = %d after DeInit, want 0", i, f.level)
		}
	}
	if err := out.SetDuty(types.ChannelRed, 1); err != errcode.NotInitialised {
		t.Fatalf("SetDuty after DeInit error = %v, want %v", err, errcode.NotInitialised)
	}
}
