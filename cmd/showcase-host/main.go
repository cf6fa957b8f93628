// cmd/showcase-host/main.go
package main

import (
	"os"
	"os/signal"
	"time"

	"github.com/pterm/pterm"

	"colorwheel-go/drivers/rgbled"
	"colorwheel-go/services/hal/platform"
	"colorwheel-go/services/showcase"
	"colorwheel-go/x/mathx"
	"colorwheel-go/x/timex"
)

func main() {
	pterm.DefaultHeader.WithFullWidth().Println("RGB Colour Wheel Showcase")
	pterm.Info.Println("Terminal rendition of the LED showcase. Ctrl+C to exit.")

	out, chans := platform.DefaultOutput()
	if err := out.Init(); err != nil {
		pterm.Error.Println("output init:", err)
		os.Exit(1)
	}
	defer out.DeInit()

	wheel := showcase.NewWheel(showcase.WheelConfig{})

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	area, err := pterm.DefaultArea.Start()
	if err != nil {
		pterm.Error.Println("area start:", err)
		os.Exit(1)
	}
	defer func() { _ = area.Stop() }()

	tick := time.NewTicker(timex.DurationFromHz(showcase.DefaultUpdateHz))
	defer tick.Stop()

	for {
		select {
		case <-sig:
			pterm.Println()
			pterm.Info.Println("bye")
			return
		case <-tick.C:
			wheel.Tick(out)
			area.Update(render(wheel, chans))
		}
	}
}

func render(w *showcase.Wheel, chans [3]*platform.HostPWM) string {
	// Fold 0..SafeMaxDuty duty levels down to terminal 8-bit channels.
	to8 := func(level uint16) uint8 {
		return uint8(mathx.RoundDiv(uint32(level)*255, uint32(rgbled.SafeMaxDuty)))
	}
	r, g, b := to8(chans[0].Level), to8(chans[1].Level), to8(chans[2].Level)
	swatch := pterm.NewRGB(r, g, b).Sprint("████████████████")
	return pterm.Sprintf("%s  hue=%3d speed=%d revs=%d  duty=%5d/%5d/%5d\n",
		swatch, w.Hue(), w.Speed(), w.Revs(),
		chans[0].Level, chans[1].Level, chans[2].Level)
}
