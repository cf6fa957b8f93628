package main

import (
	"context"
	"os"
	"os/signal"

	"colorwheel-go/bus"
	"colorwheel-go/services/config"
	"colorwheel-go/services/hal/platform"
	"colorwheel-go/services/showcase"
	"colorwheel-go/types"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = context.WithValue(ctx, config.CtxDeviceKey, "host")

	b := bus.NewBus(16)

	config.NewConfigService().Start(ctx, b.NewConnection("config"))

	out, _ := platform.DefaultOutput()
	svc := showcase.NewService(out, showcase.WheelConfig{})
	if err := svc.Start(ctx, b.NewConnection("showcase")); err != nil {
		println("Error: showcase start:", err.Error())
		return
	}

	mon := b.NewConnection("monitor")
	sub := mon.Subscribe(bus.T("showcase", "state"))
	defer mon.Disconnect()

	println("boot")
	for {
		select {
		case <-ctx.Done():
			println("shutdown")
			return
		case m := <-sub.Channel():
			if st, ok := m.Payload.(types.ShowcaseState); ok {
				println("Info: rev", st.Revs, "speed", st.Speed, "hue", st.Hue)
			}
		}
	}
}
