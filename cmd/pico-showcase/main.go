// cmd/pico-showcase/main.go
//go:build rp2040 || rp2350

package main

import (
	"context"
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"colorwheel-go/bus"
	"colorwheel-go/services/config"
	"colorwheel-go/services/showcase"
	"colorwheel-go/types"
	"colorwheel-go/x/conv"
)

// RGB LED pins: GP2/GP4/GP6 land on distinct PWM slices so the three
// carriers configure independently.
const (
	pinRed   = machine.GP2
	pinGreen = machine.GP4
	pinBlue  = machine.GP6

	// Single-pixel boards: WS2812 data pin, selected with -tags neopixel.
	pinPixel = machine.GP16
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	// Status console on UART0; defaults inside uartx apply if zero.
	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})

	ctx := context.WithValue(context.Background(), config.CtxDeviceKey, "pico")

	b := bus.NewBus(8)
	config.NewConfigService().Start(ctx, b.NewConnection("config"))

	svc := showcase.NewService(selectOutput(), showcase.WheelConfig{})
	if err := svc.Start(ctx, b.NewConnection("showcase")); err != nil {
		println("Error: showcase start:", err.Error())
		return
	}

	mon := b.NewConnection("monitor")
	sub := mon.Subscribe(bus.T("showcase", "state"))

	for msg := range sub.Channel() {
		st, ok := msg.Payload.(types.ShowcaseState)
		if !ok {
			continue
		}
		logState(u, st)
	}
}

// logState writes one status line per wheel revolution, without fmt.
func logState(u *uartx.UART, st types.ShowcaseState) {
	var buf [20]byte
	_, _ = u.Write([]byte("rev "))
	_, _ = u.Write(conv.Utoa(buf[:], uint64(st.Revs)))
	_, _ = u.Write([]byte(" speed "))
	_, _ = u.Write(conv.Utoa(buf[:], uint64(st.Speed)))
	_, _ = u.Write([]byte(" brightness "))
	_, _ = u.Write(conv.Utoa(buf[:], uint64(st.Brightness)))
	_, _ = u.Write([]byte("\r\n"))
}
