package types

// ------------------------
// PWM output
// ------------------------

// Channel is a logical RGB output channel index. The physical pin or pixel
// mapping belongs to the platform backend.
type Channel uint8

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue

	NumChannels = 3
)
