package types

// ------------------------
// HSV
// ------------------------

// HsvColor is an HSV triple as the animator produces it: hue in degrees,
// saturation and value on the 8-bit scale.
type HsvColor struct {
	Hue        uint16 `json:"hue"` // 0..359
	Saturation uint8  `json:"saturation"`
	Value      uint8  `json:"value"`
}

// ------------------------
// RGB duty triple
// ------------------------

// RgbColor holds per-channel PWM duty levels, 0..PWMPeriod-1.
type RgbColor struct {
	Red   uint16 `json:"red"`
	Green uint16 `json:"green"`
	Blue  uint16 `json:"blue"`
}
