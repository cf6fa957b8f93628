package types

// Showcase configuration supplied on topic "config/showcase".

type ShowcaseConfig struct {
	Brightness *uint8  `json:"brightness,omitempty"` // 0..255
	UpdateHz   *uint32 `json:"update_hz,omitempty"`  // tick rate, default 66
	Seed       *uint32 `json:"seed,omitempty"`       // speed generator seed
}

// ShowcaseState is the retained state snapshot on topic "showcase/state",
// published once per completed wheel revolution.
type ShowcaseState struct {
	Hue        uint16   `json:"hue"`
	Speed      uint8    `json:"speed"`
	Brightness uint8    `json:"brightness"`
	Rgb        RgbColor `json:"rgb"`
	Revs       uint32   `json:"revs"`
	TsMs       int64    `json:"ts_ms"` // producer timestamp
}
