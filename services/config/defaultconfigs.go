package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Populate embeddedConfigs at build time (e.g. via code generation) or
// manually during development.
// Key: device ID (same value placed in ctx under CtxDeviceKey)
// Val: raw JSON bytes for that device
// -----------------------------------------------------------------------------

const cfgHost = `{
  "showcase": {
      "brightness": 220,
      "update_hz": 66
  }
}`

const cfgPico = `{
  "showcase": {
      "brightness": 220,
      "update_hz": 66,
      "seed": 305419896
  }
}`

var embeddedConfigs = map[string][]byte{
	"host": []byte(cfgHost),
	"pico": []byte(cfgPico),
}
