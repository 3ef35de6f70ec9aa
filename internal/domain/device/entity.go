package device

// Config is the device configuration document served to clients.
type Config struct {
	Device Info `json:"device"`
}

type Info struct {
	Timezone string   `json:"timezone"`
	Location Location `json:"location"`
	ID       string   `json:"id"`
	Name     string   `json:"name"`
}

type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DefaultConfig returns the fallback configuration used when no device
// config file exists. The fallback is never written to disk.
func DefaultConfig() Config {
	return Config{
		Device: Info{
			Timezone: "America/New_York",
			Location: Location{
				Name:      "Default Location",
				Latitude:  40.7128,
				Longitude: -74.0060,
			},
			ID:   "hvac-device-default",
			Name: "HVAC Controller",
		},
	}
}
