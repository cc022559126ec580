package life

import "strconv"

// Config controls the Life simulation.
type Config struct {
	Size int
	// Seed is either a registered pattern name or a raw '0'/'1' string.
	Seed string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Size: DefaultSize, Seed: "letters"}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok && v != "" {
		c.Seed = v
	}
	return c
}
