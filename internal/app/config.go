package app

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"glowlife/internal/render"
	"glowlife/internal/sims/life"
)

// Config represents the command-line parameters for the application.
// Environment variables are applied first so that flags win over them.
type Config struct {
	Sim            string  `env:"GLOWLIFE_SIM"`
	Seed           string  `env:"GLOWLIFE_SEED"`
	Size           int     `env:"GLOWLIFE_SIZE"`
	FPS            int     `env:"GLOWLIFE_FPS"`
	SecondsPerStep float64 `env:"GLOWLIFE_SECONDS_PER_STEP"`
	Scale          int     `env:"GLOWLIFE_SCALE"`
	RandSeed       int64   `env:"GLOWLIFE_RAND"`
	SettingsPath   string  `env:"GLOWLIFE_SETTINGS"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:            "life",
		Seed:           "letters",
		Size:           life.DefaultSize,
		FPS:            12,
		SecondsPerStep: 3,
		Scale:          32,
		RandSeed:       time.Now().UnixNano(),
	}
}

// LoadEnv overrides fields from GLOWLIFE_* environment variables. Unset
// variables leave the current values alone.
func (c *Config) LoadEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Seed, "seed", c.Seed, "seed pattern name or raw 0/1 string")
	fs.IntVar(&c.Size, "size", c.Size, "board side in cells")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frames per second")
	fs.Float64Var(&c.SecondsPerStep, "step", c.SecondsPerStep, "seconds between generations")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.Int64Var(&c.RandSeed, "rand", c.RandSeed, "seed for the wobble jitter")
	fs.StringVar(&c.SettingsPath, "settings", c.SettingsPath, "JSON file overriding the render settings")
}

// SimConfig returns the flag-style map handed to the sim factory.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"size": strconv.Itoa(c.Size),
		"seed": c.Seed,
	}
}

// StepInterval converts SecondsPerStep into a duration.
func (c *Config) StepInterval() time.Duration {
	return time.Duration(c.SecondsPerStep * float64(time.Second))
}

// Settings returns the default render settings, overridden by the settings
// file when one is configured.
func (c *Config) Settings() (render.Settings, error) {
	if c.SettingsPath == "" {
		return render.DefaultSettings(), nil
	}
	return LoadSettings(c.SettingsPath)
}

// LoadSettings reads render settings from a JSON file. Keys missing from the
// file keep their default values.
func LoadSettings(filename string) (render.Settings, error) {
	settings := render.DefaultSettings()

	data, err := os.ReadFile(filename)
	if err != nil {
		return settings, errors.Wrapf(err, "[LoadSettings] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &settings); err != nil {
		return settings, errors.Wrapf(err, "[LoadSettings] failed to unmarshal data from file: %+v", filename)
	}

	return settings, nil
}
