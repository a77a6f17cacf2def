package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/hex-kingdom/internal/params"
	"github.com/talgya/hex-kingdom/internal/terrain"
)

// EnvPath names the environment variable holding the config file path.
const EnvPath = "HEXGEN_CONFIG"

// DefaultPath is used when EnvPath is unset.
const DefaultPath = "hexgen.yaml"

// Config holds everything the hexgen command needs to produce maps.
type Config struct {
	// Map choices
	Size       string `yaml:"size"`
	Style      string `yaml:"style"`
	Topography string `yaml:"topography"`
	Vegetation string `yaml:"vegetation"`
	Rivers     string `yaml:"rivers"`

	// Generation
	Seed         int64  `yaml:"seed"`  // 0 picks a random seed
	Count        int    `yaml:"count"` // maps generated, seeds seed..seed+count-1
	WeightNoise  string `yaml:"weight_noise"`
	StrictBorder bool   `yaml:"strict_border"`

	LogLevel string `yaml:"log_level"`
}

// Default returns Config with the default map choices.
func Default() Config {
	c := params.DefaultChoices()
	return Config{
		Size:        string(c.Size),
		Style:       string(c.Style),
		Topography:  string(c.Topography),
		Vegetation:  string(c.Vegetation),
		Rivers:      string(c.Rivers),
		Count:       1,
		WeightNoise: terrain.JitterUniform.String(),
		LogLevel:    "info",
	}
}

// Path returns the config path from the environment, or DefaultPath.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Bind registers a flag for every field, defaulting to the current values, so
// flags given on the command line override the file.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Size, "size", c.Size, "map size: small, medium, large, huge")
	fs.StringVar(&c.Style, "style", c.Style, "landmass style: islands, realistic, chunky")
	fs.StringVar(&c.Topography, "topography", c.Topography, "relief: flat, low, medium, extreme")
	fs.StringVar(&c.Vegetation, "vegetation", c.Vegetation, "vegetation: barren, realistic, overgrown")
	fs.StringVar(&c.Rivers, "rivers", c.Rivers, "rivers: none, few, medium, overflowing")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 picks one")
	fs.IntVar(&c.Count, "count", c.Count, "number of maps to generate")
	fs.StringVar(&c.WeightNoise, "weight-noise", c.WeightNoise, "weight jitter: uniform, simplex, none")
	fs.BoolVar(&c.StrictBorder, "strict-border", c.StrictBorder, "reject prefab centres inside the border on either axis")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
}

// Choices converts the named options to params.Choices.
func (c Config) Choices() (params.Choices, error) {
	var (
		out params.Choices
		err error
	)
	if out.Size, err = params.ParseSize(c.Size); err != nil {
		return out, err
	}
	if out.Style, err = params.ParseStyle(c.Style); err != nil {
		return out, err
	}
	if out.Topography, err = params.ParseTopography(c.Topography); err != nil {
		return out, err
	}
	if out.Vegetation, err = params.ParseVegetation(c.Vegetation); err != nil {
		return out, err
	}
	if out.Rivers, err = params.ParseRivers(c.Rivers); err != nil {
		return out, err
	}
	return out, nil
}

// Jitter returns the configured weight noise mode.
func (c Config) Jitter() (terrain.JitterMode, error) {
	return terrain.ParseJitterMode(c.WeightNoise)
}

// Level returns the configured slog level.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// Validate checks every field and resolves the map choices.
func (c Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", c.Count)
	}
	// Map i uses seed+i, and a zero seed means random, so the batch must not reach 0.
	if c.Seed != 0 {
		last := c.Seed + int64(c.Count-1)
		if last < c.Seed || (c.Seed < 0 && last >= 0) {
			return fmt.Errorf("seed %d with count %d reaches zero or overflows", c.Seed, c.Count)
		}
	}
	choices, err := c.Choices()
	if err != nil {
		return err
	}
	if _, err := params.Resolve(choices); err != nil {
		return err
	}
	if _, err := c.Jitter(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}
