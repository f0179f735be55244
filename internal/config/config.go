package config

import (
	"flag"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the launcher settings shared by the GUI and terminal
// front-ends. Values resolve in two layers: an optional YAML file first,
// then command-line flags on top.
type Config struct {
	Rule      string  `yaml:"rule"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Seed      int64   `yaml:"seed"`
	Density   float64 `yaml:"density"`
	TPS       int     `yaml:"tps"`
	Scale     int     `yaml:"scale"`
	PresetDir string  `yaml:"preset_dir"`
}

// Default returns a Config populated with sensible defaults.
func Default() Config {
	return Config{
		Rule:      "life",
		Width:     160,
		Height:    120,
		Seed:      42,
		Density:   0.25,
		TPS:       30,
		Scale:     4,
		PresetDir: "presets",
	}
}

// Bind attaches the configuration to the provided FlagSet. Call after
// loading any file so flags win.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule to run")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial fill")
	fs.Float64Var(&c.Density, "density", c.Density, "live fraction of the initial fill")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.StringVar(&c.PresetDir, "presets", c.PresetDir, "directory for saved presets")
}

// Load reads a YAML file over the defaults. A missing path is not an
// error; callers pass an empty string when no file is configured.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "[Load] failed to read file: %+v", path)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "[Load] failed to unmarshal data from file: %+v", path)
	}
	return cfg, nil
}

// ParseFlags resolves a front-end's full configuration: defaults, then the
// YAML file named by -config, then any flags explicitly set on the command
// line.
func ParseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	var path string
	fs.StringVar(&path, "config", "", "optional YAML config file")
	flagged := Default()
	flagged.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return flagged, err
	}
	if path == "" {
		return flagged, nil
	}

	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rule":
			cfg.Rule = flagged.Rule
		case "width":
			cfg.Width = flagged.Width
		case "height":
			cfg.Height = flagged.Height
		case "seed":
			cfg.Seed = flagged.Seed
		case "density":
			cfg.Density = flagged.Density
		case "tps":
			cfg.TPS = flagged.TPS
		case "scale":
			cfg.Scale = flagged.Scale
		case "presets":
			cfg.PresetDir = flagged.PresetDir
		}
	})
	return cfg, nil
}

// Dims returns the grid sizes in the fastest-axis-first order the core
// expects.
func (c Config) Dims() []int {
	return []int{c.Width, c.Height}
}
