package app

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"mad-life/internal/core"
)

// Duration is a time.Duration that reads from JSON strings such as "200ms".
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.Wrap(err, "duration must be a string like \"200ms\"")
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return errors.Wrapf(err, "parse duration %q", s)
	}
	*d = Duration(parsed)
	return nil
}

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string   `json:"sim"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Scale    int      `json:"scale"`
	TPS      int      `json:"tps"`
	Interval Duration `json:"interval"`
	Frames   int      `json:"frames"`
	Seed     int64    `json:"seed"`
	Patterns string   `json:"patterns"`
	Edge     string   `json:"edge"`
	Workers  int      `json:"workers"`
	Density  float64  `json:"density"`
	Origin   string   `json:"origin"`
	HUD      int      `json:"hud"`
	Dump     bool     `json:"dump"`

	ConfigFile string `json:"-"`
}

// NewConfig returns a Config matching the reference animation: a 50x25
// board advanced every 200ms for 200 frames.
func NewConfig() *Config {
	return &Config{
		Sim:      "life",
		Width:    50,
		Height:   25,
		Scale:    16,
		TPS:      60,
		Interval: Duration(core.DefaultInterval),
		Frames:   200,
		Seed:     42,
		Patterns: "pentadecathlon,spaceship",
		Workers:  1,
		Density:  0.25,
		Origin:   "lower",
		HUD:      220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (life, life-bounded, life-torus)")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "window updates per second")
	fs.DurationVar((*time.Duration)(&c.Interval), "interval", time.Duration(c.Interval), "time between generations")
	fs.IntVar(&c.Frames, "frames", c.Frames, "generations to animate, 0 for no limit")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.StringVar(&c.Patterns, "patterns", c.Patterns, "seed placements, e.g. glider@10,4,block")
	fs.StringVar(&c.Edge, "edge", c.Edge, "override edge policy (clipped, bounded, torus)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands computed in parallel per step")
	fs.Float64Var(&c.Density, "density", c.Density, "alive probability for the random pattern")
	fs.StringVar(&c.Origin, "origin", c.Origin, "where row 0 is drawn (lower, upper)")
	fs.IntVar(&c.HUD, "hud", c.HUD, "status panel width in pixels, 0 to hide")
	fs.BoolVar(&c.Dump, "dump", c.Dump, "print the final grid as a table")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "JSON config file; flags override its values")
}

// LoadFile overlays the JSON file at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %s", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %s", path)
	}
	return nil
}

// Parse builds a Config from command-line arguments. When -config names a
// file its values replace the defaults and explicit flags still win.
func Parse(name string, args []string) (*Config, error) {
	cfg := NewConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ConfigFile != "" {
		fromFile := NewConfig()
		if err := fromFile.LoadFile(cfg.ConfigFile); err != nil {
			return nil, err
		}
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
		fromFile.Bind(fs)
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		cfg = fromFile
	}
	return cfg, cfg.Validate()
}

// Validate reports settings the application cannot run with. Grid size and
// seed problems are left to the sim factory.
func (c *Config) Validate() error {
	switch {
	case c.Scale <= 0:
		return errors.Errorf("scale must be positive, got %d", c.Scale)
	case c.TPS <= 0:
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	case c.Interval <= 0:
		return errors.Errorf("interval must be positive, got %v", time.Duration(c.Interval))
	case c.Origin != "lower" && c.Origin != "upper":
		return errors.Errorf("origin must be lower or upper, got %q", c.Origin)
	case c.HUD < 0:
		return errors.Errorf("hud width must not be negative, got %d", c.HUD)
	}
	return nil
}

// FlipY reports whether row 0 is drawn at the bottom.
func (c *Config) FlipY() bool { return c.Origin == "lower" }

// SimOptions converts the config into the key/value map sim factories read.
// An empty edge keeps the policy implied by the sim name.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"w":        strconv.Itoa(c.Width),
		"h":        strconv.Itoa(c.Height),
		"workers":  strconv.Itoa(c.Workers),
		"density":  strconv.FormatFloat(c.Density, 'f', -1, 64),
		"patterns": c.Patterns,
	}
	if c.Edge != "" {
		opts["edge"] = c.Edge
	}
	return opts
}
