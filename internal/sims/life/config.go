package life

import (
	"strconv"

	"github.com/pkg/errors"
)

// Config controls the Life simulation.
type Config struct {
	Width  int
	Height int

	Edge    EdgePolicy
	Workers int

	Patterns []Placement
	// Density is the alive probability used by the random placement.
	Density float64
}

// DefaultConfig returns the 50x25 board seeded like the reference animation.
func DefaultConfig() Config {
	placements, _ := ParsePlacements(DefaultPatterns)
	return Config{
		Width:    50,
		Height:   25,
		Edge:     EdgeClipped,
		Workers:  1,
		Patterns: placements,
		Density:  0.25,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unlike tuning knobs, a bad size, policy or pattern is reported rather than
// replaced by the default.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.Wrapf(err, "w=%q", v)
		}
		c.Width = parsed
	}
	if v, ok := cfg["h"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.Wrapf(err, "h=%q", v)
		}
		c.Height = parsed
	}
	if c.Width <= 0 || c.Height <= 0 {
		return c, errors.Wrapf(ErrInvalidSize, "got %dx%d", c.Width, c.Height)
	}
	if v, ok := cfg["edge"]; ok {
		edge, err := ParseEdgePolicy(v)
		if err != nil {
			return c, err
		}
		c.Edge = edge
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["patterns"]; ok {
		placements, err := ParsePlacements(v)
		if err != nil {
			return c, err
		}
		c.Patterns = placements
	}
	return c, nil
}
