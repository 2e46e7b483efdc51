package life

import (
	"io"
	"strconv"

	"github.com/pkg/errors"

	"mad-life/internal/core"
)

// Sim runs Conway's Game of Life on a bounded grid. It owns the single Grid;
// the driver reads Cells between steps.
type Sim struct {
	name   string
	cfg    Config
	grid   *Grid
	engine Engine
	seeds  []Pattern
	random bool

	generation  int
	lastChanges int
	seed        int64
}

// New validates cfg, builds the grid and applies the configured seed
// patterns. Out of bounds placements are reported here so Reset cannot fail.
func New(name string, cfg Config) (*Sim, error) {
	grid, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	s := &Sim{
		name:   name,
		cfg:    cfg,
		grid:   grid,
		engine: Engine{Edge: cfg.Edge, Workers: cfg.Workers},
	}
	for _, pl := range cfg.Patterns {
		if pl.Name == RandomPattern {
			s.random = true
			continue
		}
		p, err := Lookup(pl.Name)
		if err != nil {
			return nil, err
		}
		s.seeds = append(s.seeds, p.Translate(pl.DX, pl.DY))
	}
	if err := s.reseed(0); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sim) reseed(seed int64) error {
	s.grid.Clear()
	s.generation = 0
	s.lastChanges = 0
	s.seed = seed
	if s.random {
		rng := core.NewRNG(seed)
		cells := s.grid.Cells()
		for i := range cells {
			if rng.Chance(s.cfg.Density) {
				cells[i] = uint8(Alive)
			}
		}
	}
	for _, p := range s.seeds {
		if err := p.Apply(s.grid); err != nil {
			return err
		}
	}
	return nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return s.name }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return s.grid.Size() }

// Cells exposes the current state codes in row-major order.
func (s *Sim) Cells() []uint8 { return s.grid.Cells() }

// Grid exposes the owned grid for read access.
func (s *Sim) Grid() *Grid { return s.grid }

// Engine returns the engine configuration in use.
func (s *Sim) Engine() Engine { return s.engine }

// Generation returns the number of steps since the last reset.
func (s *Sim) Generation() int { return s.generation }

// Reset restores the seed patterns. The seed only affects the random
// placement.
func (s *Sim) Reset(seed int64) {
	if err := s.reseed(seed); err != nil {
		// Placements were bounds checked in New against the same grid.
		panic(err)
	}
}

// Step advances the simulation by one generation.
func (s *Sim) Step() {
	s.lastChanges = s.engine.Step(s.grid)
	s.generation++
}

// Dump writes the current generation as a table.
func (s *Sim) Dump(w io.Writer) error { return s.grid.Dump(w) }

// CountedMask marks the cells that can count as neighbors under the sim's
// edge policy.
func (s *Sim) CountedMask() []uint8 { return s.engine.CountedMask(s.grid) }

// Parameters reports the sim state for the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	placements := ""
	for i, pl := range s.cfg.Patterns {
		if i > 0 {
			placements += ","
		}
		placements += pl.String()
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				stringParam("edge", "Edge", s.engine.Edge.String()),
				stringParam("patterns", "Seed", placements),
				stringParam("seed", "RNG seed", strconv.FormatInt(s.seed, 10)),
			},
		},
		{
			Name: "Generation",
			Params: []core.Parameter{
				intParam("generation", "Generation", s.generation),
				intParam("population", "Population", s.grid.Population()),
				intParam("changes", "Last changes", s.lastChanges),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}

func factory(name string, edge EdgePolicy) core.Factory {
	return func(cfg map[string]string) (core.Sim, error) {
		merged := map[string]string{"edge": edge.String()}
		for k, v := range cfg {
			merged[k] = v
		}
		c, err := FromMap(merged)
		if err != nil {
			return nil, errors.Wrapf(err, "configure %s", name)
		}
		return New(name, c)
	}
}

func init() {
	core.Register("life", factory("life", EdgeClipped))
	core.Register("life-bounded", factory("life-bounded", EdgeBounded))
	core.Register("life-torus", factory("life-torus", EdgeToroidal))
}
