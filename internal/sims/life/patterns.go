package life

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Pattern is a named seed: cells set alive, and optionally cells frozen, at
// fixed (column, row) coordinates.
type Pattern struct {
	Name   string
	Alive  []Point
	Frozen []Point
}

// RandomPattern is the placement name that fills the grid with a random soup
// instead of a fixed pattern.
const RandomPattern = "random"

// DefaultPatterns is the seed used when none is configured.
const DefaultPatterns = "pentadecathlon,spaceship"

// ErrUnknownPattern is returned for placement names not in the library.
var ErrUnknownPattern = errors.New("unknown pattern")

var patterns = map[string]Pattern{}

func registerPattern(p Pattern) { patterns[p.Name] = p }

func init() {
	registerPattern(Pattern{
		Name:  "block",
		Alive: []Point{{1, 1}, {2, 1}, {1, 2}, {2, 2}},
	})
	registerPattern(Pattern{
		Name:  "blinker",
		Alive: []Point{{4, 2}, {4, 3}, {4, 4}},
	})
	registerPattern(Pattern{
		Name:  "glider",
		Alive: []Point{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	})
	// Period 15 oscillator.
	registerPattern(Pattern{
		Name: "pentadecathlon",
		Alive: []Point{
			{6, 6}, {6, 7}, {5, 8}, {7, 8}, {6, 9}, {6, 10},
			{6, 11}, {6, 12}, {5, 13}, {7, 13}, {6, 14}, {6, 15},
		},
	})
	registerPattern(Pattern{
		Name: "spaceship",
		Alive: []Point{
			{44, 9}, {44, 10}, {43, 9}, {43, 10},
			{41, 8}, {41, 9}, {41, 10}, {41, 11},
			{40, 7}, {40, 8}, {40, 11}, {40, 12},
			{39, 6}, {39, 13},
			{37, 6}, {37, 13},
			{36, 6}, {36, 8}, {36, 11}, {36, 13},
			{35, 9}, {35, 10}, {34, 9}, {34, 10},
			{33, 7}, {33, 8}, {33, 11}, {33, 12},
		},
	})
	// A frozen bar with a blinker on either side of it.
	registerPattern(Pattern{
		Name:   "wall",
		Alive:  []Point{{18, 3}, {18, 4}, {18, 5}, {22, 3}, {22, 4}, {22, 5}},
		Frozen: []Point{{20, 1}, {20, 2}, {20, 3}, {20, 4}, {20, 5}, {20, 6}, {20, 7}},
	})
}

// Lookup returns the named pattern.
func Lookup(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "%q (have %v)", name, PatternNames())
	}
	return p, nil
}

// PatternNames lists the pattern library in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Translate returns a copy of p shifted by (dx, dy).
func (p Pattern) Translate(dx, dy int) Pattern {
	shift := func(pts []Point) []Point {
		if pts == nil {
			return nil
		}
		out := make([]Point, len(pts))
		for i, pt := range pts {
			out[i] = Point{X: pt.X + dx, Y: pt.Y + dy}
		}
		return out
	}
	return Pattern{Name: p.Name, Alive: shift(p.Alive), Frozen: shift(p.Frozen)}
}

// Apply seeds the pattern onto g. Out of bounds points fail the whole call.
func (p Pattern) Apply(g *Grid) error {
	if err := g.Seed(p.Alive); err != nil {
		return errors.Wrapf(err, "pattern %s", p.Name)
	}
	if err := g.Freeze(p.Frozen); err != nil {
		return errors.Wrapf(err, "pattern %s", p.Name)
	}
	return nil
}

// Placement is a pattern name with an offset, written "name" or "name@dx,dy".
type Placement struct {
	Name   string
	DX, DY int
}

func (p Placement) String() string {
	if p.DX == 0 && p.DY == 0 {
		return p.Name
	}
	return p.Name + "@" + strconv.Itoa(p.DX) + "," + strconv.Itoa(p.DY)
}

// ParsePlacements parses a comma separated placement list such as
// "pentadecathlon,glider@10,4". Offsets bind to the preceding name.
func ParsePlacements(s string) ([]Placement, error) {
	var out []Placement
	fields := strings.Split(s, ",")
	for i := 0; i < len(fields); i++ {
		field := strings.TrimSpace(fields[i])
		if field == "" {
			continue
		}
		name, dxText, hasOffset := strings.Cut(field, "@")
		pl := Placement{Name: strings.TrimSpace(name)}
		if hasOffset {
			if i+1 >= len(fields) {
				return nil, errors.Errorf("placement %q: offset needs dx,dy", field)
			}
			i++
			dx, err := strconv.Atoi(strings.TrimSpace(dxText))
			if err != nil {
				return nil, errors.Wrapf(err, "placement %q: dx", field)
			}
			dy, err := strconv.Atoi(strings.TrimSpace(fields[i]))
			if err != nil {
				return nil, errors.Wrapf(err, "placement %q: dy", field)
			}
			pl.DX, pl.DY = dx, dy
		}
		if pl.Name != RandomPattern {
			if _, err := Lookup(pl.Name); err != nil {
				return nil, err
			}
		}
		out = append(out, pl)
	}
	return out, nil
}
