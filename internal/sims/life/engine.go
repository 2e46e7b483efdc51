package life

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// EdgePolicy decides which neighbors of a cell are eligible for counting.
type EdgePolicy int

const (
	// EdgeClipped ignores neighbors outside the grid and also neighbors in
	// the last column or last row, even though those are in bounds. This
	// matches the reference animation cell for cell.
	EdgeClipped EdgePolicy = iota
	// EdgeBounded ignores only neighbors outside the grid.
	EdgeBounded
	// EdgeToroidal wraps neighbors around opposite edges.
	EdgeToroidal
)

// ErrUnknownEdgePolicy is returned by ParseEdgePolicy.
var ErrUnknownEdgePolicy = errors.New("unknown edge policy")

func (p EdgePolicy) String() string {
	switch p {
	case EdgeClipped:
		return "clipped"
	case EdgeBounded:
		return "bounded"
	case EdgeToroidal:
		return "torus"
	default:
		return "unknown"
	}
}

// ParseEdgePolicy maps a policy name back to its value.
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clipped":
		return EdgeClipped, nil
	case "bounded":
		return EdgeBounded, nil
	case "torus", "toroidal":
		return EdgeToroidal, nil
	}
	return 0, errors.Wrapf(ErrUnknownEdgePolicy, "%q", s)
}

// Change is a pending state transition computed from the prior generation.
type Change struct {
	X, Y  int
	State State
}

// Engine advances a Grid by one generation of Conway's rule.
type Engine struct {
	Edge EdgePolicy
	// Workers > 1 splits change collection into row bands.
	Workers int
}

var mooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// LiveNeighbors counts the alive cells around (x, y) that the edge policy
// allows. Frozen neighbors never count.
func (e *Engine) LiveNeighbors(g *Grid, x, y int) int {
	w, h := g.Width(), g.Height()
	cells := g.cells.Cells()
	n := 0
	for _, off := range mooreOffsets {
		nx, ny := x+off[0], y+off[1]
		switch e.Edge {
		case EdgeToroidal:
			nx, ny = g.cells.Wrap(nx, ny)
		case EdgeBounded:
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
		default:
			if nx < 0 || nx >= w-1 || ny < 0 || ny >= h-1 {
				continue
			}
		}
		if State(cells[g.cells.Index(nx, ny)]) == Alive {
			n++
		}
	}
	return n
}

// next returns the state (x, y) moves to and whether it differs from cur.
func (e *Engine) next(g *Grid, x, y int, cur State) (State, bool) {
	switch cur {
	case Dead:
		if e.LiveNeighbors(g, x, y) == 3 {
			return Alive, true
		}
	case Alive:
		if n := e.LiveNeighbors(g, x, y); n < 2 || n > 3 {
			return Dead, true
		}
	}
	return cur, false
}

func (e *Engine) collect(g *Grid, y0, y1 int, out []Change) []Change {
	cells := g.cells.Cells()
	for y := y0; y < y1; y++ {
		for x := 0; x < g.Width(); x++ {
			cur := State(cells[g.cells.Index(x, y)])
			if cur == Frozen {
				continue
			}
			if s, changed := e.next(g, x, y, cur); changed {
				out = append(out, Change{X: x, Y: y, State: s})
			}
		}
	}
	return out
}

// Changes scans every cell against the grid as it stands and returns the
// transitions for the next generation in row-major order. The grid is only
// read.
func (e *Engine) Changes(g *Grid) []Change {
	h := g.Height()
	workers := e.Workers
	if workers > h {
		workers = h
	}
	if workers <= 1 {
		return e.collect(g, 0, h, nil)
	}

	var (
		eg    errgroup.Group
		rows  = (h + workers - 1) / workers
		bands = make([][]Change, workers)
	)
	for i := range bands {
		y0 := i * rows
		y1 := min(y0+rows, h)
		if y0 >= h {
			break
		}
		eg.Go(func() error {
			bands[i] = e.collect(g, y0, y1, nil)
			return nil
		})
	}
	_ = eg.Wait() // band workers never fail

	total := 0
	for _, b := range bands {
		total += len(b)
	}
	out := make([]Change, 0, total)
	for _, b := range bands {
		out = append(out, b...)
	}
	return out
}

// Apply writes a batch of changes produced by Changes.
func Apply(g *Grid, changes []Change) {
	cells := g.cells.Cells()
	for _, c := range changes {
		cells[g.cells.Index(c.X, c.Y)] = uint8(c.State)
	}
}

// Step advances g by one generation in place and returns how many cells
// changed. Every neighbor count is taken before the first write.
func (e *Engine) Step(g *Grid) int {
	changes := e.Changes(g)
	Apply(g, changes)
	return len(changes)
}

// CountedMask marks with 1 every cell whose state can contribute to a
// neighbor count under the policy.
func (e *Engine) CountedMask(g *Grid) []uint8 {
	w, h := g.Width(), g.Height()
	mask := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if e.Edge == EdgeClipped && (x >= w-1 || y >= h-1) {
				continue
			}
			mask[y*w+x] = 1
		}
	}
	return mask
}
