package life

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"mad-life/internal/core"
)

// State is the value held by a single cell.
type State uint8

const (
	// Dead cells are off and may be born.
	Dead State = iota
	// Alive cells count as neighbors and follow the survival rule.
	Alive
	// Frozen cells are drawn like live ones but never evolve and are never
	// counted as neighbors.
	Frozen
)

func (s State) String() string {
	switch s {
	case Dead:
		return "dead"
	case Alive:
		return "alive"
	case Frozen:
		return "frozen"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

var (
	// ErrInvalidSize reports non-positive grid dimensions.
	ErrInvalidSize = errors.New("grid dimensions must be positive")
	// ErrOutOfBounds reports a seed coordinate outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// Point is a (column, row) coordinate.
type Point struct {
	X, Y int
}

// Grid holds one generation of cell states. Its dimensions are fixed at
// construction; the backing buffer doubles as the render buffer since the
// state values are the category codes the palette is indexed by.
type Grid struct {
	cells *core.ByteGrid
}

// NewGrid returns a grid of the given size with every cell dead.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "got %dx%d", width, height)
	}
	return &Grid{cells: core.NewByteGrid(width, height)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.cells.W }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.cells.H }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.cells.W, H: g.cells.H} }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool { return g.cells.Contains(x, y) }

// Get returns the state at column x, row y. It panics when the coordinate
// lies outside the grid.
func (g *Grid) Get(x, y int) State {
	g.mustContain(x, y)
	return State(g.cells.Cells()[g.cells.Index(x, y)])
}

// Set overwrites the state at column x, row y. It panics when the coordinate
// lies outside the grid.
func (g *Grid) Set(x, y int, s State) {
	g.mustContain(x, y)
	g.cells.Cells()[g.cells.Index(x, y)] = uint8(s)
}

func (g *Grid) mustContain(x, y int) {
	if !g.cells.Contains(x, y) {
		panic(fmt.Sprintf("life: cell (%d,%d) outside %dx%d grid", x, y, g.cells.W, g.cells.H))
	}
}

// Seed marks every point alive. All points are validated before any cell is
// written, so a failed call leaves the grid untouched.
func (g *Grid) Seed(points []Point) error {
	return g.fill(points, Alive)
}

// Freeze marks every point frozen with the same validation as Seed.
func (g *Grid) Freeze(points []Point) error {
	return g.fill(points, Frozen)
}

func (g *Grid) fill(points []Point, s State) error {
	for _, p := range points {
		if !g.cells.Contains(p.X, p.Y) {
			return errors.Wrapf(ErrOutOfBounds, "(%d,%d) on %dx%d grid", p.X, p.Y, g.cells.W, g.cells.H)
		}
	}
	cells := g.cells.Cells()
	for _, p := range points {
		cells[g.cells.Index(p.X, p.Y)] = uint8(s)
	}
	return nil
}

// Clear kills every cell, frozen ones included.
func (g *Grid) Clear() { g.cells.Clear() }

// Cells exposes the row-major state codes. Callers must not write to it.
func (g *Grid) Cells() []uint8 { return g.cells.Cells() }

// RenderBuffer returns a copy of the state codes shaped height rows by width
// columns: 0 off, 1 alive, 2 frozen.
func (g *Grid) RenderBuffer() [][]uint8 {
	out := make([][]uint8, g.cells.H)
	for y := range out {
		out[y] = append([]uint8(nil), g.cells.Row(y)...)
	}
	return out
}

// Population counts the alive cells. Frozen cells are not included.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells.Cells() {
		if State(c) == Alive {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := core.NewByteGrid(g.cells.W, g.cells.H)
	copy(c.Cells(), g.cells.Cells())
	return &Grid{cells: c}
}

// Equal reports whether both grids have the same size and states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.cells.W != other.cells.W || g.cells.H != other.cells.H {
		return false
	}
	a, b := g.cells.Cells(), other.cells.Cells()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Hash fingerprints the current generation for cycle detection.
func (g *Grid) Hash() [md5.Size]byte {
	return md5.Sum(g.cells.Cells())
}

// Points lists the coordinates holding state s in row-major order.
func (g *Grid) Points(s State) []Point {
	var pts []Point
	for y := 0; y < g.cells.H; y++ {
		for x, c := range g.cells.Row(y) {
			if State(c) == s {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}
	return pts
}
