package life

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"
)

func mustGrid(t *testing.T, w, h int, alive ...Point) *Grid {
	t.Helper()
	g, err := NewGrid(w, h)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", w, h, err)
	}
	if err := g.Seed(alive); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return g
}

func TestNewGridRejectsNonPositiveSize(t *testing.T) {
	cases := []struct{ w, h int }{{0, 5}, {5, 0}, {-1, 3}, {3, -2}, {0, 0}}
	for _, tc := range cases {
		if _, err := NewGrid(tc.w, tc.h); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("NewGrid(%d, %d) err = %v, want ErrInvalidSize", tc.w, tc.h, err)
		}
	}
}

func TestNewGridStartsDead(t *testing.T) {
	g := mustGrid(t, 4, 3)
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", g.Width(), g.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if s := g.Get(x, y); s != Dead {
				t.Fatalf("cell (%d,%d) = %v, want dead", x, y, s)
			}
		}
	}
}

func TestSeedOutOfBoundsLeavesGridUntouched(t *testing.T) {
	g := mustGrid(t, 5, 5)
	err := g.Seed([]Point{{1, 1}, {5, 2}})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
	if !strings.Contains(err.Error(), "(5,2)") {
		t.Fatalf("error %q does not name the coordinate", err)
	}
	if g.Population() != 0 {
		t.Fatal("failed seed must not write any cell")
	}
	if err := g.Freeze([]Point{{0, -1}}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Freeze err = %v, want ErrOutOfBounds", err)
	}
}

func TestGetPanicsOutOfBounds(t *testing.T) {
	g := mustGrid(t, 3, 3)
	defer func() {
		if recover() == nil {
			t.Fatal("Get outside the grid must panic")
		}
	}()
	g.Get(3, 0)
}

func TestRenderBufferShapeAndCodes(t *testing.T) {
	g := mustGrid(t, 4, 2, Point{1, 0})
	g.Set(3, 1, Frozen)

	buf := g.RenderBuffer()
	want := [][]uint8{
		{0, 1, 0, 0},
		{0, 0, 0, 2},
	}
	if len(buf) != len(want) {
		t.Fatalf("rows = %d, want %d", len(buf), len(want))
	}
	for y := range want {
		if !slices.Equal(buf[y], want[y]) {
			t.Fatalf("row %d = %v, want %v", y, buf[y], want[y])
		}
	}

	// The buffer is a copy.
	buf[0][0] = 1
	if g.Get(0, 0) != Dead {
		t.Fatal("RenderBuffer must not alias the grid")
	}
}

func TestCloneEqualAndHash(t *testing.T) {
	g := mustGrid(t, 6, 6, Point{1, 1}, Point{2, 2})
	c := g.Clone()
	if !g.Equal(c) || g.Hash() != c.Hash() {
		t.Fatal("clone must equal the original")
	}
	c.Set(0, 0, Alive)
	if g.Equal(c) || g.Hash() == c.Hash() {
		t.Fatal("clone must be independent")
	}
	other := mustGrid(t, 6, 5)
	if other.Equal(mustGrid(t, 6, 6)) {
		t.Fatal("grids of different size must differ")
	}
}

func TestDumpListsRowsAndColumns(t *testing.T) {
	g := mustGrid(t, 3, 2, Point{2, 0})
	g.Set(0, 1, Frozen)

	var buf bytes.Buffer
	if err := g.Dump(&buf); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows:\n%s", len(lines), buf.String())
	}
	want := [][]string{
		{"0", "1", "2"},
		{"0", "0", "0", "1"},
		{"1", "2", "0", "0"},
	}
	for i, line := range lines {
		if got := strings.Fields(line); !slices.Equal(got, want[i]) {
			t.Fatalf("line %d = %q, want fields %v", i, line, want[i])
		}
	}
}
