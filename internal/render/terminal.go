package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"mad-life/internal/core"
)

const (
	cellOn  = "██"
	cellOff = "  "

	ansiHomeClear = "\x1b[H\x1b[2J"
)

// Terminal draws frames as text, two characters per cell.
type Terminal struct {
	out io.Writer
	buf bytes.Buffer

	// FlipY draws row 0 at the bottom.
	FlipY bool
	// Clear homes the cursor and clears the screen before each frame.
	Clear bool
}

// NewTerminal returns a renderer writing to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

// Render writes the sim's current cells followed by a status line.
func (t *Terminal) Render(frame int, sim core.Sim) error {
	size := sim.Size()
	cells := sim.Cells()
	if len(cells) != size.W*size.H {
		return errors.Errorf("render: %d cells for a %dx%d grid", len(cells), size.W, size.H)
	}

	t.buf.Reset()
	if t.Clear {
		t.buf.WriteString(ansiHomeClear)
	}
	for row := 0; row < size.H; row++ {
		y := row
		if t.FlipY {
			y = size.H - 1 - row
		}
		for _, c := range cells[y*size.W : (y+1)*size.W] {
			if c != 0 {
				t.buf.WriteString(cellOn)
			} else {
				t.buf.WriteString(cellOff)
			}
		}
		t.buf.WriteByte('\n')
	}
	fmt.Fprintf(&t.buf, "%s  frame %d\n", sim.Name(), frame)

	_, err := t.out.Write(t.buf.Bytes())
	return errors.Wrap(err, "render: write frame")
}
