package life

import (
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/pkg/errors"
)

// Dump writes the grid as a table of state codes with column indices across
// the top and row indices down the left side. It is meant for debugging and
// is not used by the animation loop.
func (g *Grid) Dump(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	line := make([]byte, 0, 4*(g.Width()+1))

	line = append(line, '\t')
	for x := 0; x < g.Width(); x++ {
		line = strconv.AppendInt(line, int64(x), 10)
		line = append(line, '\t')
	}
	line = append(line, '\n')
	if _, err := tw.Write(line); err != nil {
		return errors.Wrap(err, "write dump header")
	}

	for y := 0; y < g.Height(); y++ {
		line = line[:0]
		line = strconv.AppendInt(line, int64(y), 10)
		line = append(line, '\t')
		for _, c := range g.cells.Row(y) {
			line = strconv.AppendUint(line, uint64(c), 10)
			line = append(line, '\t')
		}
		line = append(line, '\n')
		if _, err := tw.Write(line); err != nil {
			return errors.Wrapf(err, "write dump row %d", y)
		}
	}
	return errors.Wrap(tw.Flush(), "flush dump")
}
