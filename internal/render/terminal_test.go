package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"mad-life/internal/core"
)

type stubSim struct {
	size  core.Size
	cells []uint8
}

func (s *stubSim) Name() string { return "stub" }
func (s *stubSim) Size() core.Size { return s.size }
func (s *stubSim) Reset(int64) {}
func (s *stubSim) Step() {}
func (s *stubSim) Cells() []uint8 { return s.cells }

func TestTerminalRender(t *testing.T) {
	sim := &stubSim{size: core.Size{W: 2, H: 2}, cells: []uint8{1, 0, 0, 2}}

	var out bytes.Buffer
	term := NewTerminal(&out)
	if err := term.Render(3, sim); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := cellOn + cellOff + "\n" + cellOff + cellOn + "\n" + "stub  frame 3\n"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}

	out.Reset()
	term.FlipY = true
	term.Clear = true
	if err := term.Render(4, sim); err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := out.String()
	if !strings.HasPrefix(got, ansiHomeClear+cellOff+cellOn+"\n") {
		t.Fatalf("flipped frame should start with the last row, got %q", got)
	}
}

type failingWriter struct{}

var errClosed = errors.New("closed")

func (failingWriter) Write([]byte) (int, error) { return 0, errClosed }

func TestTerminalRenderErrors(t *testing.T) {
	term := NewTerminal(failingWriter{})
	sim := &stubSim{size: core.Size{W: 1, H: 1}, cells: []uint8{0}}
	if err := term.Render(0, sim); !errors.Is(err, errClosed) {
		t.Fatalf("err = %v, want wrapped errClosed", err)
	}
	sim.cells = nil
	if err := term.Render(0, sim); err == nil {
		t.Fatal("mismatched cell count should fail")
	}
}
