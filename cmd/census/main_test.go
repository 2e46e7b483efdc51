package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"mad-life/internal/sims/life"
)

func TestRunCensus(t *testing.T) {
	sc := scenario{width: 50, height: 25, edge: life.EdgeClipped, steps: 40}
	results, err := runCensus(sc, []string{"block", "blinker", "pentadecathlon", "wall"}, 2)
	if err != nil {
		t.Fatalf("runCensus: %v", err)
	}
	want := []struct {
		name   string
		pop    int
		period int
	}{
		{"block", 4, 1},
		{"blinker", 3, 2},
		{"pentadecathlon", 12, 15},
		{"wall", 6, 2},
	}
	for i, w := range want {
		r := results[i]
		if r.pattern != w.name || r.population != w.pop || !r.found || r.cycle.Period != w.period {
			t.Fatalf("result %d = %+v, want %s pop %d period %d", i, r, w.name, w.pop, w.period)
		}
	}
}

func TestRunCensusReportsBadPatterns(t *testing.T) {
	sc := scenario{width: 10, height: 10, steps: 5}
	if _, err := runCensus(sc, []string{"block", "spaceship"}, 0); !errors.Is(err, life.ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
	if _, err := runCensus(sc, []string{"nope"}, 1); !errors.Is(err, life.ErrUnknownPattern) {
		t.Fatalf("err = %v, want ErrUnknownPattern", err)
	}
}

func TestPrintResults(t *testing.T) {
	var buf bytes.Buffer
	err := printResults(&buf, []censusResult{
		{pattern: "block", population: 4, final: 4, cycle: life.Cycle{Period: 1}, found: true},
		{pattern: "glider", population: 5, final: 5},
	})
	if err != nil {
		t.Fatalf("printResults: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if got := strings.Fields(lines[2]); len(got) != 5 || got[3] != "-" {
		t.Fatalf("unfinished cycle row = %q", lines[2])
	}
}
