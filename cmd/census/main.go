package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"mad-life/internal/sims/life"
)

type scenario struct {
	width, height int
	edge          life.EdgePolicy
	steps         int
}

type censusResult struct {
	pattern    string
	population int
	final      int
	cycle      life.Cycle
	found      bool
}

func main() {
	steps := flag.Int("steps", 300, "ticks to simulate per pattern")
	workers := flag.Int("workers", runtime.NumCPU(), "patterns evaluated in parallel")
	width := flag.Int("w", 50, "grid width")
	height := flag.Int("h", 25, "grid height")
	edge := flag.String("edge", "clipped", "edge policy (clipped, bounded, torus)")
	names := flag.String("patterns", strings.Join(life.PatternNames(), ","), "patterns to evaluate")
	flag.Parse()

	policy, err := life.ParseEdgePolicy(*edge)
	if err != nil {
		log.Fatal(err)
	}
	sc := scenario{width: *width, height: *height, edge: policy, steps: *steps}

	var list []string
	for _, name := range strings.Split(*names, ",") {
		if name = strings.TrimSpace(name); name != "" {
			list = append(list, name)
		}
	}

	fmt.Printf("Census of %d patterns on %dx%d (%v edges, %d steps, %d workers)\n",
		len(list), sc.width, sc.height, sc.edge, sc.steps, *workers)
	results, err := runCensus(sc, list, *workers)
	if err != nil {
		log.Fatal(err)
	}
	if err := printResults(os.Stdout, results); err != nil {
		log.Fatal(err)
	}
}

// runCensus evaluates every pattern on its own grid. Results keep the order
// of names.
func runCensus(sc scenario, names []string, workers int) ([]censusResult, error) {
	results := make([]censusResult, len(names))
	var eg errgroup.Group
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, name := range names {
		eg.Go(func() error {
			res, err := runPattern(sc, name)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runPattern(sc scenario, name string) (censusResult, error) {
	p, err := life.Lookup(name)
	if err != nil {
		return censusResult{}, err
	}
	g, err := life.NewGrid(sc.width, sc.height)
	if err != nil {
		return censusResult{}, err
	}
	if err := p.Apply(g); err != nil {
		return censusResult{}, errors.Wrapf(err, "census %s", name)
	}
	res := censusResult{pattern: name, population: g.Population()}
	res.cycle, res.found = life.DetectCycle(g, &life.Engine{Edge: sc.edge}, sc.steps)
	res.final = g.Population()
	return res, nil
}

func printResults(out io.Writer, results []censusResult) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PATTERN\tSTART POP\tEND POP\tCYCLE START\tPERIOD")
	for _, r := range results {
		if !r.found {
			fmt.Fprintf(tw, "%s\t%d\t%d\t-\t-\n", r.pattern, r.population, r.final)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", r.pattern, r.population, r.final, r.cycle.Start, r.cycle.Period)
	}
	return errors.Wrap(tw.Flush(), "write census")
}
