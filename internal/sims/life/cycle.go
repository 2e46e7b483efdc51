package life

import "crypto/md5"

// Cycle describes a repeating sequence of generations.
type Cycle struct {
	// Start is the first generation that belongs to the cycle.
	Start int
	// Period is the number of ticks between repeats; 1 for a still life.
	Period int
}

// DetectCycle steps g with e until a generation repeats or maxSteps ticks
// have run. g is advanced in place. The second result is false when no
// repeat was seen.
func DetectCycle(g *Grid, e *Engine, maxSteps int) (Cycle, bool) {
	seen := map[[md5.Size]byte]int{g.Hash(): 0}
	for gen := 1; gen <= maxSteps; gen++ {
		e.Step(g)
		h := g.Hash()
		if first, ok := seen[h]; ok {
			return Cycle{Start: first, Period: gen - first}, true
		}
		seen[h] = gen
	}
	return Cycle{}, false
}
