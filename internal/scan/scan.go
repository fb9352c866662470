// Package scan sweeps a solver across a grid of starting points and
// tallies where each run lands.
package scan

import (
	"math"
	"sort"
	"sync"

	"github.com/san-kum/rootlab/dual"
	"github.com/san-kum/rootlab/scalar"
	"github.com/san-kum/rootlab/solve"
)

// Outcome records where a single start ended up. Root is meaningless
// when Err is non-nil.
type Outcome struct {
	X0   float64
	Root float64
	Err  error
}

// Grid returns n evenly spaced points from lo to hi inclusive.
func Grid(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	pts := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range pts {
		pts[i] = lo + float64(i)*step
	}
	pts[n-1] = hi
	return pts
}

// Run iterates every start for the same number of steps, one goroutine
// per start. Each goroutine gets its own solver; the stepper itself is
// stateless and shared. Outcomes keep the order of starts, and a failed
// start records its error instead of aborting the sweep.
func Run(stepper solve.Stepper[scalar.Float64], f dual.Func[dual.Nested[scalar.Float64]], starts []float64, steps int) []Outcome {
	outcomes := make([]Outcome, len(starts))

	var wg sync.WaitGroup
	for i := range starts {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			s := solve.New(stepper)
			root, err := s.Run(f, scalar.Float64(starts[idx]), steps)
			outcomes[idx] = Outcome{X0: starts[idx], Root: float64(root), Err: err}
		}(i)
	}
	wg.Wait()

	return outcomes
}

// Tally summarizes a sweep.
type Tally struct {
	Converged int
	Failed    int
	Roots     []float64
}

// TallyOutcomes counts successes and failures and collects the distinct
// roots reached, merging values within tol of a root already seen. Roots
// come back sorted.
func TallyOutcomes(outcomes []Outcome, tol float64) Tally {
	var t Tally
	for _, o := range outcomes {
		if o.Err != nil {
			t.Failed++
			continue
		}
		t.Converged++
		known := false
		for _, r := range t.Roots {
			if math.Abs(o.Root-r) <= tol {
				known = true
				break
			}
		}
		if !known {
			t.Roots = append(t.Roots, o.Root)
		}
	}
	sort.Float64s(t.Roots)
	return t
}
