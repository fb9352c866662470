// Package batch runs scripted solver jobs loaded from YAML.
package batch

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/rootlab/dual"
	"github.com/san-kum/rootlab/internal/config"
	"github.com/san-kum/rootlab/internal/funcs"
	"github.com/san-kum/rootlab/internal/store"
	"github.com/san-kum/rootlab/internal/trace"
	"github.com/san-kum/rootlab/scalar"
	"github.com/san-kum/rootlab/solve"
)

// Job describes a single solver run.
type Job struct {
	Name     string `yaml:"name"`
	Function string `yaml:"function"`
	Method   string `yaml:"method"`
	X0       string `yaml:"x0"`
	Steps    int    `yaml:"steps"`
	Backend  string `yaml:"backend"`
	Prec     uint   `yaml:"prec"`
	Save     bool   `yaml:"save"`
}

// Script is a named sequence of jobs.
type Script struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Jobs        []Job  `yaml:"jobs"`
}

// LoadScript loads a script from a YAML file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, err
	}

	return &script, nil
}

// Result holds one job's trace and outcome. Err carries a numeric
// failure (divergence, singular slope, domain error); the trace then
// covers the iterates before the failing step. Job comes back with
// defaults filled in.
type Result struct {
	Job     Job
	RunID   string
	Points  []trace.Point
	Summary trace.Summary
	Err     error
}

// Run executes a single job. Configuration problems (unknown function or
// method, bad starting point, bad step count) come back as an error; a
// solver failure comes back inside the Result.
func Run(job Job) (*Result, error) {
	if job.Steps < 0 {
		return nil, fmt.Errorf("job %s: negative steps %d", job.Name, job.Steps)
	}
	if job.Method == "" {
		job.Method = config.DefaultMethod
	}
	if job.X0 == "" {
		entry, err := funcs.Find(job.Function)
		if err != nil {
			return nil, err
		}
		job.X0 = entry.X0
	}

	switch job.Backend {
	case "", "float64":
		job.Backend = "float64"
		job.Prec = 0
		x0, err := scalar.ParseFloat64(job.X0)
		if err != nil {
			return nil, fmt.Errorf("job %s: %w", job.Name, err)
		}
		return runTyped(job, x0)
	case "big":
		if job.Prec == 0 {
			job.Prec = config.DefaultPrec
		}
		x0, err := scalar.ParseBig(job.X0, job.Prec)
		if err != nil {
			return nil, fmt.Errorf("job %s: %w", job.Name, err)
		}
		return runTyped(job, x0)
	}
	return nil, fmt.Errorf("job %s: unknown backend %q", job.Name, job.Backend)
}

func runTyped[T scalar.Real[T]](job Job, x0 T) (*Result, error) {
	f, err := funcs.Lookup[dual.Nested[T]](job.Function)
	if err != nil {
		return nil, err
	}
	stepper, err := solve.Lookup[T](job.Method)
	if err != nil {
		return nil, err
	}

	rec := trace.NewRecorder[T]()
	solver := solve.New(stepper)
	solver.AddObserver(rec)

	res := &Result{Job: job}
	if _, err := solver.Run(f, x0, job.Steps); err != nil {
		res.Err = err
	}
	res.Points = rec.Points()
	res.Summary = trace.Summarize(res.Points)
	return res, nil
}

// Metadata reshapes a finished result for the run store.
func Metadata(res *Result) store.RunMetadata {
	return store.RunMetadata{
		Function:   res.Job.Function,
		Method:     res.Job.Method,
		Backend:    res.Job.Backend,
		Prec:       res.Job.Prec,
		X0:         res.Job.X0,
		Steps:      res.Job.Steps,
		Root:       res.Summary.FinalX,
		FinalLog10: res.Summary.FinalLog10,
		Order:      res.Summary.Order,
	}
}

// RunScript executes every job in order, reporting progress to w. A job
// that fails numerically is reported and the script moves on; a
// configuration error aborts and returns the results so far.
func RunScript(script *Script, st *store.Store, w io.Writer) ([]Result, error) {
	results := make([]Result, 0, len(script.Jobs))

	for i, job := range script.Jobs {
		name := job.Name
		if name == "" {
			name = job.Function
		}
		fmt.Fprintf(w, "job %d/%d: %s\n", i+1, len(script.Jobs), name)

		res, err := Run(job)
		if err != nil {
			return results, fmt.Errorf("job %d: %w", i+1, err)
		}

		if res.Err != nil {
			fmt.Fprintf(w, "  failed: %v\n", res.Err)
		} else {
			fmt.Fprintf(w, "  root %s after %d steps\n", res.Summary.FinalX, res.Summary.Steps)
			if res.Job.Save && st != nil {
				runID, err := st.Save(Metadata(res), res.Points)
				if err != nil {
					return results, fmt.Errorf("job %d save: %w", i+1, err)
				}
				res.RunID = runID
				fmt.Fprintf(w, "  saved as %s\n", runID)
			}
		}

		results = append(results, *res)
	}

	return results, nil
}
