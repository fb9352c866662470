package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/rootlab/dual"
	"github.com/san-kum/rootlab/internal/batch"
	"github.com/san-kum/rootlab/internal/config"
	"github.com/san-kum/rootlab/internal/export"
	"github.com/san-kum/rootlab/internal/funcs"
	"github.com/san-kum/rootlab/internal/scan"
	"github.com/san-kum/rootlab/internal/store"
	"github.com/san-kum/rootlab/internal/trace"
	"github.com/san-kum/rootlab/internal/viz"
	"github.com/san-kum/rootlab/scalar"
	"github.com/san-kum/rootlab/solve"
)

var (
	dataDir string

	method  string
	x0      string
	steps   int
	backend string
	prec    uint
	save    bool

	configFile string
	preset     string

	fromX    float64
	toX      float64
	gridN    int
	svgPath  string
	svgScale float64
	outPath  string
)

// main registers the rootlab commands and executes the root command. With
// no subcommand it opens the interactive explorer. Exits with status 1
// when command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "rootlab",
		Short: "root-finding lab with exact derivatives",
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the interactive explorer when no command given
			viz.RunLive("", "", "")
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".rootlab", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve [function]",
		Short: "run the iteration for a fixed number of steps",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	solveCmd.Flags().StringVar(&method, "method", config.DefaultMethod, "stepper (cubic, halley, newton)")
	solveCmd.Flags().StringVar(&x0, "x0", "", "starting point (default: function x0)")
	solveCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	solveCmd.Flags().StringVar(&backend, "backend", config.DefaultBackend, "scalar backend (float64, big)")
	solveCmd.Flags().UintVar(&prec, "prec", config.DefaultPrec, "mantissa bits (big backend)")
	solveCmd.Flags().BoolVar(&save, "save", false, "save the run")
	solveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	solveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	derivCmd := &cobra.Command{
		Use:   "deriv [function]",
		Short: "evaluate f, f' and f'' at a point",
		Args:  cobra.ExactArgs(1),
		RunE:  runDeriv,
	}
	derivCmd.Flags().StringVar(&x0, "x0", "", "evaluation point (default: function x0)")
	derivCmd.Flags().StringVar(&backend, "backend", config.DefaultBackend, "scalar backend (float64, big)")
	derivCmd.Flags().UintVar(&prec, "prec", config.DefaultPrec, "mantissa bits (big backend)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run's residual history",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	curveCmd := &cobra.Command{
		Use:   "curve [function]",
		Short: "draw the function with the iteration path",
		Args:  cobra.ExactArgs(1),
		RunE:  runCurve,
	}
	curveCmd.Flags().StringVar(&method, "method", config.DefaultMethod, "stepper (cubic, halley, newton)")
	curveCmd.Flags().StringVar(&x0, "x0", "", "starting point (default: function x0)")
	curveCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	curveCmd.Flags().Float64Var(&fromX, "from", 0, "left edge (default: x0 - 2)")
	curveCmd.Flags().Float64Var(&toX, "to", 0, "right edge (default: x0 + 2)")
	curveCmd.Flags().StringVar(&svgPath, "svg", "", "also write the canvas as svg")
	curveCmd.Flags().Float64Var(&svgScale, "scale", 4, "svg dot pitch")

	scanCmd := &cobra.Command{
		Use:   "scan [function]",
		Short: "sweep starting points over a grid",
		Args:  cobra.ExactArgs(1),
		RunE:  runScan,
	}
	scanCmd.Flags().StringVar(&method, "method", config.DefaultMethod, "stepper (cubic, halley, newton)")
	scanCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps per start")
	scanCmd.Flags().Float64Var(&fromX, "from", 0, "grid start (default: x0 - 2)")
	scanCmd.Flags().Float64Var(&toX, "to", 0, "grid end (default: x0 + 2)")
	scanCmd.Flags().IntVar(&gridN, "points", 21, "number of grid points")

	sweepCmd := &cobra.Command{
		Use:   "sweep [family]",
		Short: "sweep a family parameter and track the root",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&method, "method", config.DefaultMethod, "stepper (cubic, halley, newton)")
	sweepCmd.Flags().StringVar(&x0, "x0", "", "starting point (default: family x0)")
	sweepCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps per value")
	sweepCmd.Flags().Float64Var(&fromX, "from", 0, "parameter start (default: family range)")
	sweepCmd.Flags().Float64Var(&toX, "to", 0, "parameter end (default: family range)")
	sweepCmd.Flags().IntVar(&gridN, "points", 21, "number of parameter values")

	compareCmd := &cobra.Command{
		Use:   "compare [function] [method1] [method2] ...",
		Short: "compare steppers on the same function",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runCompare,
	}
	compareCmd.Flags().StringVar(&x0, "x0", "", "starting point (default: function x0)")
	compareCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	compareCmd.Flags().StringVar(&backend, "backend", config.DefaultBackend, "scalar backend (float64, big)")
	compareCmd.Flags().UintVar(&prec, "prec", config.DefaultPrec, "mantissa bits (big backend)")

	benchCmd := &cobra.Command{
		Use:   "bench [function]",
		Short: "time the big backend across precisions",
		Args:  cobra.ExactArgs(1),
		RunE:  benchFunction,
	}
	benchCmd.Flags().StringVar(&method, "method", config.DefaultMethod, "stepper (cubic, halley, newton)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&outPath, "out", "", "write json to a file instead of stdout")
	exportCmd.Flags().StringVar(&svgPath, "svg", "", "write the residual history as svg")

	batchCmd := &cobra.Command{
		Use:   "batch [script]",
		Short: "run a yaml script of jobs",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	liveCmd := &cobra.Command{
		Use:   "live [function]",
		Short: "step through the iteration interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fname := ""
			if len(args) > 0 {
				fname = args[0]
			}
			return viz.RunLive(fname, method, x0)
		},
	}
	liveCmd.Flags().StringVar(&method, "method", config.DefaultMethod, "stepper (cubic, halley, newton)")
	liveCmd.Flags().StringVar(&x0, "x0", "", "starting point (default: function x0)")

	presetsCmd := &cobra.Command{
		Use:   "presets [function]",
		Short: "list available presets for a function",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for function: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	funcsCmd := &cobra.Command{
		Use:   "funcs",
		Short: "list the function catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tF(X)\tX0")
			for _, e := range funcs.Catalog() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Desc, e.X0)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Println()
			w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FAMILY\tF(X)\tPARAM\tRANGE\tX0")
			for _, f := range funcs.Families() {
				fmt.Fprintf(w, "%s\t%s\t%s\t[%g, %g]\t%s\n", f.Name, f.Desc, f.Param, f.Lo, f.Hi, f.X0)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(solveCmd, derivCmd, listCmd, plotCmd, curveCmd, scanCmd, sweepCmd, compareCmd, benchCmd, exportCmd, batchCmd, liveCmd, presetsCmd, funcsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	function := args[0]

	// Load preset if specified
	if preset != "" {
		cfg := config.GetPreset(function, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(function))
		}
		method = cfg.Method
		steps = cfg.Steps
		backend = cfg.Backend
		prec = cfg.Prec
		x0 = cfg.X0
	}

	// Load config file if specified (CLI flags override config)
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("method") {
			method = cfg.Method
		}
		if !cmd.Flags().Changed("steps") {
			steps = cfg.Steps
		}
		if !cmd.Flags().Changed("backend") {
			backend = cfg.Backend
		}
		if !cmd.Flags().Changed("prec") {
			prec = cfg.Prec
		}
		if !cmd.Flags().Changed("x0") {
			x0 = cfg.X0
		}
	}

	job := batch.Job{
		Function: function,
		Method:   method,
		X0:       x0,
		Steps:    steps,
		Backend:  backend,
		Prec:     prec,
	}

	start := time.Now()
	res, err := batch.Run(job)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	desc := res.Job.Backend
	if desc == "big" {
		desc = fmt.Sprintf("big/%d", res.Job.Prec)
	}
	fmt.Printf("solving %s with %s (%s) from x0 = %s\n\n", function, res.Job.Method, desc, res.Job.X0)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tX\tF(X)\tLOG10|F|")
	for _, p := range res.Points {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\n", p.Step, clip(p.X, 44), clip(p.F, 20), p.Log10)
	}
	w.Flush()

	if res.Err != nil {
		return res.Err
	}

	fmt.Printf("\nroot: %s\n", res.Summary.FinalX)
	fmt.Printf("final residual: log10 |f| = %.2f\n", res.Summary.FinalLog10)
	if res.Summary.Order > 0 {
		fmt.Printf("order estimate: %.2f\n", res.Summary.Order)
	}
	fmt.Printf("completed in %v\n", elapsed)

	if save {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(batch.Metadata(res), res.Points)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	return nil
}

func runDeriv(cmd *cobra.Command, args []string) error {
	function := args[0]

	at := x0
	if at == "" {
		entry, err := funcs.Find(function)
		if err != nil {
			return err
		}
		at = entry.X0
	}

	switch backend {
	case "", "float64":
		x, err := scalar.ParseFloat64(at)
		if err != nil {
			return err
		}
		fmt.Printf("%s at x = %s (float64)\n\n", function, at)
		return derivTyped(function, x)
	case "big":
		x, err := scalar.ParseBig(at, prec)
		if err != nil {
			return err
		}
		fmt.Printf("%s at x = %s (big, %d bits)\n\n", function, at, prec)
		return derivTyped(function, x)
	}
	return fmt.Errorf("unknown backend %q", backend)
}

func derivTyped[T scalar.Real[T]](function string, x T) error {
	g, err := funcs.Lookup[dual.Number[T]](function)
	if err != nil {
		return err
	}
	h, err := funcs.Lookup[dual.Nested[T]](function)
	if err != nil {
		return err
	}

	fx, err := dual.Eval(g, x)
	if err != nil {
		return err
	}
	fx1, err := dual.Derivative(g, x)
	if err != nil {
		return err
	}
	fx2, err := dual.SecondDerivative(h, x)
	if err != nil {
		return err
	}

	fmt.Printf("f(x)   = %s\n", fx.String())
	fmt.Printf("f'(x)  = %s\n", fx1.String())
	fmt.Printf("f''(x) = %s\n", fx2.String())
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFUNCTION\tMETHOD\tBACKEND\tSTEPS\tTIME\tLOG10|F|\tORDER")

	for _, run := range runs {
		desc := run.Backend
		if desc == "big" {
			desc = fmt.Sprintf("big/%d", run.Prec)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%.2f\t%.2f\n",
			run.ID,
			run.Function,
			run.Method,
			desc,
			run.Steps,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.FinalLog10,
			run.Order,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	points, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("function: %s (%s, %s)\n", meta.Function, meta.Method, meta.Backend)
	fmt.Printf("samples: %d\n\n", len(points))

	if graph := viz.ResidualPlot(residualLogs(points), 70, 12, "log10 |f(x_k)| per step"); graph != "" {
		fmt.Println(graph)
	}

	if rates := trace.Rates(points); len(rates) > 0 {
		fmt.Print("\nconvergence rates: ")
		for i, r := range rates {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Printf("%.2f", r)
		}
		fmt.Println()
	}

	summary := trace.Summarize(points)
	if summary.Order > 0 {
		fmt.Printf("order estimate: %.2f\n", summary.Order)
	}
	fmt.Printf("final: x = %s, log10 |f| = %.2f\n", clip(summary.FinalX, 60), summary.FinalLog10)
	return nil
}

func runCurve(cmd *cobra.Command, args []string) error {
	function := args[0]

	entry, err := funcs.Find(function)
	if err != nil {
		return err
	}
	start := x0
	if start == "" {
		start = entry.X0
	}
	sv, err := strconv.ParseFloat(start, 64)
	if err != nil {
		return err
	}

	lo, hi := fromX, toX
	if !cmd.Flags().Changed("from") {
		lo = sv - 2
	}
	if !cmd.Flags().Changed("to") {
		hi = sv + 2
	}

	res, err := batch.Run(batch.Job{Function: function, Method: method, X0: start, Steps: steps})
	if err != nil {
		return err
	}

	xs := make([]float64, 0, len(res.Points))
	for _, p := range res.Points {
		v, err := strconv.ParseFloat(p.X, 64)
		if err != nil {
			continue
		}
		xs = append(xs, v)
	}

	g, err := funcs.Lookup[scalar.Float64](function)
	if err != nil {
		return err
	}
	plain := func(v float64) float64 { return float64(g(scalar.Float64(v))) }

	canvas := viz.NewCanvas(78, 22)
	win := viz.FitCurve(canvas, lo, hi, plain)
	win.Axes()
	win.Curve(plain)
	win.Descent(xs, plain)

	fmt.Printf("%s: %s, %s from x0 = %s\n\n", function, entry.Desc, res.Job.Method, start)
	fmt.Print(canvas.String())

	if res.Err != nil {
		fmt.Printf("\nfailed: %v\n", res.Err)
	} else {
		fmt.Printf("\nroot: %s after %d steps (log10 |f| = %.2f)\n",
			res.Summary.FinalX, res.Summary.Steps, res.Summary.FinalLog10)
	}

	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.CanvasToSVG(canvas, svgScale)), 0644); err != nil {
			return err
		}
		fmt.Printf("svg written to %s\n", svgPath)
	}
	return nil
}

func runScan(cmd *cobra.Command, args []string) error {
	function := args[0]

	entry, err := funcs.Find(function)
	if err != nil {
		return err
	}
	center, err := strconv.ParseFloat(entry.X0, 64)
	if err != nil {
		return err
	}

	lo, hi := fromX, toX
	if !cmd.Flags().Changed("from") {
		lo = center - 2
	}
	if !cmd.Flags().Changed("to") {
		hi = center + 2
	}

	f, err := funcs.Lookup[dual.Nested[scalar.Float64]](function)
	if err != nil {
		return err
	}
	stepper, err := solve.Lookup[scalar.Float64](method)
	if err != nil {
		return err
	}

	starts := scan.Grid(lo, hi, gridN)
	fmt.Printf("scanning %s over [%g, %g] with %d starts (%s, %d steps)\n\n",
		function, lo, hi, len(starts), method, steps)

	outcomes := scan.Run(stepper, f, starts, steps)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "X0\tRESULT")
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(w, "%.6g\t%v\n", o.X0, o.Err)
		} else {
			fmt.Fprintf(w, "%.6g\t%.15g\n", o.X0, o.Root)
		}
	}
	w.Flush()

	tally := scan.TallyOutcomes(outcomes, 1e-9)
	fmt.Printf("\nconverged: %d/%d\n", tally.Converged, len(outcomes))
	if len(tally.Roots) > 0 {
		fmt.Println("distinct roots:")
		for _, r := range tally.Roots {
			fmt.Printf("  %.15g\n", r)
		}
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	name := args[0]

	fam, err := funcs.FindFamily(name)
	if err != nil {
		return err
	}

	lo, hi := fromX, toX
	if !cmd.Flags().Changed("from") {
		lo = fam.Lo
	}
	if !cmd.Flags().Changed("to") {
		hi = fam.Hi
	}
	start := x0
	if start == "" {
		start = fam.X0
	}
	sv, err := scalar.ParseFloat64(start)
	if err != nil {
		return err
	}

	stepper, err := solve.Lookup[scalar.Float64](method)
	if err != nil {
		return err
	}

	params := scan.Grid(lo, hi, gridN)
	fmt.Printf("sweeping %s over %s in [%g, %g] with %d values (%s, %d steps)\n\n",
		name, fam.Param, lo, hi, len(params), method, steps)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tROOT\n", strings.ToUpper(fam.Param))

	solver := solve.New(stepper)
	var roots []float64
	for _, p := range params {
		f, err := funcs.LookupFamily[dual.Nested[scalar.Float64]](name, p)
		if err != nil {
			return err
		}
		root, err := solver.Run(f, sv, steps)
		if err != nil {
			fmt.Fprintf(w, "%.4g\t%v\n", p, err)
			continue
		}
		fmt.Fprintf(w, "%.4g\t%.15g\n", p, root.Float64())
		roots = append(roots, root.Float64())
	}
	w.Flush()

	fmt.Printf("\nconverged: %d/%d\n", len(roots), len(params))
	if chart := viz.SeriesPlot(roots, 70, 12, fmt.Sprintf("root vs %s", fam.Param)); chart != "" {
		fmt.Println("\n" + chart)
	}
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	function := args[0]
	methods := args[1:]

	fmt.Printf("comparing methods for %s (%d steps)\n\n", function, steps)
	fmt.Printf("%-10s  %-26s  %-10s  %-6s  %-10s\n", "method", "root", "log10|f|", "order", "time_ms")
	fmt.Println(strings.Repeat("-", 70))

	var series [][]float64
	var labels []string

	for _, name := range methods {
		start := time.Now()
		res, err := batch.Run(batch.Job{
			Function: function,
			Method:   name,
			X0:       x0,
			Steps:    steps,
			Backend:  backend,
			Prec:     prec,
		})
		elapsed := time.Since(start)

		if err != nil {
			fmt.Printf("%-10s  error: %v\n", name, err)
			continue
		}
		if res.Err != nil {
			fmt.Printf("%-10s  failed: %v\n", name, res.Err)
			continue
		}

		fmt.Printf("%-10s  %-26s  %10.2f  %6.2f  %10.2f\n",
			name, clip(res.Summary.FinalX, 26), res.Summary.FinalLog10,
			res.Summary.Order, float64(elapsed.Microseconds())/1000)

		series = append(series, residualLogs(res.Points))
		labels = append(labels, name)
	}

	if chart := viz.ComparePlot(series, labels, 70, 12, "log10 |f| per step"); chart != "" {
		fmt.Println("\n" + chart)
	}
	return nil
}

func benchFunction(cmd *cobra.Command, args []string) error {
	function := args[0]

	precs := []uint{128, 512, 2048}
	stepCounts := []int{4, 6, 8}

	fmt.Printf("benchmarking %s with %s on the big backend\n\n", function, method)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PREC\tSTEPS\tLOG10|F|\tTIME")

	for _, p := range precs {
		for _, s := range stepCounts {
			start := time.Now()
			res, err := batch.Run(batch.Job{
				Function: function,
				Method:   method,
				Backend:  "big",
				Prec:     p,
				Steps:    s,
			})
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			if res.Err != nil {
				fmt.Fprintf(w, "%d\t%d\tfailed: %v\t%v\n", p, s, res.Err, elapsed)
				continue
			}
			fmt.Fprintf(w, "%d\t%d\t%.2f\t%v\n", p, s, res.Summary.FinalLog10, elapsed)
		}
	}

	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	points, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}

	if svgPath != "" {
		svg := export.ResidualToSVG(points, 640, 360, string(viz.CurrentTheme.Curve))
		if svg == "" {
			return fmt.Errorf("not enough trace data for svg")
		}
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("svg written to %s\n", svgPath)
		return nil
	}

	if outPath != "" {
		if err := store.ExportJSON(outPath, meta, points); err != nil {
			return err
		}
		fmt.Printf("json written to %s\n", outPath)
		return nil
	}

	return store.ExportJSONStdout(meta, points)
}

func runBatch(cmd *cobra.Command, args []string) error {
	script, err := batch.LoadScript(args[0])
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("script: %s\n", script.Name)
	if script.Description != "" {
		fmt.Println(script.Description)
	}
	fmt.Println()

	results, err := batch.RunScript(script, st, os.Stdout)
	if err != nil {
		return err
	}

	converged := 0
	for _, res := range results {
		if res.Err == nil {
			converged++
		}
	}
	fmt.Printf("\n%d/%d jobs converged\n", converged, len(results))
	return nil
}

func residualLogs(points []trace.Point) []float64 {
	logs := make([]float64, len(points))
	for i, p := range points {
		logs[i] = p.Log10
	}
	return logs
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
