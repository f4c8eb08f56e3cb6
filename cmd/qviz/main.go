package main

import (
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/qviz/internal/bloch"
	"github.com/san-kum/qviz/internal/config"
	"github.com/san-kum/qviz/internal/curves"
	"github.com/san-kum/qviz/internal/export"
	"github.com/san-kum/qviz/internal/geom"
	"github.com/san-kum/qviz/internal/transport"
	"github.com/san-kum/qviz/internal/viz"
)

var (
	calErr     float64
	steps      int
	live       bool
	seed       int64
	tau        float64
	maxTime    float64
	points     int
	noise      float64
	alpha      float64
	stride     int
	depol      float64
	interFid   float64
	samples    int
	interleave bool
	pathName   string
	cycleSecs  float64
	outFile    string
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qviz",
		Short: "quantum-state visualization lab",
		Long:  "qviz renders Bloch-sphere pulse trajectories, benchmarking curves, and a live tweezer transport animation in the terminal.",
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	pulseCmd := &cobra.Command{
		Use:   "pulse",
		Short: "single vs composite pulse on the Bloch sphere",
		RunE:  runPulse,
	}
	pulseCmd.Flags().Float64Var(&calErr, "error", config.DefaultError, "calibration error in [-0.2, 0.2]")
	pulseCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "trajectory resolution")
	pulseCmd.Flags().BoolVar(&live, "live", false, "interactive error slider")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "endpoint deviation across the calibration-error range",
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "trajectory resolution")

	decayCmd := &cobra.Command{
		Use:   "decay",
		Short: "stretched-exponential decay series",
		RunE:  runDecay,
	}
	decayCmd.Flags().Float64Var(&tau, "tau", config.DefaultTau, "time constant")
	decayCmd.Flags().Float64Var(&maxTime, "max-time", config.DefaultMaxTime, "end of time grid")
	decayCmd.Flags().IntVar(&points, "points", config.DefaultPoints, "grid resolution")
	decayCmd.Flags().Float64Var(&noise, "noise", config.DefaultNoise, "measured-sample noise amplitude")
	decayCmd.Flags().Float64Var(&alpha, "alpha", config.DefaultAlpha, "stretching exponent")
	decayCmd.Flags().IntVar(&stride, "stride", config.DefaultStride, "measured-sample stride")
	decayCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	rbCmd := &cobra.Command{
		Use:   "rb",
		Short: "randomized benchmarking decay",
		RunE:  runRB,
	}
	rbCmd.Flags().Float64Var(&depol, "p", config.DefaultP, "depolarizing parameter")
	rbCmd.Flags().Float64Var(&interFid, "fidelity", config.DefaultInterleaved, "interleaved operation fidelity")
	rbCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "scatter draws per length")
	rbCmd.Flags().BoolVar(&interleave, "interleaved", false, "overlay the interleaved variant")
	rbCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	transportCmd := &cobra.Command{
		Use:   "transport",
		Short: "live trap handoff animation",
		RunE:  runTransport,
	}
	transportCmd.Flags().StringVar(&pathName, "path", "diagonal", "path policy: diagonal or sequential")
	transportCmd.Flags().Float64Var(&cycleSecs, "cycle", config.DefaultCycleSecs, "cycle duration in seconds")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "export the pulse scene as SVG",
		RunE:  runExportSVG,
	}
	exportSVGCmd.Flags().Float64Var(&calErr, "error", config.DefaultError, "calibration error")
	exportSVGCmd.Flags().StringVar(&outFile, "out", "pulse.svg", "output path")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [decay|rb]",
		Short: "export a chart series as CSV to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportCSV,
	}
	exportCSVCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	exportCSVCmd.Flags().BoolVar(&interleave, "interleaved", false, "interleaved rb mode")

	presetsCmd := &cobra.Command{
		Use:   "presets [view]",
		Short: "list available presets for a view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for view: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, n := range names {
				fmt.Printf("  %s\n", n)
			}
			return nil
		},
	}

	rootCmd.AddCommand(pulseCmd, sweepCmd, decayCmd, rbCmd, transportCmd, exportSVGCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers preset, then config file, then CLI flags (flags win
// only when explicitly set).
func resolveConfig(cmd *cobra.Command, view string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(view, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(view))
		}
		*cfg = *p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	apply := func(name string, fn func()) {
		if cmd.Flags().Changed(name) {
			fn()
		}
	}
	apply("error", func() { cfg.Pulse.Error = calErr })
	apply("steps", func() { cfg.Pulse.Steps = steps })
	apply("tau", func() { cfg.Decay.Tau = tau })
	apply("max-time", func() { cfg.Decay.MaxTime = maxTime })
	apply("points", func() { cfg.Decay.Points = points })
	apply("noise", func() { cfg.Decay.Noise = noise })
	apply("alpha", func() { cfg.Decay.Alpha = alpha })
	apply("stride", func() { cfg.Decay.Stride = stride })
	apply("p", func() { cfg.RB.P = depol })
	apply("fidelity", func() { cfg.RB.InterleavedFidelity = interFid })
	apply("samples", func() { cfg.RB.SamplesPerLength = samples })
	apply("interleaved", func() { cfg.RB.Interleaved = interleave })
	apply("path", func() { cfg.Transport.Path = pathName })
	apply("cycle", func() { cfg.Transport.CycleSeconds = cycleSecs })
	apply("seed", func() { cfg.Seed = seed })

	cfg.Pulse.Error = bloch.ClampError(cfg.Pulse.Error)
	return cfg, nil
}

func newRand(cfg *config.Config) *rand.Rand {
	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}

func runPulse(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "pulse")
	if err != nil {
		return err
	}

	if live {
		p := tea.NewProgram(viz.NewPulseModel(cfg.Pulse.Error))
		_, err := p.Run()
		return err
	}

	sv := viz.NewSphereView(viz.NewCanvas(64, 24))
	single, composite := sv.Render(cfg.Pulse.Error)

	fmt.Println(sv.Canvas.String())
	r := sv.Sphere.Radius
	fmt.Printf("calibration error: %+.2f\n", cfg.Pulse.Error)
	fmt.Printf("single pulse:      misses target by %.1f%% of radius\n", 100*sv.Sphere.Deviation(single)/r)
	fmt.Printf("composite pulse:   misses target by %.1f%% of radius\n", 100*sv.Sphere.Deviation(composite)/r)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "pulse")
	if err != nil {
		return err
	}

	s := bloch.NewSphere(1.0, geom.Viewport{Width: 2, Height: 2})

	const n = 21
	errs := make([]float64, n)
	floats.Span(errs, -bloch.MaxCalibrationError, bloch.MaxCalibrationError)

	singleDev := make([]float64, n)
	compositeDev := make([]float64, n)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ERROR\tSINGLE\tCOMPOSITE")
	for i, e := range errs {
		singleDev[i] = s.Deviation(s.SinglePulse(e, cfg.Pulse.Steps))
		compositeDev[i] = s.Deviation(s.CompositePulse(e, cfg.Pulse.Steps/2))
		fmt.Fprintf(w, "%+.2f\t%.4f\t%.4f\n", e, singleDev[i], compositeDev[i])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	graph := asciigraph.PlotMany(
		[][]float64{singleDev, compositeDev},
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("endpoint deviation vs calibration error (single, composite)"),
	)
	fmt.Println("\n" + graph)

	fmt.Printf("\nmean deviation: single %.4f, composite %.4f\n",
		stat.Mean(singleDev, nil), stat.Mean(compositeDev, nil))
	fmt.Printf("worst case:     single %.4f, composite %.4f\n",
		floats.Max(singleDev), floats.Max(compositeDev))
	return nil
}

func runDecay(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "decay")
	if err != nil {
		return err
	}

	dc := curves.DecayConfig{
		Tau:     cfg.Decay.Tau,
		MaxTime: cfg.Decay.MaxTime,
		Points:  cfg.Decay.Points,
		Noise:   cfg.Decay.Noise,
		Alpha:   cfg.Decay.Alpha,
		Stride:  cfg.Decay.Stride,
	}
	series := curves.GenerateDecay(dc, newRand(cfg))

	fit := make([]float64, len(series))
	measured := 0
	for i, s := range series {
		fit[i] = s.Fit
		if s.Sampled {
			measured++
		}
	}

	graph := asciigraph.Plot(fit,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("exp(-(t/%.1f)^%.1f)", dc.Tau, dc.Alpha)),
	)
	fmt.Println(graph)
	fmt.Printf("\n%d grid points, %d measured samples (stride %d, noise ±%.3f)\n",
		len(series), measured, dc.Stride, dc.Noise)
	return nil
}

func runRB(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "rb")
	if err != nil {
		return err
	}

	rc := curves.DefaultRB()
	rc.P = cfg.RB.P
	rc.InterleavedFidelity = cfg.RB.InterleavedFidelity
	rc.SamplesPerLength = cfg.RB.SamplesPerLength

	rng := newRand(cfg)
	baseline := curves.GenerateRB(rc, rng)

	series := [][]float64{fitValues(baseline)}
	caption := "rb return probability vs sequence length"

	if cfg.RB.Interleaved || interleave {
		rc.Mode = curves.RBInterleaved
		inter := curves.GenerateRB(rc, rng)
		series = append(series, fitValues(inter))
		caption = "rb: baseline vs interleaved"
	}

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)

	fmt.Printf("\nlengths: %v\n", rc.Lengths)
	fmt.Printf("reference p = %.4f", rc.P)
	if cfg.RB.Interleaved || interleave {
		fmt.Printf(", interleaved p = %.4f (operation fidelity %.4f)", rc.EffectiveP(), rc.InterleavedFidelity)
	}
	fmt.Println()
	return nil
}

func fitValues(c curves.RBCurve) []float64 {
	vals := make([]float64, len(c.Fit))
	for i, p := range c.Fit {
		vals[i] = p.Fit
	}
	return vals
}

func runTransport(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "transport")
	if err != nil {
		return err
	}

	policy := transport.PathDiagonal
	switch cfg.Transport.Path {
	case "diagonal":
	case "sequential":
		policy = transport.PathSequential
	default:
		return fmt.Errorf("unknown path policy: %s", cfg.Transport.Path)
	}

	cycle := time.Duration(cfg.Transport.CycleSeconds * float64(time.Second))
	p := tea.NewProgram(viz.NewTransportModel(policy, cycle))
	_, err = p.Run()
	return err
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "pulse")
	if err != nil {
		return err
	}

	s := bloch.NewSphere(180, geom.Viewport{Width: 480, Height: 420})
	doc := export.PulseSceneSVG(s, cfg.Pulse.Error)

	if err := os.WriteFile(outFile, []byte(doc), 0644); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	fmt.Printf("wrote %s (error %+.2f)\n", outFile, cfg.Pulse.Error)
	return nil
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "decay":
		cfg, err := resolveConfig(cmd, "decay")
		if err != nil {
			return err
		}
		dc := curves.DecayConfig{
			Tau:     cfg.Decay.Tau,
			MaxTime: cfg.Decay.MaxTime,
			Points:  cfg.Decay.Points,
			Noise:   cfg.Decay.Noise,
			Alpha:   cfg.Decay.Alpha,
			Stride:  cfg.Decay.Stride,
		}
		return export.DecayCSV(os.Stdout, curves.GenerateDecay(dc, newRand(cfg)))
	case "rb":
		cfg, err := resolveConfig(cmd, "rb")
		if err != nil {
			return err
		}
		rc := curves.DefaultRB()
		rc.P = cfg.RB.P
		rc.InterleavedFidelity = cfg.RB.InterleavedFidelity
		rc.SamplesPerLength = cfg.RB.SamplesPerLength
		if cfg.RB.Interleaved {
			rc.Mode = curves.RBInterleaved
		}
		return export.RBCSV(os.Stdout, curves.GenerateRB(rc, newRand(cfg)))
	default:
		return fmt.Errorf("unknown series: %s (want decay or rb)", args[0])
	}
}
