package curves

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// DecayConfig parameterizes a stretched-exponential decay series,
// fit(t) = exp(-(t/tau)^alpha).
type DecayConfig struct {
	Tau     float64 // time constant
	MaxTime float64 // end of the uniform time grid
	Points  int     // grid resolution
	Noise   float64 // uniform noise amplitude on measured samples
	Alpha   float64 // stretching exponent (1 = simple exponential)
	Stride  int     // measured values appear every Stride grid points
}

// DefaultDecay mirrors a typical coherence-time measurement.
func DefaultDecay() DecayConfig {
	return DecayConfig{
		Tau:     12.6,
		MaxTime: 20,
		Points:  100,
		Noise:   0.03,
		Alpha:   1.0,
		Stride:  5,
	}
}

// DecaySample is one grid point. Measured is meaningful only when Sampled is
// set, modeling sparse experimental sampling over a dense fitted curve.
type DecaySample struct {
	Time     float64
	Fit      float64
	Measured float64
	Sampled  bool
}

// FitAt evaluates the noiseless theoretical curve at time t.
func (c DecayConfig) FitAt(t float64) float64 {
	return math.Exp(-math.Pow(t/c.Tau, c.Alpha))
}

// GenerateDecay produces the fitted curve over a uniform grid with noisy
// measured values at every Stride-th point. A nil rng disables noise, so the
// output is fully determined by the config.
func GenerateDecay(cfg DecayConfig, rng *rand.Rand) []DecaySample {
	if cfg.Points < 2 {
		cfg.Points = 2
	}
	if cfg.Stride < 1 {
		cfg.Stride = 1
	}

	grid := make([]float64, cfg.Points)
	floats.Span(grid, 0, cfg.MaxTime)

	samples := make([]DecaySample, cfg.Points)
	for i, t := range grid {
		s := DecaySample{Time: t, Fit: cfg.FitAt(t)}
		if i%cfg.Stride == 0 {
			s.Measured = s.Fit + uniformNoise(rng, cfg.Noise)
			s.Sampled = true
		}
		samples[i] = s
	}
	return samples
}

func uniformNoise(rng *rand.Rand, amplitude float64) float64 {
	if rng == nil || amplitude == 0 {
		return 0
	}
	return (2*rng.Float64() - 1) * amplitude
}
