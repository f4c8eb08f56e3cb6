package curves

import (
	"math"
	"math/rand"
)

// RBMode selects between the reference decay and the interleaved variant.
type RBMode int

const (
	RBBaseline RBMode = iota
	RBInterleaved
)

func (m RBMode) String() string {
	if m == RBInterleaved {
		return "interleaved"
	}
	return "baseline"
}

// RBConfig parameterizes a randomized-benchmarking decay,
// y(m) = 0.5 + 0.5*p^m over sequence length m.
type RBConfig struct {
	P                   float64 // depolarizing parameter of the reference set
	InterleavedFidelity float64 // extra per-sequence factor in interleaved mode
	Lengths             []int
	SamplesPerLength    int
	NoiseVariance       float64 // v0 in variance(m) = v0*(1 - exp(-m/k))
	NoiseScaleLength    float64 // k
	Mode                RBMode
}

// DefaultRB mirrors a typical single-qubit benchmarking run.
func DefaultRB() RBConfig {
	return RBConfig{
		P:                   0.995,
		InterleavedFidelity: 0.99,
		Lengths:             []int{1, 2, 4, 8, 16, 32, 64, 128, 256},
		SamplesPerLength:    12,
		NoiseVariance:       0.0009,
		NoiseScaleLength:    20,
	}
}

// RBFitPoint is one point of the fitted decay, exactly one per length.
type RBFitPoint struct {
	Length int
	Fit    float64
}

// RBScatterPoint is one noisy draw of the return probability at a length.
type RBScatterPoint struct {
	Length int
	Y      float64
}

// RBCurve holds the fitted curve and its scatter cloud for one mode.
type RBCurve struct {
	Mode    RBMode
	Fit     []RBFitPoint
	Scatter []RBScatterPoint
}

// EffectiveP is the depolarizing parameter after accounting for the
// interleaved operation, so the gap between the two modes reads directly as
// that operation's infidelity.
func (c RBConfig) EffectiveP() float64 {
	if c.Mode == RBInterleaved {
		return c.P * c.InterleavedFidelity
	}
	return c.P
}

// FitAt evaluates the two-parameter depolarizing model at sequence length m.
func (c RBConfig) FitAt(m int) float64 {
	return 0.5 + 0.5*math.Pow(c.EffectiveP(), float64(m))
}

// GenerateRB emits the fitted curve plus SamplesPerLength scatter draws per
// length. Scatter variance follows v0*(1 - exp(-m/k)) and draws are clamped
// to [0,1]. A nil rng yields scatter equal to the fit.
func GenerateRB(cfg RBConfig, rng *rand.Rand) RBCurve {
	curve := RBCurve{
		Mode:    cfg.Mode,
		Fit:     make([]RBFitPoint, 0, len(cfg.Lengths)),
		Scatter: make([]RBScatterPoint, 0, len(cfg.Lengths)*cfg.SamplesPerLength),
	}

	for _, m := range cfg.Lengths {
		fit := cfg.FitAt(m)
		curve.Fit = append(curve.Fit, RBFitPoint{Length: m, Fit: fit})

		sigma := 0.0
		if cfg.NoiseScaleLength > 0 {
			sigma = math.Sqrt(cfg.NoiseVariance * (1 - math.Exp(-float64(m)/cfg.NoiseScaleLength)))
		}
		for i := 0; i < cfg.SamplesPerLength; i++ {
			y := fit
			if rng != nil && sigma > 0 {
				y += rng.NormFloat64() * sigma
			}
			y = math.Max(0, math.Min(1, y))
			curve.Scatter = append(curve.Scatter, RBScatterPoint{Length: m, Y: y})
		}
	}
	return curve
}
