package transport

import (
	"math"
	"time"
)

// Phase boundaries as fractions of one cycle. The four phases are
// contiguous and cover [0,1) with no gaps or overlaps.
const (
	handoverStartEnd = 0.15
	transportEnd     = 0.75
	handoverEndEnd   = 0.90
)

// DefaultCycle is the wall-clock duration of one full transport cycle.
const DefaultCycle = 6 * time.Second

// Stage labels one phase of the handoff cycle.
type Stage int

const (
	StageHandoverStart Stage = iota // SLM releases, AOD takes over
	StageTransport                  // AOD moves the particle
	StageHandoverEnd                // AOD releases, SLM takes over
	StageReset                      // particle back at start for the next cycle
)

func (s Stage) String() string {
	switch s {
	case StageHandoverStart:
		return "handover (start)"
	case StageTransport:
		return "transport"
	case StageHandoverEnd:
		return "handover (end)"
	case StageReset:
		return "reset"
	}
	return "unknown"
}

// PathPolicy selects how position is derived from cycle time during the
// transport phase. Both policies share the same time/intensity schedule.
type PathPolicy int

const (
	// PathDiagonal eases both axes simultaneously.
	PathDiagonal PathPolicy = iota
	// PathSequential finishes the first axis before the second one moves.
	PathSequential
)

func (p PathPolicy) String() string {
	if p == PathSequential {
		return "sequential"
	}
	return "diagonal"
}

// Position is a normalized 2-D field coordinate in [0,1] per axis.
type Position struct {
	X, Y float64
}

func (p Position) DistanceFrom(o Position) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// State is the full transport snapshot for one cycle time. It is a pure
// function of T; nothing else may mutate it.
type State struct {
	T        float64 // normalized cycle time in [0,1)
	Pos      Position
	SLMPower float64 // static-trap intensity in [0,1]
	AODPower float64 // moving-tweezer intensity in [0,1]
	Stage    Stage
}

// Schedule derives transport state from normalized time. Start and End are
// the field coordinates the particle moves between.
type Schedule struct {
	Start  Position
	End    Position
	Policy PathPolicy
}

func NewSchedule(policy PathPolicy) Schedule {
	return Schedule{Start: Position{}, End: Position{X: 1, Y: 1}, Policy: policy}
}

// TimeOfCycle maps elapsed wall-clock time onto [0,1). Negative elapsed
// time clamps to zero rather than raising.
func TimeOfCycle(elapsed, cycle time.Duration) float64 {
	if elapsed < 0 || cycle <= 0 {
		return 0
	}
	t := math.Mod(elapsed.Seconds()/cycle.Seconds(), 1)
	return t
}

// StateAt computes the snapshot for normalized time t. Out-of-range t is
// wrapped into [0,1) so callers can pass raw phase accumulators.
func (s Schedule) StateAt(t float64) State {
	t = math.Mod(t, 1)
	if t < 0 {
		t += 1
	}

	st := State{T: t}
	switch {
	case t < handoverStartEnd:
		// Source trap fades out while the tweezer fades in; no motion yet.
		ramp := t / handoverStartEnd
		st.Stage = StageHandoverStart
		st.SLMPower = 1 - ramp
		st.AODPower = ramp
		st.Pos = s.Start

	case t < transportEnd:
		st.Stage = StageTransport
		st.SLMPower = 0
		st.AODPower = 1
		progress := (t - handoverStartEnd) / (transportEnd - handoverStartEnd)
		st.Pos = s.positionAt(progress)

	case t < handoverEndEnd:
		ramp := (t - transportEnd) / (handoverEndEnd - transportEnd)
		st.Stage = StageHandoverEnd
		st.SLMPower = ramp
		st.AODPower = 1 - ramp
		st.Pos = s.End

	default:
		st.Stage = StageReset
		st.SLMPower = 1
		st.AODPower = 0
		st.Pos = s.Start
	}

	st.SLMPower = clamp01(st.SLMPower)
	st.AODPower = clamp01(st.AODPower)
	return st
}

// positionAt interpolates the particle between Start and End for transport
// progress in [0,1], per the configured path policy.
func (s Schedule) positionAt(progress float64) Position {
	dx := s.End.X - s.Start.X
	dy := s.End.Y - s.Start.Y

	switch s.Policy {
	case PathSequential:
		// First axis completes in the first half of the window, then the
		// second axis runs, each with its own eased ramp.
		if progress < 0.5 {
			return Position{
				X: s.Start.X + dx*smoothstep(progress*2),
				Y: s.Start.Y,
			}
		}
		return Position{
			X: s.End.X,
			Y: s.Start.Y + dy*smoothstep((progress-0.5)*2),
		}
	default:
		e := smoothstep(progress)
		return Position{X: s.Start.X + dx*e, Y: s.Start.Y + dy*e}
	}
}

// smoothstep eases with zero velocity at both ends.
func smoothstep(t float64) float64 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
