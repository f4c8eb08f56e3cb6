// Package transport models the handoff of a trapped particle between a
// static trap (SLM) and a moving tweezer (AOD) over a repeating cycle.
//
// The cycle is a fixed four-phase schedule over normalized time t in [0,1):
// handover at the start, eased transport, handover at the end, and a reset
// window. [Schedule.StateAt] derives position, both trap intensities and the
// stage label purely from t, which is what lets the animation loop be
// driven by any clock and unit-tested with synthetic times. Two path
// policies change only how position follows t during transport: a diagonal
// simultaneous-axis move and a sequential one-axis-at-a-time move.
package transport
