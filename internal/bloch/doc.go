// Package bloch synthesizes pulse trajectories on the Bloch sphere.
//
// Two pulse shapes are generated from a shared calibration-error scalar: a
// plain half-turn whose endpoint error grows linearly with the error, and a
// three-segment composite whose legs cancel most of that error. The
// composite is an illustrative approximation of error-compensating pulse
// sequences, not a validated control sequence; the contract is the
// qualitative flatness of its error response, not exact angles.
package bloch
