// Package curves generates synthetic statistical chart series.
//
//   - [GenerateDecay]: stretched-exponential fit with sparse noisy samples
//   - [GenerateRB]: randomized-benchmarking decay, baseline or interleaved
//
// Randomness is injected as a *rand.Rand so a fixed seed (or nil, for zero
// noise) makes every series reproducible. The generators share the
// visualization layer's numerical contract: plain value slices, no state.
package curves
