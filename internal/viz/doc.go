// Package viz renders the simulation core in the terminal.
//
//   - [Canvas]: Braille pixel canvas shared by every view
//   - [SphereView]: Bloch sphere wireframe plus pulse trajectories
//   - [PulseModel]: interactive calibration-error view (Bubble Tea)
//   - [TransportModel]: live trap-handoff animation with intensity waveforms
//
// The views consume plain data from the core packages (screen points,
// series, state snapshots) and own nothing but presentation state. The
// calibration error and path policy live here and are handed into the pure
// generators on every change.
package viz
