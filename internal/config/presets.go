package config

import "sort"

// Presets are named parameter bundles per view, applied before config files
// and CLI flags.
var Presets = map[string]map[string]*Config{
	"pulse": {
		"calibrated": {
			Pulse: PulseConfig{Error: 0.0, Steps: DefaultSteps},
		},
		"overdrive": {
			Pulse: PulseConfig{Error: 0.2, Steps: DefaultSteps},
		},
		"undershoot": {
			Pulse: PulseConfig{Error: -0.15, Steps: DefaultSteps},
		},
	},
	"decay": {
		"t2": {
			Decay: DecayConfig{Tau: 12.6, MaxTime: 20, Points: 100, Noise: 0.03, Alpha: 1.0, Stride: 5},
		},
		"stretched": {
			Decay: DecayConfig{Tau: 8.0, MaxTime: 30, Points: 150, Noise: 0.02, Alpha: 1.6, Stride: 6},
		},
		"clean": {
			Decay: DecayConfig{Tau: 12.6, MaxTime: 20, Points: 100, Noise: 0, Alpha: 1.0, Stride: 5},
		},
	},
	"rb": {
		"reference": {
			RB: RBConfig{P: 0.995, InterleavedFidelity: 0.99, SamplesPerLength: 12},
		},
		"interleaved": {
			RB: RBConfig{P: 0.995, InterleavedFidelity: 0.99, SamplesPerLength: 12, Interleaved: true},
		},
		"noisy-gate": {
			RB: RBConfig{P: 0.97, InterleavedFidelity: 0.95, SamplesPerLength: 20, Interleaved: true},
		},
	},
	"transport": {
		"diagonal": {
			Transport: TransportConfig{CycleSeconds: 6, Path: "diagonal"},
		},
		"sequential": {
			Transport: TransportConfig{CycleSeconds: 6, Path: "sequential"},
		},
		"slow": {
			Transport: TransportConfig{CycleSeconds: 12, Path: "diagonal"},
		},
	},
}

// GetPreset returns the named preset for a view, or nil.
func GetPreset(view, name string) *Config {
	group, ok := Presets[view]
	if !ok {
		return nil
	}
	return group[name]
}

// ListPresets returns sorted preset names for a view, or nil.
func ListPresets(view string) []string {
	group, ok := Presets[view]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
