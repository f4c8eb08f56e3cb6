package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultError       = 0.1
	DefaultSteps       = 60
	DefaultCycleSecs   = 6.0
	DefaultTau         = 12.6
	DefaultMaxTime     = 20.0
	DefaultPoints      = 100
	DefaultNoise       = 0.03
	DefaultAlpha       = 1.0
	DefaultStride      = 5
	DefaultP           = 0.995
	DefaultInterleaved = 0.99
	DefaultSamples     = 12
)

type Config struct {
	Seed      int64           `yaml:"seed"`
	Pulse     PulseConfig     `yaml:"pulse"`
	Decay     DecayConfig     `yaml:"decay"`
	RB        RBConfig        `yaml:"rb"`
	Transport TransportConfig `yaml:"transport"`
}

type PulseConfig struct {
	Error float64 `yaml:"error"`
	Steps int     `yaml:"steps"`
}

type DecayConfig struct {
	Tau     float64 `yaml:"tau"`
	MaxTime float64 `yaml:"max_time"`
	Points  int     `yaml:"points"`
	Noise   float64 `yaml:"noise"`
	Alpha   float64 `yaml:"alpha"`
	Stride  int     `yaml:"stride"`
}

type RBConfig struct {
	P                   float64 `yaml:"p"`
	InterleavedFidelity float64 `yaml:"interleaved_fidelity"`
	SamplesPerLength    int     `yaml:"samples_per_length"`
	Interleaved         bool    `yaml:"interleaved"`
}

type TransportConfig struct {
	CycleSeconds float64 `yaml:"cycle_seconds"`
	Path         string  `yaml:"path"` // "diagonal" or "sequential"
}

func DefaultConfig() *Config {
	return &Config{
		Pulse: PulseConfig{
			Error: DefaultError,
			Steps: DefaultSteps,
		},
		Decay: DecayConfig{
			Tau:     DefaultTau,
			MaxTime: DefaultMaxTime,
			Points:  DefaultPoints,
			Noise:   DefaultNoise,
			Alpha:   DefaultAlpha,
			Stride:  DefaultStride,
		},
		RB: RBConfig{
			P:                   DefaultP,
			InterleavedFidelity: DefaultInterleaved,
			SamplesPerLength:    DefaultSamples,
		},
		Transport: TransportConfig{
			CycleSeconds: DefaultCycleSecs,
			Path:         "diagonal",
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
