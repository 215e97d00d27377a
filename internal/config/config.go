package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ctlbox/internal/plant"
	"github.com/san-kum/ctlbox/internal/signal"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 10.0
	DefaultGain     = 1.0
	DefaultTau      = 1.0
)

type Config struct {
	Dt       float64         `yaml:"dt"`
	Duration float64         `yaml:"duration"`
	Seed     int64           `yaml:"seed"`
	Signal   SignalConfig    `yaml:"signal"`
	Elements []ElementConfig `yaml:"elements"`
}

type SignalConfig struct {
	Type      string         `yaml:"type"`
	Amplitude float64        `yaml:"amplitude"`
	Pre       float64        `yaml:"pre"`
	Rest      float64        `yaml:"rest"`
	At        float64        `yaml:"at"`
	Width     float64        `yaml:"width"`
	Seed      int64          `yaml:"seed"`
	Children  []SignalConfig `yaml:"children"`
}

type ElementConfig struct {
	Type string `yaml:"type"`
	// Gain distinguishes "omitted" (nil, defaults to DefaultGain) from an
	// explicit zero.
	Gain         *float64 `yaml:"gain"`
	TimeConstant float64  `yaml:"time_constant"`
	T2           float64  `yaml:"t2"`
	Delay        int      `yaml:"delay"`
	Band         float64  `yaml:"band"`
	Initial      float64  `yaml:"initial"`
}

func (ec ElementConfig) gain() float64 {
	if ec.Gain != nil {
		return *ec.Gain
	}
	return DefaultGain
}

func floatPtr(v float64) *float64 { return &v }

func DefaultConfig() *Config {
	return &Config{
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Signal:   SignalConfig{Type: "step", Amplitude: 1.0},
		Elements: []ElementConfig{
			{Type: "pt1", TimeConstant: DefaultTau, Gain: floatPtr(DefaultGain)},
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

// BuildSignal turns a declarative signal description into a Signal.
// A noise entry without its own seed falls back to the run seed.
func (c *Config) BuildSignal() (signal.Signal, error) {
	return buildSignal(c.Signal, c.Seed)
}

func buildSignal(sc SignalConfig, runSeed int64) (signal.Signal, error) {
	switch sc.Type {
	case "step":
		return &signal.Step{Pre: sc.Pre, Post: sc.Amplitude, At: sc.At}, nil
	case "impulse":
		return &signal.Impulse{Rest: sc.Rest, Amplitude: sc.Amplitude, At: sc.At, Width: sc.Width}, nil
	case "noise":
		seed := sc.Seed
		if seed == 0 {
			seed = runSeed
		}
		return signal.NewNoise(sc.Amplitude, seed), nil
	case "superposition":
		children := make([]signal.Signal, 0, len(sc.Children))
		for _, cc := range sc.Children {
			child, err := buildSignal(cc, runSeed)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return signal.NewSuperposition(children...), nil
	default:
		return nil, fmt.Errorf("unknown signal type: %q", sc.Type)
	}
}

// BuildChain turns the element list into a plant.Chain, in order.
func (c *Config) BuildChain() (*plant.Chain, error) {
	elements := make([]plant.Element, 0, len(c.Elements))
	for _, ec := range c.Elements {
		e, err := buildElement(ec)
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}
	return plant.NewChain(elements...), nil
}

func buildElement(ec ElementConfig) (plant.Element, error) {
	switch ec.Type {
	case "pt0":
		return plant.NewPT0(ec.gain(), ec.Delay)
	case "pt1":
		p, err := plant.NewPT1(ec.TimeConstant, ec.gain())
		if err != nil {
			return nil, err
		}
		p.Reset(ec.Initial)
		return p, nil
	case "pt2":
		return plant.NewPT2(ec.TimeConstant, ec.T2, ec.gain())
	case "hysteresis":
		return plant.NewHysteresis(ec.Band, ec.Initial)
	default:
		return nil, fmt.Errorf("unknown element type: %q", ec.Type)
	}
}
