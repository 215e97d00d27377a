package config

import "sort"

var presets = map[string]*Config{
	"step-lag": {
		Dt: 0.01, Duration: 10.0,
		Signal:   SignalConfig{Type: "step", Amplitude: 1.0, At: 1.0},
		Elements: []ElementConfig{{Type: "pt1", TimeConstant: 1.0, Gain: floatPtr(1.0)}},
	},
	"step-lag2": {
		Dt: 0.005, Duration: 20.0,
		Signal:   SignalConfig{Type: "step", Amplitude: 1.0, At: 1.0},
		Elements: []ElementConfig{{Type: "pt2", TimeConstant: 1.0, T2: 0.5, Gain: floatPtr(1.0)}},
	},
	"impulse-lag": {
		Dt: 0.01, Duration: 10.0,
		Signal:   SignalConfig{Type: "impulse", Amplitude: 2.0, At: 1.0, Width: 0.5},
		Elements: []ElementConfig{{Type: "pt1", TimeConstant: 0.5, Gain: floatPtr(1.0)}},
	},
	"noisy-step": {
		Dt: 0.01, Duration: 10.0, Seed: 42,
		Signal: SignalConfig{Type: "superposition", Children: []SignalConfig{
			{Type: "step", Amplitude: 1.0, At: 1.0},
			{Type: "noise", Amplitude: 0.2},
		}},
		Elements: []ElementConfig{{Type: "pt1", TimeConstant: 0.5, Gain: floatPtr(1.0)}},
	},
	"noise-band": {
		Dt: 0.01, Duration: 10.0, Seed: 7,
		Signal:   SignalConfig{Type: "noise", Amplitude: 1.0},
		Elements: []ElementConfig{{Type: "hysteresis", Band: 0.8}},
	},
	"delayed-step": {
		Dt: 0.01, Duration: 10.0,
		Signal: SignalConfig{Type: "step", Amplitude: 1.0, At: 1.0},
		Elements: []ElementConfig{
			{Type: "pt0", Gain: floatPtr(1.0), Delay: 100},
			{Type: "pt1", TimeConstant: 1.0, Gain: floatPtr(1.0)},
		},
	},
}

// GetPreset returns a copy; callers may mutate the result freely without
// affecting later lookups.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Signal = copySignal(p.Signal)
	cfg.Elements = make([]ElementConfig, len(p.Elements))
	for i, ec := range p.Elements {
		if ec.Gain != nil {
			ec.Gain = floatPtr(*ec.Gain)
		}
		cfg.Elements[i] = ec
	}
	return &cfg
}

func copySignal(sc SignalConfig) SignalConfig {
	if len(sc.Children) == 0 {
		return sc
	}
	children := make([]SignalConfig, len(sc.Children))
	for i, c := range sc.Children {
		children[i] = copySignal(c)
	}
	sc.Children = children
	return sc
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
