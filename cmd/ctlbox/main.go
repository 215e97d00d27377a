package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/ctlbox/internal/config"
	"github.com/san-kum/ctlbox/internal/signal"
	"github.com/san-kum/ctlbox/internal/tui"
	"github.com/san-kum/ctlbox/internal/viz"
)

var (
	dt       float64
	duration float64
	seed     int64

	sigType   string
	amplitude float64
	onset     float64
	width     float64

	elemType     string
	gain         float64
	timeConstant float64
	t2           float64
	band         float64
	delay        int

	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ctlbox",
		Short: "signal and plant element playground",
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "sample a signal through an element chain and plot it",
		RunE:  runPlot,
	}
	addRunFlags(plotCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "stream a signal through an element chain in real time",
		RunE:  runLive,
	}
	addRunFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "ctlbox.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(plotCmd, liveCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed for noise")
	cmd.Flags().StringVar(&sigType, "signal", "step", "signal type (step, impulse, noise)")
	cmd.Flags().Float64Var(&amplitude, "amplitude", 1.0, "signal amplitude")
	cmd.Flags().Float64Var(&onset, "at", 1.0, "signal onset time")
	cmd.Flags().Float64Var(&width, "width", 0.5, "impulse width")
	cmd.Flags().StringVar(&elemType, "element", "pt1", "element type (pt0, pt1, pt2, hysteresis, none)")
	cmd.Flags().Float64Var(&gain, "gain", config.DefaultGain, "element gain")
	cmd.Flags().Float64Var(&timeConstant, "tau", config.DefaultTau, "lag time constant")
	cmd.Flags().Float64Var(&t2, "t2", 0.5, "second time constant (pt2)")
	cmd.Flags().Float64Var(&band, "band", 0.5, "hysteresis band width")
	cmd.Flags().IntVar(&delay, "delay", 10, "dead time in samples (pt0)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig merges preset, config file, and flags; file wins over
// preset, flags only apply when neither is given.
func resolveConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return cfg, nil
	}

	cfg := &config.Config{
		Dt:       dt,
		Duration: duration,
		Seed:     seed,
		Signal: config.SignalConfig{
			Type:      sigType,
			Amplitude: amplitude,
			At:        onset,
			Width:     width,
		},
	}
	if elemType != "none" {
		cfg.Elements = []config.ElementConfig{{
			Type:         elemType,
			Gain:         &gain,
			TimeConstant: timeConstant,
			T2:           t2,
			Band:         band,
			Delay:        delay,
		}}
	}
	return cfg, nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	sig, err := cfg.BuildSignal()
	if err != nil {
		return err
	}
	chain, err := cfg.BuildChain()
	if err != nil {
		return err
	}

	tr, err := signal.NewTimeRange(0, cfg.Duration, cfg.Dt)
	if err != nil {
		return err
	}

	input := tr.Sample(sig)
	output := make([]float64, len(input))
	for i, u := range input {
		output[i], err = chain.Step(u, cfg.Dt)
		if err != nil {
			return err
		}
	}

	caption := fmt.Sprintf("%s -> %d element(s), dt=%g, %gs", cfg.Signal.Type, chain.Len(), cfg.Dt, cfg.Duration)
	fmt.Println(viz.TracePair(input, output, caption, viz.DefaultWidth, 15))
	fmt.Printf("\nfinal input=%.4f output=%.4f\n", input[len(input)-1], output[len(output)-1])
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	sig, err := cfg.BuildSignal()
	if err != nil {
		return err
	}
	if _, err := cfg.BuildChain(); err != nil {
		return err
	}
	return tui.Run(sig, cfg.BuildChain, cfg.Dt, cfg.Duration)
}
