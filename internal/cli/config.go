// SPDX-License-Identifier: MIT
// Package: rmwcs/internal/cli
//
// config.go - run configuration: TOML file, flag overrides and validation.

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
)

// runConfig holds every tunable of the run command. Zero-valued file fields
// keep the defaults; explicitly set flags override the file.
type runConfig struct {
	Seed        int64   `toml:"seed"`
	Restarts    int     `toml:"restarts" validate:"min=1,max=65536"`
	Parallel    int     `toml:"parallel" validate:"min=0"`
	Schedule    string  `toml:"schedule" validate:"oneof=exp exponential linear const constant"`
	T0          float64 `toml:"t0" validate:"gte=0"`
	T1          float64 `toml:"t1" validate:"gte=0"`
	Steps       int     `toml:"steps" validate:"min=1"`
	GatedCycles bool    `toml:"gated_cycles"`
	Format      string  `toml:"format" validate:"oneof=yaml json"`
	Metrics     string  `toml:"metrics"`
}

func defaultRunConfig() runConfig {
	return runConfig{
		Seed:     1,
		Restarts: 1,
		Schedule: "exp",
		T0:       10,
		T1:       0.01,
		Steps:    100000,
		Format:   "yaml",
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// loadRunConfig decodes the TOML file at path over the defaults. Unknown keys
// are rejected so typos do not silently fall back to defaults.
func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// check validates cfg, flattening validator errors into one readable message.
func (c runConfig) check() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fmt.Sprintf("%s: failed %q (%s=%v)", strings.ToLower(fe.Field()), fe.Tag(), fe.Param(), fe.Value())
	}
	return fmt.Errorf("invalid run config: %s", strings.Join(msgs, "; "))
}

// runFlags mirrors runConfig for flag binding.
type runFlags struct {
	config string
	output string
	runConfig
}

func (f *runFlags) bind(fs *pflag.FlagSet) {
	d := defaultRunConfig()
	fs.StringVarP(&f.config, "config", "c", "", "TOML run configuration")
	fs.StringVarP(&f.output, "output", "o", "", "report file (stdout if empty)")
	fs.Int64Var(&f.Seed, "seed", d.Seed, "parent random seed")
	fs.IntVar(&f.Restarts, "restarts", d.Restarts, "independent annealing runs")
	fs.IntVar(&f.Parallel, "parallel", d.Parallel, "concurrent runs (0 = GOMAXPROCS)")
	fs.StringVar(&f.Schedule, "schedule", d.Schedule, "cooling schedule: exp, linear or const")
	fs.Float64Var(&f.T0, "t0", d.T0, "starting temperature")
	fs.Float64Var(&f.T1, "t1", d.T1, "final temperature (ignored by const)")
	fs.IntVar(&f.Steps, "steps", d.Steps, "steps per run")
	fs.BoolVar(&f.GatedCycles, "gated-cycles", d.GatedCycles, "subject cycle-edge removals to the acceptance test")
	fs.StringVar(&f.Format, "format", d.Format, "report format: yaml or json")
	fs.StringVar(&f.Metrics, "metrics", d.Metrics, "write Prometheus metrics in textfile format to this path")
}

// resolve loads the config file and applies every flag the user set.
func (f *runFlags) resolve(fs *pflag.FlagSet) (runConfig, error) {
	cfg, err := loadRunConfig(f.config)
	if err != nil {
		return cfg, err
	}
	overrides := map[string]func(){
		"seed":         func() { cfg.Seed = f.Seed },
		"restarts":     func() { cfg.Restarts = f.Restarts },
		"parallel":     func() { cfg.Parallel = f.Parallel },
		"schedule":     func() { cfg.Schedule = f.Schedule },
		"t0":           func() { cfg.T0 = f.T0 },
		"t1":           func() { cfg.T1 = f.T1 },
		"steps":        func() { cfg.Steps = f.Steps },
		"gated-cycles": func() { cfg.GatedCycles = f.GatedCycles },
		"format":       func() { cfg.Format = f.Format },
		"metrics":      func() { cfg.Metrics = f.Metrics },
	}
	fs.Visit(func(fl *pflag.Flag) {
		if set, ok := overrides[fl.Name]; ok {
			set()
		}
	})
	cfg.Schedule = strings.ToLower(cfg.Schedule)
	cfg.Format = strings.ToLower(cfg.Format)
	return cfg, cfg.check()
}
