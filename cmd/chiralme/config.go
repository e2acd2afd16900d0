package main

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/lenpic/chiralme/driver"
)

// loadConfig assembles the driver configuration from the command flags and
// the optional YAML file named by --config.
//
// Precedence, highest first: explicitly set flags, YAML file keys, flag
// defaults. The file uses flat keys: operator, order, hw, nmax, jmax,
// tmin, tmax, regularize, regulator, output_dir.
func loadConfig(cmd *cobra.Command) (driver.Config, error) {
	f := cmd.Flags()

	name, _ := f.GetString("name")
	order, _ := f.GetString("order")
	hw, _ := f.GetFloat64("hw")
	nmax, _ := f.GetInt("Nmax")
	jmax, _ := f.GetInt("Jmax")
	tmin, _ := f.GetInt("Tmin")
	tmax, _ := f.GetInt("Tmax")
	regulator, _ := f.GetFloat64("regulator")
	unregularized, _ := f.GetBool("unregularized")
	outputDir, _ := f.GetString("output-dir")

	cfg := driver.Config{
		Operator:   name,
		Order:      order,
		HW:         hw,
		Nmax:       nmax,
		Jmax:       jmax,
		Tmin:       tmin,
		Tmax:       tmax,
		Regularize: !unregularized,
		Regulator:  regulator,
		OutputDir:  outputDir,
	}

	path, _ := f.GetString("config")
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}

	// A file key applies only when the corresponding flag was left at its
	// default, so explicit flags always win.
	fromFile := func(flag, key string, apply func()) {
		if k.Exists(key) && !f.Changed(flag) {
			apply()
		}
	}
	fromFile("name", "operator", func() { cfg.Operator = k.String("operator") })
	fromFile("order", "order", func() { cfg.Order = k.String("order") })
	fromFile("hw", "hw", func() { cfg.HW = k.Float64("hw") })
	fromFile("Nmax", "nmax", func() { cfg.Nmax = k.Int("nmax") })
	fromFile("Jmax", "jmax", func() { cfg.Jmax = k.Int("jmax") })
	fromFile("Tmin", "tmin", func() { cfg.Tmin = k.Int("tmin") })
	fromFile("Tmax", "tmax", func() { cfg.Tmax = k.Int("tmax") })
	fromFile("unregularized", "regularize", func() { cfg.Regularize = k.Bool("regularize") })
	fromFile("regulator", "regulator", func() { cfg.Regulator = k.Float64("regulator") })
	fromFile("output-dir", "output_dir", func() { cfg.OutputDir = k.String("output_dir") })

	return cfg, nil
}
