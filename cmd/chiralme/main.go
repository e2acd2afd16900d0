// Package main implements the chiralme CLI: it evaluates a chiral
// effective-field-theory operator order by order over a relative
// harmonic-oscillator basis and writes the matrix-element artifacts.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lenpic/chiralme/driver"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chiralme",
		Short: "Generate chiral EFT operator matrix elements in an oscillator basis",
		Long: `chiralme evaluates a chiral effective-field-theory operator, order by
order, between relative harmonic-oscillator LSJT basis states.

It writes one text artifact per chiral order plus a cumulative artifact
holding the running sum through the requested truncation.

Examples:
  # M1 through N3LO over an Nmax=20, Jmax=6 basis at ħω = 20 MeV
  chiralme --name m1 --order n3lo -E 20 -N 20 -J 6

  # Same run driven by a YAML file; explicit flags still win
  chiralme --config run.yaml --order nlo`,
		Version:      version,
		RunE:         run,
		SilenceUsage: true,
	}

	f := cmd.Flags()
	f.StringP("name", "n", "m1", "operator family member to generate")
	f.StringP("order", "o", "full", "chiral truncation (lo|nlo|n2lo|n3lo|n4lo|full)")
	f.Float64P("hw", "E", 20, "oscillator frequency ħω in MeV")
	f.IntP("Nmax", "N", 20, "oscillator quanta truncation of the relative basis")
	f.IntP("Jmax", "J", 6, "angular-momentum truncation of the relative basis")
	f.IntP("Tmin", "t", 0, "lowest isotensor rank to fill")
	f.IntP("Tmax", "T", 2, "highest isotensor rank to fill")
	f.Float64("regulator", 0.9, "coordinate-space regulator length in fm")
	f.Bool("unregularized", false, "disable the short-range regulator")
	f.String("output-dir", ".", "directory for artifact files")
	f.String("config", "", "YAML run configuration file")
	f.BoolP("verbose", "v", false, "human-readable debug logging")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush on exit

	res, err := driver.Run(cfg, logger)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.CumulativeArtifact)
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
