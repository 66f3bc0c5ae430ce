// Command lsqfit runs least-squares fits described by YAML/TOML job files.
//
//	lsqfit fit --config job.yaml --plot fit.png
//	lsqfit basis --family trigonometric --order 3
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	appName = "lsqfit"
	version = "v0.3.0"
)

// app carries state shared by the subcommands.
type app struct {
	logLevel string
	logger   zerolog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:     appName,
		Short:   "Continuous least-squares function approximation",
		Version: version,
		Long: `lsqfit fits a linear combination of basis functions (polynomial,
trigonometric, exponential) to sampled data over an interval [a, b] by
solving the continuous normal equations.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupLogger(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level (trace|debug|info|warn|error)")

	root.AddCommand(a.newFitCmd(), a.newBasisCmd())

	return root
}

func (a *app) setupLogger(cmd *cobra.Command) error {
	lvl, err := zerolog.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level %q: %w", a.logLevel, err)
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
		Level(lvl).
		With().Timestamp().Str("app", appName).
		Logger()

	return nil
}
