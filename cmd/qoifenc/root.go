package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// globalFlags holds the flags shared by every command.
type globalFlags struct {
	Verbose bool
}

// app carries what commands need at run time.
type app struct {
	flags  globalFlags
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "qoifenc",
		Short:         "Encode images into qoif streams",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(a.flags.Verbose)
			if err != nil {
				return err
			}
			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.flags.Verbose, "verbose", "v", false, "log encoder details to stderr")

	root.AddCommand(newEncodeCmd(a))
	root.AddCommand(newInspectCmd(a))

	return root
}

// newLogger builds a console logger on stderr. Only warnings are shown unless
// verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{"stderr"}
	config.DisableStacktrace = true

	return config.Build()
}
