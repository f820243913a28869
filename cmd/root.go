package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"textcombiner/pkg/logging"
	"textcombiner/pkg/version"
)

var (
	logger = zap.NewNop()

	debug   bool
	logFile string
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "textcombiner",
	Short: "textcombiner concatenates the text files of a folder into one file",
	Long: `textcombiner walks a folder, skips files and folders whose names match the
exclusion regexes, drops binary files, and writes every remaining text file to a
single output file under a "--- File: <path> ---" header.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !debug && logFile == "" {
			return nil
		}
		l, err := logging.Setup(LoggingOptions())
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable development logging at debug level")
	RootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
}

// LoggingOptions returns the logger configuration for the current flags.
// Without --debug or --log-file only warnings reach stderr, which the plain
// progress bar and the terminal UI draw on.
func LoggingOptions() logging.Options {
	return logging.Options{
		Debug:      debug,
		AppName:    "textcombiner",
		AppVersion: version.Get().Version,
		File:       logFile,
		Quiet:      !debug && logFile == "",
	}
}

// Execute runs the root command with l as the starting logger.
func Execute(l *zap.Logger) error {
	if l != nil {
		logger = l
	}
	return RootCmd.Execute()
}
