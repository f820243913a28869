package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"textcombiner/pkg/combine"
	"textcombiner/pkg/progress"
	"textcombiner/pkg/settings"
	"textcombiner/pkg/ui"
)

// newFs returns the filesystem the commands operate on.
var newFs = afero.NewOsFs

// combineCmd runs one combination with a terminal UI, or a plain progress bar
// when stdout is not a terminal.
var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Combine the text files of a folder into one output file",
	Args:  cobra.NoArgs,
	RunE:  runCombine,
}

func init() {
	flags := combineCmd.Flags()
	flags.StringP("input", "i", "", "Input folder to walk")
	flags.StringP("output", "o", "", "Output file to write")
	flags.String("exclude-files", "", "Regex; files whose name matches are skipped (default from settings)")
	flags.String("exclude-folders", "", "Regex; folders whose name matches are not entered (default from settings)")
	flags.String("settings", settings.DefaultPath, "Settings file holding the last used exclusion regexes")
	flags.Bool("plain", false, "Print a plain progress bar instead of the interactive UI")
	RootCmd.AddCommand(combineCmd)
}

func runCombine(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	input, _ := flags.GetString("input")
	output, _ := flags.GetString("output")
	settingsPath, _ := flags.GetString("settings")
	plain, _ := flags.GetBool("plain")

	fsys := newFs()
	store := settings.NewStore(fsys, settingsPath, logger)
	saved, loadStatus := store.Load()
	logger.Info(loadStatus, zap.String("settings", store.Path()))

	if flags.Changed("exclude-files") {
		saved.ExcludeFilesRegex, _ = flags.GetString("exclude-files")
	}
	if flags.Changed("exclude-folders") {
		saved.ExcludeFoldersRegex, _ = flags.GetString("exclude-folders")
	}

	args := combine.Arguments{
		InputDir:       input,
		Output:         output,
		ExcludeFiles:   saved.ExcludeFilesRegex,
		ExcludeFolders: saved.ExcludeFoldersRegex,
	}
	if err := combine.ValidateInputs(fsys, args); err != nil {
		return err
	}

	if err := store.Save(saved); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Could not save settings: %v\n", err)
	}

	interactive := !plain && term.IsTerminal(int(os.Stdout.Fd()))

	workerLogger := logger
	if interactive && !debug && logFile == "" {
		// The UI owns the terminal; errors reach the user through it.
		workerLogger = zap.NewNop()
	}
	events := combine.NewCombiner(fsys, workerLogger).Start(args)

	if interactive {
		return ui.Run(events, loadStatus)
	}
	_, err := progress.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), logger).Consume(events)
	return err
}
