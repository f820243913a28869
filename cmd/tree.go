package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"textcombiner/pkg/combine"
	"textcombiner/pkg/settings"
)

// treeCmd previews which files a combine run would pick up.
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the files a combine run would include, as a tree",
	Args:  cobra.NoArgs,
	RunE:  runTree,
}

func init() {
	flags := treeCmd.Flags()
	flags.StringP("input", "i", "", "Input folder to walk")
	flags.StringP("output", "o", "", "Output file to leave out of the listing")
	flags.String("exclude-files", "", "Regex; files whose name matches are skipped (default from settings)")
	flags.String("exclude-folders", "", "Regex; folders whose name matches are not entered (default from settings)")
	flags.String("settings", settings.DefaultPath, "Settings file holding the last used exclusion regexes")
	RootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	input, _ := flags.GetString("input")
	output, _ := flags.GetString("output")
	settingsPath, _ := flags.GetString("settings")

	fsys := newFs()
	saved, _ := settings.NewStore(fsys, settingsPath, logger).Load()
	if flags.Changed("exclude-files") {
		saved.ExcludeFilesRegex, _ = flags.GetString("exclude-files")
	}
	if flags.Changed("exclude-folders") {
		saved.ExcludeFoldersRegex, _ = flags.GetString("exclude-folders")
	}

	if err := combine.ValidateInputDir(fsys, input); err != nil {
		return err
	}

	filePattern, folderPattern, err := combine.CompilePatterns(saved.ExcludeFilesRegex, saved.ExcludeFoldersRegex)
	if err != nil {
		return err
	}

	opts := combine.CollectOptions{Files: filePattern, Folders: folderPattern}
	if output != "" {
		if opts.Output, err = filepath.Abs(output); err != nil {
			return fmt.Errorf("failed to resolve output path: %w", err)
		}
	}

	root, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	candidates, err := combine.CollectCandidates(fsys, root, opts, logger)
	if err != nil {
		return fmt.Errorf("failed to collect files: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), combine.GenerateTree(root, candidates))
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d files\n", len(candidates))
	return nil
}
