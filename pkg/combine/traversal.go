// File: pkg/combine/traversal.go
package combine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// CollectOptions controls which files CollectCandidates keeps.
type CollectOptions struct {
	Files   Pattern // Excludes files by base name
	Folders Pattern // Prunes directories by base name
	Output  string  // Absolute path that is never returned

	// OnOutputSkipped is called with the base name of Output when the walk meets it.
	OnOutputSkipped func(name string)
}

// CollectCandidates walks root top-down in lexical order and returns the absolute
// paths of the files that survive the exclusion rules.
func CollectCandidates(fsys afero.Fs, root string, opts CollectOptions, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	logger.Debug("Starting file traversal and collection", zap.String("root", absRoot))

	var candidates []string
	err = afero.Walk(rootFollowingFs{Fs: fsys, root: absRoot}, absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == absRoot {
				return err
			}
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}

		name := info.Name()
		if info.IsDir() {
			if path != absRoot && opts.Folders.Matches(name) {
				logger.Debug("Skipping excluded directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		if !isFileCandidate(fsys, path, info) {
			logger.Debug("Skipping non-regular file", zap.String("filePath", path))
			return nil
		}

		if opts.Files.Matches(name) {
			logger.Debug("Skipping excluded file", zap.String("filePath", path))
			return nil
		}

		if path == opts.Output {
			logger.Debug("Skipping output file", zap.String("filePath", path))
			if opts.OnOutputSkipped != nil {
				opts.OnOutputSkipped(name)
			}
			return nil
		}

		candidates = append(candidates, path)
		return nil
	})
	if err != nil {
		logger.Error("Error during file traversal", zap.Error(err))
		return nil, err
	}

	logger.Debug("Completed file traversal and collection", zap.Int("candidates", len(candidates)))
	return candidates, nil
}

// isFileCandidate accepts regular files and symlinks that do not resolve to a
// directory. A dangling link stays a candidate and is later skipped as unreadable.
// Symlinked directories are reported by Lstat as links and are never descended.
func isFileCandidate(fsys afero.Fs, path string, info os.FileInfo) bool {
	if info.Mode().IsRegular() {
		return true
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return false
	}
	target, err := fsys.Stat(path)
	if err != nil {
		return true
	}
	return target.Mode().IsRegular()
}

// rootFollowingFs resolves a symlinked walk root so afero.Walk descends into
// its target. Entries below the root are still reported with Lstat.
type rootFollowingFs struct {
	afero.Fs
	root string
}

func (r rootFollowingFs) LstatIfPossible(name string) (os.FileInfo, bool, error) {
	if name == r.root {
		info, err := r.Fs.Stat(name)
		return info, false, err
	}
	if lfs, ok := r.Fs.(afero.Lstater); ok {
		return lfs.LstatIfPossible(name)
	}
	info, err := r.Fs.Stat(name)
	return info, false, err
}

// ValidateInputs checks the run arguments before anything is started.
func ValidateInputs(fsys afero.Fs, args Arguments) error {
	if err := ValidateInputDir(fsys, args.InputDir); err != nil {
		return err
	}
	if args.Output == "" {
		return ErrNoOutput
	}
	return nil
}

// ValidateInputDir checks that dir names an existing directory.
func ValidateInputDir(fsys afero.Fs, dir string) error {
	if dir == "" {
		return ErrInvalidInputDir
	}
	isDir, err := afero.IsDir(fsys, dir)
	if err != nil || !isDir {
		return ErrInvalidInputDir
	}
	return nil
}

var (
	ErrInvalidInputDir = errors.New("please select a valid input folder")
	ErrNoOutput        = errors.New("please specify an output file")
)
