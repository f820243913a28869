// Package settings persists the exclusion patterns between runs.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// DefaultPath is the settings file, relative to the working directory.
const DefaultPath = "text_combiner_settings.json"

// Load status messages.
const (
	StatusLoaded    = "Settings loaded."
	StatusMissing   = "No settings file found. Using defaults."
	StatusMalformed = "Error reading settings file. Using defaults."
)

// Settings holds the exclusion patterns restored on startup.
type Settings struct {
	ExcludeFilesRegex   string `json:"exclude_files_regex" mapstructure:"exclude_files_regex"`
	ExcludeFoldersRegex string `json:"exclude_folders_regex" mapstructure:"exclude_folders_regex"`
}

// Store reads and writes Settings at a fixed path.
type Store struct {
	fs     afero.Fs
	path   string
	logger *zap.Logger
}

// NewStore creates a Store for path. An empty path means DefaultPath.
func NewStore(fsys afero.Fs, path string, logger *zap.Logger) *Store {
	if path == "" {
		path = DefaultPath
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{fs: fsys, path: path, logger: logger}
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings file. It never fails: any problem yields the
// zero Settings together with a status message describing what happened.
func (s *Store) Load() (Settings, string) {
	var cfg Settings

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("Settings file not found", zap.String("path", s.path))
			return Settings{}, StatusMissing
		}
		s.logger.Warn("Failed to read settings file", zap.String("path", s.path), zap.Error(err))
		return Settings{}, fmt.Sprintf("Error loading settings: %v", err)
	}

	// Present keys overwrite defaults; missing keys stay empty. A key with a
	// non-string value makes the whole file malformed.
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("Malformed settings file", zap.String("path", s.path), zap.Error(err))
		return Settings{}, StatusMalformed
	}
	if err := mapstructure.Decode(raw, &cfg); err != nil {
		s.logger.Warn("Malformed settings file", zap.String("path", s.path), zap.Error(err))
		return Settings{}, StatusMalformed
	}

	s.logger.Debug("Loaded settings",
		zap.String("path", s.path),
		zap.String("excludeFiles", cfg.ExcludeFilesRegex),
		zap.String("excludeFolders", cfg.ExcludeFoldersRegex))
	return cfg, StatusLoaded
}

// Save writes cfg as indented JSON, replacing the file.
func (s *Store) Save(cfg Settings) error {
	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0o644); err != nil {
		s.logger.Warn("Failed to save settings", zap.String("path", s.path), zap.Error(err))
		return fmt.Errorf("could not save settings: %w", err)
	}
	s.logger.Debug("Saved settings", zap.String("path", s.path))
	return nil
}
