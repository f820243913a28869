// File: pkg/combine/patterns.go
package combine

import (
	"fmt"
	"regexp"
)

// Pattern is an optional exclusion regex. The zero value matches nothing.
type Pattern struct {
	re *regexp.Regexp
}

// CompilePattern compiles expr. An empty expression yields the zero Pattern.
func CompilePattern(expr string) (Pattern, error) {
	if expr == "" {
		return Pattern{}, nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, err
	}
	return Pattern{re: re}, nil
}

// Matches reports whether name contains a match of the pattern.
func (p Pattern) Matches(name string) bool {
	if p.re == nil {
		return false
	}
	return p.re.MatchString(name)
}

// Empty reports whether the pattern excludes nothing.
func (p Pattern) Empty() bool {
	return p.re == nil
}

func (p Pattern) String() string {
	if p.re == nil {
		return ""
	}
	return p.re.String()
}

// ConfigError reports an exclusion pattern that failed to compile.
type ConfigError struct {
	Field string // "file" or "folder"
	Expr  string // The rejected expression
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("Invalid %s exclusion regex: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CompilePatterns compiles the file and folder exclusion expressions.
// The file pattern is checked first, so a run with two bad patterns reports the file one.
func CompilePatterns(files, folders string) (Pattern, Pattern, error) {
	filePattern, err := CompilePattern(files)
	if err != nil {
		return Pattern{}, Pattern{}, &ConfigError{Field: "file", Expr: files, Err: err}
	}
	folderPattern, err := CompilePattern(folders)
	if err != nil {
		return Pattern{}, Pattern{}, &ConfigError{Field: "folder", Expr: folders, Err: err}
	}
	return filePattern, folderPattern, nil
}
