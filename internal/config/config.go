package config

import (
	"errors"
	"os"
	"strings"
)

// Config carries the settings shared by the scan and export commands.
// Flags take precedence; unset values fall back to FILEMARSH_* environment
// variables.
type Config struct {
	SourceDir string
	ExportDir string

	Move       bool
	Flat       bool
	Extensions []string

	ReportPath   string
	ReportFormat string
	Sections     []string
	TopLargest   int

	Verbose bool
	Plain   bool
}

// ApplyEnv fills unset fields from the environment.
func (c *Config) ApplyEnv() {
	if c.SourceDir == "" {
		c.SourceDir = envOrEmpty("FILEMARSH_SOURCE_DIR")
	}
	if c.ExportDir == "" {
		c.ExportDir = envOrEmpty("FILEMARSH_EXPORT_DIR")
	}
	if !c.Verbose {
		c.Verbose = envTruthy("FILEMARSH_VERBOSE")
	}
}

// Validate checks the fields both commands rely on. The export directory is
// only required when requireExport is set.
func (c *Config) Validate(requireExport bool) error {
	if c.SourceDir == "" {
		return errors.New("a source directory is required")
	}
	if requireExport && c.ExportDir == "" {
		return errors.New("an export destination is required (--to)")
	}
	switch c.ReportFormat {
	case "", "csv", "json":
	default:
		return errors.New("report format must be csv or json")
	}
	if c.TopLargest < 0 {
		return errors.New("--top must not be negative")
	}
	return nil
}

// NormalizedExtensions returns the extension filter lower-cased and with a
// leading dot, so ".JPG", "jpg" and ".jpg" all mean the same thing.
func (c *Config) NormalizedExtensions() []string {
	if len(c.Extensions) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(c.Extensions))
	for _, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return normalized
}

func envOrEmpty(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
