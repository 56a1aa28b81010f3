// Package config holds runtime configuration: defaults, validation, and
// loading from config file, environment, and CLI flags. The defaults select
// the generic template and ask before a destructive run.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/backmassage/bulkrename/internal/naming"
)

// --- Enum types for validated string fields ---

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// OutputFormat selects how the rename plan preview is rendered.
type OutputFormat string

const (
	OutputTable OutputFormat = "table" // Aligned table (default).
	OutputPlain OutputFormat = "plain" // One "old -> new" line per file.
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then overlaid by [Load] before being passed (by pointer) to packages that
// need it.
type Config struct {
	// Target (positional arg or --dir).
	Dir string `mapstructure:"dir"`

	// Template selection and parameters.
	Template      string `mapstructure:"template"`       // Default: "generic".
	Prefix        string `mapstructure:"prefix"`         // Required by fixed-prefix templates without a default prefix.
	Start         int    `mapstructure:"start"`          // 0 keeps the template's sequence start.
	Width         int    `mapstructure:"width"`          // 0 keeps the template's width.
	TemplatesFile string `mapstructure:"templates_file"` // Optional TOML file with extra templates.

	// Behavior flags.
	DryRun    bool `mapstructure:"dry_run"`
	AssumeYes bool `mapstructure:"yes"` // Skip the confirmation prompt.

	// Display and logging.
	Output    OutputFormat `mapstructure:"output"` // Default: "table".
	Verbose   bool         `mapstructure:"verbose"`
	ColorMode ColorMode    `mapstructure:"color"` // Default: "auto".
	LogFile   string       `mapstructure:"log"`   // Optional log file path.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [Load] applies file, environment, and flag overrides.
func DefaultConfig() Config {
	return Config{
		Template:  "generic",
		Output:    OutputTable,
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields hold valid values, normalizes the
// template id, and rejects negative sequence parameters. Dir is checked only
// when requireDir is set; subcommands such as "templates" run without one.
func (c *Config) Validate(requireDir bool) error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	c.Output = OutputFormat(strings.ToLower(string(c.Output)))
	switch c.Output {
	case OutputTable, OutputPlain, OutputJSON, OutputYAML:
		// valid
	default:
		return fmt.Errorf("invalid output format %q (use 'table', 'plain', 'json' or 'yaml')", c.Output)
	}

	c.Template = strings.ToLower(strings.TrimSpace(c.Template))
	if c.Template == "" {
		return errors.New("template must not be empty")
	}
	if c.Start < 0 {
		return fmt.Errorf("start must not be negative (got %d)", c.Start)
	}
	if c.Width < 0 || c.Width > naming.MaxWidth {
		return fmt.Errorf("width must be between 0 and %d (got %d)", naming.MaxWidth, c.Width)
	}

	c.Dir = NormalizeDirArg(c.Dir)
	if requireDir && c.Dir == "" {
		return errors.New("need a directory (positional argument or --dir)")
	}
	return nil
}
