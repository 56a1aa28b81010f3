package config

// This file binds configuration sources. Precedence, lowest to highest:
// DefaultConfig, config file (.bulkrename.{yaml,toml,json}), BULKRENAME_*
// environment variables, CLI flags. Flags are only applied when the user set
// them, so defaults from DefaultConfig hold otherwise.

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides (e.g. BULKRENAME_PREFIX).
const EnvPrefix = "BULKRENAME"

// flagKeys maps CLI flag names to configuration keys.
var flagKeys = map[string]string{
	"dir":            "dir",
	"template":       "template",
	"prefix":         "prefix",
	"start":          "start",
	"width":          "width",
	"templates-file": "templates_file",
	"dry-run":        "dry_run",
	"yes":            "yes",
	"output":         "output",
	"verbose":        "verbose",
	"color":          "color",
	"log":            "log",
}

// BindRenameFlags registers the flags that only apply to a rename run.
func BindRenameFlags(fs *pflag.FlagSet) {
	def := DefaultConfig()

	fs.String("dir", "", "Directory whose files are renamed (alternative to the positional argument)")
	fs.StringP("template", "t", def.Template, "Naming template (see 'bulkrename templates')")
	fs.StringP("prefix", "n", "", "Name prefix for fixed-prefix templates (e.g. IMG_)")
	fs.Int("start", 0, "First sequence number (0 keeps the template default)")
	fs.Int("width", 0, "Minimum zero-padding width (0 keeps the template default)")
	fs.BoolP("dry-run", "d", false, "Preview only; do not rename")
	fs.BoolP("yes", "y", false, "Do not ask for confirmation")
}

// BindCommonFlags registers the flags shared by every command.
func BindCommonFlags(fs *pflag.FlagSet) {
	def := DefaultConfig()

	fs.String("templates-file", "", "TOML file with additional [[template]] definitions")
	fs.StringP("output", "o", string(def.Output), "Output format: table | plain | json | yaml")
	fs.BoolP("verbose", "v", false, "Verbose output")
	fs.String("color", string(def.ColorMode), "Colored output: auto | always | never")
	fs.StringP("log", "l", "", "Append logs to file")
}

// Load builds a Config from v. configFile, when non-empty, must exist; without
// it the working directory and the home directory are searched and a missing
// file is not an error. flags may be nil.
func Load(v *viper.Viper, flags *pflag.FlagSet, configFile string) (Config, error) {
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".bulkrename")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("binding flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// setDefaults seeds v with DefaultConfig so every key is known to viper,
// which AutomaticEnv needs in order to resolve environment overrides.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("dir", def.Dir)
	v.SetDefault("template", def.Template)
	v.SetDefault("prefix", def.Prefix)
	v.SetDefault("start", def.Start)
	v.SetDefault("width", def.Width)
	v.SetDefault("templates_file", def.TemplatesFile)
	v.SetDefault("dry_run", def.DryRun)
	v.SetDefault("yes", def.AssumeYes)
	v.SetDefault("output", string(def.Output))
	v.SetDefault("verbose", def.Verbose)
	v.SetDefault("color", string(def.ColorMode))
	v.SetDefault("log", def.LogFile)
}
