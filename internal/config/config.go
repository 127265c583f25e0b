// Package config loads the explorer's configuration from a YAML file and
// the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Defaults applied when neither the config file nor the environment
// provides a value. The report defaults reproduce the classic demo run:
// PDF search, "project" pattern, top five files, Photos focus.
const (
	DefaultOutput    = "table"
	DefaultTopN      = 5
	DefaultExtension = "pdf"
	DefaultPattern   = "project"
	DefaultFocus     = "Documents/Personal/Photos"
)

// Config stores all configuration of the explorer CLI.
// The values are read by viper from a config file or environment variables.
type Config struct {
	// Tree is the path of a JSON tree document. Empty selects the
	// built-in sample tree.
	Tree string `mapstructure:"tree"`

	// Output is the rendering format: "table" or "json".
	Output string `mapstructure:"output"`

	Report ReportConfig `mapstructure:"report"`
}

// ReportConfig stores the knobs of the full console report.
type ReportConfig struct {
	// TopN is the number of entries in the Largest Files section.
	TopN int `mapstructure:"top_n"`

	// Extension is the example extension search shown under Search
	// Results.
	Extension string `mapstructure:"extension"`

	// Pattern is the example name search shown under Search Results.
	Pattern string `mapstructure:"pattern"`

	// IncludeDirs repeats the name search with matching directories
	// included.
	IncludeDirs bool `mapstructure:"include_dirs"`

	// Focus names a directory given its own closing section. Empty
	// disables the section.
	Focus string `mapstructure:"focus"`
}

// Load reads configuration from a file or environment variables. With an
// empty configPath the working directory is searched for fsx.yaml, and a
// missing file simply leaves the defaults in place; an explicitly given
// path must exist.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("fsx")
		v.SetConfigType("yaml")
	}

	// Set default values
	v.SetDefault("tree", "")
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("report.top_n", DefaultTopN)
	v.SetDefault("report.extension", DefaultExtension)
	v.SetDefault("report.pattern", DefaultPattern)
	v.SetDefault("report.include_dirs", true)
	v.SetDefault("report.focus", DefaultFocus)

	v.SetEnvPrefix("fsx")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // report.top_n becomes FSX_REPORT_TOP_N
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No file on the search path; defaults and environment apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values no command can act on.
func (c *Config) Validate() error {
	switch c.Output {
	case "table", "json":
	default:
		return fmt.Errorf("invalid output format: %q, allowed formats are: table, json", c.Output)
	}

	if c.Report.TopN < 0 {
		return fmt.Errorf("report.top_n must not be negative, got %d", c.Report.TopN)
	}

	return nil
}
