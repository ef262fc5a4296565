package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/gscript"
)

// config is the optional CLI configuration file.
type config struct {
	Operators      []string   `toml:"operators" yaml:"operators"`             // Replaces the default operator table
	ExtraOperators []string   `toml:"extra_operators" yaml:"extra_operators"` // Extends the operator table
	TabIndent      bool       `toml:"tab_indent" yaml:"tab_indent"`           // Leading tab marks a continuation
	Output         string     `toml:"output" yaml:"output"`                   // parse output: yaml or json
	Format         formatConf `toml:"format" yaml:"format"`                   // fmt settings
	Lint           lintConf   `toml:"lint" yaml:"lint"`                       // lint settings
}

// formatConf mirrors gscript.FormatOptions.
type formatConf struct {
	Indent     string `toml:"indent" yaml:"indent"`
	BlankLines bool   `toml:"blank_lines" yaml:"blank_lines"`
}

// lintConf mirrors gscript.ValidateOptions.
type lintConf struct {
	DisableFallbackCheck    bool `toml:"disable_fallback_check" yaml:"disable_fallback_check"`
	DisableDuplicateCheck   bool `toml:"disable_duplicate_check" yaml:"disable_duplicate_check"`
	DisableUnreachableCheck bool `toml:"disable_unreachable_check" yaml:"disable_unreachable_check"`
}

// loadConfig reads a TOML or YAML config file selected by extension.
// An empty path returns the zero config.
func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return config{}, fmt.Errorf("failed to load config %s: %w", path, err)
		}

	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return config{}, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}

	default:
		return config{}, fmt.Errorf("unsupported config format %q (use .toml, .yaml or .yml)", filepath.Ext(path))
	}

	return cfg, nil
}

// formatOptions returns writer options.
func (c config) formatOptions() *gscript.FormatOptions {
	return &gscript.FormatOptions{Indent: c.Format.Indent, BlankLines: c.Format.BlankLines}
}

// validateOptions returns lint options.
func (c config) validateOptions() *gscript.ValidateOptions {
	return &gscript.ValidateOptions{
		DisableFallbackCheck:    c.Lint.DisableFallbackCheck,
		DisableDuplicateCheck:   c.Lint.DisableDuplicateCheck,
		DisableUnreachableCheck: c.Lint.DisableUnreachableCheck,
	}
}
