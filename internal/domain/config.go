package domain

import (
	"fmt"
	"strings"
)

// ProjectConfig holds project-level configuration loaded from .ngkit.yaml.
type ProjectConfig struct {
	// Self is the command line that re-invokes this binary. Empty means the
	// running executable.
	Self             string      `yaml:"self"               json:"self,omitempty"`
	AppRoot          string      `yaml:"app_root"           json:"app_root,omitempty"`
	DistDir          string      `yaml:"dist_dir"           json:"dist_dir,omitempty"`
	Placeholder      string      `yaml:"placeholder"        json:"placeholder,omitempty"`
	MaxChangedLength int         `yaml:"max_changed_length" json:"max_changed_length,omitempty"`
	MaxFormatPasses  *int        `yaml:"max_format_passes"  json:"max_format_passes,omitempty"`
	Tools            ToolsConfig `yaml:"tools"              json:"tools,omitempty"`
}

// ToolsConfig names the external programs the scripts drive.
type ToolsConfig struct {
	NG             string `yaml:"ng"              json:"ng,omitempty"`
	Prettier       string `yaml:"prettier"        json:"prettier,omitempty"`
	PrettierConfig string `yaml:"prettier_config" json:"prettier_config,omitempty"`
	SassLint       string `yaml:"sass_lint"       json:"sass_lint,omitempty"`
	TSLint         string `yaml:"tslint"          json:"tslint,omitempty"`
	TSConfig       string `yaml:"tsconfig"        json:"tsconfig,omitempty"`
}

const (
	DefaultMaxChangedLength = 8000
	DefaultMaxFormatPasses  = 10
)

// DefaultConfig returns the settings the original scripts hard-coded.
func DefaultConfig() ProjectConfig {
	passes := DefaultMaxFormatPasses
	return ProjectConfig{
		AppRoot:          "./src/app",
		DistDir:          "dist",
		Placeholder:      ".gitkeep",
		MaxChangedLength: DefaultMaxChangedLength,
		MaxFormatPasses:  &passes,
		Tools: ToolsConfig{
			NG:             "ng",
			Prettier:       "prettier",
			PrettierConfig: "./prettier.json",
			SassLint:       "sass-lint",
			TSLint:         "tslint",
			TSConfig:       "./tsconfig.json",
		},
	}
}

// FormatPasses returns the fix-loop bound; 0 means unbounded.
func (c ProjectConfig) FormatPasses() int {
	if c.MaxFormatPasses == nil {
		return DefaultMaxFormatPasses
	}
	return *c.MaxFormatPasses
}

// Validate checks user-supplied values before defaults are merged in.
func (c ProjectConfig) Validate() error {
	var errs []string

	if c.MaxChangedLength < 0 {
		errs = append(errs, fmt.Sprintf("max_changed_length must be >= 0, got %d", c.MaxChangedLength))
	}
	if c.MaxFormatPasses != nil && *c.MaxFormatPasses < 0 {
		errs = append(errs, fmt.Sprintf("max_format_passes must be >= 0, got %d", *c.MaxFormatPasses))
	}
	if strings.ContainsAny(c.DistDir, "*?[") {
		errs = append(errs, fmt.Sprintf("dist_dir must be a plain path, got %q", c.DistDir))
	}
	if c.DistDir == "." || c.DistDir == "/" {
		errs = append(errs, fmt.Sprintf("dist_dir %q would clean the project", c.DistDir))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
