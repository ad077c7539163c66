package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openkraft/ngkit/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file.
const FileName = ".ngkit.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .ngkit.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .ngkit.yaml from projectPath.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	// Validate before merging so errors point at what the user wrote.
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return mergeConfig(domain.DefaultConfig(), cfg), nil
}

// mergeConfig overlays explicit values on top of the defaults.
// Explicit (non-zero) values always win.
func mergeConfig(base, override domain.ProjectConfig) domain.ProjectConfig {
	result := base

	setString(&result.Self, override.Self)
	setString(&result.AppRoot, override.AppRoot)
	setString(&result.DistDir, override.DistDir)
	setString(&result.Placeholder, override.Placeholder)

	if override.MaxChangedLength > 0 {
		result.MaxChangedLength = override.MaxChangedLength
	}
	// A pointer so an explicit 0 (unbounded) survives the merge.
	if override.MaxFormatPasses != nil {
		result.MaxFormatPasses = override.MaxFormatPasses
	}

	setString(&result.Tools.NG, override.Tools.NG)
	setString(&result.Tools.Prettier, override.Tools.Prettier)
	setString(&result.Tools.PrettierConfig, override.Tools.PrettierConfig)
	setString(&result.Tools.SassLint, override.Tools.SassLint)
	setString(&result.Tools.TSLint, override.Tools.TSLint)
	setString(&result.Tools.TSConfig, override.Tools.TSConfig)

	return result
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
