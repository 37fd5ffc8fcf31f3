package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/showroom/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk on top of the defaults, validates it,
// and returns the resulting settings.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}

	return Parse(path, data)
}

// Parse decodes raw YAML on top of the defaults. Keys left out keep their default value.
func Parse(path string, data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, apperrors.NewParseError(path, ExtractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load reads path when it exists. A missing file at the default location yields the
// defaults; a missing file that was named explicitly is an error.
func Load(path string, explicit bool) (*Config, error) {
	cfg, err := ParseConfig(path)
	if err == nil {
		return cfg, nil
	}

	if !explicit && errors.Is(err, os.ErrNotExist) {
		defaults := Default()
		return &defaults, nil
	}

	return nil, err
}

// DefaultPath returns $XDG_CONFIG_HOME/showroom/config.yaml or the platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(dir, "showroom", "config.yaml"), nil
}

// ExtractLine pulls the line number out of a yaml.v3 error message.
func ExtractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
