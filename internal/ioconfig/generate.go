// Package ioconfig writes the default configuration file on first run.
// The file is generated from the live defaults, so config.New() and
// config.yaml can never drift apart.
package ioconfig

import (
	"os"

	"gopkg.in/yaml.v3"

	"gnsadm/pkg/config"
)

const header = `# gnsadm configuration.
#
# Every value below matches the built-in default; remove a line to keep
# the default, change it to override. Environment variables with the
# GNSADM_ prefix override this file (input.countries_file becomes
# GNSADM_INPUT_COUNTRIES_FILE).

`

// EnsureConfigFile writes a documented default config.yaml to the
// config directory unless one already exists.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	data, err := yaml.Marshal(config.New())
	if err != nil {
		return WriteConfigError(configPath, err)
	}

	data = append([]byte(header), data...)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return WriteConfigError(configPath, err)
	}

	return nil
}
