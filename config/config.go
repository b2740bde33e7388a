// Copyright (c) 2026 sshkeys Team
// sshkeys - OpenSSH elliptic-curve key codec
// This source code is licensed under the MIT license found in the LICENSE file.
// Package config provides configuration loading and persistence for the
// sshkeys CLI. It uses Viper for file/env/flag parsing and exposes utility
// functions to read/write the configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the process-wide save defaults described in the key codec:
// the comment attached to saved keys and whether public keys are emitted as
// raw blobs instead of authorized_keys lines.
type Config struct {
	Comment string `mapstructure:"comment" yaml:"comment"`
	Binary  bool   `mapstructure:"binary" yaml:"binary"`
	Debug   bool   `mapstructure:"debug" yaml:"debug"`
}

// Defaults returns the built-in configuration values.
func Defaults() map[string]any {
	return map[string]any{
		"comment": "sshkeys-generated-key",
		"binary":  false,
		"debug":   false,
	}
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "sshkeys")
		default: // Linux, macOS, etc.
			configDir = "/etc/sshkeys"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "sshkeys")
	}

	return filepath.Join(configDir, "sshkeys.yaml"), nil
}

// Load reads the configuration, merging (in increasing precedence) built-in
// defaults, the config file, SSHKEYS_* environment variables, and flags
// bound on cmd. An explicit file path, when non-nil, wins over the standard
// locations.
func Load(cmd *cobra.Command, explicitPath *string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName("sshkeys")
	v.SetConfigType("yaml")

	if explicitPath != nil && *explicitPath != "" {
		v.SetConfigFile(*explicitPath)
	}

	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; a malformed one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("sshkeys")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}

// Write persists the configuration to the user or system config file.
func Write(c *Config, system bool) error {
	path, err := getConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}

	return nil
}

// Render returns the configuration as YAML for display.
func Render(c *Config) (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
