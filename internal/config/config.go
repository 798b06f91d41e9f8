package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigDir is the configuration directory name
	ConfigDir = "remsh"
	// ConfigFile is the settings filename
	ConfigFile = "config.yaml"
)

// DefaultPath returns the path to the settings file.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, ConfigDir, ConfigFile), nil
}

// Load reads settings from path (or the default path when path is empty) and
// applies environment overrides. A missing file yields the defaults; this is
// not an error so the tool works with flags and env alone.
func Load(path string) (*Settings, error) {
	if path == "" {
		if envPath := os.Getenv("REMSH_CONFIG"); envPath != "" {
			path = envPath
		} else {
			defaultPath, err := DefaultPath()
			if err != nil {
				return nil, err
			}
			path = defaultPath
		}
	}

	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}
	} else if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	applyEnvOverrides(settings)
	return settings, nil
}

// Save writes settings to path (or the default path when path is empty),
// creating the configuration directory when needed.
func Save(settings *Settings, path string) error {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}

	dir := filepath.Dir(path)
	// 0700/0600: the file may contain server credentials
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

// applyEnvOverrides lets CI jobs inject credentials without a config file.
func applyEnvOverrides(settings *Settings) {
	if v := os.Getenv("REMSH_HOSTNAME"); v != "" {
		settings.Server.Hostname = v
	}
	if v := os.Getenv("REMSH_SSH_USERNAME"); v != "" {
		settings.Server.SSHUsername = v
	}
	if v := os.Getenv("REMSH_SSH_KEY"); v != "" {
		settings.Server.SSHKey = v
	}
	if v := os.Getenv("REMSH_SSH_PASSWORD"); v != "" {
		settings.Server.SSHPassword = v
	}
	if v := os.Getenv("REMSH_SSH_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			settings.Server.Port = port
		}
	}
}
