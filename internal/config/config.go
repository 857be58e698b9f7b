package config

import (
	"fmt"

	"github.com/racerxr650r/serkey/internal/fileops"
	"github.com/racerxr650r/serkey/internal/logger"
	"github.com/racerxr650r/serkey/internal/types"
	"gopkg.in/yaml.v3"
)

const (
	configFilename = "serkey.yaml"
)

func LoadConfig() (*types.Config, error) {
	fileOps, err := fileops.NewDefaultFileOps()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file operations: %w", err)
	}

	if err := fileOps.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	data, err := fileOps.LoadConfig(configFilename)
	if err != nil {
		if err == fileops.ErrConfigNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config types.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

func SaveConfig(config *types.Config) error {
	fileOps, err := fileops.NewDefaultFileOps()
	if err != nil {
		return fmt.Errorf("failed to initialize file operations: %w", err)
	}

	// Try to load existing config first
	existingConfig, err := LoadConfig()
	if err != nil {
		// Just log the error but continue with new config
		logger.Warnf("Failed to load existing config: %v", err)
	} else if existingConfig != nil {
		// We have an existing config, merge the new settings into it
		mergeConfigs(existingConfig, config)
		config = existingConfig
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := fileOps.SaveConfig(configFilename, data); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

// mergeConfigs merges the sourceConfig into targetConfig, preserving existing
// values in targetConfig that are not explicitly set in sourceConfig
func mergeConfigs(targetConfig, sourceConfig *types.Config) {
	if sourceConfig.Keymap != "" {
		targetConfig.Keymap = sourceConfig.Keymap
	}
	if sourceConfig.DeviceName != "" {
		targetConfig.DeviceName = sourceConfig.DeviceName
	}
	if sourceConfig.ExitOnEscape {
		targetConfig.ExitOnEscape = sourceConfig.ExitOnEscape
	}

	if sourceConfig.Serial.Device != "" {
		targetConfig.Serial.Device = sourceConfig.Serial.Device
	}
	if sourceConfig.Serial.BaudRate != 0 {
		targetConfig.Serial.BaudRate = sourceConfig.Serial.BaudRate
	}
	if sourceConfig.Serial.Parity != "" {
		targetConfig.Serial.Parity = sourceConfig.Serial.Parity
	}
	if sourceConfig.Serial.DataBits != 0 {
		targetConfig.Serial.DataBits = sourceConfig.Serial.DataBits
	}
	if sourceConfig.Serial.StopBits != 0 {
		targetConfig.Serial.StopBits = sourceConfig.Serial.StopBits
	}
}
