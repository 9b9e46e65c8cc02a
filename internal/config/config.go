// Package config loads and merges advent configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/thesuzerain/advent-of-code/internal/utils"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds every user-tunable default. Pointer fields
// distinguish "unset" from an explicit zero so later files can override
// earlier ones.
type ApplicationConfiguration struct {
	InputDirectory string              `mapstructure:"input_directory"`
	Format         string              `mapstructure:"format"`
	Clipboard      *bool               `mapstructure:"clipboard"`
	Signal         SignalConfiguration `mapstructure:"signal"`
	Device         DeviceConfiguration `mapstructure:"device"`
	Rope           RopeConfiguration   `mapstructure:"rope"`
}

// SignalConfiguration tunes the datastream marker window sizes.
type SignalConfiguration struct {
	PacketMarkerLength  *int `mapstructure:"packet_marker_length"`
	MessageMarkerLength *int `mapstructure:"message_marker_length"`
}

// DeviceConfiguration tunes the simulated device constants.
type DeviceConfiguration struct {
	SizeThreshold *int `mapstructure:"size_threshold"`
	DiskCapacity  *int `mapstructure:"disk_capacity"`
	UpdateSpace   *int `mapstructure:"update_space"`
}

// RopeConfiguration tunes the rope knot counts.
type RopeConfiguration struct {
	ShortKnots *int `mapstructure:"short_knots"`
	LongKnots  *int `mapstructure:"long_knots"`
}

// LoadApplicationConfiguration loads configuration from the global file under
// the user home and a local file in the working directory, merging
// local-over-global.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, err := os.UserHomeDir(); err == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
		globalConfig, loadErr := loadConfigurationFromPath(globalPath)
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(globalConfig)
	}

	localPath := options.ExplicitFilePath
	if localPath == "" {
		localPath = filepath.Join(workingDirectory, utils.ConfigFileName)
	} else if !filepath.IsAbs(localPath) {
		localPath = filepath.Join(workingDirectory, localPath)
	}
	localConfig, loadErr := loadConfigurationFromPath(localPath)
	if loadErr != nil {
		return ApplicationConfiguration{}, loadErr
	}
	merged = merged.Merge(localConfig)

	return merged, nil
}

func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if readErr := reader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var configuration ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&configuration); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return configuration, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (configuration ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := configuration
	if override.InputDirectory != "" {
		result.InputDirectory = override.InputDirectory
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Clipboard != nil {
		result.Clipboard = cloneBool(override.Clipboard)
	}
	result.Signal = result.Signal.merge(override.Signal)
	result.Device = result.Device.merge(override.Device)
	result.Rope = result.Rope.merge(override.Rope)
	return result
}

func (configuration SignalConfiguration) merge(override SignalConfiguration) SignalConfiguration {
	result := configuration
	if override.PacketMarkerLength != nil {
		result.PacketMarkerLength = cloneInt(override.PacketMarkerLength)
	}
	if override.MessageMarkerLength != nil {
		result.MessageMarkerLength = cloneInt(override.MessageMarkerLength)
	}
	return result
}

func (configuration DeviceConfiguration) merge(override DeviceConfiguration) DeviceConfiguration {
	result := configuration
	if override.SizeThreshold != nil {
		result.SizeThreshold = cloneInt(override.SizeThreshold)
	}
	if override.DiskCapacity != nil {
		result.DiskCapacity = cloneInt(override.DiskCapacity)
	}
	if override.UpdateSpace != nil {
		result.UpdateSpace = cloneInt(override.UpdateSpace)
	}
	return result
}

func (configuration RopeConfiguration) merge(override RopeConfiguration) RopeConfiguration {
	result := configuration
	if override.ShortKnots != nil {
		result.ShortKnots = cloneInt(override.ShortKnots)
	}
	if override.LongKnots != nil {
		result.LongKnots = cloneInt(override.LongKnots)
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
