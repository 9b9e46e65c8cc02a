// Package utils provides helpers shared across the advent CLI.
package utils

const (
	// ConfigFileName is the name of the per-project configuration file.
	ConfigFileName = ".advent.yaml"
	// GlobalConfigDirectoryName is the directory under the user home that holds global configuration.
	GlobalConfigDirectoryName = ".advent"

	// LoggerInitializationFailedMessageFormat reports a logger construction failure.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage reports a fatal CLI failure.
	ApplicationExecutionFailedMessage = "application execution failed"
)
