package config

import (
	"os"
)

// GetConfigPath determines the configuration file path.
// Priority:
// 1. the path passed in (from the -config flag)
// 2. HTTPGET_CONFIG_PATH environment variable
// Default locations are not searched: without an explicit file the
// program runs on built-in defaults.
func GetConfigPath(configFilePathFlag string) string {
	if configFilePathFlag != "" {
		return configFilePathFlag
	}
	return os.Getenv(ConfigPathEnv)
}

// Helper function to check if a file exists
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
