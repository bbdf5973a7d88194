package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/aleister1102/httpget/internal/common"
	"gopkg.in/yaml.v3"
)

// Config contains all configuration sections for the application
type Config struct {
	Shape             string     `json:"shape,omitempty" yaml:"shape,omitempty" validate:"omitempty,shape"`
	StrictInput       bool       `json:"strict_input,omitempty" yaml:"strict_input,omitempty"`
	ZeroExitOnFailure bool       `json:"zero_exit_on_failure,omitempty" yaml:"zero_exit_on_failure,omitempty"`
	HTTPConfig        HTTPConfig `json:"http_config" yaml:"http_config"`
	LogConfig         LogConfig  `json:"log_config" yaml:"log_config"`
}

// NewDefaultConfig creates a new Config with default values
func NewDefaultConfig() *Config {
	return &Config{
		Shape:      DefaultShape,
		HTTPConfig: NewDefaultHTTPConfig(),
		LogConfig:  NewDefaultLogConfig(),
	}
}

// LoadConfig loads the configuration from the resolved config file, or
// returns defaults when there is none. JSON and YAML are supported; YAML is
// chosen for .yaml and .yml extensions.
func LoadConfig(providedPath string) (*Config, error) {
	cfg := NewDefaultConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		return cfg, nil
	}

	if !fileExists(filePath) {
		return nil, common.NewValidationError("config_file", filePath, "config file does not exist")
	}

	data, err := loadConfigFileContent(filePath)
	if err != nil {
		return nil, common.WrapError(err, "failed to load config file content")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, common.WrapError(err, "failed to parse config content")
	}

	return cfg, nil
}

// loadConfigFileContent reads the config file, refusing oversized files
func loadConfigFileContent(filePath string) ([]byte, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxConfigFileSize {
		return nil, common.NewValidationError("config_file", filePath, "config file too large")
	}
	return os.ReadFile(filePath)
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *Config) error {
	ext := filepath.Ext(filePath)
	if isYAMLFile(ext) {
		return parseYAMLConfig(data, filePath, cfg)
	}
	return parseJSONConfig(data, filePath, cfg)
}

func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

func parseYAMLConfig(data []byte, filePath string, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return common.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
	}
	return nil
}

func parseJSONConfig(data []byte, filePath string, cfg *Config) error {
	if err := json.Unmarshal(data, cfg); err != nil {
		return common.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}
