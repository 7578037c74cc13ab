package utils

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config struct holds application configuration
type Config struct {
	Port     int    `yaml:"port"`
	LogFile  string `yaml:"log_file"`
	Debug    bool   `yaml:"debug"`
	MaxLists int    `yaml:"max_lists"`
}

var (
	configInstance *Config   // Singleton configInstance
	configErr      error
	configOnce     sync.Once // Ensures thread-safe initialization
)

// LoadConfig initializes the singleton configInstance
func LoadConfig(filename string) (*Config, error) {
	configOnce.Do(func() {
		configInstance, configErr = ReadConfig(filename)
	})
	if configErr != nil {
		return nil, configErr
	}
	return configInstance, nil
}

// ReadConfig reads and parses a YAML config file. Environment variables in
// the file are expanded. A missing file yields the defaults.
func ReadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return getDefaultConfig(), nil
		}
		return nil, err
	}

	config := &Config{}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	applyDefaults(config)
	if config.MaxLists < 0 {
		return nil, fmt.Errorf("parse %s: max_lists must not be negative", filename)
	}
	return config, nil
}

// GetConfig returns the singleton config configInstance
func GetConfig() (*Config, error) {
	if configInstance == nil {
		return nil, errors.New("config not initialized, call LoadConfig() first")
	}
	return configInstance, nil
}

// getDefaultConfig returns default config values
func getDefaultConfig() *Config {
	return &Config{
		Port: 6379,
	}
}

// applyDefaults ensures missing values get defaults
func applyDefaults(config *Config) {
	if config.Port == 0 {
		config.Port = 6379
	}
}
