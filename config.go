package modsheet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Config represents the modsheet project configuration
type Config struct {
	// InputDir is the root directory searched for stylesheet sources
	InputDir string `yaml:"input_dir"`
	// Stylesheets are glob patterns relative to InputDir
	Stylesheets []string `yaml:"stylesheets"`
	// Module names the application module stylesheets are attributed to
	Module      string           `yaml:"module"`
	Annotations AnnotationConfig `yaml:"annotations"`
	// Params supplies values for #{...} runtime expressions
	Params map[string]any `yaml:"params"`
}

// AnnotationConfig controls diagnostic source metadata capture
type AnnotationConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoadConfig loads configuration from a YAML file. A missing file
// yields the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}

	applyDefaults(&config)
	expandConfigEnvVars(&config)

	return &config, nil
}

func getDefaultConfig() *Config {
	return &Config{
		InputDir:    ".",
		Stylesheets: []string{"*.styles"},
	}
}

func applyDefaults(config *Config) {
	if config.InputDir == "" {
		config.InputDir = "."
	}

	if len(config.Stylesheets) == 0 {
		config.Stylesheets = []string{"*.styles"}
	}
}

func validateConfig(config *Config) error {
	for _, pattern := range config.Stylesheets {
		if strings.TrimSpace(pattern) == "" {
			return ErrEmptyStylesheetPattern
		}
	}

	return nil
}

func expandConfigEnvVars(config *Config) {
	config.InputDir = os.ExpandEnv(config.InputDir)

	for i, pattern := range config.Stylesheets {
		config.Stylesheets[i] = os.ExpandEnv(pattern)
	}
}

// loadEnvFiles loads .env files in precedence order, ignoring missing
// files.
func loadEnvFiles() error {
	envFiles := []string{".env.local", ".env"}

	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			if err := godotenv.Load(file); err != nil {
				return fmt.Errorf("failed to load %s: %w", file, err)
			}
		}
	}

	return nil
}

// StylesheetFiles returns the stylesheet source paths matched by the
// configured patterns, in deterministic order.
func (c *Config) StylesheetFiles() ([]string, error) {
	seen := map[string]bool{}
	files := []string{}

	for _, pattern := range c.Stylesheets {
		matches, err := filepath.Glob(filepath.Join(c.InputDir, pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid stylesheet pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				files = append(files, match)
			}
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: patterns %v under %s", ErrNoStylesheets, c.Stylesheets, c.InputDir)
	}

	return files, nil
}
