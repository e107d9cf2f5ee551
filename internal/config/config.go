package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/agency-title/internal/agency"
)

const defaultLogLevel = "info"

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	Workspace     string `yaml:"workspace"`
	BundledConfig string `yaml:"bundled_config"`
	OutputFile    string `yaml:"output_file"`
	LogLevel      string `yaml:"log_level"`
	Annotations   bool   `yaml:"annotations"`
}

// yamlConfig represents the YAML settings file structure.
type yamlConfig struct {
	Workspace     string `yaml:"workspace"`
	BundledConfig string `yaml:"bundled_config"`
	OutputFile    string `yaml:"output_file"`
	LogLevel      string `yaml:"log_level"`
	Annotations   *bool  `yaml:"annotations"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	SettingsFile  string
	Workspace     *string
	BundledConfig *string
	OutputFile    *string
	LogLevel      *string
	Annotations   *bool
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Environment first so the YAML file can override it
	applyEnvConfig(&cfg)

	if overrides != nil && overrides.SettingsFile != "" {
		yamlCfg, err := loadFromFile(overrides.SettingsFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if cfg.Workspace == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("resolve working directory: %w", err)
		}
		cfg.Workspace = wd
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		BundledConfig: agency.DefaultBundledPath(),
		LogLevel:      defaultLogLevel,
		Annotations:   true,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.Workspace != "" {
		cfg.Workspace = yamlCfg.Workspace
	}
	if yamlCfg.BundledConfig != "" {
		cfg.BundledConfig = yamlCfg.BundledConfig
	}
	if yamlCfg.OutputFile != "" {
		cfg.OutputFile = yamlCfg.OutputFile
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.Annotations != nil {
		cfg.Annotations = *yamlCfg.Annotations
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if ws := strings.TrimSpace(os.Getenv("GITHUB_WORKSPACE")); ws != "" {
		cfg.Workspace = ws
	}

	if bundled := strings.TrimSpace(os.Getenv("AGENCY_BUNDLED_CONFIG")); bundled != "" {
		cfg.BundledConfig = bundled
	}

	if out := strings.TrimSpace(os.Getenv("GITHUB_OUTPUT")); out != "" {
		cfg.OutputFile = out
	}

	if level := strings.TrimSpace(os.Getenv("AGENCY_LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}

	if raw := strings.TrimSpace(os.Getenv("AGENCY_ANNOTATIONS")); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			cfg.Annotations = value
		}
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.Workspace != nil && *overrides.Workspace != "" {
		cfg.Workspace = *overrides.Workspace
	}

	if overrides.BundledConfig != nil {
		cfg.BundledConfig = *overrides.BundledConfig
	}

	if overrides.OutputFile != nil && *overrides.OutputFile != "" {
		cfg.OutputFile = *overrides.OutputFile
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}

	if overrides.Annotations != nil {
		cfg.Annotations = *overrides.Annotations
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	return nil
}
