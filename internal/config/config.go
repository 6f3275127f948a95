// Package config loads tool settings from an optional YAML file,
// environment variables, and defaults. Command-line flags override
// whatever is loaded here.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".claude-thinking-toggle"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for settings.
const envPrefix = "CLAUDE_TOGGLE"

// Config holds the tool's persistent settings.
type Config struct {
	Target       string `mapstructure:"target"`
	HeaderColor  string `mapstructure:"header_color"`
	ContentColor string `mapstructure:"content_color"`
	Theme        string `mapstructure:"theme"`
	ThemeFile    string `mapstructure:"theme_file"`
}

// Load reads configuration from file, env vars, and defaults. If
// configPath is non-empty it is used as the explicit config file path;
// otherwise the file is searched in CWD and $HOME. A missing config
// file is not an error.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperCfg.AutomaticEnv()

	// Defaults register the keys so env-only values survive Unmarshal.
	viperCfg.SetDefault("target", "")
	viperCfg.SetDefault("header_color", "")
	viperCfg.SetDefault("content_color", "")
	viperCfg.SetDefault("theme", "")
	viperCfg.SetDefault("theme_file", "")

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, homeErr := os.UserHomeDir()
		if homeErr == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		if configPath != "" {
			return nil, fmt.Errorf("read config %s: %w", configPath, readErr)
		}

		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	return &cfg, nil
}
