// Package conf handles the configuration for the labelctl application.
package conf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Settings holds the runtime configuration, populated from the config file,
// environment variables, and command-line flags.
type Settings struct {
	Debug bool // true to enable debug level logging

	Server struct {
		URL     string // base URL of the labeling service
		Timeout int    // request timeout in seconds
	}

	Realtime struct {
		StatusInterval int // status poll interval in seconds
	}

	Labeling struct {
		DefaultModel string // model used when none is given
	}

	Log struct {
		Enabled bool   // true to write a JSON log file
		Path    string // log file path
	}
}

// ValidModels lists the model names the labeling service accepts.
var ValidModels = []string{"gpt-4", "gpt-3.5-turbo"}

// IsValidModel reports whether name is an accepted model name.
func IsValidModel(name string) bool {
	for _, m := range ValidModels {
		if m == name {
			return true
		}
	}
	return false
}

// RequestTimeout converts the configured timeout to a duration.
func (s *Settings) RequestTimeout() time.Duration {
	return time.Duration(s.Server.Timeout) * time.Second
}

// StatusPollInterval converts the configured poll interval to a duration.
func (s *Settings) StatusPollInterval() time.Duration {
	return time.Duration(s.Realtime.StatusInterval) * time.Second
}

// Load reads the configuration into a Settings struct. A missing config file
// is not an error; defaults and environment variables apply.
func Load() (*Settings, error) {
	setDefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	configPaths, err := GetDefaultConfigPaths()
	if err != nil {
		return nil, fmt.Errorf("error getting config paths: %w", err)
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	viper.SetEnvPrefix("labelctl")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	settings := &Settings{}
	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateSettings(settings); err != nil {
		return nil, err
	}

	return settings, nil
}

func validateSettings(settings *Settings) error {
	if settings.Server.URL == "" {
		return fmt.Errorf("server.url must not be empty")
	}
	if settings.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %d", settings.Server.Timeout)
	}
	if settings.Realtime.StatusInterval <= 0 {
		return fmt.Errorf("realtime.statusinterval must be positive, got %d", settings.Realtime.StatusInterval)
	}
	if !IsValidModel(settings.Labeling.DefaultModel) {
		return fmt.Errorf("labeling.defaultmodel must be one of %v, got %q", ValidModels, settings.Labeling.DefaultModel)
	}
	return nil
}

// GetDefaultConfigPaths returns the directories searched for config.yaml,
// user config dir first, then the working directory.
func GetDefaultConfigPaths() ([]string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("error resolving user config directory: %w", err)
	}
	return []string{
		filepath.Join(configDir, "labelctl"),
		".",
	}, nil
}

// SessionFilePath returns the path where the persisted session is stored.
func SessionFilePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error resolving user config directory: %w", err)
	}
	return filepath.Join(configDir, "labelctl", "session.json"), nil
}
