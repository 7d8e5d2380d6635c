package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Abbas45-cpu/22-Promodoro-Productive-App/internal/ui/preferences"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	DarkMode      bool `yaml:"dark_mode"`
	SoundEnabled  bool `yaml:"sound_enabled"`
	Notifications bool `yaml:"notifications"`
	Autostart     bool `yaml:"autostart"`
	WindowWidth   int  `yaml:"window_width"`
	WindowHeight  int  `yaml:"window_height"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	configPath, err := resolveSettingsPath(appName)
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveSettingsPath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		DarkMode:      settings.DarkMode,
		SoundEnabled:  settings.SoundEnabled,
		Notifications: settings.Notifications,
		Autostart:     settings.Autostart,
		WindowWidth:   settings.WindowWidth,
		WindowHeight:  settings.WindowHeight,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveSettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	settings.DarkMode = fileData.DarkMode
	settings.SoundEnabled = fileData.SoundEnabled
	settings.Notifications = fileData.Notifications
	settings.Autostart = fileData.Autostart

	if fileData.WindowWidth >= 320 {
		settings.WindowWidth = fileData.WindowWidth
	}
	if fileData.WindowHeight >= 400 {
		settings.WindowHeight = fileData.WindowHeight
	}
}
