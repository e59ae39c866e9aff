package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dialtimer/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	DefaultMinutes int   `yaml:"default_minutes"`
	TimeScale      int   `yaml:"time_scale"`
	FrameRate      int   `yaml:"frame_rate"`
	FlashOnFinish  *bool `yaml:"flash_on_finish"`
	ShowNotice     *bool `yaml:"show_notice"`
	NotifyOnFinish *bool `yaml:"notify_on_finish"`
}

// DefaultPath returns the settings file inside the user config directory.
func DefaultPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads user preferences from YAML.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(filepath.Clean(path))
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
	return settings.Normalize(), nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	settings = settings.Normalize()
	fileData := yamlSettings{
		DefaultMinutes: settings.DefaultMinutes,
		TimeScale:      settings.TimeScale,
		FrameRate:      settings.FrameRate,
		FlashOnFinish:  &settings.FlashOnFinish,
		ShowNotice:     &settings.ShowNotice,
		NotifyOnFinish: &settings.NotifyOnFinish,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.DefaultMinutes > 0 {
		settings.DefaultMinutes = fileData.DefaultMinutes
	}
	if fileData.TimeScale > 0 {
		settings.TimeScale = fileData.TimeScale
	}
	if fileData.FrameRate > 0 {
		settings.FrameRate = fileData.FrameRate
	}

	if fileData.FlashOnFinish != nil {
		settings.FlashOnFinish = *fileData.FlashOnFinish
	}
	if fileData.ShowNotice != nil {
		settings.ShowNotice = *fileData.ShowNotice
	}
	if fileData.NotifyOnFinish != nil {
		settings.NotifyOnFinish = *fileData.NotifyOnFinish
	}
}
