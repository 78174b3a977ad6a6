package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Set validates value against the key's schema and persists it to the user
// config file, creating the file and its directory when needed.
func Set(key, value string) error {
	parsed, err := ParseValue(key, value)
	if err != nil {
		return err
	}

	path, err := UserConfigPath()
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	settings, err := readConfigFile(path)
	if err != nil {
		return err
	}
	settings[key] = parsed

	return writeConfigFile(path, settings)
}

// Clear resets configuration to defaults by removing the user config file
// and the legacy JSON file.
func Clear() error {
	path, err := UserConfigPath()
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}
	if err := removeIfExists(path); err != nil {
		return err
	}

	legacyPath, err := LegacyConfigPath()
	if err != nil {
		// No home dir: nothing legacy to remove.
		return nil
	}
	return removeIfExists(legacyPath)
}

func readConfigFile(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]interface{}{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	settings := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if settings == nil {
		settings = map[string]interface{}{}
	}
	return settings, nil
}

func writeConfigFile(path string, settings map[string]interface{}) error {
	dir, err := UserConfigDir()
	if err != nil {
		return fmt.Errorf("resolving config dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	// 0600: the file holds the API key and OAuth secrets.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func removeIfExists(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}
