package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the user-level config file path, following the
// platform config dir convention (XDG on Linux):
//   - Linux: ~/.config/agroctl/config.yml
//   - macOS: ~/Library/Application Support/agroctl/config.yml
//   - Windows: %APPDATA%\agroctl\config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "agroctl", "config.yml"), nil
}

// UserConfigDir returns the user-level config directory.
func UserConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "agroctl"), nil
}

// LegacyConfigPath returns the old JSON config location: ~/.agroctl/config.json.
func LegacyConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".agroctl", "config.json"), nil
}
