package config

import (
	"os"
	"path/filepath"
	"strings"
)

const settingsDirName = ".hireterm"

// SettingsDir returns the directory holding settings, logs, history and the
// cached token. Defaults to ~/.hireterm, falling back to a relative directory
// when the home directory cannot be resolved.
func SettingsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return settingsDirName
	}
	return filepath.Join(home, settingsDirName)
}

// BuildSettingsPath resolves a file name inside the settings directory.
// Absolute paths pass through unchanged.
func BuildSettingsPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(SettingsDir(), name)
}

// EnsureSettingsDir creates the settings directory if needed
func EnsureSettingsDir() error {
	return os.MkdirAll(SettingsDir(), 0755)
}

const tokenFileName = "credentials"

// SaveToken caches the bearer token returned by login
func SaveToken(token string) error {
	if err := EnsureSettingsDir(); err != nil {
		return err
	}
	return os.WriteFile(BuildSettingsPath(tokenFileName), []byte(token+"\n"), 0600)
}

// LoadToken returns the cached bearer token, or empty when not logged in
func LoadToken() string {
	data, err := os.ReadFile(BuildSettingsPath(tokenFileName))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// ClearToken removes the cached token
func ClearToken() error {
	err := os.Remove(BuildSettingsPath(tokenFileName))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
