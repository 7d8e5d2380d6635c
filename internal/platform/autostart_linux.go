//go:build linux

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func enableAutostart(appName, execPath string) error {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}

	autostartDir := filepath.Join(configDir, "autostart")
	if err := os.MkdirAll(autostartDir, 0o755); err != nil {
		return fmt.Errorf("enable autostart: create autostart dir: %w", err)
	}

	entry := desktopEntry(appName, execPath)
	entryPath := filepath.Join(autostartDir, desktopFileName(appName))
	if err := os.WriteFile(entryPath, []byte(entry), 0o644); err != nil {
		return fmt.Errorf("enable autostart: write desktop entry: %w", err)
	}
	return nil
}

func disableAutostart(appName string) error {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}

	entryPath := filepath.Join(configDir, "autostart", desktopFileName(appName))
	if err := os.Remove(entryPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("disable autostart: remove desktop entry: %w", err)
	}
	return nil
}

func desktopFileName(appName string) string {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(appName)), " ", "-")
	return name + ".desktop"
}

func desktopEntry(appName, execPath string) string {
	execLine := execPath
	if strings.Contains(execLine, " ") {
		execLine = `"` + execLine + `"`
	}

	return fmt.Sprintf(
		`[Desktop Entry]
Type=Application
Name=%s
Exec=%s
X-GNOME-Autostart-enabled=true
Terminal=false
`,
		appName,
		execLine,
	)
}
