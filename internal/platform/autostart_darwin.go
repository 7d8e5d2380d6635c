//go:build darwin

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func enableAutostart(appName, execPath string) error {
	agentsDir, err := launchAgentsDir()
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	if err := os.MkdirAll(agentsDir, 0o755); err != nil {
		return fmt.Errorf("enable autostart: create LaunchAgents dir: %w", err)
	}

	label := launchAgentLabel(appName)
	content := launchAgentPlist(label, execPath)
	plistPath := filepath.Join(agentsDir, label+".plist")
	if err := os.WriteFile(plistPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("enable autostart: write plist: %w", err)
	}
	return nil
}

func disableAutostart(appName string) error {
	agentsDir, err := launchAgentsDir()
	if err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}

	plistPath := filepath.Join(agentsDir, launchAgentLabel(appName)+".plist")
	if err := os.Remove(plistPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("disable autostart: remove plist: %w", err)
	}
	return nil
}

func launchAgentsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, "Library", "LaunchAgents"), nil
}

func launchAgentLabel(appName string) string {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(appName)), " ", "-")
	return "com.pomodoro." + name
}

func launchAgentPlist(label, execPath string) string {
	escaper := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)

	return fmt.Sprintf(
		`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>%s</string>
	<key>ProgramArguments</key>
	<array>
		<string>%s</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
</dict>
</plist>
`,
		escaper.Replace(label),
		escaper.Replace(execPath),
	)
}
