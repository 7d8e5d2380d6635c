//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

const registryRunKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func enableAutostart(appName, execPath string) error {
	quoted := fmt.Sprintf(`"%s"`, strings.Trim(execPath, `"`))
	command := exec.Command(
		"reg", "add", registryRunKey,
		"/v", appName,
		"/t", "REG_SZ",
		"/d", quoted,
		"/f",
	)
	output, err := command.CombinedOutput()
	if err != nil {
		return fmt.Errorf("enable autostart: reg add failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

func disableAutostart(appName string) error {
	command := exec.Command(
		"reg", "delete", registryRunKey,
		"/v", appName,
		"/f",
	)
	output, err := command.CombinedOutput()
	if err != nil {
		return fmt.Errorf("disable autostart: reg delete failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}
