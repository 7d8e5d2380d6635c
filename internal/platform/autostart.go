package platform

import (
	"fmt"
	"os"
)

// SetAutostart registers or removes the widget as a login item for the
// current user, using the running executable's path.
func SetAutostart(appName string, enabled bool) error {
	if appName == "" {
		return fmt.Errorf("set autostart: app name is empty")
	}

	if !enabled {
		return disableAutostart(appName)
	}

	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("set autostart: resolve executable: %w", err)
	}
	return enableAutostart(appName, execPath)
}
