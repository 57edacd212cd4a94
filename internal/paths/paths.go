package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "mdvars"

// ConfigHome returns the XDG config home directory.
// Respects XDG_CONFIG_HOME, falling back to ~/.config.
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the mdvars configuration directory.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the path of the mdvars configuration file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
