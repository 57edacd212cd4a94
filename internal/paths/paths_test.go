package paths

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if filepath.Base(dir) != AppName {
		t.Errorf("ConfigDir() = %q, want trailing %q", dir, AppName)
	}
	if !strings.HasPrefix(dir, ConfigHome()) {
		t.Errorf("ConfigDir() = %q, want under %q", dir, ConfigHome())
	}
}

func TestConfigFile(t *testing.T) {
	file := ConfigFile()
	if filepath.Base(file) != "config.yaml" {
		t.Errorf("ConfigFile() = %q", file)
	}
	if filepath.Dir(file) != ConfigDir() {
		t.Errorf("ConfigFile() dir = %q, want %q", filepath.Dir(file), ConfigDir())
	}
}
