// Package configpaths locates configuration files.
package configpaths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "braillekeys"

// DefaultConfigDir returns the platform-specific configuration directory.
func DefaultConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", appName), nil
	}
	return "", errors.New("HOME not set")
}

// EnsureDir ensures the directory for a given file path exists.
func EnsureDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0o755)
}

// ConfigCandidatePaths builds candidate paths for config files per format.
// A user supplied path comes first and is routed by its extension.
func ConfigCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	add := func(slice *[]string, p string) { *slice = append(*slice, p) }

	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".yaml", ".yml":
			add(&yamlPaths, userPath)
		case ".toml":
			add(&tomlPaths, userPath)
		default:
			add(&jsonPaths, userPath)
		}
	}

	addDir := func(dir string) {
		for _, base := range []string{appName, "config"} {
			add(&jsonPaths, filepath.Join(dir, base+".json"))
			add(&yamlPaths, filepath.Join(dir, base+".yaml"))
			add(&yamlPaths, filepath.Join(dir, base+".yml"))
			add(&tomlPaths, filepath.Join(dir, base+".toml"))
		}
	}

	if wd, err := os.Getwd(); err == nil {
		addDir(wd)
	}
	if dir, err := DefaultConfigDir(); err == nil {
		addDir(dir)
	}
	if runtime.GOOS != "windows" {
		addDir(filepath.Join("/etc", appName))
	}
	return
}
