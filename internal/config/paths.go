// ABOUTME: Standard filesystem paths for boxwidth configuration
// ABOUTME: Honours $BOXWIDTH_CONFIG, then $XDG_CONFIG_HOME, then ~/.config; plus a project-local file

package config

import (
	"os"
	"path/filepath"
)

const (
	appName         = "boxwidth"
	configFileName  = "config.yaml"
	projectFileName = ".boxwidth.yaml"

	// EnvConfig names a config file that replaces the global one.
	EnvConfig = "BOXWIDTH_CONFIG"
)

// GlobalDir returns the user-global config directory.
func GlobalDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+appName)
	}
	return filepath.Join(home, ".config", appName)
}

// GlobalConfigFile returns $BOXWIDTH_CONFIG when set, otherwise config.yaml
// inside GlobalDir.
func GlobalConfigFile() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return filepath.Join(GlobalDir(), configFileName)
}

// ProjectConfigFile returns the project-local config file in projectRoot.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(projectRoot, projectFileName)
}
