package config

import (
	"os"
	"path/filepath"

	"github.com/pagekit/pagekit/internal/config/data"
)

const AppName = "pagekit"

var (
	// AppConfigDir is ~/.config/pagekit
	AppConfigDir string

	// AppStateDir is ~/.local/state/pagekit
	AppStateDir string

	// AppConfigFile is ~/.config/pagekit/pagekit.yaml
	AppConfigFile string

	// AppStateFile is ~/.local/state/pagekit/state.msgpack
	AppStateFile string

	// AppLogFile is ~/.local/state/pagekit/pagekit.log
	AppLogFile string
)

// InitLocs initializes all application directory paths.
// It respects XDG environment variables if set.
func InitLocs() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = filepath.Join(home, ".local", "state")
	}

	AppConfigDir = filepath.Join(configHome, AppName)
	AppStateDir = filepath.Join(stateHome, AppName)

	AppConfigFile = filepath.Join(AppConfigDir, AppName+".yaml")
	AppStateFile = filepath.Join(AppStateDir, "state.msgpack")
	AppLogFile = filepath.Join(AppStateDir, AppName+".log")

	for _, dir := range []string{AppConfigDir, AppStateDir} {
		if _, err := data.EnsureDirPath(dir, 0700); err != nil {
			return err
		}
	}

	return nil
}

// InitLogLoc ensures the log directory exists
func InitLogLoc(path string) error {
	if path == "" {
		return nil
	}
	return data.EnsureFullPath(path, 0700)
}
