// SPDX-License-Identifier: MPL-2.0

package config

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cozyos/cozyboot/internal/hostenv"
)

const (
	// AppName is the application name.
	AppName = "cozyboot"
	// ConfigFileName is the name of the config file inside ConfigDir.
	ConfigFileName = AppName + ".toml"
)

//go:embed default_config.toml
var defaultConfig []byte

// ConfigDir returns the cozyboot configuration directory, <home>/.config/cozyboot.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir(env hostenv.Provider) (string, error) {
	home, err := env.UserHomeDir()
	if err != nil {
		return "", &PathResolutionError{Op: "determine home directory", Err: err}
	}
	return filepath.Join(home, ".config", AppName), nil
}

// ResolvePath returns override verbatim when set, without checking that it
// exists. Otherwise it returns the default file inside ConfigDir.
func ResolvePath(override string, env hostenv.Provider) (string, error) {
	if override != "" {
		return override, nil
	}

	dir, err := ConfigDir(env)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// EnsureHome creates the configuration directory when it does not exist and
// seeds it with the default template. An existing directory is left alone,
// even if the config file inside it is missing. The returned bool reports
// whether the directory was created.
func EnsureHome(env hostenv.Provider) (bool, error) {
	dir, err := ConfigDir(env)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(dir); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, &PathResolutionError{Op: "inspect config directory", Err: err}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, &PathResolutionError{Op: "create config directory", Err: err}
	}

	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), defaultConfig, 0o644); err != nil {
		return true, &PathResolutionError{Op: "write default config", Err: err}
	}

	return true, nil
}
