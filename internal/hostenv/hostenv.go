// SPDX-License-Identifier: MPL-2.0

package hostenv

import (
	"errors"
	"os"
)

// ErrNoHomeDir is returned by Fixed when no home directory was configured.
var ErrNoHomeDir = errors.New("home directory not set")

type (
	// Provider resolves host environment values.
	Provider interface {
		// LookupEnv reports the value of an environment variable and whether it is set.
		LookupEnv(key string) (string, bool)
		// UserHomeDir returns the current user's home directory.
		UserHomeDir() (string, error)
	}

	osProvider struct{}

	// Fixed is a Provider backed by static values.
	// An empty Home makes UserHomeDir fail with ErrNoHomeDir.
	Fixed struct {
		Env  map[string]string
		Home string
	}
)

// OS returns the Provider backed by the real process environment.
func OS() Provider {
	return osProvider{}
}

func (osProvider) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (osProvider) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// LookupEnv implements Provider.
func (f Fixed) LookupEnv(key string) (string, bool) {
	v, ok := f.Env[key]
	return v, ok
}

// UserHomeDir implements Provider.
func (f Fixed) UserHomeDir() (string, error) {
	if f.Home == "" {
		return "", ErrNoHomeDir
	}
	return f.Home, nil
}
