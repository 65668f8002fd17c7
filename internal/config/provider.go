// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"

	"github.com/cozyos/cozyboot/internal/hostenv"
)

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	// Otherwise the default file inside ConfigDir is used.
	ConfigFilePath string
}

// Provider loads configuration from explicit options.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*File, error)
}

type fileProvider struct {
	env hostenv.Provider
}

// NewProvider creates a configuration provider that resolves default
// locations through env.
func NewProvider(env hostenv.Provider) Provider {
	return &fileProvider{env: env}
}

// Load resolves the config path and reads the file found there.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*File, error) {
	path, err := ResolvePath(opts.ConfigFilePath, p.env)
	if err != nil {
		return nil, err
	}
	return loadFile(ctx, path)
}
