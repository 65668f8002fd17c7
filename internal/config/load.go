// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"

	"github.com/cozyos/cozyboot/internal/issue"
	"github.com/cozyos/cozyboot/pkg/cueutil"

	"github.com/pelletier/go-toml/v2"
)

//go:embed config_schema.cue
var configSchema []byte

// loadFile reads and parses the configuration at path. Parsing is
// all-or-nothing: any decode or schema error discards the whole file.
func loadFile(ctx context.Context, path string) (*File, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithSuggestion("Check the path passed to --config").
				WithSuggestion("Remove ~/.config/" + AppName + " to regenerate the default configuration").
				Wrap(&NotFoundError{Path: path}).
				BuildError()
		}
		return nil, issue.NewErrorContext().
			WithOperation("read configuration").
			WithResource(path).
			Wrap(err).
			BuildError()
	}

	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("read configuration").
			Wrap(err).
			BuildError()
	}

	cfg, err := Parse(path, data)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("parse configuration").
			WithSuggestion("[main] needs kern_root and user_root strings").
			WithSuggestion("[bootargs] values must be strings and [bin] switches booleans").
			Wrap(err).
			BuildError()
	}

	return &File{Path: path, Content: string(data), Config: cfg}, nil
}

// Parse decodes TOML text into a validated Config. path is only used for
// diagnostics. Errors are returned as *ParseError.
func Parse(path string, data []byte) (*Config, error) {
	raw := map[string]any{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, newParseError(path, data, err)
	}

	doc, err := cueutil.Decode[document](configSchema, "#Config", raw, path)
	if err != nil {
		return nil, newParseError(path, data, err)
	}

	order, err := bootArgOrder(data)
	if err != nil {
		return nil, newParseError(path, data, err)
	}

	return &Config{
		Main:     doc.Main,
		BootArgs: orderBootArgs(doc.BootArgs, order),
		Bin:      doc.Bin,
	}, nil
}

// orderBootArgs lays out values following the declared key order. Keys the
// order scan did not see are appended sorted, which keeps the result stable.
func orderBootArgs(values map[string]string, order []string) []BootArg {
	if len(values) == 0 {
		return nil
	}

	args := make([]BootArg, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, key := range order {
		value, ok := values[key]
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		args = append(args, BootArg{Key: key, Value: value})
	}

	for _, key := range slices.Sorted(maps.Keys(values)) {
		if !seen[key] {
			args = append(args, BootArg{Key: key, Value: values[key]})
		}
	}

	return args
}

func newParseError(path string, data []byte, err error) *ParseError {
	diagnostic := err.Error()
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		diagnostic = fmt.Sprintf("%s:%d:%d: %s\n%s", path, row, col, decodeErr.Error(), decodeErr.String())
	}

	return &ParseError{
		Path:       path,
		Content:    string(data),
		Diagnostic: diagnostic,
		Err:        err,
	}
}
