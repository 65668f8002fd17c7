// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigNotFound is the sentinel error wrapped by NotFoundError.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrConfigParse is the sentinel error wrapped by ParseError.
	ErrConfigParse = errors.New("config parse error")
	// ErrPathResolution is the sentinel error wrapped by PathResolutionError.
	ErrPathResolution = errors.New("config path resolution failed")
)

type (
	// NotFoundError is returned when no file exists at the resolved path.
	NotFoundError struct {
		Path string
	}

	// ParseError is returned when the file is not valid TOML or does not
	// match the schema. Content holds the raw text so it can be shown to
	// the user alongside the diagnostic.
	ParseError struct {
		Path       string
		Content    string
		Diagnostic string
		Err        error
	}

	// PathResolutionError is returned when the configuration home cannot be
	// determined or created.
	PathResolutionError struct {
		Op  string
		Err error
	}
)

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("configuration file not found at %s", e.Path)
}

// Unwrap returns ErrConfigNotFound for errors.Is() compatibility.
func (e *NotFoundError) Unwrap() error { return ErrConfigNotFound }

// Error returns the parser diagnostic.
func (e *ParseError) Error() string {
	return e.Diagnostic
}

// Is reports whether target is ErrConfigParse.
func (e *ParseError) Is(target error) bool { return target == ErrConfigParse }

// Unwrap returns the underlying decoder or schema error.
func (e *ParseError) Unwrap() error { return e.Err }

// Error implements the error interface.
func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Is reports whether target is ErrPathResolution.
func (e *PathResolutionError) Is(target error) bool { return target == ErrPathResolution }

// Unwrap returns the underlying filesystem or lookup error.
func (e *PathResolutionError) Unwrap() error { return e.Err }
