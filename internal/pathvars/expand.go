// SPDX-License-Identifier: MPL-2.0

package pathvars

import (
	"path/filepath"
	"strings"

	"github.com/cozyos/cozyboot/internal/hostenv"
)

const (
	// DevRootToken is replaced by the development root.
	DevRootToken = "$(devroot)"
	// DevRootEnv names the environment variable holding the development root.
	DevRootEnv = "DEVROOT"
	// DefaultDevRoot is used when DevRootEnv is unset.
	DefaultDevRoot = "."
)

// Expander substitutes placeholders using values from a host environment.
type Expander struct {
	env hostenv.Provider
}

// NewExpander creates an Expander reading variables from env.
func NewExpander(env hostenv.Provider) *Expander {
	return &Expander{env: env}
}

// DevRoot returns the development root: $DEVROOT, or "." when unset.
// A variable set to the empty string is honored as is.
func (e *Expander) DevRoot() string {
	if v, ok := e.env.LookupEnv(DevRootEnv); ok {
		return v
	}
	return DefaultDevRoot
}

// Substitute replaces every $(devroot) token in raw without touching the
// filesystem.
func (e *Expander) Substitute(raw string) string {
	if !strings.Contains(raw, DevRootToken) {
		return raw
	}
	return strings.ReplaceAll(raw, DevRootToken, e.DevRoot())
}

// Expand substitutes placeholders and then canonicalizes the result to an
// absolute, symlink-free path. When canonicalization fails the substituted
// string is returned unchanged.
func (e *Expander) Expand(raw string) string {
	substituted := e.Substitute(raw)
	if canonical, ok := Canonicalize(substituted); ok {
		return canonical
	}
	return substituted
}

// Canonicalize resolves path to an absolute path with all symlinks
// evaluated. It reports false if the path does not exist or cannot be
// resolved.
func Canonicalize(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", false
	}
	return resolved, true
}
