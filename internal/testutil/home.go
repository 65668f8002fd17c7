// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"
)

// HomeEnvVar names the variable os.UserHomeDir reads on this platform.
func HomeEnvVar() string {
	if runtime.GOOS == "windows" {
		return "USERPROFILE"
	}
	return "HOME"
}

// TempHome points the home directory at a fresh t.TempDir for the rest of
// the test and returns it. The previous value is restored on cleanup, so
// callers must not run in parallel.
func TempHome(t testing.TB) string {
	t.Helper()

	dir := t.TempDir()
	t.Cleanup(MustSetenv(t, HomeEnvVar(), dir))
	return dir
}
