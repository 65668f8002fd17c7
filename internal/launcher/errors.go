// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"fmt"

	"github.com/cozyos/cozyboot/pkg/types"
)

var (
	// ErrSpawn is the sentinel error wrapped by SpawnError.
	ErrSpawn = errors.New("failed to spawn guest")
	// ErrGuestFailure is the sentinel error wrapped by GuestFailureError.
	ErrGuestFailure = errors.New("guest failed")
)

type (
	// SpawnError is returned when the guest program cannot be started,
	// e.g. because it is not installed or not executable.
	SpawnError struct {
		Program string
		Err     error
	}

	// GuestFailureError is returned when the guest ran but did not exit
	// successfully. Code is what the launcher should exit with.
	GuestFailureError struct {
		Program string
		Code    types.ExitCode
		// Signaled is set when the guest was terminated by a signal and
		// reported no exit code of its own.
		Signaled bool
		// Err is set when waiting for the guest failed for a reason other
		// than a non-zero exit.
		Err error
	}
)

// Error implements the error interface.
func (e *SpawnError) Error() string {
	return fmt.Sprintf("could not start %s: %v", e.Program, e.Err)
}

// Is reports whether target is ErrSpawn.
func (e *SpawnError) Is(target error) bool { return target == ErrSpawn }

// Unwrap returns the underlying exec error.
func (e *SpawnError) Unwrap() error { return e.Err }

// Error implements the error interface.
func (e *GuestFailureError) Error() string {
	switch {
	case e.Signaled:
		return fmt.Sprintf("%s failed to start (terminated by signal)", e.Program)
	case e.Err != nil:
		return fmt.Sprintf("%s failed to start: %v", e.Program, e.Err)
	default:
		return fmt.Sprintf("%s failed to start (exit status %d)", e.Program, e.Code)
	}
}

// Is reports whether target is ErrGuestFailure.
func (e *GuestFailureError) Is(target error) bool { return target == ErrGuestFailure }

// Unwrap returns the wait error, if any.
func (e *GuestFailureError) Unwrap() error { return e.Err }
