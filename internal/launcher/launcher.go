// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/cozyos/cozyboot/pkg/types"
)

// DefaultProgram is the guest runtime executable, looked up on PATH.
const DefaultProgram = "cozy-os"

type (
	// Launcher runs the guest program synchronously.
	Launcher struct {
		program string
		stdin   io.Reader
		stdout  io.Writer
		stderr  io.Writer
		// command builds the process; replaced in tests.
		command func(name string, args ...string) *exec.Cmd
	}

	// Option configures a Launcher.
	Option func(*Launcher)
)

// WithStdio sets the streams handed to the guest. The defaults are the
// launcher's own stdin, stdout and stderr.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(l *Launcher) {
		l.stdin = stdin
		l.stdout = stdout
		l.stderr = stderr
	}
}

// New creates a Launcher for program. An empty program selects DefaultProgram.
func New(program string, opts ...Option) *Launcher {
	if program == "" {
		program = DefaultProgram
	}
	l := &Launcher{
		program: program,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		command: exec.Command,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Program returns the executable this Launcher starts.
func (l *Launcher) Program() string {
	return l.program
}

// Launch starts the guest with args and waits for it to exit.
//
// It returns ExitSuccess and a nil error when the guest exits with code 0.
// A guest that cannot be started yields a *SpawnError; one that exits
// non-zero or is killed yields a *GuestFailureError whose Code is the
// code to propagate.
func (l *Launcher) Launch(args []string) (types.ExitCode, error) {
	cmd := l.command(l.program, args...)
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr

	if err := cmd.Start(); err != nil {
		return types.ExitFailure, &SpawnError{Program: l.program, Err: err}
	}

	return l.outcome(cmd.Wait())
}

// outcome maps the result of cmd.Wait to an exit code.
func (l *Launcher) outcome(err error) (types.ExitCode, error) {
	if err == nil {
		return types.ExitSuccess, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		raw := exitErr.ExitCode()
		return types.FromProcess(raw), &GuestFailureError{
			Program:  l.program,
			Code:     types.FromProcess(raw),
			Signaled: raw < 0,
		}
	}

	return types.ExitFailure, &GuestFailureError{Program: l.program, Code: types.ExitFailure, Err: err}
}
