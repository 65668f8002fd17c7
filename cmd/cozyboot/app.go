// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/cozyos/cozyboot/internal/app/boot"
	"github.com/cozyos/cozyboot/internal/config"
	"github.com/cozyos/cozyboot/internal/hostenv"
	"github.com/cozyos/cozyboot/internal/invocation"
	"github.com/cozyos/cozyboot/pkg/types"

	"github.com/charmbracelet/log"
)

type (
	// Runner executes one boot with resolved options.
	// *boot.Pipeline satisfies it.
	Runner interface {
		Run(ctx context.Context, opts invocation.RuntimeOptions) (types.ExitCode, error)
	}

	// App is the composition root for the CLI layer.
	App struct {
		newRunner func(logger *log.Logger) Runner
		stderr    io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		// NewRunner builds the runner once the log level is known.
		NewRunner func(logger *log.Logger) Runner
		Env       hostenv.Provider
		Stderr    io.Writer
	}
)

// NewApp creates an App from deps.
func NewApp(deps Dependencies) *App {
	if deps.Env == nil {
		deps.Env = hostenv.OS()
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.NewRunner == nil {
		env := deps.Env
		deps.NewRunner = func(logger *log.Logger) Runner {
			return boot.New(boot.Dependencies{Env: env, Logger: logger})
		}
	}

	return &App{newRunner: deps.NewRunner, stderr: deps.Stderr}
}

// run boots the guest. Failures are rendered to stderr and returned as
// *ExitError carrying the exit code.
func (a *App) run(ctx context.Context, opts invocation.RuntimeOptions) error {
	code, err := a.newRunner(a.logger(opts.Verbose)).Run(ctx, opts)
	if err == nil {
		return nil
	}

	renderError(a.stderr, err, opts.Verbose)
	if code.IsSuccess() {
		code = types.ExitFailure
	}
	return &ExitError{Code: code, Err: err}
}

func (a *App) logger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.InfoLevel
	}
	return log.NewWithOptions(a.stderr, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
}
