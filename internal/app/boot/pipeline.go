// SPDX-License-Identifier: MPL-2.0

package boot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cozyos/cozyboot/internal/config"
	"github.com/cozyos/cozyboot/internal/hostenv"
	"github.com/cozyos/cozyboot/internal/invocation"
	"github.com/cozyos/cozyboot/internal/issue"
	"github.com/cozyos/cozyboot/internal/launcher"
	"github.com/cozyos/cozyboot/internal/pathvars"
	"github.com/cozyos/cozyboot/pkg/types"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/syntax"
)

type (
	// GuestLauncher starts the guest runtime and waits for it.
	// *launcher.Launcher satisfies it.
	GuestLauncher interface {
		Program() string
		Launch(args []string) (types.ExitCode, error)
	}

	// Dependencies are the collaborators a Pipeline needs. Nil fields fall
	// back to the real host environment, the file-based config provider,
	// the default guest program, and a discarding logger.
	Dependencies struct {
		Env      hostenv.Provider
		Configs  config.Provider
		Launcher GuestLauncher
		Logger   *log.Logger
	}

	// Pipeline runs one boot from configuration to guest exit.
	Pipeline struct {
		env      hostenv.Provider
		configs  config.Provider
		launcher GuestLauncher
		logger   *log.Logger
		expander *pathvars.Expander
	}
)

// New creates a Pipeline from deps.
func New(deps Dependencies) *Pipeline {
	if deps.Env == nil {
		deps.Env = hostenv.OS()
	}
	if deps.Configs == nil {
		deps.Configs = config.NewProvider(deps.Env)
	}
	if deps.Launcher == nil {
		deps.Launcher = launcher.New(launcher.DefaultProgram)
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}

	return &Pipeline{
		env:      deps.Env,
		configs:  deps.Configs,
		launcher: deps.Launcher,
		logger:   deps.Logger,
		expander: pathvars.NewExpander(deps.Env),
	}
}

// Run executes the pipeline with opts. On success it returns ExitSuccess.
// On failure the returned code is the one the process should exit with:
// the guest's own code for a *launcher.GuestFailureError, 1 otherwise.
func (p *Pipeline) Run(ctx context.Context, opts invocation.RuntimeOptions) (types.ExitCode, error) {
	created, err := config.EnsureHome(p.env)
	if err != nil {
		return types.ExitFailure, err
	}
	if created {
		p.logger.Info("Created default configuration")
	}

	path, err := config.ResolvePath(opts.ConfigPath, p.env)
	if err != nil {
		return types.ExitFailure, err
	}

	p.logger.Info("Reading configuration", "path", path)
	file, err := p.configs.Load(ctx, config.LoadOptions{ConfigFilePath: path})
	if err != nil {
		return types.ExitFailure, err
	}
	p.logger.Info("Config content", "content", file.Content)

	cfg, err := p.expand(file.Config)
	if err != nil {
		return types.ExitFailure, err
	}

	p.logger.Info("Building " + p.launcher.Program() + " command")
	args := invocation.Build(cfg, opts)

	if opts.Debug {
		p.logger.Info("Debug mode enabled")
	}

	p.logger.Info("Starting "+p.launcher.Program(), "command", commandLine(p.launcher.Program(), args))
	code, err := p.launcher.Launch(args)
	if err != nil {
		var spawnErr *launcher.SpawnError
		if errors.As(err, &spawnErr) {
			return code, issue.NewErrorContext().
				WithOperation("start guest runtime").
				WithSuggestion(fmt.Sprintf("Make sure %s is installed and on your PATH", spawnErr.Program)).
				Wrap(err).
				BuildError()
		}
		return code, err
	}

	p.logger.Info(p.launcher.Program() + " started successfully")
	return types.ExitSuccess, nil
}

// expand returns a copy of cfg whose roots have $(devroot) expanded. The
// kernel root must exist afterwards; the user root is not checked since
// the guest may create it.
func (p *Pipeline) expand(cfg *config.Config) (*config.Config, error) {
	kernRoot := p.expander.Expand(cfg.Main.KernRoot)
	if _, err := os.Stat(kernRoot); err != nil {
		return nil, &PathValidationError{Expanded: kernRoot, Original: cfg.Main.KernRoot}
	}

	expanded := *cfg
	expanded.Main = config.MainConfig{
		KernRoot: kernRoot,
		UserRoot: p.expander.Expand(cfg.Main.UserRoot),
	}
	return &expanded, nil
}

// commandLine renders program and args as a shell command for logging.
func commandLine(program string, args []string) string {
	words := make([]string, 0, len(args)+1)
	for _, w := range append([]string{program}, args...) {
		quoted, err := syntax.Quote(w, syntax.LangBash)
		if err != nil {
			quoted = strconv.Quote(w)
		}
		words = append(words, quoted)
	}
	return strings.Join(words, " ")
}
