// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the cozyboot command around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cozyboot",
		Short: "Launch CozyOS from a TOML configuration",
		Long: TitleStyle.Render("cozyboot") + SubtitleStyle.Render(" - Launch CozyOS from a TOML configuration") + `

cozyboot reads ~/.config/cozyboot/cozyboot.toml (created on first run),
expands $(devroot) in the [main] paths using $DEVROOT, and starts cozy-os
with the kernel and user roots, every [bootargs] entry, and the [bin]
switches. cozy-os's exit status becomes cozyboot's exit status.

` + SubtitleStyle.Render("Environment:") + `
  DEVROOT                 development root for $(devroot) (default ".")
  COZYBOOT_CONFIG, COZYBOOT_VERBOSE, COZYBOOT_DEBUG, COZYBOOT_BOOT_STRING
                          defaults for the matching flags`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	registerFlags(rootCmd.Flags())

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		v, err := newOptionsViper(cmd.Flags())
		if err != nil {
			return err
		}
		return app.run(cmd.Context(), resolveOptions(v))
	}

	return rootCmd
}

// getVersionString returns a formatted version string for display.
// ldflags win; otherwise the module version recorded by `go install` is used.
func getVersionString() string {
	if Version != "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev (built from source)"
}

// executeOptions configures fang for a single command: no completion or
// man subcommands, and errors rendered by handleError.
func executeOptions() []fang.Option {
	return []fang.Option{
		fang.WithVersion(getVersionString()),
		fang.WithErrorHandler(handleError),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	}
}

// Execute runs the root command and exits the process with the resulting
// code. This is called by main.main().
func Execute() {
	rootCmd := NewRootCommand(NewApp(Dependencies{}))

	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	if err := fang.Execute(context.Background(), rootCmd, executeOptions()...); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}
