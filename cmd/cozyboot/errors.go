// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/cozyos/cozyboot/internal/config"
	"github.com/cozyos/cozyboot/internal/issue"

	"github.com/charmbracelet/fang"
)

// renderError writes a failure for the user. Parse errors are followed by
// the raw configuration text so the offending line can be spotted.
func renderError(w io.Writer, err error, verbose bool) {
	fmt.Fprintln(w, ErrorStyle.Render("Error:")+" "+formatErrorForDisplay(err, verbose))

	var parseErr *config.ParseError
	if errors.As(err, &parseErr) {
		fmt.Fprintln(w, SubtitleStyle.Render("Config content:"))
		fmt.Fprintln(w, parseErr.Content)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// handleError is the fang error handler. Errors from the boot pipeline were
// already rendered by App.run; everything else (flag parsing, unknown
// arguments) gets fang's default treatment.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
