// SPDX-License-Identifier: MPL-2.0

// Package cmd implements the cozyboot command line.
//
// cozyboot has a single root command with no subcommands. Flags may also be
// supplied through COZYBOOT_* environment variables; an explicit flag always
// wins. Errors are rendered here and turned into the process exit code by
// Execute, which is the only place that calls os.Exit.
package cmd
