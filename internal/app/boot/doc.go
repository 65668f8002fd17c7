// SPDX-License-Identifier: MPL-2.0

// Package boot runs the cozyboot pipeline: ensure the config home, resolve
// and load the configuration, expand path variables, validate the kernel
// root, build the guest arguments, and launch the guest.
//
// Stages run strictly in sequence; the first failure aborts the rest.
// The CLI layer owns rendering and process exit.
package boot
