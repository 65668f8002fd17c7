// SPDX-License-Identifier: MPL-2.0

// Package launcher starts the guest runtime and relays its exit status.
//
// The guest inherits the launcher's standard streams and environment.
// Launch blocks until the guest terminates; no timeout is applied.
package launcher
