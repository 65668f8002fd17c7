// SPDX-License-Identifier: MPL-2.0

// Package hostenv abstracts the process-wide lookups cozyboot depends on:
// environment variables and the current user's home directory.
//
// Production code uses OS(); tests supply a Fixed value so results do not
// depend on the machine running them.
package hostenv
