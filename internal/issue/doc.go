// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error values that carry the failed
// operation, the resource involved, and hints on how to fix the problem.
package issue
