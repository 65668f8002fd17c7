// SPDX-License-Identifier: MPL-2.0

// Package pathvars expands symbolic placeholders in path-bearing
// configuration fields.
//
// Expansion never fails: a path that cannot be canonicalized (because it
// does not exist yet, for instance) is returned as substituted. Callers
// decide whether a missing path is fatal.
package pathvars
