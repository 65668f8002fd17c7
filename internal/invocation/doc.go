// SPDX-License-Identifier: MPL-2.0

// Package invocation turns a loaded configuration and the launcher's own
// command-line options into the argument list handed to the guest runtime.
//
// Build is a pure function: the same inputs always yield the same list.
// The layout is fixed:
//
//	--kern-root <dir> --user-root <dir>
//	--<key>=<value> ...                  (bootargs, declaration order)
//	--allow-32bit <bool> --allow-universal <bool> --allow-64bit <bool>
//	--boot-string <s>                    (when given)
//	--debug                              (when set)
package invocation
