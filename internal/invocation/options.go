// SPDX-License-Identifier: MPL-2.0

package invocation

// RuntimeOptions holds the launcher flags for one run. It is built once at
// startup and only read afterwards.
type RuntimeOptions struct {
	// ConfigPath overrides the default config location when non-empty.
	ConfigPath string
	Verbose    bool
	Debug      bool
	// BootString is forwarded to the guest when non-nil. An explicit empty
	// string is still forwarded.
	BootString *string
}

// WithBootString returns a copy of o carrying s as the boot string.
func (o RuntimeOptions) WithBootString(s string) RuntimeOptions {
	o.BootString = &s
	return o
}
