// SPDX-License-Identifier: MPL-2.0

package invocation

import (
	"strconv"

	"github.com/cozyos/cozyboot/internal/config"
)

// Guest flag names.
const (
	FlagKernRoot   = "--kern-root"
	FlagUserRoot   = "--user-root"
	FlagBootString = "--boot-string"
	FlagDebug      = "--debug"
	allowPrefix    = "--allow-"
)

type binSwitch struct {
	name  string
	value *bool
}

// Build lays out the guest argument list. cfg.Main must already hold
// expanded roots; Build does no I/O and never fails.
func Build(cfg *config.Config, opts RuntimeOptions) []string {
	args := make([]string, 0, 4+len(cfg.BootArgs)+6+3)

	args = append(args,
		FlagKernRoot, cfg.Main.KernRoot,
		FlagUserRoot, cfg.Main.UserRoot,
	)

	for _, arg := range cfg.BootArgs {
		args = append(args, "--"+arg.Key+"="+arg.Value)
	}

	for _, sw := range binSwitches(cfg.Bin) {
		if sw.value != nil {
			args = append(args, allowPrefix+sw.name, strconv.FormatBool(*sw.value))
		}
	}

	if opts.BootString != nil {
		args = append(args, FlagBootString, *opts.BootString)
	}

	if opts.Debug {
		args = append(args, FlagDebug)
	}

	return args
}

// binSwitches lists the [bin] switches in the order the guest expects them.
func binSwitches(bin config.BinSettings) []binSwitch {
	return []binSwitch{
		{name: "32bit", value: bin.Allow32Bit},
		{name: "universal", value: bin.AllowUniversal},
		{name: "64bit", value: bin.Allow64Bit},
	}
}
