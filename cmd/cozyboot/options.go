// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"

	"github.com/cozyos/cozyboot/internal/invocation"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables mirroring each flag,
// e.g. COZYBOOT_BOOT_STRING for --boot-string.
const EnvPrefix = "COZYBOOT"

const (
	flagConfig     = "config"
	flagVerbose    = "verbose"
	flagDebug      = "debug"
	flagBootString = "boot-string"
)

// registerFlags defines the launcher flags on fs.
func registerFlags(fs *pflag.FlagSet) {
	fs.StringP(flagConfig, "c", "", "config file (default is $HOME/.config/cozyboot/cozyboot.toml)")
	fs.BoolP(flagVerbose, "v", false, "enable verbose output")
	fs.BoolP(flagDebug, "d", false, "start cozy-os in debug mode")
	fs.StringP(flagBootString, "b", "", "boot string to pass directly to cozy-os")
}

// newOptionsViper binds fs to a fresh viper instance that also reads
// COZYBOOT_* environment variables. Explicit flags take precedence over the
// environment, which takes precedence over flag defaults.
func newOptionsViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	return v, nil
}

// resolveOptions reads the runtime options from v. The boot string is
// present when the flag was given (even empty) or its variable is set.
func resolveOptions(v *viper.Viper) invocation.RuntimeOptions {
	opts := invocation.RuntimeOptions{
		ConfigPath: v.GetString(flagConfig),
		Verbose:    v.GetBool(flagVerbose),
		Debug:      v.GetBool(flagDebug),
	}
	if v.IsSet(flagBootString) {
		opts = opts.WithBootString(v.GetString(flagBootString))
	}
	return opts
}
