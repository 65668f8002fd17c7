// SPDX-License-Identifier: MPL-2.0

package invocation

import (
	"slices"
	"testing"

	"github.com/cozyos/cozyboot/internal/config"
)

func boolPtr(b bool) *bool { return &b }

func baseConfig() *config.Config {
	return &config.Config{
		Main: config.MainConfig{KernRoot: "/opt/cozy/kernel", UserRoot: "/opt/cozy/user"},
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  func() *config.Config
		opts RuntimeOptions
		want []string
	}{
		{
			name: "roots only",
			cfg:  baseConfig,
			want: []string{"--kern-root", "/opt/cozy/kernel", "--user-root", "/opt/cozy/user"},
		},
		{
			name: "bootargs keep declaration order",
			cfg: func() *config.Config {
				c := baseConfig()
				c.BootArgs = []config.BootArg{{Key: "b", Value: "2"}, {Key: "a", Value: "1"}}
				return c
			},
			want: []string{
				"--kern-root", "/opt/cozy/kernel", "--user-root", "/opt/cozy/user",
				"--b=2", "--a=1",
			},
		},
		{
			name: "bootarg value containing spaces and equals is one token",
			cfg: func() *config.Config {
				c := baseConfig()
				c.BootArgs = []config.BootArg{{Key: "cmdline", Value: "quiet root=/dev/vda"}}
				return c
			},
			want: []string{
				"--kern-root", "/opt/cozy/kernel", "--user-root", "/opt/cozy/user",
				"--cmdline=quiet root=/dev/vda",
			},
		},
		{
			name: "only allow_32bit present",
			cfg: func() *config.Config {
				c := baseConfig()
				c.Bin.Allow32Bit = boolPtr(true)
				return c
			},
			want: []string{
				"--kern-root", "/opt/cozy/kernel", "--user-root", "/opt/cozy/user",
				"--allow-32bit", "true",
			},
		},
		{
			name: "bin switches in fixed order",
			cfg: func() *config.Config {
				c := baseConfig()
				c.Bin = config.BinSettings{
					Allow64Bit:     boolPtr(true),
					AllowUniversal: boolPtr(false),
					Allow32Bit:     boolPtr(false),
				}
				return c
			},
			want: []string{
				"--kern-root", "/opt/cozy/kernel", "--user-root", "/opt/cozy/user",
				"--allow-32bit", "false", "--allow-universal", "false", "--allow-64bit", "true",
			},
		},
		{
			name: "boot string then debug last",
			cfg: func() *config.Config {
				c := baseConfig()
				c.BootArgs = []config.BootArg{{Key: "mem", Value: "512M"}}
				c.Bin.AllowUniversal = boolPtr(true)
				return c
			},
			opts: RuntimeOptions{Debug: true}.WithBootString("single user"),
			want: []string{
				"--kern-root", "/opt/cozy/kernel", "--user-root", "/opt/cozy/user",
				"--mem=512M",
				"--allow-universal", "true",
				"--boot-string", "single user",
				"--debug",
			},
		},
		{
			name: "empty boot string still forwarded",
			cfg:  baseConfig,
			opts: RuntimeOptions{}.WithBootString(""),
			want: []string{
				"--kern-root", "/opt/cozy/kernel", "--user-root", "/opt/cozy/user",
				"--boot-string", "",
			},
		},
		{
			name: "verbose and config path do not reach the guest",
			cfg:  baseConfig,
			opts: RuntimeOptions{Verbose: true, ConfigPath: "/etc/cozy.toml"},
			want: []string{"--kern-root", "/opt/cozy/kernel", "--user-root", "/opt/cozy/user"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Build(tt.cfg(), tt.opts)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Build() =\n  %q\nwant\n  %q", got, tt.want)
			}
		})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.BootArgs = []config.BootArg{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}, {Key: "c", Value: "3"}}
	cfg.Bin.Allow64Bit = boolPtr(true)
	opts := RuntimeOptions{Debug: true}.WithBootString("x")

	first := Build(cfg, opts)
	for range 10 {
		if again := Build(cfg, opts); !slices.Equal(first, again) {
			t.Fatalf("Build() not deterministic:\n  %q\n  %q", first, again)
		}
	}
}

func TestBuild_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.BootArgs = []config.BootArg{{Key: "a", Value: "1"}}
	before := slices.Clone(cfg.BootArgs)

	args := Build(cfg, RuntimeOptions{})
	args[0] = "mutated"

	if !slices.Equal(cfg.BootArgs, before) {
		t.Errorf("BootArgs changed: %v", cfg.BootArgs)
	}
	if cfg.Main.KernRoot != "/opt/cozy/kernel" {
		t.Errorf("KernRoot changed: %q", cfg.Main.KernRoot)
	}
}

func TestBuild_ParsedConfigOrder(t *testing.T) {
	t.Parallel()

	data := []byte(`
[main]
kern_root = "/k"
user_root = "/u"

[bootargs]
a = "1"
b = "2"
`)
	cfg, err := config.Parse("c.toml", data)
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}

	args := Build(cfg, RuntimeOptions{})
	ia, ib := slices.Index(args, "--a=1"), slices.Index(args, "--b=2")
	if ia < 0 || ib < 0 || ia >= ib {
		t.Errorf("expected --a=1 before --b=2, got %q", args)
	}
}
