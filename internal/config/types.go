// SPDX-License-Identifier: MPL-2.0

package config

type (
	// Config is the validated content of a cozyboot.toml file.
	// It is built once per run and not modified afterwards.
	Config struct {
		Main MainConfig
		// BootArgs holds the [bootargs] entries in declaration order.
		BootArgs []BootArg
		Bin      BinSettings
	}

	// MainConfig holds the required [main] table.
	// Both roots may contain the $(devroot) token and are expanded later.
	MainConfig struct {
		KernRoot string `json:"kern_root"`
		UserRoot string `json:"user_root"`
	}

	// BootArg is one free-form key/value pair forwarded to the guest.
	BootArg struct {
		Key   string
		Value string
	}

	// BinSettings holds the optional [bin] switches. A nil field was not
	// present in the file.
	BinSettings struct {
		Allow32Bit     *bool `json:"allow_32bit"`
		AllowUniversal *bool `json:"allow_universal"`
		Allow64Bit     *bool `json:"allow_64bit"`
	}

	// File is a loaded configuration together with where it came from.
	File struct {
		// Path is the resolved location the file was read from.
		Path string
		// Content is the raw file text.
		Content string
		Config  *Config
	}

	// document mirrors the schema for CUE decoding. bootargs arrives as a map
	// and is ordered separately.
	document struct {
		Main     MainConfig        `json:"main"`
		BootArgs map[string]string `json:"bootargs"`
		Bin      BinSettings       `json:"bin"`
	}
)
