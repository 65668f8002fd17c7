// SPDX-License-Identifier: MPL-2.0

// Package config locates and loads the cozyboot configuration file.
//
// The file lives at ~/.config/cozyboot/cozyboot.toml unless --config points
// elsewhere. On first run the directory is created and seeded with a bundled
// default template. The TOML document is parsed with go-toml and validated
// against a CUE schema (config_schema.cue); the [bootargs] table keeps the
// order in which its keys were declared.
package config
