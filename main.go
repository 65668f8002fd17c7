// SPDX-License-Identifier: MPL-2.0

// Command cozyboot launches the CozyOS guest runtime from a TOML configuration.
package main

import cmd "github.com/cozyos/cozyboot/cmd/cozyboot"

func main() {
	cmd.Execute()
}
