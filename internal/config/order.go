// SPDX-License-Identifier: MPL-2.0

package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2/unstable"
)

const bootArgsTable = "bootargs"

// bootArgOrder scans the document and returns the bootargs keys in the order
// they were written. Three spellings are recognized:
//
//	[bootargs]              # table header followed by key/values
//	bootargs = { a = "1" }  # inline table at the root
//	bootargs.a = "1"        # dotted key at the root
func bootArgOrder(data []byte) ([]string, error) {
	var (
		p      unstable.Parser
		order  []string
		atRoot = true
		inArgs bool
	)

	p.Reset(data)
	for p.NextExpression() {
		expr := p.Expression()

		switch expr.Kind {
		case unstable.Table, unstable.ArrayTable:
			key := keyParts(expr.Key())
			atRoot = false
			inArgs = expr.Kind == unstable.Table && len(key) == 1 && key[0] == bootArgsTable

		case unstable.KeyValue:
			key := keyParts(expr.Key())
			if inArgs {
				order = append(order, strings.Join(key, "."))
				continue
			}
			if !atRoot || key[0] != bootArgsTable {
				continue
			}
			if len(key) == 2 {
				order = append(order, key[1])
				continue
			}
			if value := expr.Value(); len(key) == 1 && value.Kind == unstable.InlineTable {
				children := value.Children()
				for children.Next() {
					order = append(order, strings.Join(keyParts(children.Node().Key()), "."))
				}
			}
		}
	}

	return order, p.Error()
}

func keyParts(it unstable.Iterator) []string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}
