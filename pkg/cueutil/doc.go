// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates plain Go data against an embedded CUE schema.
//
// Configuration files are parsed by their native decoder first (TOML for
// cozyboot), then checked here in three steps:
//
//  1. Compile the embedded schema and look up the root definition
//  2. Encode the decoded document into CUE and unify it with the definition
//  3. Validate concretely and decode into the target Go struct
//
// # Usage
//
//	//go:embed config_schema.cue
//	var schemaBytes []byte
//
//	doc, err := cueutil.Decode[document](schemaBytes, "#Config", raw, path)
//	if err != nil {
//	    return nil, err // <file>: <path>: <message>
//	}
package cueutil
