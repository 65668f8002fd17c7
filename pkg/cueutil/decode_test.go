// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Doc: {
	name!: string & !=""
	size?: int
	labels?: [string]: string
	...
}
`

type testDoc struct {
	Name string `json:"name"`
	Size *int   `json:"size"`
}

func TestDecode_Valid(t *testing.T) {
	t.Parallel()

	doc, err := Decode[testDoc]([]byte(testSchema), "#Doc", map[string]any{
		"name":  "kernel",
		"size":  int64(3),
		"extra": true,
	}, "doc.toml")
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if doc.Name != "kernel" {
		t.Errorf("Name = %q, want %q", doc.Name, "kernel")
	}
	if doc.Size == nil || *doc.Size != 3 {
		t.Errorf("Size = %v, want 3", doc.Size)
	}
}

func TestDecode_OptionalAbsent(t *testing.T) {
	t.Parallel()

	doc, err := Decode[testDoc]([]byte(testSchema), "#Doc", map[string]any{"name": "k"}, "doc.toml")
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if doc.Size != nil {
		t.Errorf("Size = %v, want nil", *doc.Size)
	}
}

func TestDecode_Violations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     map[string]any
		wantPath string
	}{
		{name: "missing required", data: map[string]any{}, wantPath: "name"},
		{name: "wrong type", data: map[string]any{"name": "k", "size": "big"}, wantPath: "size"},
		{name: "empty string", data: map[string]any{"name": ""}, wantPath: "name"},
		{name: "nested key", data: map[string]any{"name": "k", "labels": map[string]any{"console": int64(1)}}, wantPath: "labels.console"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode[testDoc]([]byte(testSchema), "#Doc", tt.data, "doc.toml")
			if err == nil {
				t.Fatal("Decode() returned nil error")
			}
			msg := err.Error()
			if !strings.HasPrefix(msg, "doc.toml: ") {
				t.Errorf("error %q should start with the file name", msg)
			}
			if !strings.Contains(msg, tt.wantPath) {
				t.Errorf("error %q should mention %q", msg, tt.wantPath)
			}
		})
	}
}

func TestDecode_UnknownDefinition(t *testing.T) {
	t.Parallel()

	_, err := Decode[testDoc]([]byte(testSchema), "#Missing", map[string]any{"name": "k"}, "")
	if err == nil || !strings.Contains(err.Error(), "#Missing") {
		t.Errorf("Decode() error = %v, want mention of #Missing", err)
	}
}
