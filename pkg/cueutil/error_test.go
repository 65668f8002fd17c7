// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatError_Nil(t *testing.T) {
	t.Parallel()

	if err := FormatError(nil, "cozyboot.toml"); err != nil {
		t.Errorf("FormatError(nil) = %v, want nil", err)
	}
}

func TestFormatError_NonCUE(t *testing.T) {
	t.Parallel()

	base := errors.New("plain failure")
	err := FormatError(base, "cozyboot.toml")
	if err == nil {
		t.Fatal("FormatError() returned nil")
	}
	if !errors.Is(err, base) {
		t.Errorf("FormatError() should wrap non-CUE errors, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "cozyboot.toml: ") {
		t.Errorf("FormatError() = %q, want file prefix", err.Error())
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 10), 10, "f"); err != nil {
		t.Errorf("CheckFileSize at limit returned %v", err)
	}
	err := CheckFileSize(make([]byte, 11), 10, "f")
	if err == nil {
		t.Fatal("CheckFileSize over limit returned nil")
	}
	if !strings.Contains(err.Error(), "exceeds maximum 10 bytes") {
		t.Errorf("unexpected message: %v", err)
	}
}
