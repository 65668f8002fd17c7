// SPDX-License-Identifier: MPL-2.0

package boot

import (
	"errors"
	"fmt"
)

// ErrPathValidation is the sentinel error wrapped by PathValidationError.
var ErrPathValidation = errors.New("path validation failed")

// PathValidationError is returned when the expanded kernel root does not exist.
type PathValidationError struct {
	Expanded string
	Original string
}

// Error implements the error interface.
func (e *PathValidationError) Error() string {
	return fmt.Sprintf("OS path '%s' does not exist (expanded from '%s')", e.Expanded, e.Original)
}

// Unwrap returns ErrPathValidation for errors.Is() compatibility.
func (e *PathValidationError) Unwrap() error { return ErrPathValidation }
