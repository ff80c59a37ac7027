// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hetero

import (
	"errors"
	"fmt"
	"strings"
)

// Violations are reported by panicking with one of the error values below.
// They are programmer errors: the shape and the families of the operands
// are fixed before the algorithm runs, so the failure is raised at the call
// site before any element is visited.

var (
	// ErrEmptyAccess is raised when extracting the value of an empty Maybe.
	ErrEmptyAccess = errors.New("hetero: access to the value of an empty maybe")

	// ErrWrongSide is raised when extracting the absent side of an Either.
	ErrWrongSide = errors.New("hetero: access to the absent side of an either")
)

// CapabilityError reports an operation invoked on operands whose tags do not
// provide the required capability.
type CapabilityError struct {
	Method     string
	Tags       []Tag
	Capability string
}

func (e *CapabilityError) Error() string {
	names := make([]string, len(e.Tags))
	for i, t := range e.Tags {
		names[i] = t.String()
	}
	return fmt.Sprintf("hetero: %s is not implemented for (%s): %s required",
		e.Method, strings.Join(names, ", "), e.Capability)
}

// ShapeError reports a structural precondition violation: mismatched lengths,
// an index out of range, or an element of an unexpected type.
type ShapeError struct {
	Op     string
	Reason string
}

func (e *ShapeError) Error() string {
	return "hetero: " + e.Op + ": " + e.Reason
}

// ConversionError reports a [To] call with no registered conversion.
type ConversionError struct {
	From, To Tag
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("hetero: no conversion from %s to %s", e.From, e.To)
}

//go:noinline
func shapeViolation(op, format string, args ...any) {
	panic(&ShapeError{Op: op, Reason: fmt.Sprintf(format, args...)})
}

func checkIndex(op string, i, n int) {
	if i < 0 || i >= n {
		shapeViolation(op, "index %d out of range [0, %d)", i, n)
	}
}
