// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import "github.com/pkg/errors"

// Sentinel errors for precondition violations and engine failures. Per the
// core's error taxonomy, all of these except ErrNotConverged are caller
// bugs and are only ever surfaced wrapped in a panic; ErrNotConverged is
// returned from Tick/Write, and AddComponent, which has no error result,
// panics with it.
var (
	// ErrInvalidPin is raised when a local pin index is outside [1, pin_count].
	ErrInvalidPin = errors.New("gatesim: invalid pin index")
	// ErrTooManyPins is raised by ReadU32/WriteU32 when given more than 32 pins.
	ErrTooManyPins = errors.New("gatesim: cannot pack more than 32 pins into a word")
	// ErrBulkLengthMismatch is raised by ConnectBulk when the two pin lists differ in length.
	ErrBulkLengthMismatch = errors.New("gatesim: bulk connection pin counts differ")
	// ErrUnknownComponent is raised when a ComponentKey does not name a registered component.
	ErrUnknownComponent = errors.New("gatesim: unknown component key")
	// ErrNotConverged is raised when a propagation round exceeds the configured bound.
	ErrNotConverged = errors.New("gatesim: propagation did not converge")
)

// ConvergenceError reports a propagation that failed to settle within the
// configured round bound. It wraps ErrNotConverged with the number of
// rounds counted when the bound was exceeded, in the style of the
// teacher's errors.Wrap(err, context) convention.
type ConvergenceError struct {
	Rounds int
	err    error
}

func (e *ConvergenceError) Error() string {
	return errors.Wrapf(e.err, "after %d rounds", e.Rounds).Error()
}

// Unwrap allows errors.Is(err, ErrNotConverged) to succeed.
func (e *ConvergenceError) Unwrap() error { return e.err }
