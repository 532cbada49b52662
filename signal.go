// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

// A Signal is the per-component-input view of a net's level: a plain
// boolean plus one-shot edge information valid for a single evaluation
// round. Edges collapse back to a static level the next time a component
// reads its inputs without the level having moved again, so nothing needs
// to track "has this edge been consumed".
type Signal uint8

const (
	// StaticFalse is a steady low level.
	StaticFalse Signal = iota
	// StaticTrue is a steady high level.
	StaticTrue
	// RisingEdge is a low-to-high transition, valid for one evaluation.
	RisingEdge
	// FallingEdge is a high-to-low transition, valid for one evaluation.
	FallingEdge
)

// next advances s given a newly observed boolean input, per the transition
// table in spec.md §3.
func (s Signal) next(v bool) Signal {
	switch s {
	case RisingEdge:
		if v {
			return StaticTrue
		}
		return FallingEdge
	case FallingEdge:
		if v {
			return RisingEdge
		}
		return StaticFalse
	case StaticTrue:
		if v {
			return StaticTrue
		}
		return FallingEdge
	default: // StaticFalse
		if v {
			return RisingEdge
		}
		return StaticFalse
	}
}

// level reports the boolean level a Signal currently presents: true for
// StaticTrue or RisingEdge, false otherwise.
func (s Signal) level() bool {
	return s == StaticTrue || s == RisingEdge
}

func (s Signal) String() string {
	switch s {
	case StaticFalse:
		return "0"
	case StaticTrue:
		return "1"
	case RisingEdge:
		return "/-"
	case FallingEdge:
		return "-\\"
	default:
		return "?"
	}
}
