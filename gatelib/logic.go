// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

import "github.com/db47h/gatesim"

// Buffer passes its input through unchanged.
//
//	pins: 1=in, 2=out
//	out = in
type Buffer struct{}

// PinCount implements gatesim.Component.
func (Buffer) PinCount() int { return 2 }

// Update implements gatesim.Component.
func (Buffer) Update(s *gatesim.Session) {
	s.Write(2, s.Read(1))
}

// Not is a single-input inverter.
//
//	pins: 1=in, 2=out
//	out = !in
type Not struct{}

// PinCount implements gatesim.Component.
func (Not) PinCount() int { return 2 }

// Update implements gatesim.Component.
func (Not) Update(s *gatesim.Session) {
	s.Write(2, !s.Read(1))
}

// gate is the shared shape of the two-input logic gates below: a pure
// boolean function of their two inputs, written to pin 3.
type gate func(a, b bool) bool

// PinCount implements gatesim.Component.
func (gate) PinCount() int { return 3 }

// Update implements gatesim.Component.
func (g gate) Update(s *gatesim.Session) {
	s.Write(3, g(s.Read(1), s.Read(2)))
}

// And returns an AND gate (pins: 1=a, 2=b, 3=out; out = a && b).
func And() gatesim.Component { return gate(func(a, b bool) bool { return a && b }) }

// Or returns an OR gate (pins: 1=a, 2=b, 3=out; out = a || b).
func Or() gatesim.Component { return gate(func(a, b bool) bool { return a || b }) }

// Nand returns a NAND gate (pins: 1=a, 2=b, 3=out; out = !(a && b)).
func Nand() gatesim.Component { return gate(func(a, b bool) bool { return !(a && b) }) }

// Nor returns a NOR gate (pins: 1=a, 2=b, 3=out; out = !(a || b)).
func Nor() gatesim.Component { return gate(func(a, b bool) bool { return !(a || b) }) }

// Xor returns an XOR gate (pins: 1=a, 2=b, 3=out; out = a != b).
func Xor() gatesim.Component { return gate(func(a, b bool) bool { return a != b }) }

// Xnor returns an XNOR gate (pins: 1=a, 2=b, 3=out; out = a == b).
func Xnor() gatesim.Component { return gate(func(a, b bool) bool { return a == b }) }
