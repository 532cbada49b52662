// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

import "github.com/db47h/gatesim"

// DFF is a clocked data flip-flop: it emits whatever it last latched,
// then latches its data input the moment its own clock pin transitions
// in either direction.
//
//	pins: 1=d, 2=clk, 3=q
//	Function: q(t) = d(t-1), where t counts transitions of clk.
type DFF struct {
	stored bool
}

// PinCount implements gatesim.Component.
func (*DFF) PinCount() int { return 3 }

// Update implements gatesim.Component.
func (d *DFF) Update(s *gatesim.Session) {
	edge := s.IsRisingEdge(2) || s.IsFallingEdge(2)
	s.Write(3, d.stored)
	if edge {
		d.stored = s.Read(1)
	}
}
