// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

import "github.com/db47h/gatesim"

// Static drives a constant word onto Bits output pins (1..Bits),
// little-endian, every evaluation. Bits must be at most 32.
//
//	pins: 1..Bits = out[0..Bits)
type Static struct {
	Bits  int
	Value uint32
}

// PinCount implements gatesim.Component.
func (c Static) PinCount() int { return c.Bits }

// Update implements gatesim.Component.
func (c Static) Update(s *gatesim.Session) {
	pins := make([]int, c.Bits)
	for i := range pins {
		pins[i] = i + 1
	}
	s.WriteU32(pins, c.Value)
}
