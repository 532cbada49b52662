// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

import "github.com/db47h/gatesim"

var (
	addrPins = seq(1, 32)
	dataPins = seq(33, 64)
)

const writePin = 65

func seq(start, end int) []int {
	out := make([]int, end-start+1)
	for i := range out {
		out[i] = start + i
	}
	return out
}

// RAM is a word-addressed memory of 32-bit words behind a 32-bit address
// bus; its word count is fixed by NewRAM, and an address at or beyond that
// count panics with an index out of range. It has a single combined
// address/data port: on a given evaluation it either writes data_pins
// into the addressed word (when write_pin is high) or drives the
// addressed word's contents onto data_pins.
//
//	pins: 1-32 = addr, 33-64 = data, 65 = write
type RAM struct {
	data []uint32
}

// NewRAM returns a RAM of the given word count, pre-loaded with init
// (zero-extended if shorter).
func NewRAM(words int, init []uint32) *RAM {
	data := make([]uint32, words)
	copy(data, init)
	return &RAM{data: data}
}

// PinCount implements gatesim.Component.
func (*RAM) PinCount() int { return 65 }

// Update implements gatesim.Component.
func (r *RAM) Update(s *gatesim.Session) {
	addr := s.ReadU32(addrPins)
	if s.Read(writePin) {
		r.data[addr] = s.ReadU32(dataPins)
	} else {
		s.WriteU32(dataPins, r.data[addr])
	}
}

// Peek returns the current contents of word addr, bypassing simulation
// (useful for assembling test fixtures or inspecting state in a debugger).
func (r *RAM) Peek(addr uint32) uint32 { return r.data[addr] }
