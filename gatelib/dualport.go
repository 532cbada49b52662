// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

import "github.com/db47h/gatesim"

// memPort is a small adapter around gatesim.PortView, giving a component
// a named read/write interface to one of its external memory connections
// (address bus, data bus, and an optional write-strobe pin) while sharing
// a single underlying Session. This is the Go shape of DESIGN NOTES §9's
// dual-port pattern: components that need several such ports construct
// one memPort per port, all wrapping the same *gatesim.Session, instead of
// aliasing it through unchecked pointers.
type memPort struct {
	*gatesim.PortView
	addr  []int
	data  []int
	write int // 0 means read-only: no write-strobe pin
}

func newMemPort(s *gatesim.Session, addr, data []int, write int) memPort {
	return memPort{PortView: gatesim.NewPortView(s), addr: addr, data: data, write: write}
}

func (p memPort) setAddr(a uint32) {
	if p.write != 0 {
		p.Write(p.write, false)
	}
	p.WriteU32(p.addr, a)
}

func (p memPort) read() uint32 { return p.ReadU32(p.data) }

func (p memPort) writeWord(v uint32) {
	if p.write != 0 {
		p.Write(p.write, true)
	}
	p.WriteU32(p.data, v)
}

// DualPortCopier demonstrates the two-port pattern: on every rising edge
// of its clock pin it addresses both of its memory ports at the same
// word index and copies whatever the read-only port returns into the
// read/write port, advancing the index by one word per edge. It stands in
// for a CPU's simultaneous instruction/data memory access without
// modelling an instruction set. Because the addressed source component
// only sees the new address on the following propagation round, the
// copied word always trails the freshly set address by one tick.
//
//	pins: 1-32 = srcAddr (out), 33-64 = srcData (in),
//	      65-96 = dstAddr (out), 97-128 = dstData (out), 129 = dstWrite (out),
//	      130 = clk (in)
type DualPortCopier struct {
	index uint32
}

// PinCount implements gatesim.Component.
func (*DualPortCopier) PinCount() int { return 130 }

// Update implements gatesim.Component.
func (c *DualPortCopier) Update(s *gatesim.Session) {
	const clk = 130
	if !s.IsRisingEdge(clk) {
		return
	}

	src := newMemPort(s, seq(1, 32), seq(33, 64), 0)
	dst := newMemPort(s, seq(65, 96), seq(97, 128), 129)

	src.setAddr(c.index)
	word := src.read()
	dst.setAddr(c.index)
	dst.writeWord(word)

	c.index++
}
