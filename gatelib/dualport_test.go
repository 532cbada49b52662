// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/db47h/gatesim"
	"github.com/db47h/gatesim/gatelib"
)

// TestDualPortCopierCopiesFirstWord checks that on the first rising clock
// edge, with both ports already settled at address 0, the copier moves
// the source's word 0 into the destination's word 0.
func TestDualPortCopierCopiesFirstWord(t *testing.T) {
	s := gatesim.New()
	srcComp := gatelib.NewRAM(4, []uint32{10, 20, 30, 40})
	dstComp := gatelib.NewRAM(4, nil)
	src := s.AddComponent(srcComp)
	dst := s.AddComponent(dstComp)
	copier := s.AddComponent(&gatelib.DualPortCopier{})
	clk := s.AddComponent(gatelib.Buffer{})

	for i := 0; i < 32; i++ {
		s.Connect(copier, 1+i, src, 1+i)
		s.Connect(copier, 33+i, src, 33+i)
		s.Connect(copier, 65+i, dst, 1+i)
		s.Connect(copier, 97+i, dst, 33+i)
	}
	s.Connect(copier, 129, dst, 65)
	s.Connect(clk, 2, copier, 130)

	require.NoError(t, s.Write(clk, 1, true))

	require.Equal(t, uint32(10), dstComp.Peek(0))
}
