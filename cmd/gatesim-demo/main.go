// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command gatesim-demo wires an edge-gated pulse generator — a DFF
// delaying the clock by one transition, inverted and ANDed back with the
// live clock — and ticks it a few times, printing the pulse it produces
// on every rising clock edge: the shape of scenario S5 in spec.md §8.
package main

import (
	"log"

	"github.com/db47h/gatesim"
	"github.com/db47h/gatesim/gatelib"
)

func main() {
	s := gatesim.New(gatesim.WithLogger(log.Default()))

	dff := s.AddComponent(&gatelib.DFF{})
	not := s.AddComponent(gatelib.Not{})
	and := s.AddComponent(gatelib.And())

	s.ConnectToClk(dff, 1) // d   = clk
	s.ConnectToClk(dff, 2) // clk = clk
	s.Connect(not, 1, dff, 3)
	s.ConnectToClk(and, 1)
	s.Connect(and, 2, not, 2)

	for i := 0; i < 8; i++ {
		if err := s.Tick(); err != nil {
			log.Fatal(err)
		}
		log.Printf("tick %d: clk=%v pulse=%v", i, s.ReadClk(), s.Read(and, 3))
	}
}
