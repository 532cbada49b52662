// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/db47h/gatesim"
	"github.com/db47h/gatesim/gatelib"
)

// TestNotThroughAWire exercises scenario S1: a Not gate wired to an
// external pin settles to the inverse of whatever is written to its
// input, with no intervening Tick needed.
func TestNotThroughAWire(t *testing.T) {
	s := gatesim.New()
	src := s.AddComponent(gatelib.Buffer{})
	inv := s.AddComponent(gatelib.Not{})

	s.Connect(src, 2, inv, 1)

	require.NoError(t, s.Write(src, 1, true))
	require.False(t, s.Read(inv, 2))

	require.NoError(t, s.Write(src, 1, false))
	require.True(t, s.Read(inv, 2))
}

// TestTickCounting exercises scenario S2: the global clock net toggles
// on every Tick, starting from an undriven (false) level.
func TestTickCounting(t *testing.T) {
	s := gatesim.New()
	require.False(t, s.ReadClk())

	for i := 0; i < 4; i++ {
		want := i%2 == 0
		require.NoError(t, s.Tick())
		require.Equal(t, want, s.ReadClk())
	}
}

// TestAndFanIn exercises scenario S3: an And gate fed by two
// independently-written sources only settles high when both do.
func TestAndFanIn(t *testing.T) {
	s := gatesim.New()
	a := s.AddComponent(gatelib.Buffer{})
	b := s.AddComponent(gatelib.Buffer{})
	and := s.AddComponent(gatelib.And())

	s.Connect(a, 2, and, 1)
	s.Connect(b, 2, and, 2)

	require.NoError(t, s.Write(a, 1, true))
	require.False(t, s.Read(and, 3))

	require.NoError(t, s.Write(b, 1, true))
	require.True(t, s.Read(and, 3))

	require.NoError(t, s.Write(a, 1, false))
	require.False(t, s.Read(and, 3))
}

// TestNetMergePreservesLevel exercises scenario S4 and Invariant 4: wiring
// a second pin onto an already-driven net must not clobber the level
// already observed there, and the newly joined pin immediately reads it.
func TestNetMergePreservesLevel(t *testing.T) {
	s := gatesim.New()
	a := s.AddComponent(gatelib.Buffer{})
	b := s.AddComponent(gatelib.Buffer{})

	require.NoError(t, s.Write(a, 1, true))
	require.True(t, s.Read(a, 2))

	s.Connect(a, 2, b, 1)

	// b's input pin now shares a's output net and reads its preserved
	// level immediately, without any further Write or Tick. b's own
	// output has not been re-evaluated yet: Connect does not itself
	// trigger propagation, only a topology update.
	require.True(t, s.Read(a, 2))
	require.True(t, s.Read(b, 1))

	// A fresh value transition now cascades through the merged net and
	// reaches b's own re-evaluation.
	require.NoError(t, s.Write(a, 1, false))
	require.NoError(t, s.Write(a, 1, true))
	require.True(t, s.Read(b, 2))
}

// TestEdgeGatedPulse exercises scenario S5: an And of the live clock and
// the inverse of a one-tick-delayed clock settles high on every tick that
// brings the clock high, and low on every tick that brings it low.
func TestEdgeGatedPulse(t *testing.T) {
	s := gatesim.New()
	dff := s.AddComponent(&gatelib.DFF{})
	not := s.AddComponent(gatelib.Not{})
	and := s.AddComponent(gatelib.And())

	s.ConnectToClk(dff, 1)
	s.ConnectToClk(dff, 2)
	s.Connect(not, 1, dff, 3)
	s.ConnectToClk(and, 1)
	s.Connect(and, 2, not, 2)

	for i := 0; i < 6; i++ {
		require.NoError(t, s.Tick())
		require.Equal(t, s.ReadClk(), s.Read(and, 3), "tick %d", i)
	}
}

// TestSelfWriteExclusion exercises Invariant 2: a component's own write to
// one of its pins does not re-trigger that same component unless the
// write originates externally (Sim.Write, update_self = true).
func TestSelfWriteExclusion(t *testing.T) {
	s := gatesim.New()

	var calls int
	c := s.AddComponent(gatesim.ComponentFunc{Pins: 2, Fn: func(sess *gatesim.Session) {
		calls++
		sess.Write(2, !sess.Read(1))
	}})

	calls = 0
	require.NoError(t, s.Write(c, 1, true))
	// One re-evaluation from the external write, plus (since Write sets
	// update_self = true) one more from its own output write landing back
	// on a pin the component owns... but pin 2 is not wired to pin 1, so
	// no further fan-out occurs: exactly one call.
	require.Equal(t, 1, calls)
	require.False(t, s.Read(c, 2))
}

// TestNonConvergentTopologyReportsError exercises scenario S6 and
// Invariant 5's failure mode: an odd ring of inverters (the classic
// zero-delay ring oscillator; an even ring is merely bistable and does
// settle) never reaches a fixed point and returns a *ConvergenceError
// instead of recursing without bound.
func TestNonConvergentTopologyReportsError(t *testing.T) {
	s := gatesim.New(gatesim.WithMaxRounds(64))
	inv1 := s.AddComponent(gatelib.Not{})
	inv2 := s.AddComponent(gatelib.Not{})
	inv3 := s.AddComponent(gatelib.Not{})

	s.Connect(inv1, 2, inv2, 1)
	s.Connect(inv2, 2, inv3, 1)
	s.Connect(inv3, 2, inv1, 1)

	// After the connects every net reads true (each inverter drove its
	// output high on AddComponent, and Connect does not propagate). Pulling
	// inv2's input low settles without changing anything else; pulling
	// inv3's output low then starts the ring oscillating.
	require.NoError(t, s.Write(inv2, 1, false))
	err := s.Write(inv3, 2, false)
	require.Error(t, err)

	var convErr *gatesim.ConvergenceError
	require.ErrorAs(t, err, &convErr)
	require.ErrorIs(t, err, gatesim.ErrNotConverged)
}

// TestUndrivenPinReadsFalse exercises the error-handling design's
// "undriven is not an error" rule: reading a pin with no prior write
// returns false rather than panicking.
func TestUndrivenPinReadsFalse(t *testing.T) {
	s := gatesim.New()
	c := s.AddComponent(gatelib.Buffer{})
	require.False(t, s.Read(c, 1))
	require.False(t, s.Read(c, 2))
}

// TestInvalidPinPanics checks that out-of-range local pin indices panic
// rather than silently doing nothing, matching the precondition-violation
// rule of spec.md's error handling design.
func TestInvalidPinPanics(t *testing.T) {
	s := gatesim.New()
	c := s.AddComponent(gatelib.Buffer{})
	require.Panics(t, func() { s.Read(c, 0) })
	require.Panics(t, func() { s.Read(c, 3) })
}

// TestDuplicateConnectIsNoop checks that re-connecting the same pair of
// pins is harmless and does not disturb an already-settled net.
func TestDuplicateConnectIsNoop(t *testing.T) {
	s := gatesim.New()
	a := s.AddComponent(gatelib.Buffer{})
	b := s.AddComponent(gatelib.Buffer{})

	s.Connect(a, 2, b, 1)
	require.NoError(t, s.Write(a, 1, true))
	require.True(t, s.Read(b, 2))

	s.Connect(a, 2, b, 1)
	require.True(t, s.Read(b, 2))
}
