// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import "github.com/pkg/errors"

// Component is the evaluation contract an embedder implements. PinCount
// must be constant for the component's lifetime; Update is invoked by the
// propagation engine every time any of the component's pins may need
// re-evaluating, with a Session giving access to the evaluation contract
// of spec.md §4.D/§4.E.
type Component interface {
	PinCount() int
	Update(s *Session)
}

// A ComponentFunc adapts a plain function to the Component interface for
// components with a fixed, closed-over pin count.
type ComponentFunc struct {
	Pins int
	Fn   func(s *Session)
}

// PinCount implements Component.
func (c ComponentFunc) PinCount() int { return c.Pins }

// Update implements Component.
func (c ComponentFunc) Update(s *Session) { c.Fn(s) }

// Session is the bounded-lifetime capability object handed to a component
// during one invocation of Update. Local pin numbering is 1-based: index
// i-1 addresses the component's i-th declared pin. A Session must not be
// retained past the Update call that received it.
type Session struct {
	pins    []int // global pin ids, immutable for the session
	values  []Signal
	changes map[int]bool
}

func newSession(pins []int, values []Signal) *Session {
	v := make([]Signal, len(values))
	copy(v, values)
	return &Session{pins: pins, values: v, changes: make(map[int]bool)}
}

func (s *Session) checkPin(i int) {
	if i < 1 || i > len(s.pins) {
		panic(errors.Wrapf(ErrInvalidPin, "pin %d (component has %d pins)", i, len(s.pins)))
	}
}

// Read returns the current level of local pin i. Pure: it never mutates
// edge state.
func (s *Session) Read(i int) bool {
	s.checkPin(i)
	return s.values[i-1].level()
}

// Write advances the signal tracked for local pin i and records the
// written value in the session's change buffer. Subsequent reads of pin i
// within the same Update observe the written boolean, though it is only
// reported as an edge if the prior signal state warrants one.
func (s *Session) Write(i int, v bool) {
	s.checkPin(i)
	s.values[i-1] = s.values[i-1].next(v)
	s.changes[s.pins[i-1]] = v
}

// ReadU32 packs up to 32 local pins into a little-endian word: bit k of
// the result is Read(pins[k]).
func (s *Session) ReadU32(pins []int) uint32 {
	if len(pins) > 32 {
		panic(errors.Wrapf(ErrTooManyPins, "got %d pins", len(pins)))
	}
	var w uint32
	for k, p := range pins {
		if s.Read(p) {
			w |= 1 << uint(k)
		}
	}
	return w
}

// WriteU32 writes up to 32 bits of w to the given local pins, bit k of w
// going to pins[k].
func (s *Session) WriteU32(pins []int, w uint32) {
	if len(pins) > 32 {
		panic(errors.Wrapf(ErrTooManyPins, "got %d pins", len(pins)))
	}
	for k, p := range pins {
		s.Write(p, w&(1<<uint(k)) != 0)
	}
}

// IsRisingEdge reports whether local pin i just transitioned low to high.
func (s *Session) IsRisingEdge(i int) bool {
	s.checkPin(i)
	return s.values[i-1] == RisingEdge
}

// IsFallingEdge reports whether local pin i just transitioned high to low.
func (s *Session) IsFallingEdge(i int) bool {
	s.checkPin(i)
	return s.values[i-1] == FallingEdge
}

// changeBuffer returns the set of global-pin writes recorded this session.
func (s *Session) changeBuffer() map[int]bool { return s.changes }

// PortView is a small adapter sharing a single Session by reference,
// giving a component multiple logical "ports" into the same evaluation
// without aliasing the Session through unchecked pointers (DESIGN NOTES
// §9). It is a thin, single-owner-with-borrow wrapper: components that
// need several simultaneous views (e.g. separate instruction and data
// memory ports) construct one PortView per port, all pointing at the same
// *Session.
type PortView struct {
	Session *Session
}

// NewPortView returns a PortView borrowing s.
func NewPortView(s *Session) *PortView { return &PortView{Session: s} }

// Read forwards to the underlying Session.
func (p *PortView) Read(i int) bool { return p.Session.Read(i) }

// Write forwards to the underlying Session.
func (p *PortView) Write(i int, v bool) { p.Session.Write(i, v) }

// ReadU32 forwards to the underlying Session.
func (p *PortView) ReadU32(pins []int) uint32 { return p.Session.ReadU32(pins) }

// WriteU32 forwards to the underlying Session.
func (p *PortView) WriteU32(pins []int, w uint32) { p.Session.WriteU32(pins, w) }

// wrapper is the per-registered-component runtime record (spec.md §4.D):
// the component's owned pin ids, its persisted input Signal vector, and
// the component behavior itself.
type wrapper struct {
	pins      []int
	input     []Signal
	component Component
}

func newWrapper(pins []int, c Component) *wrapper {
	return &wrapper{pins: pins, input: make([]Signal, len(pins)), component: c}
}

// evaluate advances the wrapper's persisted input Signal vector against
// the given current net levels (one per pin, same order as w.pins),
// invokes the component, and returns its change buffer. The persisted
// input vector is only ever advanced from registry-read levels, never
// from a session's own in-round writes, so edges are observed exactly
// once: on the round in which the pin's net actually transitioned.
func (w *wrapper) evaluate(levels []bool) map[int]bool {
	for i, v := range levels {
		w.input[i] = w.input[i].next(v)
	}
	sess := newSession(w.pins, w.input)
	w.component.Update(sess)
	return sess.changeBuffer()
}
