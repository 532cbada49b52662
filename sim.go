// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"log"

	"github.com/pkg/errors"

	"github.com/db47h/gatesim/internal/netgraph"
)

// clkPin is the global clock net's pin id, reserved by New and owned by
// no component.
const clkPin = 0

// Sim is a runnable simulation: a set of registered components wired
// together through a net graph. Sim is not safe for concurrent use; the
// propagation engine runs every Tick/Write to completion before
// returning, and components must never call back into Sim's public API
// from inside Update.
type Sim struct {
	graph      *netgraph.Graph
	registry   *pinRegistry
	components componentStore
	maxRounds  int
	logger     *log.Logger
}

// Option configures a Sim at construction time.
type Option func(*Sim)

// WithMaxRounds overrides the propagation round bound (spec.md §4.F-4).
// The default is generous for any purely combinational or single-edge
// sequential network; lower it in tests that specifically exercise
// non-convergence (scenario S6).
func WithMaxRounds(n int) Option {
	return func(s *Sim) { s.maxRounds = n }
}

// WithLogger attaches a logger that receives one line per component
// re-evaluation during propagation. The core itself never logs unless a
// logger is supplied, keeping Sim silent and side-effect free by default.
func WithLogger(l *log.Logger) Option {
	return func(s *Sim) { s.logger = l }
}

// New creates a simulator with pin 0 allocated as the global clock net.
func New(opts ...Option) *Sim {
	s := &Sim{
		graph:     netgraph.New(),
		registry:  newPinRegistry(),
		maxRounds: defaultMaxRounds,
	}
	for _, o := range opts {
		o(s)
	}

	pin := s.graph.AddNode()
	if pin != clkPin {
		panic(errors.Errorf("gatesim: internal error, clock pin allocated as %d", pin))
	}
	s.recomputeNets()

	return s
}

func (s *Sim) logPropagation(key ComponentKey, changes map[int]bool) {
	if s.logger == nil {
		return
	}
	s.logger.Printf("gatesim: component %d evaluated, %d pin(s) changed", key, len(changes))
}

// recomputeNets asks the net graph for a fresh weakly-connected-component
// labeling and replays it into the registry, preserving already-driven
// levels (Invariant 4).
func (s *Sim) recomputeNets() {
	s.registry.recompute(s.graph.Components())
}

// pins returns the global pin ids owned by key, or an error if key is not
// a registered component.
func (s *Sim) pins(key ComponentKey) ([]int, error) {
	w, ok := s.components.get(key)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownComponent, "key %d", key)
	}
	return w.pins, nil
}

// resolve maps a (component, local pin) pair to its global pin id,
// panicking on any precondition violation per spec.md §7.
func (s *Sim) resolve(key ComponentKey, pin int) int {
	pins, err := s.pins(key)
	if err != nil {
		panic(err)
	}
	if pin < 1 || pin > len(pins) {
		panic(errors.Wrapf(ErrInvalidPin, "component %d, pin %d (has %d pins)", key, pin, len(pins)))
	}
	return pins[pin-1]
}

// AddComponent registers a component, allocating pin_count new pins for
// it, and performs one initial evaluation so combinational outputs settle
// to a defined value if their inputs already have one.
func (s *Sim) AddComponent(c Component) ComponentKey {
	n := c.PinCount()
	pins := make([]int, n)
	for i := range pins {
		pins[i] = s.graph.AddNode()
	}

	key := s.components.insert(newWrapper(pins, c))
	s.registry.bindComponent(pins, key)
	s.recomputeNets()

	p := &propagation{sim: s, maxRounds: s.maxRounds}
	if err := p.reevaluate(key); err != nil {
		panic(err)
	}

	return key
}

// Connect wires local pin i1 of c1 to local pin i2 of c2. Connecting
// already-connected pins is a no-op.
func (s *Sim) Connect(c1 ComponentKey, i1 int, c2 ComponentKey, i2 int) {
	s.graph.AddEdge(s.resolve(c1, i1), s.resolve(c2, i2))
	s.recomputeNets()
}

// ConnectBulk wires pins1[k] of c1 to pins2[k] of c2 for every k. Both
// slices must have the same length.
func (s *Sim) ConnectBulk(c1 ComponentKey, pins1 []int, c2 ComponentKey, pins2 []int) {
	if len(pins1) != len(pins2) {
		panic(errors.Wrapf(ErrBulkLengthMismatch, "%d vs %d", len(pins1), len(pins2)))
	}
	for k := range pins1 {
		s.graph.AddEdge(s.resolve(c1, pins1[k]), s.resolve(c2, pins2[k]))
	}
	s.recomputeNets()
}

// ConnectToClk wires local pin i of c to the global clock net.
func (s *Sim) ConnectToClk(c ComponentKey, i int) {
	s.graph.AddEdge(s.resolve(c, i), clkPin)
	s.recomputeNets()
}

// Read returns the current level of local pin i of component c. An
// undriven pin reads as false.
func (s *Sim) Read(c ComponentKey, i int) bool {
	v, _ := s.registry.read(s.resolve(c, i))
	return v
}

// Write drives local pin i of component c to v and propagates the change
// to quiescence. Unlike internal propagation, an external write is
// allowed to re-trigger the owning component (update_self = true), since
// the caller is not that component itself.
func (s *Sim) Write(c ComponentKey, i int, v bool) error {
	pin := s.resolve(c, i)
	return s.propagate(map[int]bool{pin: v}, true)
}

// ReadClk returns the current level of the global clock net.
func (s *Sim) ReadClk() bool {
	v, _ := s.registry.read(clkPin)
	return v
}

// Tick inverts the clock net's level (an undriven clock is treated as
// false, so the first Tick sets it true) and propagates the change.
// Because pin 0 belongs to no component, every component wired to the
// clock net, directly or through intervening gates, is re-evaluated.
func (s *Sim) Tick() error {
	cur, _ := s.registry.read(clkPin)
	return s.propagate(map[int]bool{clkPin: !cur}, false)
}
