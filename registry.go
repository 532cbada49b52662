// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

// level is the registry's Option<bool>: ok is false for an undriven net.
type level struct {
	ok  bool
	val bool
}

// pinRegistry implements spec.md §4.C: it maps each pin to its owning
// component and current net index, and stores one level per net.
type pinRegistry struct {
	pinToComponent map[int]ComponentKey // excludes pin 0
	pinToNet       map[int]int          // includes pin 0
	netLevels      []level
}

func newPinRegistry() *pinRegistry {
	return &pinRegistry{
		pinToComponent: make(map[int]ComponentKey),
		pinToNet:       make(map[int]int),
	}
}

func (r *pinRegistry) bindComponent(pins []int, key ComponentKey) {
	for _, p := range pins {
		r.pinToComponent[p] = key
	}
}

func (r *pinRegistry) componentOf(pin int) (ComponentKey, bool) {
	k, ok := r.pinToComponent[pin]
	return k, ok
}

// read returns the net level currently driving pin, and whether the net
// has ever been driven.
func (r *pinRegistry) read(pin int) (value, driven bool) {
	idx, ok := r.pinToNet[pin]
	if !ok {
		return false, false
	}
	lv := r.netLevels[idx]
	return lv.val, lv.ok
}

// write commits v as the level of pin's net.
func (r *pinRegistry) write(pin int, v bool) {
	idx := r.pinToNet[pin]
	r.netLevels[idx] = level{ok: true, val: v}
}

// peers returns every pin sharing pin's net, including pin itself.
func (r *pinRegistry) peers(pin int) []int {
	idx, ok := r.pinToNet[pin]
	if !ok {
		return nil
	}
	var out []int
	for p, i := range r.pinToNet {
		if i == idx {
			out = append(out, p)
		}
	}
	return out
}

// recompute replaces the registry's net assignment with a fresh labeling
// (as produced by the net graph's Components call), preserving the level
// of any pin that already had one (Invariant 4). If a topology change
// merges two previously distinct, disagreeing nets, the last replayed
// value wins; the engine never does this itself, but callers may.
func (r *pinRegistry) recompute(labels map[int]int) {
	type driven struct {
		pin int
		val bool
	}
	var preserved []driven
	for pin := range labels {
		if v, ok := r.read(pin); ok {
			preserved = append(preserved, driven{pin, v})
		}
	}

	maxID := 0
	for _, id := range labels {
		if id > maxID {
			maxID = id
		}
	}

	r.netLevels = make([]level, maxID+1)
	r.pinToNet = labels

	for _, d := range preserved {
		r.write(d.pin, d.val)
	}
}
