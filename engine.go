// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

// defaultMaxRounds bounds the propagation recursion of spec.md §4.F-4. A
// purely combinational network converges in depth <= its longest path;
// this is generous headroom for anything but a genuinely non-convergent
// (self-oscillating) topology.
const defaultMaxRounds = 10000

// propagation carries the state of one top-level Tick or Write call
// through however many recursive re-evaluation rounds it takes to reach
// quiescence (spec.md §4.F).
type propagation struct {
	sim       *Sim
	rounds    int
	maxRounds int
}

// propagate is the entry point used by Tick and Write: it commits an
// intended change set and runs the engine to a fixed point, or returns a
// *ConvergenceError if the round bound is exceeded.
func (s *Sim) propagate(changes map[int]bool, updateSelf bool) error {
	p := &propagation{sim: s, maxRounds: s.maxRounds}
	return p.run(changes, updateSelf)
}

// run implements one propagation round: filter & commit, fan-out,
// re-evaluate, recurse (spec.md §4.F steps 1-3).
func (p *propagation) run(changes map[int]bool, updateSelf bool) error {
	p.rounds++
	if p.rounds > p.maxRounds {
		return &ConvergenceError{Rounds: p.rounds, err: ErrNotConverged}
	}

	r := p.sim.registry

	// Step 1: filter & commit.
	changed := make([]int, 0, len(changes))
	for pin, v := range changes {
		if cur, driven := r.read(pin); driven && cur == v {
			continue
		}
		r.write(pin, v)
		changed = append(changed, pin)
	}
	if len(changed) == 0 {
		return nil
	}

	// Step 2: fan-out, with the self-retrigger exclusions of spec.md §4.F-2.
	affected := make(map[ComponentKey]struct{})
	for _, pin := range changed {
		owner, hasOwner := r.componentOf(pin)
		for _, peer := range r.peers(pin) {
			if !updateSelf && peer == pin {
				continue
			}
			comp, ok := r.componentOf(peer)
			if !ok {
				continue // peer is pin 0 or otherwise component-less
			}
			if pin != 0 && !updateSelf && hasOwner && comp == owner {
				continue
			}
			affected[comp] = struct{}{}
		}
	}

	// Step 3: re-evaluate every affected component, recursing on its
	// resulting changes with update_self = false.
	for key := range affected {
		if err := p.reevaluate(key); err != nil {
			return err
		}
	}
	return nil
}

func (p *propagation) reevaluate(key ComponentKey) error {
	s := p.sim
	w, ok := s.components.get(key)
	if !ok {
		return nil
	}

	levels := make([]bool, len(w.pins))
	for i, pin := range w.pins {
		v, _ := s.registry.read(pin)
		levels[i] = v
	}

	changes := w.evaluate(levels)
	s.logPropagation(key, changes)
	return p.run(changes, false)
}
