// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package gatesim provides a discrete, event-driven digital-logic simulator
core.

A simulation is a bipartite runtime of components (arbitrary combinational
or stateful logic blocks exposing a fixed number of pins) and nets
(equipotential groups of connected pins). A host program builds a Sim,
registers components with AddComponent, wires their pins together with
Connect/ConnectBulk/ConnectToClk, and advances the global clock with Tick;
the simulator propagates pin-value changes through the net graph,
re-evaluates every affected component, and exposes both level and edge
(rising/falling) information to components while they run.

The sub-package gatelib provides a small library of demonstration
components (logic gates, a buffer, a constant driver and a word-addressed
RAM) built on top of the Component interface.
*/
package gatesim
