// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package netgraph implements the net-merging graph described in
// spec.md §4.B: pins are graph nodes, connections are undirected edges,
// and weakly-connected components are recomputed on demand to derive
// which pins now share a net.
//
// The adjacency storage itself is delegated to
// github.com/katalvlaran/lvlath/graph/core, an undirected graph keyed by
// string vertex ids; this package only adapts it to dense integer pin ids
// and adds the weakly-connected-component labeling spec.md requires, via
// repeated BFS traversal from github.com/katalvlaran/lvlath/graph/algorithms.
package netgraph

import (
	"strconv"

	"github.com/katalvlaran/lvlath/graph/algorithms"
	"github.com/katalvlaran/lvlath/graph/core"
)

// Graph is the net-merging graph. The zero value is not usable; use New.
type Graph struct {
	g     *core.Graph
	nodes []int
	next  int
}

// New returns an empty net graph.
func New() *Graph {
	return &Graph{g: core.NewGraph(false, false)}
}

// AddNode allocates a fresh pin id from a monotonically increasing
// counter and registers it as a graph vertex.
func (g *Graph) AddNode() int {
	id := g.next
	g.next++
	g.nodes = append(g.nodes, id)
	g.g.AddVertex(&core.Vertex{ID: vid(id)})
	return id
}

// AddEdge inserts an undirected edge between pins a and b. Self-edges are
// permitted and have no semantic effect on the resulting components.
func (g *Graph) AddEdge(a, b int) {
	g.g.AddEdge(vid(a), vid(b), 0)
}

// Components returns a labeling such that two pins share a net id iff
// they are weakly connected. Net ids are the minimum pin id reachable
// within the component, matching spec.md's canonical choice; callers must
// not otherwise rely on the exact values.
func (g *Graph) Components() map[int]int {
	labels := make(map[int]int, len(g.nodes))
	visited := make(map[string]bool, len(g.nodes))

	for _, n := range g.nodes {
		start := vid(n)
		if visited[start] {
			continue
		}
		res, err := algorithms.BFS(g.g, start, nil)
		if err != nil {
			// start is always a vertex we just added via AddNode, so
			// ErrVertexNotFound cannot happen here.
			panic(err)
		}
		netID := n
		for id := range res.Visited {
			visited[id] = true
			labels[pid(id)] = netID
		}
	}
	return labels
}

func vid(pin int) string { return strconv.Itoa(pin) }

func pid(vertex string) int {
	n, err := strconv.Atoi(vertex)
	if err != nil {
		panic(err)
	}
	return n
}
