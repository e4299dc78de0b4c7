// Copyright (c) 2026 The rig Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package rig

import (
	"fmt"
	"sort"
	"strings"
)

// graph records the declared type-to-type dependency edges of a container.
// It exists solely to reject cycles at registration time; resolution order is
// always taken from each TypeInfo directly.
type graph struct {
	edges map[Key][]Key
}

func newGraph() *graph {
	return &graph{edges: make(map[Key][]Key)}
}

// clone returns an independent copy of the edge set.
func (g *graph) clone() *graph {
	edges := make(map[Key][]Key, len(g.edges))
	for k, deps := range g.edges {
		edges[k] = append([]Key(nil), deps...)
	}
	return &graph{edges: edges}
}

// connect replaces key's outgoing edges with deps, then checks reachability
// from key. If any path leads back to key, the edges are rolled back and a
// CyclicDependencyError naming the closing edge is returned.
func (g *graph) connect(key Key, deps []Key) error {
	prev, had := g.edges[key]
	g.edges[key] = append([]Key(nil), deps...)

	if err := g.findCycle(key); err != nil {
		if had {
			g.edges[key] = prev
		} else {
			delete(g.edges, key)
		}
		return err
	}
	return nil
}

// findCycle walks depth-first from start and reports the first edge that
// returns to start. A self-loop is a one-edge cycle.
func (g *graph) findCycle(start Key) error {
	seen := make(map[Key]bool)

	var walk func(from Key) error
	walk = func(from Key) error {
		for _, to := range g.edges[from] {
			if to == start {
				return &CyclicDependencyError{From: from, To: start}
			}
			if seen[to] {
				continue
			}
			seen[to] = true
			if err := walk(to); err != nil {
				return err
			}
		}
		return nil
	}

	return walk(start)
}

// dot renders the edge set in Graphviz DOT form, with nodes and edges in
// deterministic order.
func (g *graph) dot() string {
	keys := make([]string, 0, len(g.edges))
	for k := range g.edges {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("digraph {\n")
	for _, k := range keys {
		deps := g.edges[Key(k)]
		if len(deps) == 0 {
			fmt.Fprintf(&b, "\t%q;\n", k)
			continue
		}
		for _, dep := range deps {
			fmt.Fprintf(&b, "\t%q -> %q;\n", k, string(dep))
		}
	}
	b.WriteString("}\n")
	return b.String()
}
