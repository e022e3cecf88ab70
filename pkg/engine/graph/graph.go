// Package graph provides a small undirected graph keyed by comparable values,
// used to track which rooms and doors of a dungeon are connected.
//
// Iteration is deterministic: Nodes and Neighbors return elements in insertion
// order, and every traversal starts from the first inserted node. Seeded
// generation relies on this to reproduce the same spanning tree and the same
// pruning decisions for the same seed.
//
// Edges are always symmetric. Adding (a, b) records b in a's neighbour list and
// a in b's; removing a node purges it from every neighbour list.
package graph

import (
	"errors"
	"slices"
)

// ErrNodeNotFound indicates an operation referenced a node that is not in the graph.
var ErrNodeNotFound = errors.New("graph: node not found")

// Graph is an undirected graph without parallel edges or self-loops.
// The zero value is not usable; create graphs with New.
type Graph[T comparable] struct {
	order []T
	adj   map[T][]T
}

// New creates an empty graph
func New[T comparable]() *Graph[T] {
	return &Graph[T]{adj: make(map[T][]T)}
}

// AddNode adds n if it is not already present
func (g *Graph[T]) AddNode(n T) {
	if _, ok := g.adj[n]; ok {
		return
	}
	g.adj[n] = nil
	g.order = append(g.order, n)
}

// HasNode reports whether n is in the graph
func (g *Graph[T]) HasNode(n T) bool {
	_, ok := g.adj[n]
	return ok
}

// AddEdge connects a and b, adding either endpoint if missing.
// Adding an existing edge is a no-op, as is a self-loop.
func (g *Graph[T]) AddEdge(a, b T) {
	g.AddNode(a)
	g.AddNode(b)
	if a == b || slices.Contains(g.adj[a], b) {
		return
	}
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
}

// HasEdge reports whether a and b are connected
func (g *Graph[T]) HasEdge(a, b T) bool {
	return slices.Contains(g.adj[a], b)
}

// RemoveEdge disconnects a and b. Missing nodes or edges are ignored.
func (g *Graph[T]) RemoveEdge(a, b T) {
	if nbrs, ok := g.adj[a]; ok {
		g.adj[a] = without(nbrs, b)
	}
	if nbrs, ok := g.adj[b]; ok {
		g.adj[b] = without(nbrs, a)
	}
}

// RemoveNode removes n and every edge touching it. Missing nodes are ignored.
func (g *Graph[T]) RemoveNode(n T) {
	nbrs, ok := g.adj[n]
	if !ok {
		return
	}
	for _, m := range nbrs {
		g.adj[m] = without(g.adj[m], n)
	}
	delete(g.adj, n)
	g.order = without(g.order, n)
}

// Neighbors returns a copy of n's neighbours in insertion order.
// Asking for an absent node is a caller error and returns ErrNodeNotFound.
func (g *Graph[T]) Neighbors(n T) ([]T, error) {
	nbrs, ok := g.adj[n]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return slices.Clone(nbrs), nil
}

// Degree returns the number of neighbours of n, or 0 if n is absent
func (g *Graph[T]) Degree(n T) int {
	return len(g.adj[n])
}

// Nodes returns a copy of all nodes in insertion order
func (g *Graph[T]) Nodes() []T {
	return slices.Clone(g.order)
}

// NodeCount returns the number of nodes
func (g *Graph[T]) NodeCount() int {
	return len(g.order)
}

// EdgeCount returns the number of undirected edges
func (g *Graph[T]) EdgeCount() int {
	total := 0
	for _, nbrs := range g.adj {
		total += len(nbrs)
	}
	return total / 2
}

// Clear removes every node and edge
func (g *Graph[T]) Clear() {
	g.order = nil
	g.adj = make(map[T][]T)
}

// Clone returns a deep copy of the graph. The copy shares no storage with g,
// so mutating one never affects the other.
//
// Complexity: O(V + E)
func (g *Graph[T]) Clone() *Graph[T] {
	c := &Graph[T]{
		order: slices.Clone(g.order),
		adj:   make(map[T][]T, len(g.adj)),
	}
	for n, nbrs := range g.adj {
		c.adj[n] = slices.Clone(nbrs)
	}
	return c
}

// Equal reports whether g and o hold the same nodes and edges in the same
// insertion order
func (g *Graph[T]) Equal(o *Graph[T]) bool {
	if g == nil || o == nil {
		return g == o
	}
	if !slices.Equal(g.order, o.order) {
		return false
	}
	for n, nbrs := range g.adj {
		if !slices.Equal(nbrs, o.adj[n]) {
			return false
		}
	}
	return true
}

func without[T comparable](s []T, v T) []T {
	i := slices.Index(s, v)
	if i < 0 {
		return s
	}
	return slices.Delete(s, i, i+1)
}
