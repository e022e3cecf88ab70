package graph

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// BFS visits every node reachable from start in breadth-first order, calling
// visit with the node and the neighbour it was discovered from. The start node
// is reported with ok == false. Returns ErrNodeNotFound if start is absent.
func (g *Graph[T]) BFS(start T, visit func(node, parent T, ok bool)) error {
	if !g.HasNode(start) {
		return ErrNodeNotFound
	}
	g.walk(start, visit)
	return nil
}

// walk is BFS for a start node known to be present
func (g *Graph[T]) walk(start T, visit func(node, parent T, ok bool)) {
	visited := mapset.New[T]()
	q := queue.New[T]()
	visited.Put(start)
	q.Enqueue(start)
	var zero T
	visit(start, zero, false)

	for !q.Empty() {
		current := q.Dequeue()
		for _, nbr := range g.adj[current] {
			if visited.Has(nbr) {
				continue
			}
			visited.Put(nbr)
			q.Enqueue(nbr)
			visit(nbr, current, true)
		}
	}
}

// Reachable returns the nodes reachable from start, in BFS discovery order
func (g *Graph[T]) Reachable(start T) ([]T, error) {
	var out []T
	err := g.BFS(start, func(n, _ T, _ bool) {
		out = append(out, n)
	})
	return out, err
}

// IsFullyConnected reports whether every node can reach every other node.
// A graph with zero or one node is trivially connected.
func (g *Graph[T]) IsFullyConnected() bool {
	if len(g.order) <= 1 {
		return true
	}
	count := 0
	g.walk(g.order[0], func(_, _ T, _ bool) {
		count++
	})
	return count == len(g.order)
}

// SpanningTree returns a new graph holding every node of g but only the edges
// along which a breadth-first search from the first inserted node discovered
// its neighbours. For a connected graph the result is a spanning tree: it has
// NodeCount-1 edges, no cycles and stays connected.
//
// Nodes unreachable from the start node are kept as isolated nodes, so the
// tree never has fewer nodes than g.
func (g *Graph[T]) SpanningTree() *Graph[T] {
	tree := New[T]()
	if len(g.order) == 0 {
		return tree
	}
	g.walk(g.order[0], func(n, parent T, ok bool) {
		if ok {
			tree.AddEdge(parent, n)
			return
		}
		tree.AddNode(n)
	})
	for _, n := range g.order {
		tree.AddNode(n)
	}
	return tree
}
