package generator

// treeReducer replaces the connectivity graph with its BFS spanning tree and
// drops the doors the tree no longer routes through.
type treeReducer struct {
	*run
}

func (t *treeReducer) name() string {
	return "tree"
}

func (t *treeReducer) step() bool {
	tree := t.state.graph.SpanningTree()
	dropped := 0
	for _, d := range t.state.DoorIDs() {
		// A door in use keeps both of its edges.
		if tree.Degree(d) == 2 {
			continue
		}
		tree.RemoveNode(d)
		t.state.removeDoor(d)
		dropped++
	}
	t.state.graph = tree
	t.log.Info("graph reduced to tree", "doors", len(t.state.doors), "dropped", dropped)
	return true
}
