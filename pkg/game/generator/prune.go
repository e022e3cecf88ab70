package generator

import (
	"cmp"
	"slices"

	"dungeongen/pkg/engine/graph"
)

// pruner removes the smallest rooms, up to DeletePercent of them, as long as
// the remaining layout stays connected. Every candidate is tried against the
// live graph; a disconnecting removal is rolled back from the last committed
// snapshot.
type pruner struct {
	*run
	started  bool
	order    []NodeID
	next     int
	target   int
	removed  int
	snapshot *graph.Graph[NodeID]
}

func newPruner(r *run) *pruner {
	return &pruner{run: r}
}

func (p *pruner) name() string {
	return "prune"
}

func (p *pruner) step() bool {
	if !p.started {
		p.started = true
		p.order = slices.Clone(p.state.rooms)
		slices.SortStableFunc(p.order, func(a, b NodeID) int {
			return cmp.Compare(p.state.rect(a).Area(), p.state.rect(b).Area())
		})
		p.target = len(p.order) * p.cfg.DeletePercent / 100
		p.snapshot = p.state.graph.Clone()
		p.state.pruneTarget = p.target
	}

	if !p.finished() {
		p.try(p.order[p.next])
		p.next++
	}
	if !p.finished() {
		return false
	}

	p.state.pruned = p.removed
	p.log.Info("rooms pruned", "removed", p.removed, "target", p.target, "rooms", len(p.state.rooms))
	return true
}

func (p *pruner) finished() bool {
	return p.removed >= p.target || p.next >= len(p.order) || len(p.state.rooms) <= 1
}

// try removes room and its doors if the graph stays connected without them
func (p *pruner) try(room NodeID) {
	doors := p.state.doorsTouching(room)
	for _, d := range doors {
		p.state.graph.RemoveNode(d)
	}
	p.state.graph.RemoveNode(room)

	if !p.state.graph.IsFullyConnected() {
		p.log.Debug("room removal rolled back", "room", room, "rect", p.state.rect(room))
		p.state.graph = p.snapshot.Clone()
		return
	}

	p.state.removeRoom(room)
	for _, d := range doors {
		p.state.removeDoor(d)
	}
	p.removed++
	p.snapshot = p.state.graph.Clone()
	p.state.pruned = p.removed
}
