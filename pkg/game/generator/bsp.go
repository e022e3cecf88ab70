package generator

import (
	"github.com/zyedidia/generic/stack"

	"dungeongen/pkg/engine/geom"
)

// maxSplitAttempts bounds the split point search for one room and axis
const maxSplitAttempts = 100

// Axis is the orientation of a split line
type Axis int

const (
	// Horizontal splits divide a room's height into a lower and an upper part
	Horizontal Axis = iota
	// Vertical splits divide a room's width into a left and a right part
	Vertical
)

// Opposite returns the orthogonal axis
func (a Axis) Opposite() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// splitTask is one pending split of the partition work stack
type splitTask struct {
	room        NodeID
	axis        Axis
	tryOpposite bool
}

// partitioner recursively splits the bounds into rooms. Recursion runs on an
// explicit stack so that every successful split can be one unit of work.
type partitioner struct {
	*run
	pending *stack.Stack[splitTask]
	started bool
	splits  int
}

func newPartitioner(r *run) *partitioner {
	return &partitioner{run: r, pending: stack.New[splitTask]()}
}

func (p *partitioner) name() string {
	return "partition"
}

func (p *partitioner) step() bool {
	if !p.started {
		p.started = true
		root := p.state.addRoom(p.state.bounds)
		axis := Vertical
		if p.rng.Intn(2) == 1 {
			axis = Horizontal
		}
		p.pending.Push(splitTask{room: root, axis: axis, tryOpposite: true})
	}

	for p.pending.Size() > 0 {
		if p.split(p.pending.Pop()) {
			return false
		}
	}

	p.log.Info("splitting finished", "rooms", len(p.state.rooms), "splits", p.splits)
	return true
}

// split tries to divide one room and reports whether it did
func (p *partitioner) split(t splitTask) bool {
	room := p.state.rect(t.room)
	if p.notBigEnough(room) || !p.state.bounds.ContainsRect(room) {
		return false
	}

	point, ok := p.splitPoint(room, t.axis)
	if !ok {
		if t.tryOpposite {
			p.pending.Push(splitTask{room: t.room, axis: t.axis.Opposite()})
		}
		return false
	}

	a, b := splitRect(room, t.axis, point, p.cfg.IntersectLength)
	idA, idB := p.state.replaceRoom(t.room, a, b)
	p.splits++

	// A is handled before B.
	next := t.axis.Opposite()
	p.pending.Push(splitTask{room: idB, axis: next, tryOpposite: true})
	p.pending.Push(splitTask{room: idA, axis: next, tryOpposite: true})
	return true
}

func (p *partitioner) notBigEnough(r geom.Rect) bool {
	il := p.cfg.IntersectLength
	return r.Width <= p.cfg.MinWidth+2*il && r.Height <= p.cfg.MinHeight+2*il
}

// splitPoint draws an offset along the split extent that leaves room for the
// overlap band on both sides. ok is false when no draw succeeded.
func (p *partitioner) splitPoint(r geom.Rect, axis Axis) (point int, ok bool) {
	il := p.cfg.IntersectLength
	extent, minDim := r.Height, p.cfg.MinHeight
	if axis == Vertical {
		extent, minDim = r.Width, p.cfg.MinWidth
	}

	margin := minDim + 2*il
	lo, hi := margin, extent-margin
	if lo > hi {
		return 0, false
	}
	for range maxSplitAttempts {
		point = p.rng.Range(lo, hi)
		if point+il <= extent-il && point-il >= il {
			return point, true
		}
	}
	return 0, false
}

// splitRect divides r at point along axis. The two halves share a band of
// width il.
func splitRect(r geom.Rect, axis Axis, point, il int) (a, b geom.Rect) {
	if axis == Horizontal {
		a = geom.NewRect(r.X, r.Y, r.Width, point+il)
		b = geom.NewRect(r.X, r.Y+point, r.Width, r.Height-point)
		return a, b
	}
	a = geom.NewRect(r.X, r.Y, point+il, r.Height)
	b = geom.NewRect(r.X+point, r.Y, r.Width-point, r.Height)
	return a, b
}
