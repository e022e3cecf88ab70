package generator

import (
	"github.com/zyedidia/generic/queue"

	"dungeongen/pkg/engine/geom"
	"dungeongen/pkg/engine/world"
)

// FloorEvent is emitted once for every tile flood fill turns into floor
type FloorEvent struct {
	Room   NodeID
	Bounds geom.Rect // bounds of the room being filled
	Cell   world.Cell
}

// rasterizer draws room outlines as walls and punches the doors through them
type rasterizer struct {
	*run
}

func (r *rasterizer) name() string {
	return "rasterize"
}

func (r *rasterizer) step() bool {
	s := r.state
	s.grid = world.NewGridFor(s.bounds)
	for _, id := range s.rooms {
		s.grid.FillRectOutline(s.rect(id), world.Wall)
	}
	for _, id := range s.doors {
		s.grid.FillRect(s.rect(id), world.Open)
	}
	s.floor = make([][]bool, s.grid.Rows())
	for row := range s.floor {
		s.floor[row] = make([]bool, s.grid.Cols())
	}
	return true
}

// floodFiller grows floor from the centre of every room in list order. The
// floor mask doubles as the visited set, so a cell produces at most one
// FloorEvent per materialization.
type floodFiller struct {
	*run
	next    int
	current NodeID
	bounds  geom.Rect
	pending *queue.Queue[world.Cell]
}

func newFloodFiller(r *run) *floodFiller {
	return &floodFiller{run: r, pending: queue.New[world.Cell]()}
}

func (f *floodFiller) name() string {
	return "fill"
}

func (f *floodFiller) step() bool {
	for processed := 0; processed < f.cfg.FillBatch; {
		if f.pending.Empty() {
			if f.next >= len(f.state.rooms) {
				f.log.Info("floor filled", "tiles", f.state.floorCount)
				return true
			}
			f.startRoom(f.state.rooms[f.next])
			f.next++
			continue
		}
		c := f.pending.Dequeue()
		for _, n := range c.Neighbors() {
			f.visit(n)
		}
		processed++
	}
	return false
}

func (f *floodFiller) startRoom(id NodeID) {
	f.current = id
	f.bounds = f.state.rect(id)
	x, y := f.bounds.Center()
	f.visit(world.Cell{X: x, Y: y})
}

func (f *floodFiller) visit(c world.Cell) {
	s := f.state
	if !s.grid.Contains(c) || !f.bounds.Contains(c.X, c.Y) {
		return
	}
	row, col := c.Y-s.bounds.Y, c.X-s.bounds.X
	if s.floor[row][col] || s.grid.At(c) != world.Open {
		return
	}
	s.floor[row][col] = true
	s.floorCount++
	f.pending.Enqueue(c)
	if f.hooks.onFloorPlaced != nil {
		f.hooks.onFloorPlaced(FloorEvent{Room: f.current, Bounds: f.bounds, Cell: c})
	}
}
