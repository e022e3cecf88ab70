package generator

import (
	"log/slog"

	"dungeongen/pkg/engine/geom"
	"dungeongen/pkg/engine/rng"
)

// newTestRun returns a phase context over an empty state with a fixed seed.
func newTestRun(cfg Config) *run {
	cfg = cfg.Normalize()
	return &run{
		state: newState(cfg, 1),
		cfg:   cfg,
		rng:   rng.New(1),
		log:   slog.New(slog.DiscardHandler),
	}
}

// drain steps p until it completes and returns the number of steps taken.
func drain(p phase) int {
	n := 1
	for !p.step() {
		n++
	}
	return n
}

// addRooms adds rooms to the state and registers them as graph nodes.
func addRooms(s *State, rects ...geom.Rect) []NodeID {
	ids := make([]NodeID, len(rects))
	for i, r := range rects {
		ids[i] = s.addRoom(r)
		s.graph.AddNode(ids[i])
	}
	return ids
}

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Size = 20
	cfg.MinWidth = 4
	cfg.MinHeight = 4
	cfg.IntersectLength = 1
	return cfg
}
