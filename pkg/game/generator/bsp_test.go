package generator

import (
	"testing"

	"dungeongen/pkg/engine/geom"
)

func TestSplitRect_Horizontal(t *testing.T) {
	a, b := splitRect(geom.NewRect(0, 0, 10, 20), Horizontal, 8, 1)
	if want := geom.NewRect(0, 0, 10, 9); a != want {
		t.Errorf("a = %v, want %v", a, want)
	}
	if want := geom.NewRect(0, 8, 10, 12); b != want {
		t.Errorf("b = %v, want %v", b, want)
	}
	if in := a.Intersect(b); in.Height != 1 || in.Width != 10 {
		t.Errorf("overlap = %v, want a 10x1 band", in)
	}
}

func TestSplitRect_Vertical(t *testing.T) {
	a, b := splitRect(geom.NewRect(2, 3, 12, 6), Vertical, 5, 2)
	if want := geom.NewRect(2, 3, 7, 6); a != want {
		t.Errorf("a = %v, want %v", a, want)
	}
	if want := geom.NewRect(7, 3, 7, 6); b != want {
		t.Errorf("b = %v, want %v", b, want)
	}
}

func TestAxis_Opposite(t *testing.T) {
	if Horizontal.Opposite() != Vertical || Vertical.Opposite() != Horizontal {
		t.Error("Opposite() does not swap the axes")
	}
}

func TestPartition_SmallBounds(t *testing.T) {
	r := newTestRun(smallConfig())
	drain(newPartitioner(r))

	rooms := r.state.Rooms()
	if len(rooms) < 2 {
		t.Fatalf("partition of 20x20 produced %d rooms, want at least 2", len(rooms))
	}
	for i, room := range rooms {
		if !r.state.bounds.ContainsRect(room) {
			t.Errorf("room %v outside bounds %v", room, r.state.bounds)
		}
		if room.Width < r.cfg.MinWidth || room.Height < r.cfg.MinHeight {
			t.Errorf("room %v smaller than the minimum %dx%d", room, r.cfg.MinWidth, r.cfg.MinHeight)
		}
		for _, other := range rooms[i+1:] {
			in := room.Intersect(other)
			if min(in.Width, in.Height) > r.cfg.IntersectLength {
				t.Errorf("rooms %v and %v overlap by %v, more than the band", room, other, in)
			}
		}
	}
}

func TestPartition_TooSmallKeepsRoot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 7
	r := newTestRun(cfg)
	drain(newPartitioner(r))

	rooms := r.state.Rooms()
	if len(rooms) != 1 || rooms[0] != r.state.bounds {
		t.Errorf("Rooms() = %v, want only the bounds %v", rooms, r.state.bounds)
	}
}

func TestPartition_OneSplitPerStep(t *testing.T) {
	r := newTestRun(smallConfig())
	p := newPartitioner(r)
	steps := drain(p)

	// Every split adds one room; the last step only drains leaves.
	if rooms := len(r.state.rooms); steps != rooms || p.splits != rooms-1 {
		t.Errorf("steps = %d, splits = %d for %d rooms, want %d and %d", steps, p.splits, rooms, rooms, rooms-1)
	}
}

func TestPartition_Deterministic(t *testing.T) {
	a, b := newTestRun(smallConfig()), newTestRun(smallConfig())
	drain(newPartitioner(a))
	drain(newPartitioner(b))

	ra, rb := a.state.Rooms(), b.state.Rooms()
	if len(ra) != len(rb) {
		t.Fatalf("room counts differ: %d vs %d", len(ra), len(rb))
	}
	for i := range ra {
		if ra[i] != rb[i] {
			t.Errorf("room %d = %v vs %v", i, ra[i], rb[i])
		}
	}
}

func TestSplitPoint_NoRoom(t *testing.T) {
	p := newPartitioner(newTestRun(smallConfig()))
	if _, ok := p.splitPoint(geom.NewRect(0, 0, 40, 9), Horizontal); ok {
		t.Error("splitPoint on a 9-high room with margin 6 should fail")
	}
	point, ok := p.splitPoint(geom.NewRect(0, 0, 40, 9), Vertical)
	if !ok {
		t.Fatal("splitPoint on a 40-wide room failed")
	}
	if point < 6 || point >= 34 {
		t.Errorf("splitPoint = %d, want in [6,34)", point)
	}
}

func TestPartitionSplit_OppositeAxisFallback(t *testing.T) {
	tests := []struct {
		name      string
		room      geom.Rect
		wantSplit bool
	}{
		{"too short for horizontal, wide enough for vertical", geom.NewRect(0, 0, 20, 8), true},
		{"too small on both axes", geom.NewRect(0, 0, 10, 8), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRun(smallConfig())
			p := newPartitioner(r)
			id := r.state.addRoom(tt.room)

			if p.split(splitTask{room: id, axis: Horizontal, tryOpposite: true}) {
				t.Fatal("horizontal split of an 8-high room succeeded")
			}
			if n := p.pending.Size(); n != 1 {
				t.Fatalf("pending = %d tasks after a failed split, want 1", n)
			}
			retry := p.pending.Pop()
			want := splitTask{room: id, axis: Vertical, tryOpposite: false}
			if retry != want {
				t.Fatalf("retry = %+v, want %+v", retry, want)
			}

			if got := p.split(retry); got != tt.wantSplit {
				t.Errorf("split(retry) = %v, want %v", got, tt.wantSplit)
			}
			if tt.wantSplit {
				if got := len(r.state.rooms); got != 2 {
					t.Errorf("rooms = %d after the vertical split, want 2", got)
				}
				return
			}
			if n := p.pending.Size(); n != 0 {
				t.Errorf("pending = %d after the retry failed, want 0", n)
			}
			if got := len(r.state.rooms); got != 1 {
				t.Errorf("rooms = %d, want the unsplit room only", got)
			}
		})
	}
}
