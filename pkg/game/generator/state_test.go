package generator

import (
	"errors"
	"testing"

	"dungeongen/pkg/engine/geom"
)

func TestState_AccessorsReturnCopies(t *testing.T) {
	r := newTestRun(smallConfig())
	rooms := addRooms(r.state, geom.NewRect(0, 0, 6, 10), geom.NewRect(5, 0, 5, 10))
	r.state.addDoor(geom.NewRect(5, 4, 1, 1), rooms[0], rooms[1])

	ids := r.state.RoomIDs()
	ids[0] = 99
	if r.state.rooms[0] == 99 {
		t.Error("mutating RoomIDs() changed the state")
	}
	g := r.state.Graph()
	g.RemoveNode(rooms[0])
	if !r.state.graph.HasNode(rooms[0]) {
		t.Error("mutating Graph() changed the state")
	}
	if r.state.TileGrid() != nil {
		t.Error("TileGrid() before rasterization should be nil")
	}
	if n, ok := r.state.Node(rooms[1]); !ok || n.Kind != KindRoom {
		t.Errorf("Node(%d) = %+v, %v, want a room", rooms[1], n, ok)
	}
	if _, ok := r.state.Node(-1); ok {
		t.Error("Node(-1) ok = true")
	}
}

func TestState_Validate(t *testing.T) {
	tests := []struct {
		name  string
		build func(s *State)
	}{
		{"room outside bounds", func(s *State) {
			addRooms(s, geom.NewRect(15, 15, 10, 10))
		}},
		{"door without edge", func(s *State) {
			rooms := addRooms(s, geom.NewRect(0, 0, 6, 10), geom.NewRect(5, 0, 5, 10))
			d := s.addDoor(geom.NewRect(5, 4, 1, 1), rooms[0], rooms[1])
			s.graph.RemoveEdge(d, rooms[1])
		}},
		{"door to removed room", func(s *State) {
			rooms := addRooms(s, geom.NewRect(0, 0, 6, 10), geom.NewRect(5, 0, 5, 10))
			s.addDoor(geom.NewRect(5, 4, 1, 1), rooms[0], rooms[1])
			s.removeRoom(rooms[1])
		}},
		{"stale graph node", func(s *State) {
			rooms := addRooms(s, geom.NewRect(0, 0, 6, 10))
			s.graph.AddEdge(rooms[0], NodeID(42))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRun(smallConfig())
			tt.build(r.state)
			if err := r.state.Validate(); !errors.Is(err, ErrInconsistentState) {
				t.Errorf("Validate() = %v, want ErrInconsistentState", err)
			}
		})
	}
}

func TestState_ValidateConsistent(t *testing.T) {
	r := newTestRun(smallConfig())
	rooms := addRooms(r.state, geom.NewRect(0, 0, 6, 10), geom.NewRect(5, 0, 5, 10))
	r.state.addDoor(geom.NewRect(5, 4, 1, 1), rooms[0], rooms[1])
	if err := r.state.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
