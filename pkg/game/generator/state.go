package generator

import (
	"errors"
	"fmt"
	"slices"

	"dungeongen/pkg/engine/geom"
	"dungeongen/pkg/engine/graph"
	"dungeongen/pkg/engine/world"
)

// ErrInconsistentState is wrapped by State.Validate when rooms, doors and the
// connectivity graph disagree.
var ErrInconsistentState = errors.New("generator: inconsistent state")

// NodeID is a stable index into a state's node arena. Rooms and doors are
// keyed by NodeID in the connectivity graph, so two rooms with identical
// bounds never collide.
type NodeID int

// Kind tags an arena node as a room or a door
type Kind int

// Node kinds
const (
	KindRoom Kind = iota
	KindDoor
)

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case KindRoom:
		return "room"
	case KindDoor:
		return "door"
	default:
		return "unknown"
	}
}

// Node is an arena entry
type Node struct {
	Rect geom.Rect
	Kind Kind
}

// State is the dungeon produced by one generation run. Phases mutate it in
// place; once the run completes it is read-only and safe to hand to renderers.
type State struct {
	config Config
	bounds geom.Rect
	seed   int64

	nodes     []Node
	rooms     []NodeID
	doors     []NodeID
	doorRooms map[NodeID][2]NodeID
	graph     *graph.Graph[NodeID]

	grid       *world.Grid
	floor      [][]bool
	floorCount int

	pruned      int
	pruneTarget int
}

func newState(cfg Config, seed int64) *State {
	return &State{
		config:    cfg,
		bounds:    geom.NewRect(0, 0, cfg.Size, cfg.Size),
		seed:      seed,
		doorRooms: make(map[NodeID][2]NodeID),
		graph:     graph.New[NodeID](),
	}
}

// Config returns the resolved configuration the state was generated with
func (s *State) Config() Config {
	return s.config
}

// Bounds returns the bounding rectangle every room lies in
func (s *State) Bounds() geom.Rect {
	return s.bounds
}

// Seed returns the effective seed of the run
func (s *State) Seed() int64 {
	return s.seed
}

// Node returns the arena entry for id
func (s *State) Node(id NodeID) (Node, bool) {
	if id < 0 || int(id) >= len(s.nodes) {
		return Node{}, false
	}
	return s.nodes[id], true
}

// Rooms returns the room rectangles in list order
func (s *State) Rooms() []geom.Rect {
	return s.rects(s.rooms)
}

// RoomIDs returns the room node IDs in list order
func (s *State) RoomIDs() []NodeID {
	return slices.Clone(s.rooms)
}

// Doors returns the door rectangles in list order
func (s *State) Doors() []geom.Rect {
	return s.rects(s.doors)
}

// DoorIDs returns the door node IDs in list order
func (s *State) DoorIDs() []NodeID {
	return slices.Clone(s.doors)
}

// DoorRooms returns the two rooms a door connects
func (s *State) DoorRooms(door NodeID) (a, b NodeID, ok bool) {
	pair, ok := s.doorRooms[door]
	return pair[0], pair[1], ok
}

// Graph returns a copy of the room/door connectivity graph
func (s *State) Graph() *graph.Graph[NodeID] {
	return s.graph.Clone()
}

// TileGrid returns a copy of the tile grid indexed [row][col], or nil before
// the layout has been materialized
func (s *State) TileGrid() [][]int {
	if s.grid == nil {
		return nil
	}
	return s.grid.Values()
}

// Grid returns a copy of the tile grid, or nil before materialization
func (s *State) Grid() *world.Grid {
	if s.grid == nil {
		return nil
	}
	return s.grid.Clone()
}

// IsFloor reports whether flood fill placed floor on the cell
func (s *State) IsFloor(c world.Cell) bool {
	row, col := c.Y-s.bounds.Y, c.X-s.bounds.X
	if row < 0 || row >= len(s.floor) || col < 0 || col >= len(s.floor[row]) {
		return false
	}
	return s.floor[row][col]
}

// FloorCount returns the number of floor tiles placed
func (s *State) FloorCount() int {
	return s.floorCount
}

// Pruned returns how many rooms the pruner removed and how many it aimed for
func (s *State) Pruned() (removed, target int) {
	return s.pruned, s.pruneTarget
}

func (s *State) rects(ids []NodeID) []geom.Rect {
	out := make([]geom.Rect, len(ids))
	for i, id := range ids {
		out[i] = s.nodes[id].Rect
	}
	return out
}

func (s *State) rect(id NodeID) geom.Rect {
	return s.nodes[id].Rect
}

func (s *State) addNode(r geom.Rect, kind Kind) NodeID {
	s.nodes = append(s.nodes, Node{Rect: r, Kind: kind})
	return NodeID(len(s.nodes) - 1)
}

func (s *State) addRoom(r geom.Rect) NodeID {
	id := s.addNode(r, KindRoom)
	s.rooms = append(s.rooms, id)
	return id
}

// replaceRoom swaps a split room for its two children, appended in order
func (s *State) replaceRoom(parent NodeID, a, b geom.Rect) (NodeID, NodeID) {
	s.removeRoom(parent)
	return s.addRoom(a), s.addRoom(b)
}

func (s *State) removeRoom(id NodeID) {
	if i := slices.Index(s.rooms, id); i >= 0 {
		s.rooms = slices.Delete(s.rooms, i, i+1)
	}
}

func (s *State) addDoor(r geom.Rect, a, b NodeID) NodeID {
	id := s.addNode(r, KindDoor)
	s.doors = append(s.doors, id)
	s.doorRooms[id] = [2]NodeID{a, b}
	s.graph.AddEdge(a, id)
	s.graph.AddEdge(b, id)
	return id
}

func (s *State) removeDoor(id NodeID) {
	if i := slices.Index(s.doors, id); i >= 0 {
		s.doors = slices.Delete(s.doors, i, i+1)
	}
	delete(s.doorRooms, id)
}

// doorsTouching returns the doors that intersect the room or are connected to
// it in the graph, in door list order
func (s *State) doorsTouching(room NodeID) []NodeID {
	r := s.rect(room)
	var out []NodeID
	for _, d := range s.doors {
		if r.Intersects(s.rect(d)) || s.graph.HasEdge(room, d) {
			out = append(out, d)
		}
	}
	return out
}

// Validate checks that rooms, doors and graph agree with each other and with
// the bounds. It returns nil for a consistent state.
func (s *State) Validate() error {
	live := make(map[NodeID]Kind, len(s.rooms)+len(s.doors))
	for _, id := range s.rooms {
		r := s.rect(id)
		if r.Empty() {
			return fmt.Errorf("%w: room %d %v is empty", ErrInconsistentState, id, r)
		}
		if !s.bounds.ContainsRect(r) {
			return fmt.Errorf("%w: room %d %v outside bounds %v", ErrInconsistentState, id, r, s.bounds)
		}
		live[id] = KindRoom
	}
	for _, id := range s.doors {
		a, b, ok := s.DoorRooms(id)
		if !ok {
			return fmt.Errorf("%w: door %d has no source rooms", ErrInconsistentState, id)
		}
		if !slices.Contains(s.rooms, a) || !slices.Contains(s.rooms, b) {
			return fmt.Errorf("%w: door %d connects a removed room", ErrInconsistentState, id)
		}
		if !s.graph.HasEdge(id, a) || !s.graph.HasEdge(id, b) {
			return fmt.Errorf("%w: door %d is missing a graph edge", ErrInconsistentState, id)
		}
		live[id] = KindDoor
	}
	for _, n := range s.graph.Nodes() {
		if _, ok := live[n]; !ok {
			return fmt.Errorf("%w: graph node %d is neither a live room nor a live door", ErrInconsistentState, n)
		}
	}
	if s.graph.NodeCount() > 0 {
		for _, id := range s.rooms {
			if !s.graph.HasNode(id) {
				return fmt.Errorf("%w: room %d missing from graph", ErrInconsistentState, id)
			}
		}
	}
	return nil
}
