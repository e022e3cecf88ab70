package generator

import (
	"dungeongen/pkg/engine/geom"
)

// doorSynthesizer places one door in the overlap band of every pair of rooms
// that share a wide enough band, and builds the connectivity graph.
type doorSynthesizer struct {
	*run
	started bool
	i, j    int
	placed  int
}

func newDoorSynthesizer(r *run) *doorSynthesizer {
	return &doorSynthesizer{run: r}
}

func (d *doorSynthesizer) name() string {
	return "doors"
}

func (d *doorSynthesizer) step() bool {
	rooms := d.state.rooms
	if !d.started {
		d.started = true
		for _, id := range rooms {
			d.state.graph.AddNode(id)
		}
		d.i, d.j = 0, 1
	}

	for d.i < len(rooms) {
		for d.j < len(rooms) {
			a, b := rooms[d.i], rooms[d.j]
			d.j++
			if d.place(a, b) {
				return false
			}
		}
		d.i++
		d.j = d.i + 1
	}

	d.log.Info("doors placed", "doors", d.placed, "rooms", len(rooms))
	return true
}

// place adds a door between a and b if their overlap allows one
func (d *doorSynthesizer) place(a, b NodeID) bool {
	door, ok := d.doorRect(d.state.rect(a), d.state.rect(b))
	if !ok {
		return false
	}
	d.state.addDoor(door, a, b)
	d.placed++
	return true
}

// doorRect returns the il x il door square inside the overlap of ra and rb
func (d *doorSynthesizer) doorRect(ra, rb geom.Rect) (geom.Rect, bool) {
	if ra == rb || !ra.Intersects(rb) {
		return geom.Rect{}, false
	}
	in := ra.Intersect(rb)
	if in.Width < d.cfg.MinWidth && in.Height < d.cfg.MinHeight {
		return geom.Rect{}, false
	}

	il := d.cfg.IntersectLength
	if in.Width > in.Height {
		return geom.NewRect(in.X+d.offset(in.Width), in.Y, il, il), true
	}
	return geom.NewRect(in.X, in.Y+d.offset(in.Height), il, il), true
}

// offset keeps the door il+2 cells away from both ends of the band, or
// centres it when the band is too short for that. The door never starts
// past extent-il, so it stays inside the band.
func (d *doorSynthesizer) offset(extent int) int {
	il := d.cfg.IntersectLength
	pad := il + 2
	lo, hi := pad, extent-pad
	if lo > hi {
		return max(0, min((extent-il)/2, extent-il))
	}
	return d.rng.Range(lo, hi)
}
