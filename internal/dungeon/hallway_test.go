package dungeon

import (
	"math/rand"
	"testing"
)

func TestHallwayPathStraight(t *testing.T) {
	path := hallwayPath(2, 3, 7, 3, false, 0, 0)
	if len(path) != 6 {
		t.Fatalf("path length = %d, want 6", len(path))
	}
	for i, p := range path {
		if p.x != 2+i || p.y != 3 {
			t.Fatalf("path[%d] = (%d,%d), want (%d,3)", i, p.x, p.y, 2+i)
		}
	}
}

func TestHallwayPathKinked(t *testing.T) {
	// Vertical kink: two vertical legs joined horizontally at y=4.
	path := hallwayPath(2, 2, 8, 6, true, 0, 4)
	seen := make(map[point]bool, len(path))
	for _, p := range path {
		if seen[p] {
			t.Fatalf("duplicate point (%d,%d)", p.x, p.y)
		}
		seen[p] = true
	}
	for x := 2; x <= 8; x++ {
		if !seen[point{x, 4}] {
			t.Fatalf("middle leg missing (%d,4)", x)
		}
	}
	if !seen[point{2, 2}] || !seen[point{8, 6}] {
		t.Fatal("endpoints missing from path")
	}
}

func TestCreateHallwayStopsAtOpenTile(t *testing.T) {
	f := NewFloor(20, 10)
	idx := f.carveRoom(9, 4, 3, 3)

	// Carve straight through the room's row. Both carving directions must
	// stop at the room edge instead of tunneling through.
	f.createHallway(3, 5, 16, 5, false, 0, 0)

	for x := 3; x <= 8; x++ {
		if !f.At(x, 5).IsHallway() {
			t.Fatalf("tile (%d,5) not carved as hallway", x)
		}
	}
	for x := 12; x <= 16; x++ {
		if !f.At(x, 5).IsHallway() {
			t.Fatalf("tile (%d,5) not carved as hallway", x)
		}
	}
	for x := 9; x <= 11; x++ {
		if f.At(x, 5).RoomIndex != idx {
			t.Fatalf("room tile (%d,5) reclassified to %#x", x, f.At(x, 5).RoomIndex)
		}
	}
}

func TestCreateHallwayOpenEndpointSkipped(t *testing.T) {
	f := NewFloor(20, 10)
	f.carveRoom(9, 4, 3, 3)

	// Starting on the room's open edge tile must not count as an early
	// intersection.
	f.createHallway(11, 5, 16, 5, false, 0, 0)
	for x := 12; x <= 16; x++ {
		if !f.At(x, 5).IsHallway() {
			t.Fatalf("tile (%d,5) not carved from open endpoint", x)
		}
	}
}

func TestIsNextToHallway(t *testing.T) {
	f := NewFloor(10, 8)
	h := f.At(4, 4)
	h.Terrain = TerrainOpen
	h.RoomIndex = roomNone

	cases := []struct {
		x, y int
		want bool
	}{
		{4, 4, true},  // the hallway tile itself
		{4, 3, true},  // above
		{5, 4, true},  // right
		{5, 5, false}, // diagonal does not count
		{7, 7, false},
	}
	for _, c := range cases {
		if got := f.isNextToHallway(c.x, c.y); got != c.want {
			t.Errorf("isNextToHallway(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestIsNextToHallwayExcept(t *testing.T) {
	f := NewFloor(10, 8)
	openHallway(f, 4, 4)

	if !f.isNextToHallway(5, 4) {
		t.Error("isNextToHallway(5,4) = false, want true")
	}
	if f.isNextToHallwayExcept(5, 4, 4, 4) {
		t.Error("excluded neighbor still counted as hallway")
	}
	if !f.isNextToHallwayExcept(5, 4, 5, 3) {
		t.Error("excluding an unrelated tile hid the hallway")
	}
}

func TestCarveExtraHallwayStopsBesideExistingHallway(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		f := NewFloor(24, 14)
		idx := f.carveRoom(2, 2, 8, 5)
		for y := 1; y <= 12; y++ {
			openHallway(f, 12, y)
		}

		rng := rand.New(rand.NewSource(seed))
		f.carveExtraHallway(idx, 9, 4, point{1, 0}, rng)

		// The walk must join the hallway column at x=12 through a single
		// tile at x=11 instead of running alongside it.
		beside := 0
		for y := 0; y < f.Height; y++ {
			if f.At(11, y).IsOpen() {
				beside++
			}
		}
		if beside > 1 {
			t.Fatalf("seed %d: %d tiles carved beside the hallway", seed, beside)
		}
	}
}

func TestAddExtraHallwaysSkipsEmptyRooms(t *testing.T) {
	f := NewFloor(20, 12)
	f.carveRoom(3, 3, 4, 4)
	// A zero-size room, as left behind by a layout merge.
	f.Rooms = append(f.Rooms, Room{X: 10, Y: 5})

	rng := rand.New(rand.NewSource(3))
	f.addExtraHallways(8, rng) // must not panic on the empty room
}
