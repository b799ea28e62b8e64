package dungeon

import (
	"context"
	"math/rand"
	"testing"
)

func TestStandardGridForcesTwoRooms(t *testing.T) {
	props := DefaultProperties()
	props.RoomDensity = 0 // every cell rolls anchor

	for seed := int64(1); seed <= 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := buildStandardGrid(props, rng)
		rooms := 0
		for _, c := range g.cells {
			if c.role == cellRoom {
				rooms++
			}
		}
		if rooms < 2 {
			t.Fatalf("seed %d: %d rooms, want at least 2", seed, rooms)
		}
	}
}

func TestSpanningSweepConnectsEverything(t *testing.T) {
	g := newCellGrid(DefaultWidth, DefaultHeight, 4, 3)
	g.spanningSweep()

	// Union-find over the recorded connections.
	parent := make([]int, len(g.cells))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	for _, c := range g.conns {
		parent[find(c.a)] = find(c.b)
	}
	root := find(0)
	for i := range g.cells {
		if find(i) != root {
			t.Fatalf("cell %d not connected to cell 0", i)
		}
	}
}

func TestConnectDeduplicates(t *testing.T) {
	g := newCellGrid(DefaultWidth, DefaultHeight, 3, 2)
	g.connect(0, 1)
	g.connect(1, 0)
	g.connect(0, 1)
	if len(g.conns) != 1 {
		t.Fatalf("connection count = %d, want 1", len(g.conns))
	}
	if g.conns[0].a != 0 || g.conns[0].b != 1 {
		t.Fatalf("connection = %+v, want normalized {0 1}", g.conns[0])
	}
}

func TestOuterRoomsGridSkipsBottomSweepUnderFourColumns(t *testing.T) {
	props := DefaultProperties()
	rng := rand.New(rand.NewSource(1))
	g := buildOuterRoomsGrid(props, 3, 3, rng)

	bottomMiddle := g.index(1, 2)
	for _, c := range g.conns {
		if c.a == bottomMiddle || c.b == bottomMiddle {
			t.Fatalf("bottom-middle cell unexpectedly connected: %+v", c)
		}
	}
}

func TestOuterRoomsGridFullSweepAtFourColumns(t *testing.T) {
	props := DefaultProperties()
	rng := rand.New(rand.NewSource(1))
	g := buildOuterRoomsGrid(props, 4, 3, rng)

	for col := 0; col+1 < 4; col++ {
		found := false
		a, b := g.index(col, 2), g.index(col+1, 2)
		for _, c := range g.conns {
			if c.a == a && c.b == b {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("bottom-row connection %d-%d missing", a, b)
		}
	}
}

func TestCrossGridShape(t *testing.T) {
	props := DefaultProperties()
	rng := rand.New(rand.NewSource(1))
	g := buildCrossGrid(props, rng)

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			corner := (col == 0 || col == 2) && (row == 0 || row == 2)
			role := g.at(col, row).role
			if corner && role != cellUnused {
				t.Errorf("corner cell (%d,%d) role = %v, want unused", col, row, role)
			}
			if !corner && role != cellRoom {
				t.Errorf("plus cell (%d,%d) role = %v, want room", col, row, role)
			}
		}
	}
	if len(g.conns) != 4 {
		t.Errorf("connection count = %d, want 4", len(g.conns))
	}
}

func TestCrossroadsGridRoles(t *testing.T) {
	props := DefaultProperties()
	rng := rand.New(rand.NewSource(1))
	g := buildCrossroadsGrid(props, rng)

	if g.at(0, 0).role != cellUnused {
		t.Error("corner cell should be unused")
	}
	if g.at(2, 0).role != cellRoom {
		t.Error("boundary cell should be a room")
	}
	if g.at(2, 1).role != cellAnchor {
		t.Error("interior cell should be an anchor")
	}
}

func TestBeetleLayoutMergesCentralColumn(t *testing.T) {
	props := DefaultProperties()
	props.Layout = LayoutBeetle
	rng := rand.New(rand.NewSource(3))
	gen := NewGenerator(props, rng)
	floor := gen.Generate(context.Background())

	var zeroed, bodyHeight int
	for _, r := range floor.Rooms {
		if r.Width == 0 {
			zeroed++
			continue
		}
		if r.Height > bodyHeight {
			bodyHeight = r.Height
		}
	}
	if zeroed != 2 {
		t.Errorf("absorbed room count = %d, want 2", zeroed)
	}
	// The merged body spans the central column, far taller than any single
	// cell's room could be.
	if bodyHeight < 15 {
		t.Errorf("merged body height = %d, want a full-column room", bodyHeight)
	}
}

func TestTwoRoomsGridTagsMonsterHouse(t *testing.T) {
	props := DefaultProperties()
	rng := rand.New(rand.NewSource(1))
	g := buildTwoRoomsGrid(props, rng)

	if g.cells[0].isMonsterHouse {
		t.Error("left room must not be a Monster House")
	}
	if !g.cells[1].isMonsterHouse {
		t.Error("right room should be a Monster House")
	}
	if len(g.conns) != 1 {
		t.Errorf("connection count = %d, want 1", len(g.conns))
	}
}

func TestLargeGridRoomsStayAddressable(t *testing.T) {
	// The densest grid fills all 36 cells with rooms; every index must stay
	// below the sentinel range so tiles still resolve to their room.
	props := DefaultProperties()
	props.GridX = 6
	props.GridY = 6
	props.RoomDensity = 100
	props.ExtraHallways = 0
	props.SecondaryDensity = 0
	props.ImperfectChance = 0
	props.ShopChance = 0
	props.MonsterHouseChance = 0

	checked := false
	for seed := int64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		gen := NewGenerator(props, rng)
		floor := gen.Generate(context.Background())
		if gen.FellBack() {
			continue
		}
		checked = true
		if len(floor.Rooms) != 36 {
			t.Fatalf("seed %d: room count = %d, want 36", seed, len(floor.Rooms))
		}
		for i, room := range floor.Rooms {
			tl := floor.At(room.X, room.Y)
			if !tl.InRoom() || tl.RoomIndex != uint8(i) {
				t.Fatalf("seed %d: room %d corner tile index %#x not addressable",
					seed, i, tl.RoomIndex)
			}
			if floor.RoomAt(room.X, room.Y) != &floor.Rooms[i] {
				t.Fatalf("seed %d: room %d not resolvable via RoomAt", seed, i)
			}
		}
	}
	if !checked {
		t.Fatal("every seed fell back, nothing verified")
	}
}

func TestParseLayoutRoundTrip(t *testing.T) {
	for l, name := range layoutNames {
		got, ok := ParseLayout(name)
		if !ok || got != l {
			t.Errorf("ParseLayout(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := ParseLayout("spiral"); ok {
		t.Error("unknown layout name should not parse")
	}
}
