package dungeon

import "testing"

func TestStairsAlwaysReachableConnected(t *testing.T) {
	f := NewFloor(20, 12)
	f.carveRoom(2, 2, 6, 4)
	f.carveRoom(12, 2, 6, 4)
	f.createHallway(7, 3, 12, 3, false, 0, 0)

	if !f.stairsAlwaysReachable(3, 3, false) {
		t.Fatal("connected floor reported unreachable tiles")
	}
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if f.Tiles[y][x].Has(FlagUnreachable) {
				t.Fatalf("tile (%d,%d) flagged unreachable on a connected floor", x, y)
			}
		}
	}
}

func TestStairsAlwaysReachableIsolatedRoom(t *testing.T) {
	f := NewFloor(20, 12)
	f.carveRoom(2, 2, 6, 4)
	f.carveRoom(12, 2, 6, 4) // no hallway between them

	if f.stairsAlwaysReachable(3, 3, false) {
		t.Fatal("isolated room not detected")
	}
	if !f.At(13, 3).Has(FlagUnreachable) {
		t.Error("isolated room tile missing the unreachable flag")
	}
	if f.At(3, 3).Has(FlagUnreachable) {
		t.Error("reachable tile flagged unreachable")
	}
}

func TestStairsAlwaysReachableMarkOnly(t *testing.T) {
	f := NewFloor(20, 12)
	f.carveRoom(2, 2, 6, 4)
	f.carveRoom(12, 2, 6, 4)

	if !f.stairsAlwaysReachable(3, 3, true) {
		t.Fatal("markOnly must always report success")
	}
	if !f.At(13, 3).Has(FlagUnreachable) {
		t.Error("markOnly should still flag unreachable tiles")
	}
}

func TestStairsAlwaysReachableIgnoresSecondary(t *testing.T) {
	f := NewFloor(20, 12)
	f.carveRoom(2, 2, 6, 4)
	// Secondary terrain is not walkable and must not count as unreachable.
	f.At(10, 6).Terrain = TerrainSecondary

	if !f.stairsAlwaysReachable(3, 3, false) {
		t.Fatal("secondary terrain treated as a walkable tile")
	}
	if f.At(10, 6).Has(FlagUnreachable) {
		t.Error("secondary tile flagged unreachable")
	}
}

func TestStairsAlwaysReachableBadStart(t *testing.T) {
	f := NewFloor(20, 12)
	f.carveRoom(2, 2, 6, 4)

	// Stairs on a wall tile: nothing is reachable.
	if f.stairsAlwaysReachable(15, 8, false) {
		t.Fatal("wall start position must fail the check")
	}
	if f.stairsAlwaysReachable(-1, -1, false) {
		t.Fatal("out-of-bounds start position must fail the check")
	}
}
