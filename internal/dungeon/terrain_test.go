package dungeon

import (
	"math/rand"
	"testing"
)

func TestSetSecondaryTerrainOnWall(t *testing.T) {
	f := NewFloor(10, 8)

	wall := f.At(4, 4)
	if !f.setSecondaryTerrainOnWall(wall) {
		t.Error("plain wall should convert")
	}
	if wall.Terrain != TerrainSecondary {
		t.Errorf("terrain = %v, want secondary", wall.Terrain)
	}

	open := f.At(5, 4)
	open.Terrain = TerrainOpen
	if f.setSecondaryTerrainOnWall(open) {
		t.Error("open tile must not convert")
	}

	border := f.At(0, 0)
	if f.setSecondaryTerrainOnWall(border) {
		t.Error("impassable tile must not convert")
	}

	special := f.At(6, 4)
	special.Flags |= FlagSpecial
	if f.setSecondaryTerrainOnWall(special) {
		t.Error("special tile must not convert")
	}
}

func TestGenerateSecondaryTerrainRespectsBounds(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		f := NewFloor(30, 20)
		roomIdx := f.carveRoom(8, 6, 10, 6)

		props := DefaultProperties()
		props.SecondaryDensity = 6
		rng := rand.New(rand.NewSource(seed))
		f.generateSecondaryTerrain(props, rng)

		for y := 0; y < f.Height; y++ {
			for x := 0; x < f.Width; x++ {
				tile := f.At(x, y)
				if tile.Has(FlagImpassable) && tile.Terrain == TerrainSecondary {
					t.Fatalf("seed %d: secondary terrain on impassable tile (%d,%d)", seed, x, y)
				}
			}
		}
		// Formations convert walls only; the room interior stays open.
		room := f.Rooms[roomIdx]
		for y := room.Y; y < room.Y+room.Height; y++ {
			for x := room.X; x < room.X+room.Width; x++ {
				if !f.At(x, y).IsOpen() {
					t.Fatalf("seed %d: room tile (%d,%d) overwritten by a formation", seed, x, y)
				}
			}
		}
	}
}

func TestConvertSecondaryTerrainToChasms(t *testing.T) {
	f := NewFloor(10, 8)
	f.At(3, 3).Terrain = TerrainSecondary
	f.At(4, 3).Terrain = TerrainSecondary
	f.At(5, 3).Terrain = TerrainOpen

	f.ConvertSecondaryTerrainToChasms()

	if f.At(3, 3).Terrain != TerrainChasm || f.At(4, 3).Terrain != TerrainChasm {
		t.Error("secondary terrain not converted to chasms")
	}
	if f.At(5, 3).Terrain != TerrainOpen {
		t.Error("open terrain must be untouched")
	}
}

func TestConvertWallsToChasms(t *testing.T) {
	f := NewFloor(10, 8)
	f.At(5, 3).Terrain = TerrainOpen

	f.ConvertWallsToChasms()

	if f.At(3, 3).Terrain != TerrainChasm {
		t.Error("wall not converted to chasm")
	}
	if f.At(5, 3).Terrain != TerrainOpen {
		t.Error("open terrain must be untouched")
	}
}

func TestEnsureImpassableTilesAreWalls(t *testing.T) {
	f := NewFloor(10, 8)
	f.At(0, 0).Terrain = TerrainSecondary
	f.At(0, 1).Terrain = TerrainOpen

	f.ensureImpassableTilesAreWalls()

	if f.At(0, 0).Terrain != TerrainWall || f.At(0, 1).Terrain != TerrainWall {
		t.Error("impassable tiles not forced back to wall")
	}
}
