package dungeon

import (
	"math/rand"
	"testing"
)

func TestResolveInvalidSpawnsStairsTrumpTrap(t *testing.T) {
	f := NewFloor(12, 8)
	f.carveRoom(2, 2, 6, 4)

	p := point{4, 3}
	tile := f.At(p.x, p.y)
	tile.Flags |= FlagStairsSpawn | FlagTrapSpawn
	f.record(SpawnStairs, p, "")
	f.record(SpawnTrap, p, "spike-trap")

	f.resolveInvalidSpawns()

	if tile.Has(FlagTrapSpawn) {
		t.Error("trap flag survived on the stairs tile")
	}
	if !tile.Has(FlagStairsSpawn) {
		t.Error("stairs flag was cleared")
	}
	if len(f.Spawns) != 1 || f.Spawns[0].Kind != SpawnStairs {
		t.Fatalf("spawns = %+v, want only the stairs record", f.Spawns)
	}
}

func TestResolveInvalidSpawnsTrapOnObstacle(t *testing.T) {
	f := NewFloor(12, 8)
	p := point{4, 3} // still wall terrain
	f.At(p.x, p.y).Flags |= FlagTrapSpawn
	f.record(SpawnTrap, p, "spike-trap")

	f.resolveInvalidSpawns()

	if f.At(p.x, p.y).Has(FlagTrapSpawn) {
		t.Error("trap flag survived on a wall tile")
	}
	if len(f.Spawns) != 0 {
		t.Fatalf("spawns = %+v, want none", f.Spawns)
	}
}

func TestResolveInvalidSpawnsPlayerTrumpsEnemy(t *testing.T) {
	f := NewFloor(12, 8)
	f.carveRoom(2, 2, 6, 4)

	p := point{3, 3}
	tile := f.At(p.x, p.y)
	tile.Flags |= FlagPlayerSpawn | FlagEnemySpawn
	f.record(SpawnPlayer, p, "")
	f.record(SpawnEnemy, p, "cave-rat")

	f.resolveInvalidSpawns()

	if tile.Has(FlagEnemySpawn) {
		t.Error("enemy flag survived on the player tile")
	}
	if len(f.Spawns) != 1 || f.Spawns[0].Kind != SpawnPlayer {
		t.Fatalf("spawns = %+v, want only the player record", f.Spawns)
	}
}

func TestSpawnsAvoidShopTiles(t *testing.T) {
	f := NewFloor(24, 12)
	shopIdx := f.carveRoom(2, 2, 6, 5)
	f.carveRoom(14, 2, 6, 5)
	f.Rooms[shopIdx].IsShop = true
	f.setRoomFlags(shopIdx, FlagShop)

	props := DefaultProperties()
	props.ItemDensity = 10
	props.TrapDensity = 10
	props.EnemyDensity = 10
	rng := rand.New(rand.NewSource(11))
	f.spawnNonEnemies(props, false, nil, rng)
	f.spawnEnemies(props, false, nil, rng)

	for _, s := range f.Spawns {
		if s.Kind == SpawnBuriedItem {
			continue
		}
		if f.At(s.X, s.Y).Has(FlagShop) {
			t.Errorf("%s spawn at (%d,%d) landed on a shop tile", s.Kind, s.X, s.Y)
		}
	}
}

func TestBuriedItemsSpawnInWalls(t *testing.T) {
	f := NewFloor(20, 12)
	f.carveRoom(2, 2, 6, 5)

	props := DefaultProperties()
	props.ItemDensity = 0
	props.TrapDensity = 0
	props.BuriedItemDensity = 5
	rng := rand.New(rand.NewSource(5))
	f.spawnNonEnemies(props, false, nil, rng)

	var buried int
	for _, s := range f.Spawns {
		if s.Kind != SpawnBuriedItem {
			continue
		}
		buried++
		tile := f.At(s.X, s.Y)
		if tile.Terrain != TerrainWall {
			t.Errorf("buried item at (%d,%d) in %v terrain", s.X, s.Y, tile.Terrain)
		}
		if tile.Has(FlagImpassable) {
			t.Errorf("buried item at (%d,%d) in the impassable border", s.X, s.Y)
		}
	}
	if buried != 5 {
		t.Errorf("buried item count = %d, want 5", buried)
	}
}

func TestHiddenStairsRequireTwoFloorsLeft(t *testing.T) {
	for _, tc := range []struct {
		floorsLeft int
		want       bool
	}{
		{1, false},
		{2, true},
		{5, true},
	} {
		f := NewFloor(20, 12)
		f.carveRoom(2, 2, 8, 6)

		props := DefaultProperties()
		props.HiddenStairs = HiddenStairsSecretBazaar
		props.FloorsLeft = tc.floorsLeft
		props.ItemDensity = 0
		props.BuriedItemDensity = 0
		props.TrapDensity = 0
		rng := rand.New(rand.NewSource(2))
		f.spawnNonEnemies(props, false, nil, rng)

		if got := hasSpawnKind(f, SpawnHiddenStairs); got != tc.want {
			t.Errorf("floorsLeft=%d: hidden stairs present = %v, want %v",
				tc.floorsLeft, got, tc.want)
		}
	}
}

func TestRescueFloorConvertsStairsRoom(t *testing.T) {
	f := NewFloor(20, 12)
	idx := f.carveRoom(2, 2, 8, 6)

	props := DefaultProperties()
	props.RescueFloor = true
	rng := rand.New(rand.NewSource(9))
	if !f.spawnStairs(props, rng) {
		t.Fatal("stairs placement failed")
	}

	if !f.Rooms[idx].IsMonsterHouse {
		t.Error("stairs room not converted to a Monster House")
	}
	if !f.At(f.StairsX, f.StairsY).Has(FlagMonsterHouse) {
		t.Error("stairs tile missing the Monster House flag")
	}
}

func TestEmptyMonsterHouseCapsEnemies(t *testing.T) {
	f := NewFloor(24, 14)
	idx := f.carveRoom(2, 2, 8, 8)
	f.Rooms[idx].IsMonsterHouse = true
	f.setRoomFlags(idx, FlagMonsterHouse)

	props := DefaultProperties()
	props.EnemyDensity = 0
	rng := rand.New(rand.NewSource(4))
	f.spawnEnemies(props, true, nil, rng)

	var enemies int
	for _, s := range f.Spawns {
		if s.Kind == SpawnEnemy {
			enemies++
		}
	}
	if enemies == 0 || enemies > 2 {
		t.Errorf("empty Monster House enemy count = %d, want 1-2", enemies)
	}
}

func TestMonsterHouseAmbushDensity(t *testing.T) {
	f := NewFloor(24, 14)
	idx := f.carveRoom(2, 2, 8, 8)
	f.Rooms[idx].IsMonsterHouse = true
	f.setRoomFlags(idx, FlagMonsterHouse)

	props := DefaultProperties()
	props.EnemyDensity = 0
	rng := rand.New(rand.NewSource(4))
	f.spawnEnemies(props, false, nil, rng)

	var enemies int
	for _, s := range f.Spawns {
		if s.Kind == SpawnEnemy {
			enemies++
		}
	}
	// 64 house tiles, one ambush enemy per 4.
	if enemies != 16 {
		t.Errorf("Monster House enemy count = %d, want 16", enemies)
	}
}

func TestEligibleTilesRowMajor(t *testing.T) {
	f := NewFloor(12, 8)
	f.carveRoom(2, 2, 4, 3)

	positions := f.eligibleTiles(eligItem)
	for i := 1; i < len(positions); i++ {
		prev, cur := positions[i-1], positions[i]
		if cur.y < prev.y || (cur.y == prev.y && cur.x <= prev.x) {
			t.Fatalf("positions not in row-major order: %+v before %+v", prev, cur)
		}
	}
	if len(positions) != 12 {
		t.Errorf("eligible count = %d, want 12", len(positions))
	}
}
