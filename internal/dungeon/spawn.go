package dungeon

import (
	"math/rand"

	"github.com/google/uuid"
)

// SpawnKind identifies what a spawn record places.
type SpawnKind int

const (
	SpawnStairs SpawnKind = iota
	SpawnHiddenStairs
	SpawnItem
	SpawnBuriedItem
	SpawnTrap
	SpawnEnemy
	SpawnPlayer
)

// String returns a human-readable spawn kind name.
func (k SpawnKind) String() string {
	switch k {
	case SpawnStairs:
		return "stairs"
	case SpawnHiddenStairs:
		return "hidden-stairs"
	case SpawnItem:
		return "item"
	case SpawnBuriedItem:
		return "buried-item"
	case SpawnTrap:
		return "trap"
	case SpawnEnemy:
		return "enemy"
	case SpawnPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// SpawnRecord is one placed entity. EntityID carries the kind-specific
// payload (item id, enemy id, trap id); it is empty for stairs and player.
type SpawnRecord struct {
	ID       uuid.UUID
	Kind     SpawnKind
	X, Y     int
	EntityID string
}

// EntityPicker assigns concrete identities to item, trap and enemy spawns.
// A nil picker leaves EntityID empty.
type EntityPicker interface {
	PickEnemy(rng *rand.Rand) string
	PickItem(rng *rand.Rand) string
	PickTrap(rng *rand.Rand) string
}

// ---------------------------------------------------------------------------
// Eligibility predicates. Each entity kind's placement rule is a conjunction
// of these, declared as a table so every predicate is testable on its own.
// ---------------------------------------------------------------------------

type tilePredicate func(*Tile) bool

func predOpen(t *Tile) bool        { return t.IsOpen() }
func predInRoom(t *Tile) bool      { return t.InRoom() }
func predNotShop(t *Tile) bool     { return !t.Has(FlagShop) }
func predNotHouse(t *Tile) bool    { return !t.Has(FlagMonsterHouse) }
func predInHouse(t *Tile) bool     { return t.Has(FlagMonsterHouse) }
func predNotJunction(t *Tile) bool { return !t.Has(FlagJunction) }
func predNotSpecial(t *Tile) bool  { return !t.Has(FlagSpecial) }
func predNoEnemy(t *Tile) bool     { return !t.Has(FlagEnemySpawn) }
func predNoItem(t *Tile) bool      { return !t.Has(FlagItemSpawn) }
func predNoTrap(t *Tile) bool      { return !t.Has(FlagTrapSpawn) }
func predNotPlayer(t *Tile) bool   { return !t.Has(FlagPlayerSpawn) }
func predNoSpawn(t *Tile) bool     { return !t.hasSpawn() }
func predWall(t *Tile) bool {
	return t.Terrain == TerrainWall && !t.Has(FlagImpassable)
}

// spawnClass selects one of the eligibility rule sets.
type spawnClass int

const (
	eligStairs spawnClass = iota
	eligItem
	eligBuriedItem
	eligHouseItemTrap
	eligTrap
	eligPlayer
	eligEnemy
	eligHouseEnemy
)

var eligibility = map[spawnClass][]tilePredicate{
	eligStairs:        {predOpen, predInRoom, predNotShop, predNoEnemy, predNotJunction, predNotSpecial},
	eligItem:          {predOpen, predInRoom, predNotShop, predNotHouse, predNotJunction, predNotSpecial},
	eligBuriedItem:    {predWall},
	eligHouseItemTrap: {predInHouse, predNotShop, predNotJunction},
	eligTrap:          {predOpen, predInRoom, predNotShop, predNoItem, predNoEnemy, predNotSpecial},
	eligPlayer:        {predOpen, predInRoom, predNotShop, predNotJunction, predNoItem, predNoEnemy, predNoTrap, predNotSpecial},
	eligEnemy:         {predOpen, predNotShop, predNoSpawn, predNotSpecial},
	eligHouseEnemy:    {predInHouse, predNotShop, predNotPlayer, predNotSpecial},
}

// eligibleTiles collects, in row-major order, every tile position satisfying
// all predicates of the class.
func (f *Floor) eligibleTiles(class spawnClass) []point {
	preds := eligibility[class]
	var out []point
	for y := 0; y < f.Height; y++ {
	tiles:
		for x := 0; x < f.Width; x++ {
			t := &f.Tiles[y][x]
			for _, p := range preds {
				if !p(t) {
					continue tiles
				}
			}
			out = append(out, point{x, y})
		}
	}
	return out
}

// shuffleSpawnPositions permutes the position list uniformly so consumption
// order does not bias placement.
func shuffleSpawnPositions(positions []point, rng *rand.Rand) {
	for i := len(positions) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		positions[i], positions[j] = positions[j], positions[i]
	}
}

// shuffledEligible is the common select-shuffle step of every placement.
func (f *Floor) shuffledEligible(class spawnClass, rng *rand.Rand) []point {
	positions := f.eligibleTiles(class)
	shuffleSpawnPositions(positions, rng)
	return positions
}

func (f *Floor) record(kind SpawnKind, p point, entityID string) {
	f.Spawns = append(f.Spawns, SpawnRecord{
		ID:       uuid.New(),
		Kind:     kind,
		X:        p.x,
		Y:        p.y,
		EntityID: entityID,
	})
}

// spawnStairs places the stairs on an eligible tile. On rescue floors the
// room containing the stairs is converted into a Monster House. Returns
// false if no eligible tile exists, which indicates a structurally broken
// floor rather than a placement problem.
func (f *Floor) spawnStairs(props FloorProperties, rng *rand.Rand) bool {
	positions := f.shuffledEligible(eligStairs, rng)
	if len(positions) == 0 {
		return false
	}
	p := positions[0]
	f.At(p.x, p.y).Flags |= FlagStairsSpawn
	f.StairsX, f.StairsY = p.x, p.y
	f.record(SpawnStairs, p, "")

	if props.RescueFloor {
		if t := f.At(p.x, p.y); t.InRoom() {
			f.Rooms[t.RoomIndex].IsMonsterHouse = true
			f.setRoomFlags(t.RoomIndex, FlagMonsterHouse)
		}
	}
	return true
}

// spawnNonEnemies is the first placement pass: hidden stairs, items (normal,
// buried, Monster House), traps (normal, Monster House), and the player.
// Stairs are placed here only if the floor does not have them already.
// Optional kinds are silently omitted when their eligible list runs dry.
func (f *Floor) spawnNonEnemies(props FloorProperties, emptyHouse bool, picker EntityPicker, rng *rand.Rand) {
	if f.StairsX < 0 {
		f.spawnStairs(props, rng)
	}

	if props.HiddenStairs != HiddenStairsNone && props.FloorsLeft >= 2 {
		if positions := f.shuffledEligible(eligStairs, rng); len(positions) > 0 {
			p := positions[0]
			f.At(p.x, p.y).Flags |= FlagHiddenStairsSpawn
			f.record(SpawnHiddenStairs, p, "")
		}
	}

	pickItem := func() string {
		if picker == nil {
			return ""
		}
		return picker.PickItem(rng)
	}
	pickTrap := func() string {
		if picker == nil {
			return ""
		}
		return picker.PickTrap(rng)
	}

	f.placeEach(eligItem, props.ItemDensity, rng, func(p point) {
		f.At(p.x, p.y).Flags |= FlagItemSpawn
		f.record(SpawnItem, p, pickItem())
	})
	f.placeEach(eligBuriedItem, props.BuriedItemDensity, rng, func(p point) {
		f.At(p.x, p.y).Flags |= FlagItemSpawn
		f.record(SpawnBuriedItem, p, pickItem())
	})
	f.placeEach(eligTrap, props.TrapDensity, rng, func(p point) {
		f.At(p.x, p.y).Flags |= FlagTrapSpawn
		f.record(SpawnTrap, p, pickTrap())
	})

	if f.hasMonsterHouse() && !emptyHouse {
		f.placeEach(eligHouseItemTrap, props.ItemDensity, rng, func(p point) {
			f.At(p.x, p.y).Flags |= FlagItemSpawn
			f.record(SpawnItem, p, pickItem())
		})
		f.placeEach(eligHouseItemTrap, props.TrapDensity, rng, func(p point) {
			f.At(p.x, p.y).Flags |= FlagTrapSpawn
			f.record(SpawnTrap, p, pickTrap())
		})
	}

	if positions := f.shuffledEligible(eligPlayer, rng); len(positions) > 0 {
		p := positions[0]
		f.At(p.x, p.y).Flags |= FlagPlayerSpawn
		f.record(SpawnPlayer, p, "")
	}
}

// spawnEnemies is the second placement pass: normal enemies everywhere, then
// dense ambush spawns on Monster House tiles. An empty Monster House gets
// only a token number of enemies.
func (f *Floor) spawnEnemies(props FloorProperties, emptyHouse bool, picker EntityPicker, rng *rand.Rand) {
	pickEnemy := func() string {
		if picker == nil {
			return ""
		}
		return picker.PickEnemy(rng)
	}

	f.placeEach(eligEnemy, props.EnemyDensity, rng, func(p point) {
		f.At(p.x, p.y).Flags |= FlagEnemySpawn
		f.record(SpawnEnemy, p, pickEnemy())
	})

	if !f.hasMonsterHouse() {
		return
	}
	houseTiles := len(f.eligibleTiles(eligHouseEnemy))
	count := houseTiles / 4
	if emptyHouse && count > 2 {
		count = 2
	}
	f.placeEach(eligHouseEnemy, count, rng, func(p point) {
		f.At(p.x, p.y).Flags |= FlagEnemySpawn
		f.record(SpawnEnemy, p, pickEnemy())
	})
}

// placeEach consumes up to n positions from the class's shuffled eligible
// list, invoking place for each.
func (f *Floor) placeEach(class spawnClass, n int, rng *rand.Rand, place func(point)) {
	if n <= 0 {
		return
	}
	positions := f.shuffledEligible(class, rng)
	if n > len(positions) {
		n = len(positions)
	}
	for i := 0; i < n; i++ {
		place(positions[i])
	}
}

func (f *Floor) hasMonsterHouse() bool {
	for _, r := range f.Rooms {
		if r.IsMonsterHouse {
			return true
		}
	}
	return false
}

// resolveInvalidSpawns enforces spawn precedence after both placement
// passes. Traps cannot sit on obstacles, stairs trump traps and items, and
// the player tile trumps enemies. Records whose flag was cleared are dropped
// from the spawn list.
func (f *Floor) resolveInvalidSpawns() {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			t := &f.Tiles[y][x]
			if t.Has(FlagTrapSpawn) && t.Terrain != TerrainOpen {
				t.Flags &^= FlagTrapSpawn
			}
			if t.Has(FlagStairsSpawn) {
				t.Flags &^= FlagTrapSpawn | FlagItemSpawn
			}
			if t.Has(FlagPlayerSpawn) {
				t.Flags &^= FlagEnemySpawn
			}
		}
	}

	kept := f.Spawns[:0]
	for _, s := range f.Spawns {
		if f.At(s.X, s.Y).Has(spawnFlag(s.Kind)) {
			kept = append(kept, s)
		}
	}
	f.Spawns = kept
}

func spawnFlag(k SpawnKind) TileFlags {
	switch k {
	case SpawnStairs:
		return FlagStairsSpawn
	case SpawnHiddenStairs:
		return FlagHiddenStairsSpawn
	case SpawnItem, SpawnBuriedItem:
		return FlagItemSpawn
	case SpawnTrap:
		return FlagTrapSpawn
	case SpawnEnemy:
		return FlagEnemySpawn
	case SpawnPlayer:
		return FlagPlayerSpawn
	default:
		return 0
	}
}
