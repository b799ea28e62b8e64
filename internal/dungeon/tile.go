// Package dungeon generates populated roguelike floors: a grid-cell layout of
// rooms and hallways, terrain features, and constrained entity spawns, all
// driven by a caller-supplied random source for reproducibility.
//
// Floor additionally exposes whole-floor terrain passes
// (ConvertSecondaryTerrainToChasms, ConvertWallsToChasms) for callers that
// post-process generated floors into chasm-themed variants.
package dungeon

// Terrain classifies the base terrain of a tile.
type Terrain uint8

const (
	// TerrainWall is solid rock. The default state of every tile.
	TerrainWall Terrain = iota
	// TerrainOpen is walkable floor: room interiors and hallways.
	TerrainOpen
	// TerrainSecondary is water or lava, depending on the floor's secondary kind.
	TerrainSecondary
	// TerrainChasm is a pit tile.
	TerrainChasm
)

// Rune returns the tile's display character for ASCII dumps.
func (t Terrain) Rune() rune {
	switch t {
	case TerrainOpen:
		return '.'
	case TerrainSecondary:
		return '~'
	case TerrainChasm:
		return ' '
	default:
		return '#'
	}
}

// Room index sentinels. Both must be resolved before a floor is finalized:
// anchors are reclassified to roomHallway during the junction scan.
const (
	roomNone   uint8 = 0xFF // tile belongs to a hallway (or is wall)
	roomAnchor uint8 = 0xFE // hallway anchor, not yet connected
	// maxRoomSlot bounds concrete room indices. Sized for the largest cell
	// grid (6x6, every cell a room) with headroom below the sentinels.
	maxRoomSlot = 0x40
)

// TileFlags is the per-tile flag bitset.
type TileFlags uint16

const (
	// FlagImpassable marks tiles that can never be carved (the floor border).
	FlagImpassable TileFlags = 1 << iota
	// FlagJunction marks hallway/room boundary tiles.
	FlagJunction
	// FlagShop marks tiles inside a Kecleon shop.
	FlagShop
	// FlagMonsterHouse marks tiles inside a Monster House.
	FlagMonsterHouse
	// FlagSpecial marks special tiles like Key doors, exempt from spawning.
	FlagSpecial
	// FlagStairsSpawn through FlagPlayerSpawn record placement decisions.
	FlagStairsSpawn
	FlagHiddenStairsSpawn
	FlagItemSpawn
	FlagTrapSpawn
	FlagEnemySpawn
	FlagPlayerSpawn
	// FlagUnreachable is a diagnostic set on walkable tiles the reachability
	// traversal could not reach from the stairs.
	FlagUnreachable
	// flagVisited is scratch state for the reachability traversal.
	flagVisited
)

// Tile is a single cell of the floor grid.
type Tile struct {
	Terrain   Terrain
	RoomIndex uint8
	Flags     TileFlags
}

// reset returns a tile to its initial all-wall state.
func (t *Tile) reset() {
	t.Terrain = TerrainWall
	t.RoomIndex = roomNone
	t.Flags = 0
}

// Has reports whether all given flags are set.
func (t *Tile) Has(f TileFlags) bool {
	return t.Flags&f == f
}

// IsOpen reports whether the tile has open terrain.
func (t *Tile) IsOpen() bool {
	return t.Terrain == TerrainOpen
}

// IsWalkable reports whether the tile counts for reachability: open terrain
// that is not impassable. Secondary terrain and chasms are not walkable.
func (t *Tile) IsWalkable() bool {
	return t.Terrain == TerrainOpen && !t.Has(FlagImpassable)
}

// InRoom reports whether the tile belongs to a concrete room (not a hallway
// and not an unresolved anchor).
func (t *Tile) InRoom() bool {
	return t.RoomIndex < maxRoomSlot
}

// IsHallway reports whether the tile is classified as hallway.
func (t *Tile) IsHallway() bool {
	return t.RoomIndex == roomNone && t.Terrain == TerrainOpen
}

// hasSpawn reports whether any spawn flag is set on the tile.
func (t *Tile) hasSpawn() bool {
	const spawnMask = FlagStairsSpawn | FlagHiddenStairsSpawn | FlagItemSpawn |
		FlagTrapSpawn | FlagEnemySpawn | FlagPlayerSpawn
	return t.Flags&spawnMask != 0
}
