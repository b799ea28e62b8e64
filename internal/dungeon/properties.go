package dungeon

// Layout selects the macro structure of a floor.
type Layout int

const (
	// LayoutStandard is a randomized rows×columns grid of rooms and hallway anchors.
	LayoutStandard Layout = iota
	// LayoutOuterRing is a 4x2 grid of rooms surrounded by a ring of hallways.
	LayoutOuterRing
	// LayoutCrossroads is an interior mesh of hallways with rooms protruding
	// from the boundary, excluding the corner cells.
	LayoutCrossroads
	// LayoutLine is 5 grid cells in a horizontal line.
	LayoutLine
	// LayoutCross is 5 rooms in a plus formation on a 3x3 grid.
	LayoutCross
	// LayoutBeetle is a 3x3 grid of rooms with each row connected and the
	// central column merged into one big room.
	LayoutBeetle
	// LayoutOuterRooms is a ring of rooms on the grid boundary with hallways
	// in the interior. Known to leave rooms disconnected for fewer than 4
	// columns; that surfaces as a reachability failure and a retry.
	LayoutOuterRooms
	// LayoutOneRoomMonsterHouse is a single huge Monster House room. Valid by
	// construction; used as the fallback when generation does not converge.
	LayoutOneRoomMonsterHouse
	// LayoutTwoRoomsMonsterHouse is two rooms side by side, the right one a
	// Monster House.
	LayoutTwoRoomsMonsterHouse
)

var layoutNames = map[Layout]string{
	LayoutStandard:             "standard",
	LayoutOuterRing:            "outer-ring",
	LayoutCrossroads:           "crossroads",
	LayoutLine:                 "line",
	LayoutCross:                "cross",
	LayoutBeetle:               "beetle",
	LayoutOuterRooms:           "outer-rooms",
	LayoutOneRoomMonsterHouse:  "one-room-monster-house",
	LayoutTwoRoomsMonsterHouse: "two-rooms-monster-house",
}

// String returns a human-readable layout name.
func (l Layout) String() string {
	if name, ok := layoutNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLayout returns the layout with the given name.
func ParseLayout(name string) (Layout, bool) {
	for l, n := range layoutNames {
		if n == name {
			return l, true
		}
	}
	return LayoutStandard, false
}

// SecondaryKind selects what secondary terrain formations turn into.
type SecondaryKind int

const (
	// SecondaryWater renders rivers and lakes as water.
	SecondaryWater SecondaryKind = iota
	// SecondaryLava renders rivers and lakes as lava.
	SecondaryLava
	// SecondaryChasm converts all secondary terrain to chasms after the
	// formation pass.
	SecondaryChasm
)

// HiddenStairsKind selects the hidden stairs variant, if any.
type HiddenStairsKind int

const (
	// HiddenStairsNone disables hidden stairs.
	HiddenStairsNone HiddenStairsKind = iota
	// HiddenStairsSecretBazaar leads to the secret bazaar.
	HiddenStairsSecretBazaar
	// HiddenStairsSecretRoom leads to a secret room.
	HiddenStairsSecretRoom
)

// FloorProperties is the caller-supplied configuration for one generation
// run. It is read-only during generation.
type FloorProperties struct {
	// Width and Height are the tile dimensions of the floor, border included.
	Width  int
	Height int

	// GridX and GridY are the desired grid columns and rows for the standard
	// layout. Zero means randomize within bounds.
	GridX int
	GridY int

	// Layout selects the macro layout.
	Layout Layout

	// FixedRoomID, when non-empty, short-circuits generation into the
	// fixed-room load path.
	FixedRoomID string

	// RoomDensity is the percent chance that a grid cell becomes a room
	// rather than a hallway anchor (layout-forced cells ignore it).
	RoomDensity int

	// FloorConnectivity is the number of extra random connections added
	// between adjacent grid cells on top of the spanning sweep.
	FloorConnectivity int

	// ExtraHallways is the number of extra hallway random walks carved out
	// of rooms for loop redundancy.
	ExtraHallways int

	// SecondaryDensity is the number of river walks to attempt. Zero
	// disables secondary terrain formations.
	SecondaryDensity int

	// SecondaryKind selects water, lava, or chasm conversion.
	SecondaryKind SecondaryKind

	// AllowMazes enables maze-room carving.
	AllowMazes bool

	// ImperfectChance is the percent chance per room of perimeter erosion.
	ImperfectChance int

	// ShopChance is the percent chance of tagging a Kecleon shop room.
	ShopChance int

	// MonsterHouseChance is the percent chance of tagging a Monster House room.
	MonsterHouseChance int

	// EmptyMonsterHouse reduces a Monster House to a few enemies with no
	// items or traps.
	EmptyMonsterHouse bool

	// ItemDensity, BuriedItemDensity, TrapDensity and EnemyDensity are the
	// target spawn counts for each entity kind. Optional kinds are silently
	// omitted when no eligible tile remains.
	ItemDensity       int
	BuriedItemDensity int
	TrapDensity       int
	EnemyDensity      int

	// HiddenStairs spawns hidden stairs of the given kind, gated on at
	// least 2 floors remaining.
	HiddenStairs HiddenStairsKind

	// FloorsLeft is the number of floors remaining in the dungeon.
	FloorsLeft int

	// RescueFloor converts the stairs room into a Monster House.
	RescueFloor bool
}

// DefaultProperties returns a standard-layout configuration with the classic
// 56x32 floor footprint.
func DefaultProperties() FloorProperties {
	return FloorProperties{
		Width:              DefaultWidth,
		Height:             DefaultHeight,
		Layout:             LayoutStandard,
		RoomDensity:        60,
		FloorConnectivity:  2,
		ExtraHallways:      3,
		SecondaryDensity:   2,
		SecondaryKind:      SecondaryWater,
		ImperfectChance:    10,
		ShopChance:         10,
		MonsterHouseChance: 15,
		ItemDensity:        4,
		BuriedItemDensity:  2,
		TrapDensity:        3,
		EnemyDensity:       6,
		FloorsLeft:         5,
	}
}
