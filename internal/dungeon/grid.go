package dungeon

const (
	// DefaultWidth and DefaultHeight are the classic floor footprint.
	DefaultWidth  = 56
	DefaultHeight = 32

	// MinWidth and MinHeight are the smallest floor the generator accepts:
	// a 2x2 cell grid of usable rooms inside the impassable border.
	// NewGenerator clamps smaller positive dimensions up to these.
	MinWidth  = 12
	MinHeight = 10

	// Grid bounds for the standard layout.
	minGridDim = 2
	maxGridDim = 6

	// minCellSpan is the narrowest grid cell that still fits a room: one
	// open tile plus a margin on each side.
	minCellSpan = 3
)

// Room is a contiguous carved region identified by its room index.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room

	// Feature tags assigned during layout and feature generation.
	IsShop         bool
	IsMonsterHouse bool
	IsMaze         bool
	Imperfect      bool
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Floor is the mutable tile grid for one generation attempt, together with
// the rooms and spawn records produced on it. It has a single writer: the
// in-progress generation attempt.
type Floor struct {
	Width  int
	Height int
	Tiles  [][]Tile
	Rooms  []Room
	Spawns []SpawnRecord

	// Stairs position, valid once the stairs spawn has been placed.
	StairsX int
	StairsY int
}

// NewFloor creates a floor filled with walls and an impassable border.
func NewFloor(width, height int) *Floor {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}
	f := &Floor{
		Width:   width,
		Height:  height,
		Tiles:   tiles,
		StairsX: -1,
		StairsY: -1,
	}
	f.Reset()
	return f
}

// Reset returns every tile to solid wall, restores the impassable border,
// and clears rooms and spawn records. Called at the start of each
// generation attempt.
func (f *Floor) Reset() {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			f.Tiles[y][x].reset()
		}
	}
	for x := 0; x < f.Width; x++ {
		f.Tiles[0][x].Flags |= FlagImpassable
		f.Tiles[f.Height-1][x].Flags |= FlagImpassable
	}
	for y := 0; y < f.Height; y++ {
		f.Tiles[y][0].Flags |= FlagImpassable
		f.Tiles[y][f.Width-1].Flags |= FlagImpassable
	}
	f.Rooms = f.Rooms[:0]
	f.Spawns = f.Spawns[:0]
	f.StairsX, f.StairsY = -1, -1
}

// InBounds reports whether the position is on the floor.
func (f *Floor) InBounds(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// At returns the tile at the given position, or nil if out of bounds.
func (f *Floor) At(x, y int) *Tile {
	if !f.InBounds(x, y) {
		return nil
	}
	return &f.Tiles[y][x]
}

// IsOpen reports whether the position is in bounds and has open terrain.
func (f *Floor) IsOpen(x, y int) bool {
	return f.InBounds(x, y) && f.Tiles[y][x].IsOpen()
}

// RoomAt returns the room containing the position, or nil if the position
// is a hallway or wall.
func (f *Floor) RoomAt(x, y int) *Room {
	t := f.At(x, y)
	if t == nil || !t.InRoom() || int(t.RoomIndex) >= len(f.Rooms) {
		return nil
	}
	return &f.Rooms[t.RoomIndex]
}

// carveRoom stamps a filled rectangle of open terrain with a fresh room
// index and returns that index.
func (f *Floor) carveRoom(x, y, w, h int) uint8 {
	idx := uint8(len(f.Rooms))
	f.Rooms = append(f.Rooms, Room{X: x, Y: y, Width: w, Height: h})
	for ty := y; ty < y+h; ty++ {
		for tx := x; tx < x+w; tx++ {
			if t := f.At(tx, ty); t != nil && !t.Has(FlagImpassable) {
				t.Terrain = TerrainOpen
				t.RoomIndex = idx
			}
		}
	}
	return idx
}

// setRoomFlags applies flags to every tile of the given room.
func (f *Floor) setRoomFlags(idx uint8, flags TileFlags) {
	if int(idx) >= len(f.Rooms) {
		return
	}
	r := f.Rooms[idx]
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			if t := f.At(x, y); t != nil && t.RoomIndex == idx {
				t.Flags |= flags
			}
		}
	}
}

// setTerrainObstacleChecked sets a tile to be an obstacle. Secondary terrain
// is only placed if the tile belongs to the given room; otherwise a wall is
// placed instead.
func (f *Floor) setTerrainObstacleChecked(t *Tile, useSecondary bool, roomIndex uint8) {
	if useSecondary && t.RoomIndex == roomIndex {
		t.Terrain = TerrainSecondary
	} else {
		t.Terrain = TerrainWall
	}
}

// setSecondaryTerrainOnWall converts a tile to secondary terrain, but only
// if it is a passable wall: wall terrain without the impassable or special
// flags. Returns whether the conversion happened.
func (f *Floor) setSecondaryTerrainOnWall(t *Tile) bool {
	if t.Terrain != TerrainWall || t.Has(FlagImpassable) || t.Has(FlagSpecial) {
		return false
	}
	t.Terrain = TerrainSecondary
	return true
}

// ConvertSecondaryTerrainToChasms converts all secondary terrain tiles to
// chasms.
func (f *Floor) ConvertSecondaryTerrainToChasms() {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if f.Tiles[y][x].Terrain == TerrainSecondary {
				f.Tiles[y][x].Terrain = TerrainChasm
			}
		}
	}
}

// ConvertWallsToChasms converts all wall tiles to chasms.
func (f *Floor) ConvertWallsToChasms() {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if f.Tiles[y][x].Terrain == TerrainWall {
				f.Tiles[y][x].Terrain = TerrainChasm
			}
		}
	}
}

// ensureImpassableTilesAreWalls forces every tile carrying the impassable
// flag back to wall terrain. Runs as the final enforcement pass before a
// floor is handed to the caller.
func (f *Floor) ensureImpassableTilesAreWalls() {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			t := &f.Tiles[y][x]
			if t.Has(FlagImpassable) && t.Terrain != TerrainWall {
				t.Terrain = TerrainWall
			}
		}
	}
}

// resetInnerBoundaryTileRows restores the inner boundary rows (y == 1 and
// y == Height-2) to all wall tiles, keeping the impassable edges intact.
// Used before stamping a fixed room.
func (f *Floor) resetInnerBoundaryTileRows() {
	for _, y := range []int{1, f.Height - 2} {
		for x := 0; x < f.Width; x++ {
			t := &f.Tiles[y][x]
			impassable := x == 0 || x == f.Width-1
			t.reset()
			if impassable {
				t.Flags |= FlagImpassable
			}
		}
	}
}
