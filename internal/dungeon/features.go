package dungeon

import "math/rand"

// applyFeatures runs the per-floor feature passes in their fixed relative
// order: maze rooms, secondary terrain, room imperfections, extra hallways,
// then shop and Monster House tagging.
func (f *Floor) applyFeatures(props FloorProperties, rng *rand.Rand) {
	if props.AllowMazes {
		f.generateMazeRooms(rng)
	}
	if props.SecondaryDensity > 0 {
		f.generateSecondaryTerrain(props, rng)
	}
	if props.ImperfectChance > 0 {
		f.applyRoomImperfections(props.ImperfectChance, rng)
	}
	if props.ExtraHallways > 0 {
		f.addExtraHallways(props.ExtraHallways, rng)
		f.flagHallwayJunctions(0, 0, f.Width, f.Height)
	}
	if props.ShopChance > 0 {
		f.tagShop(props.ShopChance, rng)
	}
	if props.MonsterHouseChance > 0 {
		f.tagMonsterHouse(props.MonsterHouseChance, rng)
	}
}

// generateMazeRooms picks at most one eligible room and fills its interior
// with maze lines. Rooms smaller than 5x5 or carrying other feature tags are
// skipped.
func (f *Floor) generateMazeRooms(rng *rand.Rand) {
	candidates := make([]int, 0, len(f.Rooms))
	for i, r := range f.Rooms {
		if r.Width >= 5 && r.Height >= 5 && !r.IsShop && !r.IsMonsterHouse {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return
	}
	idx := candidates[rng.Intn(len(candidates))]
	room := &f.Rooms[idx]
	room.IsMaze = true

	// Seed maze lines along the room's top edge at stride 2, plus one
	// interior seed, so the walk can cover the whole interior.
	for x := room.X + 1; x < room.X+room.Width-1; x += 2 {
		f.generateMazeLine(x, room.Y+1, room.X, room.Y, room.X+room.Width-1, room.Y+room.Height-1, false, uint8(idx), rng)
	}
}

// generateMazeLine runs a random walk from (x0, y0) within the given bounds,
// stepping with a stride of two tiles and depositing an obstacle behind each
// step. The walk terminates when every step destination is out of bounds or
// already non-open. Obstacles are walls, or secondary terrain when the flag
// is set (and only inside the owning room, per setTerrainObstacleChecked).
func (f *Floor) generateMazeLine(x0, y0, xmin, ymin, xmax, ymax int, useSecondary bool, roomIndex uint8, rng *rand.Rand) {
	x, y := x0, y0
	t := f.At(x, y)
	if t == nil || !t.IsOpen() {
		return
	}
	f.setTerrainObstacleChecked(t, useSecondary, roomIndex)

	dirs := [4]point{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	for {
		var open []point
		for _, d := range dirs {
			nx, ny := x+2*d.x, y+2*d.y
			if nx < xmin || nx > xmax || ny < ymin || ny > ymax {
				continue
			}
			if f.IsOpen(nx, ny) {
				open = append(open, d)
			}
		}
		if len(open) == 0 {
			return
		}
		d := open[rng.Intn(len(open))]
		mid := f.At(x+d.x, y+d.y)
		x, y = x+2*d.x, y+2*d.y
		dest := f.At(x, y)
		if mid.IsOpen() {
			f.setTerrainObstacleChecked(mid, useSecondary, roomIndex)
		}
		f.setTerrainObstacleChecked(dest, useSecondary, roomIndex)
	}
}

// applyRoomImperfections roughens the corners of rooms that roll under the
// given percent chance: each affected corner either gets a wall nub eroded
// into the room or an open nub carved out of the surrounding wall.
func (f *Floor) applyRoomImperfections(chance int, rng *rand.Rand) {
	for i := range f.Rooms {
		room := &f.Rooms[i]
		if room.Width == 0 || room.IsShop || room.IsMonsterHouse || room.IsMaze {
			continue
		}
		if rng.Intn(100) >= chance {
			continue
		}
		room.Imperfect = true
		corners := [4]point{
			{room.X, room.Y},
			{room.X + room.Width - 1, room.Y},
			{room.X, room.Y + room.Height - 1},
			{room.X + room.Width - 1, room.Y + room.Height - 1},
		}
		for _, c := range corners {
			if rng.Intn(2) == 0 {
				continue
			}
			// Nub length 1-2 tiles along a random edge direction.
			n := 1 + rng.Intn(2)
			dx := sign(room.X + room.Width/2 - c.x)
			dy := sign(room.Y + room.Height/2 - c.y)
			if rng.Intn(2) == 0 {
				f.erodeCorner(c, n, dx, dy, rng)
			} else {
				f.bumpCorner(c, n, dx, dy, uint8(i), rng)
			}
		}
	}
}

// erodeCorner walls off up to n open tiles from the corner inward along a
// random edge direction. Junction tiles stop the erosion.
func (f *Floor) erodeCorner(c point, n, dx, dy int, rng *rand.Rand) {
	horizontal := rng.Intn(2) == 0
	x, y := c.x, c.y
	for j := 0; j < n; j++ {
		t := f.At(x, y)
		if t == nil || !t.IsOpen() || t.Has(FlagJunction) {
			break
		}
		t.Terrain = TerrainWall
		if horizontal {
			x += dx
		} else {
			y += dy
		}
	}
}

// bumpCorner opens up to n wall tiles outward from the corner, extending the
// room past its rectangle. Each opened tile is 4-adjacent to the previous
// one, so the bump stays connected to the room interior.
func (f *Floor) bumpCorner(c point, n, dx, dy int, idx uint8, rng *rand.Rand) {
	if start := f.At(c.x, c.y); start == nil || !start.IsOpen() {
		return
	}
	horizontal := rng.Intn(2) == 0
	x, y := c.x, c.y
	for j := 0; j < n; j++ {
		if horizontal {
			x -= dx
		} else {
			y -= dy
		}
		t := f.At(x, y)
		if t == nil || t.Terrain != TerrainWall || t.Has(FlagImpassable) {
			break
		}
		t.Terrain = TerrainOpen
		t.RoomIndex = idx
	}
}

// tagShop tags one eligible room as a Kecleon shop.
func (f *Floor) tagShop(chance int, rng *rand.Rand) {
	if rng.Intn(100) >= chance {
		return
	}
	candidates := make([]int, 0, len(f.Rooms))
	for i, r := range f.Rooms {
		if !r.IsShop && !r.IsMonsterHouse && !r.IsMaze && !r.Imperfect && r.Width >= 4 && r.Height >= 4 {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return
	}
	idx := candidates[rng.Intn(len(candidates))]
	f.Rooms[idx].IsShop = true
	f.setRoomFlags(uint8(idx), FlagShop)
}

// tagMonsterHouse tags one eligible room as a Monster House.
func (f *Floor) tagMonsterHouse(chance int, rng *rand.Rand) {
	if rng.Intn(100) >= chance {
		return
	}
	candidates := make([]int, 0, len(f.Rooms))
	for i, r := range f.Rooms {
		if r.Width > 0 && !r.IsShop && !r.IsMonsterHouse && !r.IsMaze && !r.Imperfect {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return
	}
	idx := candidates[rng.Intn(len(candidates))]
	f.Rooms[idx].IsMonsterHouse = true
	f.setRoomFlags(uint8(idx), FlagMonsterHouse)
}
