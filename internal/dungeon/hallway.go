package dungeon

import "math/rand"

type point struct {
	x, y int
}

// hallwayPath builds the tile path between two endpoints. If the endpoints
// share an axis the path is straight; otherwise it kinks at the middle
// coordinate on the axis picked by the vertical flag, forming an L/Z shape.
func hallwayPath(sx, sy, ex, ey int, vertical bool, mx, my int) []point {
	var path []point
	push := func(x, y int) {
		if n := len(path); n > 0 && path[n-1].x == x && path[n-1].y == y {
			return
		}
		path = append(path, point{x, y})
	}
	walk := func(fx, fy, tx, ty int) {
		dx, dy := sign(tx-fx), sign(ty-fy)
		x, y := fx, fy
		push(x, y)
		for x != tx || y != ty {
			x += dx
			y += dy
			push(x, y)
		}
	}
	switch {
	case sy == ey:
		walk(sx, sy, ex, ey)
	case sx == ex:
		walk(sx, sy, ex, ey)
	case vertical:
		// Two vertical lines joined by a horizontal line at middle y.
		walk(sx, sy, sx, my)
		walk(sx, my, ex, my)
		walk(ex, my, ex, ey)
	default:
		// Two horizontal lines joined by a vertical line at middle x.
		walk(sx, sy, mx, sy)
		walk(mx, sy, mx, ey)
		walk(mx, ey, ex, ey)
	}
	return path
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// createHallway carves a hallway between two points. Carving proceeds
// tile-by-tile from each endpoint and stops as soon as it reaches a tile
// that is already open, so hallways never tunnel through existing rooms or
// hallways. The endpoints themselves may be open (a room edge or an anchor);
// they are skipped rather than treated as an early intersection.
func (f *Floor) createHallway(sx, sy, ex, ey int, vertical bool, mx, my int) {
	path := hallwayPath(sx, sy, ex, ey, vertical, mx, my)
	f.carveAlong(path)
	reversed := make([]point, len(path))
	for i, p := range path {
		reversed[len(path)-1-i] = p
	}
	f.carveAlong(reversed)
}

func (f *Floor) carveAlong(path []point) {
	for i, p := range path {
		t := f.At(p.x, p.y)
		if t == nil || t.Has(FlagImpassable) {
			return
		}
		if t.IsOpen() {
			if i == 0 {
				continue
			}
			return
		}
		t.Terrain = TerrainOpen
		t.RoomIndex = roomNone
	}
}

// carveConnections carves a hallway for every recorded cell connection, in
// recording order so the result depends only on the random stream.
func (g *cellGrid) carveConnections(f *Floor, rng *rand.Rand) {
	for _, conn := range g.conns {
		a := &g.cells[conn.a]
		b := &g.cells[conn.b]
		if a.role == cellUnused || b.role == cellUnused {
			continue
		}
		horizontal := conn.b-conn.a == 1
		sx, sy := g.connectionPoint(f, a, horizontal, true, rng)
		ex, ey := g.connectionPoint(f, b, horizontal, false, rng)
		if horizontal {
			f.createHallway(sx, sy, ex, ey, false, a.x1-1, 0)
		} else {
			f.createHallway(sx, sy, ex, ey, true, 0, a.y1-1)
		}
	}
}

// connectionPoint picks the hallway endpoint for a cell. Rooms contribute a
// random open tile on the facing edge; anchors contribute their single tile.
// A room with no extent left (absorbed by a layout merge) contributes its
// recorded corner.
func (g *cellGrid) connectionPoint(f *Floor, c *gridCell, horizontal, leading bool, rng *rand.Rand) (int, int) {
	if c.role == cellAnchor {
		return c.anchorX, c.anchorY
	}
	room := f.Rooms[c.roomIndex]
	if room.Width < 1 || room.Height < 1 {
		return room.X, room.Y
	}
	if horizontal {
		y := room.Y + rng.Intn(room.Height)
		if leading {
			return room.X + room.Width - 1, y
		}
		return room.X, y
	}
	x := room.X + rng.Intn(room.Width)
	if leading {
		return x, room.Y + room.Height - 1
	}
	return x, room.Y
}

// isNextToHallway reports whether the position is in a hallway or 4-adjacent
// to one.
func (f *Floor) isNextToHallway(x, y int) bool {
	if t := f.At(x, y); t != nil && t.IsHallway() {
		return true
	}
	return f.isNextToHallwayExcept(x, y, x, y)
}

// isNextToHallwayExcept reports whether any 4-neighbor of (x, y) other than
// (px, py) is a hallway tile. The exclusion lets an in-progress walk ignore
// the tile it just carved.
func (f *Floor) isNextToHallwayExcept(x, y, px, py int) bool {
	for _, d := range [4]point{{0, -1}, {-1, 0}, {1, 0}, {0, 1}} {
		nx, ny := x+d.x, y+d.y
		if nx == px && ny == py {
			continue
		}
		if t := f.At(nx, ny); t != nil && t.IsHallway() {
			return true
		}
	}
	return false
}

// addExtraHallways carves n extra hallway random walks out of rooms for loop
// redundancy.
func (f *Floor) addExtraHallways(n int, rng *rand.Rand) {
	if len(f.Rooms) == 0 {
		return
	}
	dirs := [4]point{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	for i := 0; i < n; i++ {
		roomIdx := uint8(rng.Intn(len(f.Rooms)))
		room := f.Rooms[roomIdx]
		if room.Width == 0 || room.Height == 0 {
			continue
		}
		d := dirs[rng.Intn(4)]
		x := room.X + rng.Intn(room.Width)
		y := room.Y + rng.Intn(room.Height)
		f.carveExtraHallway(roomIdx, x, y, d, rng)
	}
}

// carveExtraHallway walks out of the room from (x, y) heading d, carving
// hallway until it reaches any open tile, lands beside an existing hallway,
// or runs against the impassable border.
func (f *Floor) carveExtraHallway(roomIdx uint8, x, y int, d point, rng *rand.Rand) {
	dirs := [4]point{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}

	// Step to the room boundary first.
	for f.InBounds(x, y) && f.Tiles[y][x].RoomIndex == roomIdx {
		x += d.x
		y += d.y
	}
	px, py := x-d.x, y-d.y
	for {
		t := f.At(x, y)
		if t == nil || t.Has(FlagImpassable) {
			return
		}
		if t.IsOpen() {
			return
		}
		t.Terrain = TerrainOpen
		t.RoomIndex = roomNone
		// Joining an existing hallway ends the walk; carrying on alongside
		// it would only double the corridor.
		if f.isNextToHallwayExcept(x, y, px, py) {
			return
		}
		// Occasional kink keeps the extra hallways from reading as
		// straight spokes.
		if rng.Intn(4) == 0 {
			if d.x != 0 {
				d = dirs[[2]int{0, 3}[rng.Intn(2)]]
			} else {
				d = dirs[[2]int{1, 2}[rng.Intn(2)]]
			}
		}
		px, py = x, y
		x += d.x
		y += d.y
	}
}
