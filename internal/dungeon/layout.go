package dungeon

import "math/rand"

// cellRole describes what a grid cell contributes to the floor.
type cellRole int

const (
	cellUnused cellRole = iota
	cellRoom
	cellAnchor
)

// gridCell is one entry of the rows×columns layout. Cells exist only during
// generation; once tiles are finalized the cell grid is discarded.
type gridCell struct {
	x0, y0, x1, y1 int // tile-space rectangle, x1/y1 exclusive
	role           cellRole
	roomIndex      uint8
	anchorX        int
	anchorY        int

	// Feature tags, copied onto the room when assigned.
	isShop         bool
	isMonsterHouse bool
	isMaze         bool
	imperfect      bool
}

// cellGrid is the rows×columns partition of the floor used by the planner.
type cellGrid struct {
	cols, rows int
	cells      []gridCell // row-major
	conns      []cellConn
}

// cellConn records that two adjacent cells should be connected by a hallway.
type cellConn struct {
	a, b int // cell indices, row-major
}

func (g *cellGrid) at(col, row int) *gridCell {
	return &g.cells[row*g.cols+col]
}

func (g *cellGrid) index(col, row int) int {
	return row*g.cols + col
}

// connect records a connection between two cells, skipping duplicates.
func (g *cellGrid) connect(a, b int) {
	if a > b {
		a, b = b, a
	}
	for _, c := range g.conns {
		if c.a == a && c.b == b {
			return
		}
	}
	g.conns = append(g.conns, cellConn{a: a, b: b})
}

// newCellGrid partitions the floor interior into cols×rows rectangles. One
// tile of border on every side stays reserved as permanently impassable wall.
func newCellGrid(width, height, cols, rows int) *cellGrid {
	g := &cellGrid{
		cols:  cols,
		rows:  rows,
		cells: make([]gridCell, cols*rows),
	}
	cellW := (width - 2) / cols
	cellH := (height - 2) / rows
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := g.at(col, row)
			c.x0 = 1 + col*cellW
			c.y0 = 1 + row*cellH
			c.x1 = c.x0 + cellW
			c.y1 = c.y0 + cellH
		}
	}
	return g
}

// placeCellContents carves rooms and anchors for every cell per its role.
// Rooms are inset from the cell boundary by a random margin for size variety;
// anchors are a single open tile at the cell center carrying the anchor
// sentinel until the junction scan resolves it.
func (g *cellGrid) placeCellContents(f *Floor, rng *rand.Rand) {
	for i := range g.cells {
		c := &g.cells[i]
		switch c.role {
		case cellRoom:
			g.placeRoom(f, c, rng)
		case cellAnchor:
			c.anchorX = (c.x0 + c.x1) / 2
			c.anchorY = (c.y0 + c.y1) / 2
			t := f.At(c.anchorX, c.anchorY)
			t.Terrain = TerrainOpen
			t.RoomIndex = roomAnchor
		}
	}
}

func (g *cellGrid) placeRoom(f *Floor, c *gridCell, rng *rand.Rand) {
	// Cells squeezed below the minimum span still get a one-tile room so
	// hallway endpoints always have a target.
	maxW := max(c.x1-c.x0-2, 1)
	maxH := max(c.y1-c.y0-2, 1)
	w := maxW
	h := maxH
	if maxW > 3 {
		w = 3 + rng.Intn(maxW-2)
	}
	if maxH > 3 {
		h = 3 + rng.Intn(maxH-2)
	}
	x := c.x0 + 1 + rng.Intn(maxW-w+1)
	y := c.y0 + 1 + rng.Intn(maxH-h+1)
	c.roomIndex = f.carveRoom(x, y, w, h)
	room := &f.Rooms[c.roomIndex]
	room.IsShop = c.isShop
	room.IsMonsterHouse = c.isMonsterHouse
	room.IsMaze = c.isMaze
	room.Imperfect = c.imperfect
	if c.isShop {
		f.setRoomFlags(c.roomIndex, FlagShop)
	}
	if c.isMonsterHouse {
		f.setRoomFlags(c.roomIndex, FlagMonsterHouse)
	}
}

// ---------------------------------------------------------------------------
// Layout builders. Each returns a fully-roled cell grid with its connection
// list; the orchestrator then carves contents and hallways.
// ---------------------------------------------------------------------------

// buildStandardGrid is the standard layout: a randomized rows×columns grid
// where each cell is a room or hallway anchor by weighted choice.
func buildStandardGrid(props FloorProperties, rng *rand.Rand) *cellGrid {
	cols := props.GridX
	rows := props.GridY
	if cols == 0 {
		cols = minGridDim + rng.Intn(4) // 2..5
	}
	if rows == 0 {
		rows = minGridDim + rng.Intn(2) // 2..3
	}
	if cols > maxGridDim {
		cols = maxGridDim
	}
	if rows > maxGridDim {
		rows = maxGridDim
	}
	cols, rows = clampGridDims(props, cols, rows)
	g := newCellGrid(props.Width, props.Height, cols, rows)

	roomCount := 0
	for i := range g.cells {
		if rng.Intn(100) < props.RoomDensity {
			g.cells[i].role = cellRoom
			roomCount++
		} else {
			g.cells[i].role = cellAnchor
		}
	}
	// A floor needs at least two rooms for stairs and player to land apart.
	for i := 0; roomCount < 2 && i < len(g.cells); i++ {
		if g.cells[i].role != cellRoom {
			g.cells[i].role = cellRoom
			roomCount++
		}
	}

	g.spanningSweep()
	g.extraConnections(props.FloorConnectivity, rng)
	return g
}

// clampGridDims caps a requested grid so every cell spans at least
// minCellSpan tiles of the floor interior.
func clampGridDims(props FloorProperties, cols, rows int) (int, int) {
	if m := (props.Width - 2) / minCellSpan; cols > m {
		cols = m
	}
	if m := (props.Height - 2) / minCellSpan; rows > m {
		rows = m
	}
	return max(cols, 1), max(rows, 1)
}

// spanningSweep connects the cell grid into a spanning tree: the first
// column top to bottom, then every row left to right.
func (g *cellGrid) spanningSweep() {
	for row := 0; row+1 < g.rows; row++ {
		g.connect(g.index(0, row), g.index(0, row+1))
	}
	for row := 0; row < g.rows; row++ {
		for col := 0; col+1 < g.cols; col++ {
			g.connect(g.index(col, row), g.index(col+1, row))
		}
	}
}

// extraConnections adds n random connections between adjacent cells for loop
// diversity. Duplicates are dropped, so the effective count may be lower.
func (g *cellGrid) extraConnections(n int, rng *rand.Rand) {
	for i := 0; i < n; i++ {
		col := rng.Intn(g.cols)
		row := rng.Intn(g.rows)
		if rng.Intn(2) == 0 {
			if col+1 < g.cols {
				g.connect(g.index(col, row), g.index(col+1, row))
			}
		} else {
			if row+1 < g.rows {
				g.connect(g.index(col, row), g.index(col, row+1))
			}
		}
	}
}

// buildOuterRingGrid is a 4x2 grid of rooms surrounded by an outer ring of
// hallways. The ring itself is carved by the orchestrator after the rooms.
func buildOuterRingGrid(props FloorProperties, rng *rand.Rand) *cellGrid {
	g := newCellGrid(props.Width, props.Height, 4, 2)
	for i := range g.cells {
		g.cells[i].role = cellRoom
		// Shrink cells inward so the ring corridor has clearance.
		g.cells[i].x0 += 2
		g.cells[i].y0 += 2
		g.cells[i].x1 -= 2
		g.cells[i].y1 -= 2
	}
	return g
}

// buildCrossroadsGrid is a 5x4 grid: an interior 3x2 mesh of hallway
// anchors with rooms protruding from the boundary, excluding corners.
func buildCrossroadsGrid(props FloorProperties, rng *rand.Rand) *cellGrid {
	g := newCellGrid(props.Width, props.Height, 5, 4)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			c := g.at(col, row)
			onBoundary := col == 0 || col == g.cols-1 || row == 0 || row == g.rows-1
			corner := (col == 0 || col == g.cols-1) && (row == 0 || row == g.rows-1)
			switch {
			case corner:
				c.role = cellUnused
			case onBoundary:
				c.role = cellRoom
			default:
				c.role = cellAnchor
			}
		}
	}
	// Mesh the interior anchors together.
	for row := 1; row < g.rows-1; row++ {
		for col := 1; col < g.cols-1; col++ {
			if col+1 < g.cols-1 {
				g.connect(g.index(col, row), g.index(col+1, row))
			}
			if row+1 < g.rows-1 {
				g.connect(g.index(col, row), g.index(col, row+1))
			}
		}
	}
	// Attach each boundary room to its interior neighbor.
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.at(col, row).role != cellRoom {
				continue
			}
			switch {
			case row == 0:
				g.connect(g.index(col, row), g.index(col, row+1))
			case row == g.rows-1:
				g.connect(g.index(col, row), g.index(col, row-1))
			case col == 0:
				g.connect(g.index(col, row), g.index(col+1, row))
			case col == g.cols-1:
				g.connect(g.index(col, row), g.index(col-1, row))
			}
		}
	}
	return g
}

// buildLineGrid is 5 cells in a horizontal line.
func buildLineGrid(props FloorProperties, rng *rand.Rand) *cellGrid {
	g := newCellGrid(props.Width, props.Height, 5, 1)
	for i := range g.cells {
		if rng.Intn(100) < props.RoomDensity {
			g.cells[i].role = cellRoom
		} else {
			g.cells[i].role = cellAnchor
		}
	}
	// The two endpoints are always rooms.
	g.cells[0].role = cellRoom
	g.cells[4].role = cellRoom
	for col := 0; col+1 < 5; col++ {
		g.connect(col, col+1)
	}
	return g
}

// buildCrossGrid is 5 rooms in a plus formation on a 3x3 grid; corner cells
// stay unused.
func buildCrossGrid(props FloorProperties, rng *rand.Rand) *cellGrid {
	g := newCellGrid(props.Width, props.Height, 3, 3)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			c := g.at(col, row)
			if (col == 1) != (row == 1) || (col == 1 && row == 1) {
				c.role = cellRoom
			} else {
				c.role = cellUnused
			}
		}
	}
	center := g.index(1, 1)
	g.connect(g.index(1, 0), center)
	g.connect(g.index(0, 1), center)
	g.connect(g.index(2, 1), center)
	g.connect(g.index(1, 2), center)
	return g
}

// buildBeetleGrid is a 3x3 grid of rooms with each row connected. The
// orchestrator merges the central column into one big room after carving.
func buildBeetleGrid(props FloorProperties, rng *rand.Rand) *cellGrid {
	g := newCellGrid(props.Width, props.Height, 3, 3)
	for i := range g.cells {
		g.cells[i].role = cellRoom
	}
	for row := 0; row < 3; row++ {
		g.connect(g.index(0, row), g.index(1, row))
		g.connect(g.index(1, row), g.index(2, row))
	}
	return g
}

// buildOuterRoomsGrid is a ring of rooms on the grid boundary with nothing
// in the interior. For fewer than 4 columns the bottom-row sweep is skipped,
// which can leave rooms disconnected; that is surfaced by the reachability
// check, not corrected here.
func buildOuterRoomsGrid(props FloorProperties, cols, rows int, rng *rand.Rand) *cellGrid {
	cols, rows = clampGridDims(props, cols, rows)
	g := newCellGrid(props.Width, props.Height, cols, rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := g.at(col, row)
			if col == 0 || col == cols-1 || row == 0 || row == rows-1 {
				c.role = cellRoom
			} else {
				c.role = cellUnused
			}
		}
	}
	for col := 0; col+1 < cols; col++ {
		g.connect(g.index(col, 0), g.index(col+1, 0))
	}
	if cols >= 4 {
		for col := 0; col+1 < cols; col++ {
			g.connect(g.index(col, rows-1), g.index(col+1, rows-1))
		}
	}
	for row := 0; row+1 < rows; row++ {
		g.connect(g.index(0, row), g.index(0, row+1))
		g.connect(g.index(cols-1, row), g.index(cols-1, row+1))
	}
	return g
}

// buildTwoRoomsGrid is two rooms side by side; the right one becomes a
// Monster House.
func buildTwoRoomsGrid(props FloorProperties, rng *rand.Rand) *cellGrid {
	g := newCellGrid(props.Width, props.Height, 2, 1)
	g.cells[0].role = cellRoom
	g.cells[1].role = cellRoom
	g.cells[1].isMonsterHouse = true
	g.connect(0, 1)
	return g
}
