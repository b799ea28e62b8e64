package dungeon

// finalizeJunctions resolves hallway anchors and flags junction tiles in a
// single left-to-right, top-to-bottom scan.
//
// When the scan visits a tile carrying the anchor sentinel, the tile is
// reclassified as hallway on the spot and its terrain forced open. When the
// scan visits an open hallway tile, every 4-adjacent open tile that is not
// itself classified as hallway gets the junction flag.
//
// The two rules share one loop, so whether an anchor ends up flagged as a
// junction depends on scan order: an anchor whose hallway neighbor comes
// earlier in the scan is still carrying the anchor sentinel when that
// neighbor inspects it, and gets flagged; an anchor visited before all of
// its hallway neighbors is reclassified first and never flagged. Downstream
// spawn eligibility sees this exact output, so the scan order is load-bearing
// and must stay row-major ascending.
func (f *Floor) finalizeJunctions() {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			t := &f.Tiles[y][x]
			if t.RoomIndex == roomAnchor {
				t.RoomIndex = roomNone
				t.Terrain = TerrainOpen
			}
			if !t.IsOpen() || t.RoomIndex != roomNone {
				continue
			}
			for _, d := range [4]point{{0, -1}, {-1, 0}, {1, 0}, {0, 1}} {
				n := f.At(x+d.x, y+d.y)
				if n != nil && n.IsOpen() && n.RoomIndex != roomNone {
					n.Flags |= FlagJunction
				}
			}
		}
	}
}

// flagHallwayJunctions re-runs junction detection over the tile range
// [x0, x1) x [y0, y1). Open non-hallway tiles 4-adjacent to an open hallway
// tile get the junction flag; tiles in room interiors are untouched. Used
// after extra hallways have been carved into finalized structure.
func (f *Floor) flagHallwayJunctions(x0, y0, x1, y1 int) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			t := f.At(x, y)
			if t == nil || !t.IsOpen() || t.RoomIndex == roomNone {
				continue
			}
			for _, d := range [4]point{{0, -1}, {-1, 0}, {1, 0}, {0, 1}} {
				n := f.At(x+d.x, y+d.y)
				if n != nil && n.IsOpen() && n.RoomIndex == roomNone {
					t.Flags |= FlagJunction
					break
				}
			}
		}
	}
}
