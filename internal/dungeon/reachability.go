package dungeon

// stairsAlwaysReachable checks that every walkable tile can reach the stairs.
//
// It runs a breadth-first traversal over the four-connected walkable-tile
// graph starting from the stairs. Every walkable tile the traversal does not
// visit gets the unreachable diagnostic flag. Returns true if no tile was
// flagged; with markOnly set it always returns true and keeps the flags as
// diagnostics for partial floors.
func (f *Floor) stairsAlwaysReachable(stairsX, stairsY int, markOnly bool) bool {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			f.Tiles[y][x].Flags &^= flagVisited | FlagUnreachable
		}
	}

	start := f.At(stairsX, stairsY)
	if start == nil || !start.IsWalkable() {
		return markOnly
	}
	start.Flags |= flagVisited
	queue := []point{{stairsX, stairsY}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range [4]point{{0, -1}, {-1, 0}, {1, 0}, {0, 1}} {
			nx, ny := p.x+d.x, p.y+d.y
			n := f.At(nx, ny)
			if n == nil || n.Has(flagVisited) || !n.IsWalkable() {
				continue
			}
			n.Flags |= flagVisited
			queue = append(queue, point{nx, ny})
		}
	}

	ok := true
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			t := &f.Tiles[y][x]
			if t.IsWalkable() && !t.Has(flagVisited) {
				t.Flags |= FlagUnreachable
				ok = false
			}
			t.Flags &^= flagVisited
		}
	}
	if markOnly {
		return true
	}
	return ok
}
