package dungeon

import "math/rand"

// generateSecondaryTerrain carves water/lava formations: rivers flowing from
// one floor edge toward the opposite edge, lakes grown around a center
// point, and occasionally a lake at the end of a river.
//
// Formations only ever convert passable walls (setSecondaryTerrainOnWall);
// impassable tiles are never converted, and open room tiles are passed
// through without altering their classification.
func (f *Floor) generateSecondaryTerrain(props FloorProperties, rng *rand.Rand) {
	for i := 0; i < props.SecondaryDensity; i++ {
		f.generateRiver(rng)
	}
	// Standalone lakes, about one per two rivers.
	for i := 0; i < (props.SecondaryDensity+1)/2; i++ {
		cx := 2 + rng.Intn(f.Width-4)
		cy := 2 + rng.Intn(f.Height-4)
		f.generateLake(cx, cy, rng)
	}
}

// generateRiver runs a random walk from the top or bottom edge toward the
// opposite edge, laying secondary terrain as it goes. The walk terminates on
// reaching existing secondary terrain or going out of bounds, and sometimes
// ends early by spawning a lake.
func (f *Floor) generateRiver(rng *rand.Rand) {
	x := 2 + rng.Intn(f.Width-4)
	y := 1
	dy := 1
	if rng.Intn(2) == 0 {
		y = f.Height - 2
		dy = -1
	}

	for f.InBounds(x, y) {
		t := f.At(x, y)
		if t.Terrain == TerrainSecondary {
			return
		}
		f.setSecondaryTerrainOnWall(t)

		// Mostly flow toward the opposite edge, with occasional sideways
		// wander; a small chance ends the river in a lake.
		switch rng.Intn(8) {
		case 0:
			f.generateLake(x, y, rng)
			return
		case 1, 2:
			if rng.Intn(2) == 0 {
				x--
			} else {
				x++
			}
		default:
			y += dy
		}
		if x < 1 || x > f.Width-2 {
			return
		}
	}
}

// generateLake grows a blob of secondary terrain outward from a center
// point. Growth is a fixed number of random offsets within a small radius,
// so lakes come out irregular but bounded.
func (f *Floor) generateLake(cx, cy int, rng *rand.Rand) {
	const (
		radius   = 3
		attempts = 40
	)
	for i := 0; i < attempts; i++ {
		x := cx + rng.Intn(2*radius+1) - radius
		y := cy + rng.Intn(2*radius+1) - radius
		t := f.At(x, y)
		if t == nil {
			continue
		}
		f.setSecondaryTerrainOnWall(t)
	}
}
