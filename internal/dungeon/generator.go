package dungeon

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/floorforge/internal/telemetry"
)

// maxAttempts caps structure generation retries before falling back to the
// one-room Monster House layout.
const maxAttempts = 10

// Phase is one state of the generation state machine.
type Phase int

const (
	PhaseResetFloor Phase = iota
	PhaseLayoutSelected
	PhaseGridBuilt
	PhaseHallwaysCarved
	PhaseJunctionsResolved
	PhaseFeaturesApplied
	PhaseReachabilityChecked
	PhaseAccepted
	PhaseRetry
	PhaseFallback
	PhaseEntitiesPlaced
	PhaseDone
)

var phaseNames = [...]string{
	"reset-floor", "layout-selected", "grid-built", "hallways-carved",
	"junctions-resolved", "features-applied", "reachability-checked",
	"accepted", "retry", "fallback", "entities-placed", "done",
}

// String returns a human-readable phase name.
func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// errUnreachableTiles signals a structural failure: the layout left walkable
// tiles that cannot reach the stairs. It triggers a retry.
var errUnreachableTiles = errors.New("floor has walkable tiles unreachable from the stairs")

// ErrFixedRoomNotFound is returned by a FixedRoomLoader when the requested
// identifier is unknown; the generator then falls back to standard
// generation for the floor.
var ErrFixedRoomNotFound = errors.New("fixed room not found")

// FixedSpawn is an entity embedded in a fixed-room definition.
type FixedSpawn struct {
	Kind     SpawnKind
	X, Y     int // relative to the fixed room's top-left corner
	EntityID string
}

// FixedRoom is a hand-authored room layout loaded verbatim instead of being
// procedurally generated. Rows use '#' for wall, '.' for open floor, '~' for
// secondary terrain and ' ' for chasm.
type FixedRoom struct {
	ID     string
	Width  int
	Height int
	Rows   []string
	Spawns []FixedSpawn
}

// FixedRoomLoader resolves fixed-room identifiers. It is an external
// collaborator: the generator only consumes the contract.
type FixedRoomLoader interface {
	Load(id string) (*FixedRoom, error)
}

// Generator drives floor generation: it owns the floor arena, the random
// source and the retry/fallback loop. Not safe for concurrent use; one
// generator runs one generation at a time.
type Generator struct {
	props  FloorProperties
	rng    *rand.Rand
	floor  *Floor
	picker EntityPicker
	loader FixedRoomLoader

	// phases records every state transition of the most recent run.
	phases []Phase
	// attempts is the number of structure attempts the last run consumed.
	attempts int
	// fellBack reports whether the last run used the fallback layout.
	fellBack bool
}

// NewGenerator creates a generator for the given properties and random
// source. The picker and loader are optional.
func NewGenerator(props FloorProperties, rng *rand.Rand) *Generator {
	switch {
	case props.Width <= 0:
		props.Width = DefaultWidth
	case props.Width < MinWidth:
		props.Width = MinWidth
	}
	switch {
	case props.Height <= 0:
		props.Height = DefaultHeight
	case props.Height < MinHeight:
		props.Height = MinHeight
	}
	return &Generator{
		props: props,
		rng:   rng,
		floor: NewFloor(props.Width, props.Height),
	}
}

// WithEntityPicker sets the registry that assigns identities to spawns.
func (g *Generator) WithEntityPicker(p EntityPicker) *Generator {
	g.picker = p
	return g
}

// WithFixedRoomLoader sets the fixed-room catalog.
func (g *Generator) WithFixedRoomLoader(l FixedRoomLoader) *Generator {
	g.loader = l
	return g
}

// Phases returns the state transitions of the most recent run.
func (g *Generator) Phases() []Phase { return g.phases }

// Attempts returns how many structure attempts the most recent run used.
func (g *Generator) Attempts() int { return g.attempts }

// FellBack reports whether the most recent run used the fallback layout.
func (g *Generator) FellBack() bool { return g.fellBack }

func (g *Generator) enter(p Phase) {
	g.phases = append(g.phases, p)
}

// Generate produces a fully-populated floor. It retries structure
// generation up to maxAttempts times on reachability failure, then falls
// back to the guaranteed-valid one-room Monster House layout. The returned
// floor is always playable; Generate never fails.
func (g *Generator) Generate(ctx context.Context) *Floor {
	tracer := telemetry.Tracer("dungeon")
	ctx, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()
	startTime := time.Now()

	g.phases = g.phases[:0]
	g.attempts = 0
	g.fellBack = false

	if g.props.FixedRoomID != "" && g.loader != nil {
		if done := g.generateFixedRoom(); done {
			g.enter(PhaseDone)
			span.SetAttributes(
				attribute.String("dungeon.fixed_room", g.props.FixedRoomID),
				attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
			)
			return g.floor
		}
		// Unknown fixed room: fall through to standard generation.
	}

	attempt := func() (*Floor, error) {
		g.attempts++
		if err := g.generateStructure(); err != nil {
			g.enter(PhaseRetry)
			return nil, err
		}
		return g.floor, nil
	}
	_, err := backoff.Retry(ctx, attempt,
		backoff.WithBackOff(backoff.NewConstantBackOff(0)),
		backoff.WithMaxTries(maxAttempts),
	)
	if err != nil {
		g.enter(PhaseFallback)
		g.fellBack = true
		g.generateFallback()
	}

	g.placeEntities()
	g.enter(PhaseDone)

	span.SetAttributes(
		attribute.Int("dungeon.width", g.props.Width),
		attribute.Int("dungeon.height", g.props.Height),
		attribute.String("dungeon.layout", g.props.Layout.String()),
		attribute.Int("dungeon.attempts", g.attempts),
		attribute.Bool("dungeon.fallback", g.fellBack),
		attribute.Int("dungeon.room_count", len(g.floor.Rooms)),
		attribute.Int("dungeon.spawn_count", len(g.floor.Spawns)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return g.floor
}

// generateStructure is one full structure attempt: layout, hallways,
// junctions, features, stairs selection and the reachability check. Entity
// placement happens only after an attempt is accepted.
func (g *Generator) generateStructure() error {
	f := g.floor
	g.enter(PhaseResetFloor)
	f.Reset()

	g.enter(PhaseLayoutSelected)
	grid := g.buildLayoutGrid()

	g.enter(PhaseGridBuilt)
	grid.placeCellContents(f, g.rng)
	g.applyLayoutExtras(grid)

	g.enter(PhaseHallwaysCarved)
	grid.carveConnections(f, g.rng)

	g.enter(PhaseJunctionsResolved)
	f.finalizeJunctions()

	g.enter(PhaseFeaturesApplied)
	skipFeatures := g.props.Layout == LayoutOneRoomMonsterHouse ||
		g.props.Layout == LayoutTwoRoomsMonsterHouse
	if !skipFeatures {
		f.applyFeatures(g.props, g.rng)
	}
	if g.props.SecondaryKind == SecondaryChasm {
		f.ConvertSecondaryTerrainToChasms()
	}
	f.ensureImpassableTilesAreWalls()

	// The stairs must exist before reachability can be checked; the rest of
	// the entities wait until the attempt is accepted.
	if !f.spawnStairs(g.props, g.rng) {
		return fmt.Errorf("no eligible stairs tile: %w", errUnreachableTiles)
	}

	g.enter(PhaseReachabilityChecked)
	if !f.stairsAlwaysReachable(f.StairsX, f.StairsY, false) {
		return errUnreachableTiles
	}
	g.enter(PhaseAccepted)
	return nil
}

// buildLayoutGrid selects the macro layout and produces its cell grid.
func (g *Generator) buildLayoutGrid() *cellGrid {
	props := g.props
	switch props.Layout {
	case LayoutOuterRing:
		return buildOuterRingGrid(props, g.rng)
	case LayoutCrossroads:
		return buildCrossroadsGrid(props, g.rng)
	case LayoutLine:
		return buildLineGrid(props, g.rng)
	case LayoutCross:
		return buildCrossGrid(props, g.rng)
	case LayoutBeetle:
		return buildBeetleGrid(props, g.rng)
	case LayoutOuterRooms:
		cols, rows := props.GridX, props.GridY
		if cols == 0 {
			cols = 4
		}
		if rows == 0 {
			rows = 3
		}
		return buildOuterRoomsGrid(props, cols, rows, g.rng)
	case LayoutOneRoomMonsterHouse:
		return buildOneRoomGrid(props, true)
	case LayoutTwoRoomsMonsterHouse:
		return buildTwoRoomsGrid(props, g.rng)
	default:
		return buildStandardGrid(props, g.rng)
	}
}

// applyLayoutExtras carves structure beyond plain cells: the outer-ring
// hallway loop and the beetle body merge.
func (g *Generator) applyLayoutExtras(grid *cellGrid) {
	f := g.floor
	switch g.props.Layout {
	case LayoutOuterRing:
		f.carveRing(2)
		// Drop every room a vertical hallway onto the ring.
		for i := range grid.cells {
			c := &grid.cells[i]
			room := f.Rooms[c.roomIndex]
			x := room.X + g.rng.Intn(room.Width)
			if i < grid.cols {
				f.createHallway(x, room.Y, x, 2, true, 0, 0)
			} else {
				f.createHallway(x, room.Y+room.Height-1, x, f.Height-3, true, 0, 0)
			}
		}
	case LayoutBeetle:
		// Merge the central column into one body room.
		topIdx := grid.at(1, 0).roomIndex
		midIdx := grid.at(1, 1).roomIndex
		bottomIdx := grid.at(1, 2).roomIndex
		top, mid, bottom := f.Rooms[topIdx], f.Rooms[midIdx], f.Rooms[bottomIdx]
		x0 := min(top.X, mid.X, bottom.X)
		x1 := max(top.X+top.Width, mid.X+mid.Width, bottom.X+bottom.Width)
		for y := top.Y; y < bottom.Y+bottom.Height; y++ {
			for x := x0; x < x1; x++ {
				if t := f.At(x, y); t != nil && !t.Has(FlagImpassable) {
					t.Terrain = TerrainOpen
					t.RoomIndex = midIdx
				}
			}
		}
		body := &f.Rooms[midIdx]
		body.X, body.Y = x0, top.Y
		body.Width = x1 - x0
		body.Height = bottom.Y + bottom.Height - top.Y
		// The absorbed rooms keep their indices but own no tiles now.
		f.Rooms[topIdx].Width, f.Rooms[topIdx].Height = 0, 0
		f.Rooms[bottomIdx].Width, f.Rooms[bottomIdx].Height = 0, 0
	}
}

// carveRing carves a one-tile hallway loop at the given inset from the
// border.
func (f *Floor) carveRing(inset int) {
	x0, y0 := inset, inset
	x1, y1 := f.Width-1-inset, f.Height-1-inset
	carve := func(x, y int) {
		if t := f.At(x, y); t != nil && !t.Has(FlagImpassable) && !t.IsOpen() {
			t.Terrain = TerrainOpen
			t.RoomIndex = roomNone
		}
	}
	for x := x0; x <= x1; x++ {
		carve(x, y0)
		carve(x, y1)
	}
	for y := y0; y <= y1; y++ {
		carve(x0, y)
		carve(x1, y)
	}
}

// buildOneRoomGrid is the one-room layout: a single huge room covering the
// play area. With monsterHouse set it becomes the fallback Monster House.
func buildOneRoomGrid(props FloorProperties, monsterHouse bool) *cellGrid {
	g := newCellGrid(props.Width, props.Height, 1, 1)
	g.cells[0].role = cellRoom
	g.cells[0].isMonsterHouse = monsterHouse
	return g
}

// generateFallback unconditionally produces the one-room Monster House
// floor. It is valid by construction: one rectangular room, every tile
// mutually reachable, so feature generation and the reachability check are
// skipped. This path must always succeed.
func (g *Generator) generateFallback() {
	f := g.floor
	g.enter(PhaseResetFloor)
	f.Reset()
	g.enter(PhaseLayoutSelected)
	idx := f.carveRoom(2, 2, f.Width-4, f.Height-4)
	f.Rooms[idx].IsMonsterHouse = true
	f.setRoomFlags(idx, FlagMonsterHouse)
	g.enter(PhaseGridBuilt)
	if !f.spawnStairs(g.props, g.rng) {
		// A one-room floor always has an eligible stairs tile; reaching
		// this means the arena itself is corrupted.
		panic("fallback floor has no eligible stairs tile")
	}
	g.enter(PhaseAccepted)
}

// placeEntities runs both placement passes and the invalid-spawn resolver
// on the accepted floor.
func (g *Generator) placeEntities() {
	g.enter(PhaseEntitiesPlaced)
	f := g.floor
	emptyHouse := g.props.EmptyMonsterHouse
	f.spawnNonEnemies(g.props, emptyHouse, g.picker, g.rng)
	f.spawnEnemies(g.props, emptyHouse, g.picker, g.rng)
	f.resolveInvalidSpawns()
}

// generateFixedRoom stamps a hand-authored room with its embedded spawns.
// Returns false when the identifier is unknown so the caller can fall back
// to standard generation.
func (g *Generator) generateFixedRoom() bool {
	room, err := g.loader.Load(g.props.FixedRoomID)
	if err != nil {
		return false
	}
	f := g.floor
	g.enter(PhaseResetFloor)
	f.Reset()
	f.resetInnerBoundaryTileRows()
	g.enter(PhaseLayoutSelected)

	x0 := (f.Width - room.Width) / 2
	y0 := (f.Height - room.Height) / 2
	idx := uint8(len(f.Rooms))
	f.Rooms = append(f.Rooms, Room{X: x0, Y: y0, Width: room.Width, Height: room.Height})
	for ry, row := range room.Rows {
		for rx, ch := range row {
			t := f.At(x0+rx, y0+ry)
			if t == nil || t.Has(FlagImpassable) {
				continue
			}
			switch ch {
			case '.':
				t.Terrain = TerrainOpen
				t.RoomIndex = idx
			case '~':
				t.Terrain = TerrainSecondary
				t.RoomIndex = idx
			case ' ':
				t.Terrain = TerrainChasm
			default:
				t.Terrain = TerrainWall
			}
		}
	}

	// Fixed rooms embed their own spawns; procedural placement is skipped.
	for _, s := range room.Spawns {
		p := point{x0 + s.X, y0 + s.Y}
		t := f.At(p.x, p.y)
		if t == nil {
			continue
		}
		t.Flags |= spawnFlag(s.Kind)
		if s.Kind == SpawnStairs {
			f.StairsX, f.StairsY = p.x, p.y
		}
		f.record(s.Kind, p, s.EntityID)
	}
	return true
}
