// Package main is the entry point for the floorforge generator CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/floorforge/internal/dungeon"
	"github.com/samdwyer/floorforge/internal/fixedroom"
	"github.com/samdwyer/floorforge/internal/gamedata"
	"github.com/samdwyer/floorforge/internal/telemetry"
)

func main() {
	seed := flag.Int64("seed", 0, "Seed for generation (0 = time-based)")
	width := flag.Int("width", dungeon.DefaultWidth, "Floor width in tiles")
	height := flag.Int("height", dungeon.DefaultHeight, "Floor height in tiles")
	layoutName := flag.String("layout", "standard", "Macro layout (standard, outer-ring, crossroads, line, cross, beetle, outer-rooms, one-room-monster-house, two-rooms-monster-house)")
	floors := flag.Int("floors", 1, "Number of floors to generate")
	fixedID := flag.String("fixed", "", "Fixed room identifier (overrides layout)")
	outDir := flag.String("out", "", "Write floor_N.yaml files to this directory instead of dumping ASCII")
	view := flag.Bool("view", false, "Open the interactive terminal viewer")
	flag.Parse()

	// Load .env file for local development; not fatal, env vars might be
	// set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	// Telemetry is optional: without OTEL_* env vars the generator runs
	// with the global noop provider.
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	props := dungeon.DefaultProperties()
	props.Width = *width
	props.Height = *height
	props.FixedRoomID = *fixedID
	layout, ok := dungeon.ParseLayout(*layoutName)
	if !ok {
		log.Fatalf("Unknown layout %q", *layoutName)
	}
	props.Layout = layout

	picker, err := gamedata.LoadPicker()
	if err != nil {
		log.Fatalf("Failed to load entity data: %v", err)
	}
	catalog := fixedroom.MustLoadCatalog()

	if *view {
		if err := runViewer(ctx, props, picker, catalog, *seed); err != nil {
			log.Fatalf("Viewer error: %v", err)
		}
		return
	}

	for n := 1; n <= *floors; n++ {
		floorSeed := *seed + int64(n-1)
		rng := rand.New(rand.NewSource(floorSeed))
		gen := dungeon.NewGenerator(props, rng).
			WithEntityPicker(picker).
			WithFixedRoomLoader(catalog)
		floor := gen.Generate(ctx)

		if *outDir != "" {
			if err := os.MkdirAll(*outDir, 0755); err != nil {
				log.Fatalf("Failed to create output directory: %v", err)
			}
			path := filepath.Join(*outDir, fmt.Sprintf("floor_%d.yaml", n))
			if err := writeFloorYAML(floor, props, floorSeed, n, path); err != nil {
				log.Fatalf("Failed to write %s: %v", path, err)
			}
			fmt.Printf("floor %d -> %s\n", n, path)
			continue
		}

		fmt.Printf("floor %d  seed=%d layout=%s attempts=%d fallback=%v\n",
			n, floorSeed, props.Layout, gen.Attempts(), gen.FellBack())
		dumpASCII(floor)
	}
}

// dumpASCII prints the floor with spawn markers overlaid.
func dumpASCII(floor *dungeon.Floor) {
	rows := make([][]rune, floor.Height)
	for y := 0; y < floor.Height; y++ {
		rows[y] = make([]rune, floor.Width)
		for x := 0; x < floor.Width; x++ {
			rows[y][x] = floor.At(x, y).Terrain.Rune()
		}
	}
	for _, s := range floor.Spawns {
		rows[s.Y][s.X] = spawnRune(s.Kind)
	}
	for _, row := range rows {
		fmt.Println(string(row))
	}
	for _, s := range floor.Spawns {
		if s.EntityID != "" {
			fmt.Printf("  %-12s (%2d,%2d)  %s\n", s.Kind, s.X, s.Y, s.EntityID)
		} else {
			fmt.Printf("  %-12s (%2d,%2d)\n", s.Kind, s.X, s.Y)
		}
	}
}

func spawnRune(kind dungeon.SpawnKind) rune {
	switch kind {
	case dungeon.SpawnStairs, dungeon.SpawnHiddenStairs:
		return '>'
	case dungeon.SpawnItem, dungeon.SpawnBuriedItem:
		return '*'
	case dungeon.SpawnTrap:
		return '^'
	case dungeon.SpawnEnemy:
		return 'e'
	case dungeon.SpawnPlayer:
		return '@'
	default:
		return '?'
	}
}
