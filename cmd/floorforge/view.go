package main

import (
	"context"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/floorforge/internal/dungeon"
	"github.com/samdwyer/floorforge/internal/fixedroom"
	"github.com/samdwyer/floorforge/internal/gamedata"
	"github.com/samdwyer/floorforge/internal/ui"
)

// runViewer opens the interactive terminal viewer: 'r' regenerates with the
// next seed, 'q' or Escape quits.
func runViewer(ctx context.Context, props dungeon.FloorProperties, picker *gamedata.Picker, catalog *fixedroom.Catalog, seed int64) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()
	renderer := ui.NewRenderer(screen)

	generate := func(s int64) *dungeon.Floor {
		rng := rand.New(rand.NewSource(s))
		gen := dungeon.NewGenerator(props, rng).
			WithEntityPicker(picker).
			WithFixedRoomLoader(catalog)
		return gen.Generate(ctx)
	}

	floor := generate(seed)
	renderer.Render(floor, props, seed)

	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			renderer.Render(floor, props, seed)
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return nil
			case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
				return nil
			case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
				seed++
				floor = generate(seed)
				renderer.Render(floor, props, seed)
			}
		}
	}
}
