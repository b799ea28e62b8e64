package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/floorforge/internal/dungeon"
)

// Renderer draws a generated floor to the screen.
type Renderer struct {
	screen *Screen

	// Precomputed shade ramps for secondary terrain, blended in Lab space
	// so adjacent shades read as one body of water or lava.
	waterRamp []tcell.Color
	lavaRamp  []tcell.Color
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{
		screen:    screen,
		waterRamp: shadeRamp("#1E5AA8", "#59C2E8", 4),
		lavaRamp:  shadeRamp("#B32D00", "#FFB347", 4),
	}
}

// shadeRamp blends two hex colors into n tcell colors.
func shadeRamp(from, to string, n int) []tcell.Color {
	c1, _ := colorful.Hex(from)
	c2, _ := colorful.Hex(to)
	ramp := make([]tcell.Color, n)
	for i := 0; i < n; i++ {
		c := c1.BlendLab(c2, float64(i)/float64(n-1)).Clamped()
		r, g, b := c.RGB255()
		ramp[i] = tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return ramp
}

// Render draws the floor's tiles and spawn markers.
func (r *Renderer) Render(floor *dungeon.Floor, props dungeon.FloorProperties, seed int64) {
	r.screen.Clear()

	for y := 0; y < floor.Height; y++ {
		for x := 0; x < floor.Width; x++ {
			t := floor.At(x, y)
			ch, style := r.tileAppearance(t, props, x, y)
			r.screen.SetContent(x, y, ch, style)
		}
	}

	for _, s := range floor.Spawns {
		ch, style := spawnAppearance(s.Kind)
		r.screen.SetContent(s.X, s.Y, ch, style)
	}

	r.RenderMessage(fmt.Sprintf("layout=%s seed=%d rooms=%d spawns=%d  [r]egenerate [q]uit",
		props.Layout, seed, len(floor.Rooms), len(floor.Spawns)), floor.Height+1)
	r.screen.Show()
}

// tileAppearance returns the glyph and style for a tile.
func (r *Renderer) tileAppearance(t *dungeon.Tile, props dungeon.FloorProperties, x, y int) (rune, tcell.Style) {
	switch t.Terrain {
	case dungeon.TerrainSecondary:
		ramp := r.waterRamp
		if props.SecondaryKind == dungeon.SecondaryLava {
			ramp = r.lavaRamp
		}
		// Diagonal phase keeps large bodies from rendering flat.
		shade := ramp[(x+y)%len(ramp)]
		return '~', tcell.StyleDefault.Foreground(shade)
	case dungeon.TerrainChasm:
		return ' ', tcell.StyleDefault
	case dungeon.TerrainOpen:
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		switch {
		case t.Has(dungeon.FlagShop):
			style = tcell.StyleDefault.Foreground(tcell.ColorGreen)
		case t.Has(dungeon.FlagMonsterHouse):
			style = tcell.StyleDefault.Foreground(tcell.ColorRed)
		case t.Has(dungeon.FlagJunction):
			return '+', tcell.StyleDefault.Foreground(tcell.ColorTeal)
		case t.Has(dungeon.FlagUnreachable):
			return '?', tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
		}
		return '.', style
	default:
		return '#', tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	}
}

// spawnAppearance returns the glyph and style for a spawn marker.
func spawnAppearance(kind dungeon.SpawnKind) (rune, tcell.Style) {
	switch kind {
	case dungeon.SpawnStairs:
		return '>', tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	case dungeon.SpawnHiddenStairs:
		return '>', tcell.StyleDefault.Foreground(tcell.ColorSilver)
	case dungeon.SpawnItem, dungeon.SpawnBuriedItem:
		return '*', tcell.StyleDefault.Foreground(tcell.ColorAqua)
	case dungeon.SpawnTrap:
		return '^', tcell.StyleDefault.Foreground(tcell.ColorOrange)
	case dungeon.SpawnEnemy:
		return 'e', tcell.StyleDefault.Foreground(tcell.ColorRed)
	case dungeon.SpawnPlayer:
		return '@', tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	default:
		return '?', tcell.StyleDefault
	}
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
