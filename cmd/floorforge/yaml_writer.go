package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/floorforge/internal/dungeon"
)

// floorYAML is the serialized form of a generated floor. The tile grid is
// written as one string per row so the file stays readable in a text editor.
type floorYAML struct {
	Floor  int         `yaml:"floor"`
	Seed   int64       `yaml:"seed"`
	Layout string      `yaml:"layout"`
	Width  int         `yaml:"width"`
	Height int         `yaml:"height"`
	Stairs pointYAML   `yaml:"stairs"`
	Tiles  []string    `yaml:"tiles"`
	Rooms  []roomYAML  `yaml:"rooms"`
	Spawns []spawnYAML `yaml:"spawns"`
}

type pointYAML struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type roomYAML struct {
	X            int  `yaml:"x"`
	Y            int  `yaml:"y"`
	Width        int  `yaml:"width"`
	Height       int  `yaml:"height"`
	Shop         bool `yaml:"shop,omitempty"`
	MonsterHouse bool `yaml:"monsterHouse,omitempty"`
	Maze         bool `yaml:"maze,omitempty"`
}

type spawnYAML struct {
	ID       string `yaml:"id"`
	Kind     string `yaml:"kind"`
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	EntityID string `yaml:"entityId,omitempty"`
}

func writeFloorYAML(floor *dungeon.Floor, props dungeon.FloorProperties, seed int64, n int, path string) error {
	out := floorYAML{
		Floor:  n,
		Seed:   seed,
		Layout: props.Layout.String(),
		Width:  floor.Width,
		Height: floor.Height,
		Stairs: pointYAML{X: floor.StairsX, Y: floor.StairsY},
	}

	for y := 0; y < floor.Height; y++ {
		row := make([]rune, floor.Width)
		for x := 0; x < floor.Width; x++ {
			row[x] = floor.At(x, y).Terrain.Rune()
		}
		out.Tiles = append(out.Tiles, string(row))
	}

	for _, room := range floor.Rooms {
		if room.Width == 0 {
			continue
		}
		out.Rooms = append(out.Rooms, roomYAML{
			X:            room.X,
			Y:            room.Y,
			Width:        room.Width,
			Height:       room.Height,
			Shop:         room.IsShop,
			MonsterHouse: room.IsMonsterHouse,
			Maze:         room.IsMaze,
		})
	}

	for _, s := range floor.Spawns {
		out.Spawns = append(out.Spawns, spawnYAML{
			ID:       s.ID.String(),
			Kind:     s.Kind.String(),
			X:        s.X,
			Y:        s.Y,
			EntityID: s.EntityID,
		})
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("failed to marshal floor: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
