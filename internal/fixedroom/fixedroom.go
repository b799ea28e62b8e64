// Package fixedroom provides the catalog of hand-authored room layouts that
// replace procedural generation on designated floors.
package fixedroom

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/samdwyer/floorforge/internal/dungeon"
)

//go:embed fixed_rooms.json
var dataFS embed.FS

// roomFile is the on-disk shape of one catalog entry. Rows use '#' for wall,
// '.' for open floor, '~' for secondary terrain and ' ' for chasm. Spawns
// are embedded in the definition; fixed rooms never go through procedural
// entity placement.
type roomFile struct {
	ID     string      `json:"id"`
	Rows   []string    `json:"rows"`
	Spawns []spawnFile `json:"spawns"`
}

type spawnFile struct {
	Kind     string `json:"kind"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	EntityID string `json:"entityId,omitempty"`
}

type catalogFile struct {
	Rooms []roomFile `json:"rooms"`
}

var spawnKinds = map[string]dungeon.SpawnKind{
	"stairs": dungeon.SpawnStairs,
	"item":   dungeon.SpawnItem,
	"trap":   dungeon.SpawnTrap,
	"enemy":  dungeon.SpawnEnemy,
	"player": dungeon.SpawnPlayer,
}

// Catalog holds the loaded fixed-room definitions, keyed by identifier.
type Catalog struct {
	rooms map[string]*dungeon.FixedRoom
}

// LoadCatalog reads and validates the embedded fixed-room catalog.
func LoadCatalog() (*Catalog, error) {
	content, err := dataFS.ReadFile("fixed_rooms.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded fixed_rooms.json: %w", err)
	}
	var file catalogFile
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse fixed_rooms.json: %w", err)
	}

	c := &Catalog{rooms: make(map[string]*dungeon.FixedRoom, len(file.Rooms))}
	for _, rf := range file.Rooms {
		room, err := convert(rf)
		if err != nil {
			return nil, fmt.Errorf("fixed room %q: %w", rf.ID, err)
		}
		c.rooms[rf.ID] = room
	}
	return c, nil
}

// MustLoadCatalog loads the catalog, panicking on error.
func MustLoadCatalog() *Catalog {
	c, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

func convert(rf roomFile) (*dungeon.FixedRoom, error) {
	if len(rf.Rows) == 0 {
		return nil, fmt.Errorf("empty layout")
	}
	width := len(rf.Rows[0])
	for i, row := range rf.Rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has length %d, want %d", i, len(row), width)
		}
	}
	room := &dungeon.FixedRoom{
		ID:     rf.ID,
		Width:  width,
		Height: len(rf.Rows),
		Rows:   rf.Rows,
	}
	for _, sf := range rf.Spawns {
		kind, ok := spawnKinds[sf.Kind]
		if !ok {
			return nil, fmt.Errorf("unknown spawn kind %q", sf.Kind)
		}
		if sf.X < 0 || sf.X >= width || sf.Y < 0 || sf.Y >= len(rf.Rows) {
			return nil, fmt.Errorf("spawn %q out of bounds at (%d,%d)", sf.Kind, sf.X, sf.Y)
		}
		room.Spawns = append(room.Spawns, dungeon.FixedSpawn{
			Kind:     kind,
			X:        sf.X,
			Y:        sf.Y,
			EntityID: sf.EntityID,
		})
	}
	return room, nil
}

// Load returns the fixed room with the given identifier, or
// dungeon.ErrFixedRoomNotFound. Unknown identifiers make the generator fall
// back to standard generation for the floor.
func (c *Catalog) Load(id string) (*dungeon.FixedRoom, error) {
	room, ok := c.rooms[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, dungeon.ErrFixedRoomNotFound)
	}
	return room, nil
}

// IDs returns the identifiers of every room in the catalog.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.rooms))
	for id := range c.rooms {
		ids = append(ids, id)
	}
	return ids
}
