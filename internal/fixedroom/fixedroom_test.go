package fixedroom

import (
	"errors"
	"testing"

	"github.com/samdwyer/floorforge/internal/dungeon"
)

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}
	if len(catalog.IDs()) == 0 {
		t.Fatal("catalog is empty")
	}

	room, err := catalog.Load("sealed-chamber")
	if err != nil {
		t.Fatalf("Load(sealed-chamber) error: %v", err)
	}
	if room.Width != 11 || room.Height != 8 {
		t.Errorf("dimensions %dx%d, want 11x8", room.Width, room.Height)
	}
	if len(room.Spawns) != 4 {
		t.Errorf("spawn count = %d, want 4", len(room.Spawns))
	}
}

func TestLoadUnknownRoom(t *testing.T) {
	catalog, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}
	_, err = catalog.Load("no-such-room")
	if !errors.Is(err, dungeon.ErrFixedRoomNotFound) {
		t.Errorf("error = %v, want ErrFixedRoomNotFound", err)
	}
}

func TestConvertValidation(t *testing.T) {
	tests := []struct {
		name string
		room roomFile
	}{
		{
			name: "ragged rows",
			room: roomFile{ID: "r", Rows: []string{"####", "##"}},
		},
		{
			name: "empty layout",
			room: roomFile{ID: "r"},
		},
		{
			name: "unknown spawn kind",
			room: roomFile{
				ID:     "r",
				Rows:   []string{"...", "..."},
				Spawns: []spawnFile{{Kind: "boss", X: 0, Y: 0}},
			},
		},
		{
			name: "spawn out of bounds",
			room: roomFile{
				ID:     "r",
				Rows:   []string{"...", "..."},
				Spawns: []spawnFile{{Kind: "item", X: 3, Y: 0}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := convert(tt.room); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestConvertSpawnKinds(t *testing.T) {
	room, err := convert(roomFile{
		ID:   "r",
		Rows: []string{"...", "..."},
		Spawns: []spawnFile{
			{Kind: "stairs", X: 2, Y: 1},
			{Kind: "enemy", X: 0, Y: 0, EntityID: "slime"},
		},
	})
	if err != nil {
		t.Fatalf("convert() error: %v", err)
	}
	if room.Spawns[0].Kind != dungeon.SpawnStairs {
		t.Errorf("kind = %v, want stairs", room.Spawns[0].Kind)
	}
	if room.Spawns[1].EntityID != "slime" {
		t.Errorf("entity ID = %q, want slime", room.Spawns[1].EntityID)
	}
}
