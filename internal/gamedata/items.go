package gamedata

// ItemDef defines an item type loaded from JSON.
type ItemDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "oran-berry")
	Name        string `json:"name"`        // Display name
	Glyph       string `json:"glyph"`       // Single character for rendering
	Category    string `json:"category"`    // Broad category: berry, seed, orb, coin
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}
