package gamedata

// TrapDef defines a trap type loaded from JSON.
type TrapDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "spike-trap")
	Name        string `json:"name"`        // Display name
	Visible     bool   `json:"visible"`     // Whether the trap starts revealed
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency
}

// TrapsFile represents the structure of traps.json.
type TrapsFile struct {
	Traps []TrapDef `json:"traps"`
}

// LoadTraps loads trap definitions from the embedded traps.json file.
func LoadTraps() ([]TrapDef, error) {
	file, err := Load[TrapsFile]("traps.json")
	if err != nil {
		return nil, err
	}
	return file.Traps, nil
}
