package world

type Terrain string

const (
	TerrainGrass Terrain = "grass"
	TerrainDirt  Terrain = "dirt"
	TerrainSand  Terrain = "sand"
	TerrainWater Terrain = "water"
)

type Tile struct {
	Terrain  Terrain `json:"terrain"`
	Walkable bool    `json:"walkable"`
}

func defaultTile(terrain Terrain) Tile {
	return Tile{Terrain: terrain, Walkable: terrain != TerrainWater}
}

// Tillable reports whether a crop can be planted on this terrain.
func (t Tile) Tillable() bool {
	return t.Terrain == TerrainDirt
}
