package world

import (
	"errors"
	"math"
	"sort"

	"github.com/google/uuid"
)

type tileKey struct {
	X int
	Y int
}

// Grid owns the terrain tiles plus the objects and crops placed on them.
// At most one object and one crop may occupy a tile.
type Grid struct {
	Width  int
	Height int

	tiles   []Tile
	objects map[tileKey]*WorldObject
	crops   map[tileKey]*Crop
}

func NewGrid(width, height int) *Grid {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	g := &Grid{
		Width:   width,
		Height:  height,
		tiles:   make([]Tile, width*height),
		objects: make(map[tileKey]*WorldObject),
		crops:   make(map[tileKey]*Crop),
	}
	for i := range g.tiles {
		g.tiles[i] = defaultTile(TerrainGrass)
	}
	return g
}

func (g *Grid) InBounds(tx, ty int) bool {
	return tx >= 0 && tx < g.Width && ty >= 0 && ty < g.Height
}

// TileIndex floors a continuous world position to tile coordinates.
func (g *Grid) TileIndex(wx, wy float64) (int, int) {
	return int(math.Floor(wx / TileSize)), int(math.Floor(wy / TileSize))
}

func (g *Grid) TileAt(tx, ty int) (Tile, bool) {
	if !g.InBounds(tx, ty) {
		return Tile{}, false
	}
	return g.tiles[ty*g.Width+tx], true
}

func (g *Grid) SetTerrain(tx, ty int, terrain Terrain) bool {
	if !g.InBounds(tx, ty) {
		return false
	}
	tile := defaultTile(terrain)
	if _, occupied := g.objects[tileKey{tx, ty}]; occupied {
		tile.Walkable = false
	}
	g.tiles[ty*g.Width+tx] = tile
	return true
}

// IsWalkable reports collision for a continuous position. Out-of-bounds is
// never walkable.
func (g *Grid) IsWalkable(wx, wy float64) bool {
	tx, ty := g.TileIndex(wx, wy)
	tile, ok := g.TileAt(tx, ty)
	if !ok {
		return false
	}
	return tile.Walkable
}

func (g *Grid) PlaceObject(kind ObjectKind, tx, ty int) (WorldObject, bool) {
	if !g.InBounds(tx, ty) {
		return WorldObject{}, false
	}
	key := tileKey{tx, ty}
	if _, occupied := g.objects[key]; occupied {
		return WorldObject{}, false
	}
	obj := &WorldObject{ID: uuid.NewString(), Kind: kind, TX: tx, TY: ty}
	g.objects[key] = obj
	g.tiles[ty*g.Width+tx].Walkable = false
	return *obj, true
}

func (g *Grid) ObjectAt(tx, ty int) (WorldObject, bool) {
	obj, ok := g.objects[tileKey{tx, ty}]
	if !ok {
		return WorldObject{}, false
	}
	return *obj, true
}

// RemoveObject clears the object from a tile and restores the terrain's
// default walkability.
func (g *Grid) RemoveObject(tx, ty int) (WorldObject, bool) {
	key := tileKey{tx, ty}
	obj, ok := g.objects[key]
	if !ok {
		return WorldObject{}, false
	}
	delete(g.objects, key)
	tile := g.tiles[ty*g.Width+tx]
	g.tiles[ty*g.Width+tx].Walkable = defaultTile(tile.Terrain).Walkable
	return *obj, true
}

func (g *Grid) Objects() []WorldObject {
	out := make([]WorldObject, 0, len(g.objects))
	for _, obj := range g.objects {
		out = append(out, *obj)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TY != out[j].TY {
			return out[i].TY < out[j].TY
		}
		return out[i].TX < out[j].TX
	})
	return out
}

func (g *Grid) CropAt(tx, ty int) (Crop, bool) {
	crop, ok := g.crops[tileKey{tx, ty}]
	if !ok {
		return Crop{}, false
	}
	return *crop, true
}

func (g *Grid) Crops() []Crop {
	out := make([]Crop, 0, len(g.crops))
	for _, crop := range g.crops {
		out = append(out, *crop)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TY != out[j].TY {
			return out[i].TY < out[j].TY
		}
		return out[i].TX < out[j].TX
	})
	return out
}

// EnergySpender is the slice of an actor that farming operations charge.
type EnergySpender interface {
	SpendEnergy(cost float64) bool
}

// FarmActor additionally receives harvested and cleared items. GainItem is
// best effort, a full inventory drops the yield.
type FarmActor interface {
	EnergySpender
	GainItem(itemID string)
}

// PlantSpec carries the catalog facts planting needs: which crop the seed
// grows into and which seasons allow it.
type PlantSpec struct {
	CropID  string
	Seasons []Season
}

func (ps PlantSpec) growsIn(season Season) bool {
	if len(ps.Seasons) == 0 {
		return true
	}
	for _, s := range ps.Seasons {
		if s == season {
			return true
		}
	}
	return false
}

// Plant creates a crop at stage zero, unwatered. It fails without side
// effects when the tile is out of bounds, not tilled soil, already occupied
// by a crop, or the season is wrong.
func (g *Grid) Plant(spec PlantSpec, season Season, wx, wy float64) bool {
	tx, ty := g.TileIndex(wx, wy)
	tile, ok := g.TileAt(tx, ty)
	if !ok || !tile.Tillable() {
		return false
	}
	key := tileKey{tx, ty}
	if _, occupied := g.crops[key]; occupied {
		return false
	}
	if !spec.growsIn(season) {
		return false
	}
	g.crops[key] = &Crop{ID: uuid.NewString(), Type: spec.CropID, TX: tx, TY: ty}
	return true
}

func (g *Grid) Water(wx, wy float64, actor EnergySpender) bool {
	tx, ty := g.TileIndex(wx, wy)
	crop, ok := g.crops[tileKey{tx, ty}]
	if !ok {
		return false
	}
	if !actor.SpendEnergy(WaterEnergyCost) {
		return false
	}
	crop.Water()
	return true
}

// Harvest removes a mature crop and yields exactly one unit of its item to
// the actor. Removal and yield happen together or not at all.
func (g *Grid) Harvest(wx, wy float64, actor FarmActor) bool {
	tx, ty := g.TileIndex(wx, wy)
	key := tileKey{tx, ty}
	crop, ok := g.crops[key]
	if !ok || !crop.Mature() {
		return false
	}
	if !actor.SpendEnergy(HarvestEnergyCost) {
		return false
	}
	delete(g.crops, key)
	actor.GainItem(crop.Type)
	return true
}

// Till turns a grass tile into plantable dirt. Tool energy is the caller's
// concern.
func (g *Grid) Till(wx, wy float64) bool {
	tx, ty := g.TileIndex(wx, wy)
	tile, ok := g.TileAt(tx, ty)
	if !ok || tile.Terrain != TerrainGrass {
		return false
	}
	key := tileKey{tx, ty}
	if _, occupied := g.objects[key]; occupied {
		return false
	}
	if _, occupied := g.crops[key]; occupied {
		return false
	}
	g.tiles[ty*g.Width+tx] = defaultTile(TerrainDirt)
	return true
}

// Update advances growth for every watered crop.
func (g *Grid) Update(dt float64) {
	for _, crop := range g.crops {
		crop.Grow(dt)
	}
}

// StartDay applies the daily rollover to every crop.
func (g *Grid) StartDay() {
	for _, crop := range g.crops {
		crop.StartDay()
	}
}

// WaterAll waters every crop at no energy cost. Rain does this.
func (g *Grid) WaterAll() {
	for _, crop := range g.crops {
		crop.Water()
	}
}

// MapState is the persisted form of a Grid.
type MapState struct {
	Width   int           `json:"width"`
	Height  int           `json:"height"`
	Tiles   []Tile        `json:"tiles"`
	Objects []WorldObject `json:"objects"`
	Crops   []Crop        `json:"crops"`
}

var ErrMalformedMap = errors.New("malformed map state")

func (g *Grid) State() MapState {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return MapState{
		Width:   g.Width,
		Height:  g.Height,
		Tiles:   tiles,
		Objects: g.Objects(),
		Crops:   g.Crops(),
	}
}

func GridFromState(st MapState) (*Grid, error) {
	if st.Width <= 0 || st.Height <= 0 || len(st.Tiles) != st.Width*st.Height {
		return nil, ErrMalformedMap
	}
	g := &Grid{
		Width:   st.Width,
		Height:  st.Height,
		tiles:   make([]Tile, len(st.Tiles)),
		objects: make(map[tileKey]*WorldObject),
		crops:   make(map[tileKey]*Crop),
	}
	copy(g.tiles, st.Tiles)
	for _, obj := range st.Objects {
		if !g.InBounds(obj.TX, obj.TY) {
			return nil, ErrMalformedMap
		}
		o := obj
		g.objects[tileKey{obj.TX, obj.TY}] = &o
		g.tiles[obj.TY*g.Width+obj.TX].Walkable = false
	}
	for _, crop := range st.Crops {
		if !g.InBounds(crop.TX, crop.TY) {
			return nil, ErrMalformedMap
		}
		c := crop
		g.crops[tileKey{crop.TX, crop.TY}] = &c
	}
	return g, nil
}
