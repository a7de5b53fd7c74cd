package world

import "testing"

type stubActor struct {
	energy float64
	gained []string
}

func (a *stubActor) SpendEnergy(cost float64) bool {
	if a.energy < cost {
		return false
	}
	a.energy -= cost
	return true
}

func (a *stubActor) GainItem(itemID string) {
	a.gained = append(a.gained, itemID)
}

func dirtGrid(w, h int) *Grid {
	g := NewGrid(w, h)
	for ty := 0; ty < h; ty++ {
		for tx := 0; tx < w; tx++ {
			g.SetTerrain(tx, ty, TerrainDirt)
		}
	}
	return g
}

func TestIsWalkableOutOfBounds(t *testing.T) {
	g := NewGrid(4, 4)
	if g.IsWalkable(-1, 10) {
		t.Fatalf("expected out-of-bounds to be unwalkable")
	}
	if g.IsWalkable(float64(4*TileSize), 10) {
		t.Fatalf("expected x past edge to be unwalkable")
	}
	if !g.IsWalkable(10, 10) {
		t.Fatalf("expected grass tile to be walkable")
	}
}

func TestObjectsBlockWalkability(t *testing.T) {
	g := NewGrid(4, 4)
	obj, ok := g.PlaceObject(ObjectTree, 1, 1)
	if !ok {
		t.Fatalf("expected placement to succeed")
	}
	if g.IsWalkable(float64(TileSize)+5, float64(TileSize)+5) {
		t.Fatalf("expected object tile to be unwalkable")
	}
	if _, ok := g.PlaceObject(ObjectRock, 1, 1); ok {
		t.Fatalf("expected second object on same tile to fail")
	}
	removed, ok := g.RemoveObject(1, 1)
	if !ok || removed.ID != obj.ID {
		t.Fatalf("expected to remove placed object, got %+v ok=%v", removed, ok)
	}
	if !g.IsWalkable(float64(TileSize)+5, float64(TileSize)+5) {
		t.Fatalf("expected cleared tile to be walkable again")
	}
}

func TestPlantRequiresDirtSeasonAndVacancy(t *testing.T) {
	g := dirtGrid(4, 4)
	spec := PlantSpec{CropID: "crop_turnip", Seasons: []Season{SeasonSpring}}

	if g.Plant(spec, SeasonWinter, 10, 10) {
		t.Fatalf("expected wrong-season plant to fail")
	}
	if !g.Plant(spec, SeasonSpring, 10, 10) {
		t.Fatalf("expected plant to succeed")
	}
	crop, ok := g.CropAt(0, 0)
	if !ok {
		t.Fatalf("expected crop at tile 0,0")
	}
	if crop.Stage != 0 || crop.Watered {
		t.Fatalf("expected fresh crop at stage 0 unwatered, got %+v", crop)
	}
	if g.Plant(spec, SeasonSpring, 12, 12) {
		t.Fatalf("expected plant on occupied tile to fail")
	}
	again, _ := g.CropAt(0, 0)
	if again.ID != crop.ID {
		t.Fatalf("expected existing crop untouched")
	}

	g.SetTerrain(2, 2, TerrainGrass)
	if g.Plant(spec, SeasonSpring, float64(2*TileSize), float64(2*TileSize)) {
		t.Fatalf("expected plant on grass to fail")
	}
	if g.Plant(spec, SeasonSpring, -5, -5) {
		t.Fatalf("expected out-of-bounds plant to fail")
	}
}

func TestCropLifecycleMonotonicity(t *testing.T) {
	g := dirtGrid(2, 2)
	spec := PlantSpec{CropID: "crop_turnip", Seasons: []Season{SeasonSpring}}
	if !g.Plant(spec, SeasonSpring, 5, 5) {
		t.Fatalf("expected plant to succeed")
	}
	actor := &stubActor{energy: 100}

	g.Update(10)
	if crop, _ := g.CropAt(0, 0); crop.Stage != 0 {
		t.Fatalf("expected unwatered crop to hold stage 0, got %f", crop.Stage)
	}
	if g.Harvest(5, 5, actor) {
		t.Fatalf("expected harvest of immature crop to fail")
	}

	if !g.Water(5, 5, actor) {
		t.Fatalf("expected watering to succeed")
	}
	if actor.energy != 100-WaterEnergyCost {
		t.Fatalf("expected water energy deducted, got %f", actor.energy)
	}

	prev := 0.0
	for i := 0; i < 100; i++ {
		g.Update(1)
		crop, _ := g.CropAt(0, 0)
		if crop.Stage < prev {
			t.Fatalf("expected growth to be non-decreasing, got %f after %f", crop.Stage, prev)
		}
		if crop.Stage > MatureStage {
			t.Fatalf("expected growth clamped at %f, got %f", MatureStage, crop.Stage)
		}
		prev = crop.Stage
	}
	crop, _ := g.CropAt(0, 0)
	if !crop.Mature() {
		t.Fatalf("expected crop mature after long watered growth, got %f", crop.Stage)
	}

	if !g.Harvest(5, 5, actor) {
		t.Fatalf("expected harvest of mature crop to succeed")
	}
	if len(actor.gained) != 1 || actor.gained[0] != "crop_turnip" {
		t.Fatalf("expected one crop_turnip yielded, got %v", actor.gained)
	}
	if _, ok := g.CropAt(0, 0); ok {
		t.Fatalf("expected crop removed after harvest")
	}
}

func TestWaterFailsWithoutCropOrEnergy(t *testing.T) {
	g := dirtGrid(2, 2)
	actor := &stubActor{energy: 100}
	if g.Water(5, 5, actor) {
		t.Fatalf("expected watering empty tile to fail")
	}
	g.Plant(PlantSpec{CropID: "crop_turnip"}, SeasonSpring, 5, 5)
	broke := &stubActor{energy: 0}
	if g.Water(5, 5, broke) {
		t.Fatalf("expected watering without energy to fail")
	}
	crop, _ := g.CropAt(0, 0)
	if crop.Watered {
		t.Fatalf("expected crop to stay dry after failed water")
	}
}

func TestHarvestWithoutEnergyLeavesCrop(t *testing.T) {
	g := dirtGrid(2, 2)
	g.Plant(PlantSpec{CropID: "crop_turnip"}, SeasonSpring, 5, 5)
	rich := &stubActor{energy: 100}
	g.Water(5, 5, rich)
	g.Update(100)

	broke := &stubActor{}
	if g.Harvest(5, 5, broke) {
		t.Fatalf("expected harvest without energy to fail")
	}
	if _, ok := g.CropAt(0, 0); !ok {
		t.Fatalf("expected crop to survive failed harvest")
	}
	if len(broke.gained) != 0 {
		t.Fatalf("expected no yield on failed harvest")
	}
}

func TestStartDayRollover(t *testing.T) {
	g := dirtGrid(2, 2)
	g.Plant(PlantSpec{CropID: "crop_turnip"}, SeasonSpring, 5, 5)
	actor := &stubActor{energy: 100}
	g.Water(5, 5, actor)

	g.StartDay()
	crop, _ := g.CropAt(0, 0)
	if crop.Watered {
		t.Fatalf("expected crop to dry out overnight")
	}
	if crop.DaysGrowing != 1 {
		t.Fatalf("expected one banked growth day, got %d", crop.DaysGrowing)
	}

	g.StartDay()
	crop, _ = g.CropAt(0, 0)
	if crop.DaysSinceWatered != 1 {
		t.Fatalf("expected dry day counted, got %d", crop.DaysSinceWatered)
	}
}

func TestTill(t *testing.T) {
	g := NewGrid(3, 3)
	if !g.Till(5, 5) {
		t.Fatalf("expected tilling grass to succeed")
	}
	tile, _ := g.TileAt(0, 0)
	if tile.Terrain != TerrainDirt {
		t.Fatalf("expected dirt after till, got %s", tile.Terrain)
	}
	if g.Till(5, 5) {
		t.Fatalf("expected tilling dirt again to fail")
	}
	g.PlaceObject(ObjectRock, 1, 0)
	if g.Till(float64(TileSize)+1, 1) {
		t.Fatalf("expected tilling under object to fail")
	}
}

func TestMapStateRoundTrip(t *testing.T) {
	g := dirtGrid(4, 3)
	g.PlaceObject(ObjectTree, 3, 2)
	g.Plant(PlantSpec{CropID: "crop_potato"}, SeasonSpring, 5, 5)
	actor := &stubActor{energy: 10}
	g.Water(5, 5, actor)

	st := g.State()
	restored, err := GridFromState(st)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.Width != 4 || restored.Height != 3 {
		t.Fatalf("expected 4x3 grid, got %dx%d", restored.Width, restored.Height)
	}
	crop, ok := restored.CropAt(0, 0)
	if !ok || crop.Type != "crop_potato" || !crop.Watered {
		t.Fatalf("expected watered potato crop restored, got %+v ok=%v", crop, ok)
	}
	if _, ok := restored.ObjectAt(3, 2); !ok {
		t.Fatalf("expected object restored")
	}
	if restored.IsWalkable(float64(3*TileSize)+1, float64(2*TileSize)+1) {
		t.Fatalf("expected restored object tile to be unwalkable")
	}

	if _, err := GridFromState(MapState{Width: 2, Height: 2}); err == nil {
		t.Fatalf("expected malformed state to be rejected")
	}
}

func TestObjectClearToolAndYield(t *testing.T) {
	cases := []struct {
		kind  ObjectKind
		tool  string
		yield string
	}{
		{ObjectTree, "axe", "wood"},
		{ObjectStump, "axe", "wood"},
		{ObjectRock, "pickaxe", "stone"},
		{ObjectBush, "scythe", "fiber"},
	}
	for _, c := range cases {
		if got := c.kind.ClearTool(); got != c.tool {
			t.Fatalf("%s: expected tool %s, got %s", c.kind, c.tool, got)
		}
		if got := c.kind.YieldItem(); got != c.yield {
			t.Fatalf("%s: expected yield %s, got %s", c.kind, c.yield, got)
		}
	}
	if ObjectKind("fence").ClearTool() != "" {
		t.Fatalf("expected unknown kind to have no clearing tool")
	}
}
