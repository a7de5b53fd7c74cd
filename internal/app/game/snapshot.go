package game

import (
	"verdant/internal/domain/actor"
	"verdant/internal/domain/inventory"
	"verdant/internal/domain/world"
)

// TileView is one visible tile in camera space.
type TileView struct {
	TX       int           `json:"tx"`
	TY       int           `json:"ty"`
	Terrain  world.Terrain `json:"terrain"`
	Walkable bool          `json:"walkable"`
}

type ObjectView struct {
	ID   string           `json:"id"`
	Kind world.ObjectKind `json:"kind"`
	TX   int              `json:"tx"`
	TY   int              `json:"ty"`
}

type CropView struct {
	Type    string  `json:"type"`
	TX      int     `json:"tx"`
	TY      int     `json:"ty"`
	Stage   float64 `json:"stage"`
	Mature  bool    `json:"mature"`
	Watered bool    `json:"watered"`
}

type ActorView struct {
	Name      string          `json:"name"`
	Kind      string          `json:"kind"`
	X         float64         `json:"x"`
	Y         float64         `json:"y"`
	Direction actor.Direction `json:"direction"`
	Moving    bool            `json:"moving"`
	Frame     int             `json:"frame"`
	Talking   bool            `json:"talking,omitempty"`
}

type CalendarView struct {
	Minute    int          `json:"minute"`
	Hour      int          `json:"hour"`
	Day       int          `json:"day"`
	Season    world.Season `json:"season"`
	Year      int          `json:"year"`
	TimeScale float64      `json:"time_scale"`
	Paused    bool         `json:"paused"`
}

type CameraView struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	ViewW float64 `json:"view_w"`
	ViewH float64 `json:"view_h"`
}

// ViewSnapshot is everything a renderer needs for one frame: the visible
// slice of the map plus every actor.
type ViewSnapshot struct {
	Calendar CalendarView  `json:"calendar"`
	Weather  world.Weather `json:"weather"`
	Camera   CameraView    `json:"camera"`
	Tiles    []TileView    `json:"tiles"`
	Objects  []ObjectView  `json:"objects"`
	Crops    []CropView    `json:"crops"`
	Actors   []ActorView   `json:"actors"`
}

type SkillView struct {
	Discipline actor.Discipline `json:"discipline"`
	Level      int              `json:"level"`
	XP         float64          `json:"xp"`
}

type BuffView struct {
	Name             string  `json:"name"`
	RemainingMinutes float64 `json:"remaining_minutes"`
}

// HudSnapshot is the player-facing status panel.
type HudSnapshot struct {
	Energy    float64          `json:"energy"`
	MaxEnergy float64          `json:"max_energy"`
	Money     int              `json:"money"`
	Calendar  CalendarView     `json:"calendar"`
	Weather   world.Weather    `json:"weather"`
	Selected  int              `json:"selected"`
	Slots     []inventory.Slot `json:"slots"`
	Skills    []SkillView      `json:"skills"`
	Buffs     []BuffView       `json:"buffs"`
}

func calendarView(c *world.Calendar) CalendarView {
	return CalendarView{
		Minute:    c.Minute(),
		Hour:      c.Hour(),
		Day:       c.Day(),
		Season:    c.Season(),
		Year:      c.Year(),
		TimeScale: c.TimeScale(),
		Paused:    c.Paused(),
	}
}

// View builds a render snapshot of the camera's visible region.
func (o *Orchestrator) View() ViewSnapshot {
	o.mu.Lock()
	defer o.mu.Unlock()

	st := o.State
	snap := ViewSnapshot{
		Calendar: calendarView(st.Calendar),
		Weather:  st.Weather,
	}
	if st.Camera != nil {
		snap.Camera = CameraView{X: st.Camera.X, Y: st.Camera.Y, ViewW: st.Camera.ViewW, ViewH: st.Camera.ViewH}
		minTX, minTY, maxTX, maxTY := st.Camera.VisibleTileBounds(st.World)
		for ty := minTY; ty <= maxTY; ty++ {
			for tx := minTX; tx <= maxTX; tx++ {
				tile, ok := st.World.TileAt(tx, ty)
				if !ok {
					continue
				}
				snap.Tiles = append(snap.Tiles, TileView{TX: tx, TY: ty, Terrain: tile.Terrain, Walkable: tile.Walkable})
			}
		}
	}
	for _, obj := range st.World.Objects() {
		snap.Objects = append(snap.Objects, ObjectView{ID: obj.ID, Kind: obj.Kind, TX: obj.TX, TY: obj.TY})
	}
	for _, crop := range st.World.Crops() {
		snap.Crops = append(snap.Crops, CropView{
			Type:    crop.Type,
			TX:      crop.TX,
			TY:      crop.TY,
			Stage:   crop.Stage,
			Mature:  crop.Mature(),
			Watered: crop.Watered,
		})
	}
	snap.Actors = append(snap.Actors, ActorView{
		Name:      st.Player.Name,
		Kind:      "player",
		X:         st.Player.Body.X,
		Y:         st.Player.Body.Y,
		Direction: st.Player.Body.Direction,
		Moving:    st.Player.Body.Moving,
		Frame:     st.Player.Body.Frame,
	})
	for _, npc := range st.NPCs {
		av := ActorView{
			Name:      npc.Name,
			Kind:      "npc",
			X:         npc.Body.X,
			Y:         npc.Body.Y,
			Direction: npc.Body.Direction,
			Moving:    npc.Body.Moving,
			Frame:     npc.Body.Frame,
		}
		av.Talking = npc.Dialogue == actor.DialogueTalking
		snap.Actors = append(snap.Actors, av)
	}
	return snap
}

// Status builds the HUD snapshot for the player.
func (o *Orchestrator) Status() HudSnapshot {
	o.mu.Lock()
	defer o.mu.Unlock()

	p := o.State.Player
	hud := HudSnapshot{
		Energy:    p.Energy,
		MaxEnergy: p.MaxEnergy,
		Money:     p.Money,
		Calendar:  calendarView(o.State.Calendar),
		Weather:   o.State.Weather,
		Selected:  p.Inventory.Selected(),
		Slots:     p.Inventory.Slots(),
	}
	for _, d := range []actor.Discipline{actor.SkillFarming, actor.SkillMining, actor.SkillForaging, actor.SkillFishing} {
		sk := p.Skills[d]
		hud.Skills = append(hud.Skills, SkillView{Discipline: d, Level: sk.Level, XP: sk.XP})
	}
	for _, b := range p.Buffs {
		hud.Buffs = append(hud.Buffs, BuffView{Name: b.Name, RemainingMinutes: b.RemainingMinutes})
	}
	return hud
}
