package actor

import (
	"verdant/internal/domain/inventory"
	"verdant/internal/domain/item"
)

type Discipline string

const (
	SkillFarming  Discipline = "farming"
	SkillMining   Discipline = "mining"
	SkillForaging Discipline = "foraging"
	SkillFishing  Discipline = "fishing"
)

type Skill struct {
	Level int     `json:"level"`
	XP    float64 `json:"xp"`
}

type Buff struct {
	Name             string  `json:"name"`
	RemainingMinutes float64 `json:"remaining_minutes"`
}

// PlayerState composes a body with the player-only resources: energy,
// money, inventory, skills, and active food buffs.
type PlayerState struct {
	Name      string
	Body      MovableBody
	Energy    float64
	MaxEnergy float64
	Money     int
	Inventory *inventory.Inventory
	Skills    map[Discipline]Skill
	Buffs     []Buff
}

func NewPlayer(name string, x, y float64) *PlayerState {
	return &PlayerState{
		Name:      name,
		Body:      NewBody(x, y, PlayerSpeed),
		Energy:    DefaultMaxEnergy,
		MaxEnergy: DefaultMaxEnergy,
		Money:     StartingMoney,
		Inventory: inventory.New(inventory.DefaultSize),
		Skills: map[Discipline]Skill{
			SkillFarming:  {},
			SkillMining:   {},
			SkillForaging: {},
			SkillFishing:  {},
		},
	}
}

// Move applies a direction vector and charges walking energy.
func (p *PlayerState) Move(dx, dy, dt float64, walkable WalkableFunc) {
	p.Body.Move(dx, dy, dt, walkable)
	if dx != 0 || dy != 0 {
		p.drainEnergy(MoveEnergyPerSecond * dt)
	}
}

func (p *PlayerState) drainEnergy(amount float64) {
	p.Energy -= amount
	if p.Energy < 0 {
		p.Energy = 0
	}
}

// SpendEnergy deducts a cost or refuses entirely.
func (p *PlayerState) SpendEnergy(cost float64) bool {
	if p.Energy < cost {
		return false
	}
	p.Energy -= cost
	return true
}

func (p *PlayerState) RestoreEnergy(amount float64) {
	if amount <= 0 {
		return
	}
	p.Energy += amount
	if p.Energy > p.MaxEnergy {
		p.Energy = p.MaxEnergy
	}
}

func (p *PlayerState) AddMoney(amount int) {
	if amount > 0 {
		p.Money += amount
	}
}

func (p *PlayerState) SpendMoney(amount int) bool {
	if amount < 0 || p.Money < amount {
		return false
	}
	p.Money -= amount
	return true
}

// AddSkillXP accumulates experience and levels up every XPPerLevel,
// clamped at MaxSkillLevel.
func (p *PlayerState) AddSkillXP(d Discipline, xp float64) {
	if xp <= 0 {
		return
	}
	s := p.Skills[d]
	if s.Level >= MaxSkillLevel {
		return
	}
	s.XP += xp
	for s.XP >= XPPerLevel && s.Level < MaxSkillLevel {
		s.XP -= XPPerLevel
		s.Level++
	}
	if s.Level >= MaxSkillLevel {
		s.Level = MaxSkillLevel
		s.XP = 0
	}
	p.Skills[d] = s
}

// Eat consumes one unit of an edible item from the selected slot and
// restores energy. A food buff is recorded with its duration.
func (p *PlayerState) Eat(def item.Item) bool {
	energy, _, ok := def.Edible()
	if !ok {
		return false
	}
	slot := p.Inventory.SelectedSlot()
	if slot.Empty() || slot.ItemID != def.ID {
		return false
	}
	if p.Inventory.Remove(def.ID, slot.Quality, 1) != 1 {
		return false
	}
	p.RestoreEnergy(energy)
	if def.Food != nil && def.Food.Buff != "" {
		p.Buffs = append(p.Buffs, Buff{Name: def.Food.Buff, RemainingMinutes: float64(def.Food.BuffMinutes)})
	}
	return true
}

// TickBuffs counts down active buffs by elapsed game minutes.
func (p *PlayerState) TickBuffs(gameMinutes float64) {
	if gameMinutes <= 0 || len(p.Buffs) == 0 {
		return
	}
	kept := p.Buffs[:0]
	for _, b := range p.Buffs {
		b.RemainingMinutes -= gameMinutes
		if b.RemainingMinutes > 0 {
			kept = append(kept, b)
		}
	}
	p.Buffs = kept
}
