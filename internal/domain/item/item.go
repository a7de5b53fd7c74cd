package item

import "verdant/internal/domain/world"

type Category string

const (
	CategorySeed       Category = "seed"
	CategoryCrop       Category = "crop"
	CategoryTool       Category = "tool"
	CategoryFood       Category = "food"
	CategoryMaterial   Category = "material"
	CategoryFurniture  Category = "furniture"
	CategoryDecoration Category = "decoration"
	CategoryGift       Category = "gift"
)

type Quality string

const (
	QualityNormal  Quality = "normal"
	QualitySilver  Quality = "silver"
	QualityGold    Quality = "gold"
	QualityIridium Quality = "iridium"
)

// Multiplier returns the sell-price factor for a quality tier.
func (q Quality) Multiplier() float64 {
	switch q {
	case QualitySilver:
		return 1.25
	case QualityGold:
		return 1.5
	case QualityIridium:
		return 2.0
	default:
		return 1.0
	}
}

type SeedInfo struct {
	CropID     string         `json:"crop_id"`
	GrowDays   int            `json:"grow_days"`
	RegrowDays int            `json:"regrow_days,omitempty"`
	Seasons    []world.Season `json:"seasons"`
}

type CropInfo struct {
	SeedID     string         `json:"seed_id"`
	Energy     float64        `json:"energy"`
	Health     float64        `json:"health"`
	Regrows    bool           `json:"regrows"`
	RegrowDays int            `json:"regrow_days,omitempty"`
	Seasons    []world.Season `json:"seasons"`
}

type ToolInfo struct {
	Tier       int     `json:"tier"`
	EnergyCost float64 `json:"energy_cost"`
}

type FoodInfo struct {
	Energy      float64 `json:"energy"`
	Health      float64 `json:"health"`
	Buff        string  `json:"buff,omitempty"`
	BuffMinutes int     `json:"buff_minutes,omitempty"`
}

// Item is an immutable catalog definition. Exactly one of the category
// extensions is set, matching Category.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Value       int      `json:"value"`
	StackSize   int      `json:"stack_size"`

	Seed *SeedInfo `json:"seed,omitempty"`
	Crop *CropInfo `json:"crop,omitempty"`
	Tool *ToolInfo `json:"tool,omitempty"`
	Food *FoodInfo `json:"food,omitempty"`
}

// Edible reports whether consuming the item restores energy, and how much.
func (it Item) Edible() (energy, health float64, ok bool) {
	switch {
	case it.Food != nil:
		return it.Food.Energy, it.Food.Health, true
	case it.Crop != nil:
		return it.Crop.Energy, it.Crop.Health, true
	}
	return 0, 0, false
}
