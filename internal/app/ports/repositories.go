package ports

import (
	"context"

	"verdant/internal/domain/economy"
	"verdant/internal/domain/item"
	"verdant/internal/domain/world"
)

// CatalogRepository persists the item definitions. Load returns
// ErrNotFound when no records exist yet, callers then generate and save
// the defaults.
type CatalogRepository interface {
	Load(ctx context.Context) ([]item.Item, error)
	Save(ctx context.Context, items []item.Item) error
}

type MapRepository interface {
	Load(ctx context.Context) (world.MapState, error)
	Save(ctx context.Context, state world.MapState) error
}

type ShopRepository interface {
	LoadAll(ctx context.Context) ([]economy.ShopState, error)
	Save(ctx context.Context, state economy.ShopState) error
}

type CalendarRepository interface {
	Load(ctx context.Context) (world.CalendarState, error)
	Save(ctx context.Context, state world.CalendarState) error
}

// GameConfig is the logical schema of the persisted configuration file.
// Display and audio fields belong to excluded layers but travel with the
// record.
type GameConfig struct {
	DisplayWidth     int     `json:"display_width"`
	DisplayHeight    int     `json:"display_height"`
	MusicVolume      float64 `json:"music_volume"`
	SfxVolume        float64 `json:"sfx_volume"`
	DayLengthMinutes int     `json:"day_length_minutes"`
	SeasonDays       int     `json:"season_days"`
	UseSimpleAI      bool    `json:"use_simple_ai"`
}

func DefaultGameConfig() GameConfig {
	return GameConfig{
		DisplayWidth:     800,
		DisplayHeight:    600,
		MusicVolume:      0.7,
		SfxVolume:        0.8,
		DayLengthMinutes: 15,
		SeasonDays:       28,
		UseSimpleAI:      true,
	}
}

type ConfigRepository interface {
	Load(ctx context.Context) (GameConfig, error)
	Save(ctx context.Context, cfg GameConfig) error
}
