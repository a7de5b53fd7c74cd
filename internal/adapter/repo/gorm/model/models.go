package model

import "time"

// ItemRecord holds one catalog entry as a JSON document. Position keeps
// the catalog's declaration order stable across reloads.
type ItemRecord struct {
	ItemID    string `gorm:"primaryKey"`
	Position  int32
	Doc       []byte
	UpdatedAt time.Time
}

func (ItemRecord) TableName() string { return "item_records" }

// GameMap is the whole grid as one JSON document keyed by a singleton
// state key.
type GameMap struct {
	StateKey  string `gorm:"primaryKey"`
	Doc       []byte
	UpdatedAt time.Time
}

func (GameMap) TableName() string { return "game_maps" }

type ShopRecord struct {
	Name      string `gorm:"primaryKey"`
	Doc       []byte
	UpdatedAt time.Time
}

func (ShopRecord) TableName() string { return "shop_records" }

type GameConfigRecord struct {
	StateKey  string `gorm:"primaryKey"`
	Doc       []byte
	UpdatedAt time.Time
}

func (GameConfigRecord) TableName() string { return "game_configs" }

type CalendarState struct {
	StateKey  string `gorm:"primaryKey"`
	Minute    float64
	Hour      int32
	Day       int32
	SeasonIdx int32
	Year      int32
	TimeScale float64
	UpdatedAt time.Time
}

func (CalendarState) TableName() string { return "calendar_states" }
