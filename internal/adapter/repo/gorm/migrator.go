package gormrepo

import (
	"context"
	"fmt"

	"verdant/internal/adapter/repo/gorm/model"

	"gorm.io/gorm"
)

// ApplyMigrations brings the schema up to date. The tables are plain
// key/document rows, so gorm's migrator covers every change we make.
func ApplyMigrations(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&model.ItemRecord{},
		&model.GameMap{},
		&model.ShopRecord{},
		&model.GameConfigRecord{},
		&model.CalendarState{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
