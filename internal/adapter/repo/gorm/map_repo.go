package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"verdant/internal/adapter/repo/gorm/model"
	"verdant/internal/app/ports"
	"verdant/internal/domain/world"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const mapStateKey = "global"

type MapRepo struct {
	db *gorm.DB
}

func NewMapRepo(db *gorm.DB) MapRepo {
	return MapRepo{db: db}
}

func (r MapRepo) Load(ctx context.Context) (world.MapState, error) {
	var row model.GameMap
	err := getDBFromCtx(ctx, r.db).
		Where(&model.GameMap{StateKey: mapStateKey}).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return world.MapState{}, ports.ErrNotFound
		}
		return world.MapState{}, err
	}
	var st world.MapState
	if err := json.Unmarshal(row.Doc, &st); err != nil {
		return world.MapState{}, err
	}
	return st, nil
}

func (r MapRepo) Save(ctx context.Context, state world.MapState) error {
	doc, err := json.Marshal(state)
	if err != nil {
		return err
	}
	row := model.GameMap{
		StateKey:  mapStateKey,
		Doc:       doc,
		UpdatedAt: time.Now(),
	}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "state_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"doc", "updated_at"}),
	}).Create(&row).Error
}
