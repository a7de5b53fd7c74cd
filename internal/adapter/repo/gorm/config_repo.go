package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"verdant/internal/adapter/repo/gorm/model"
	"verdant/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const configStateKey = "global"

type ConfigRepo struct {
	db *gorm.DB
}

func NewConfigRepo(db *gorm.DB) ConfigRepo {
	return ConfigRepo{db: db}
}

func (r ConfigRepo) Load(ctx context.Context) (ports.GameConfig, error) {
	var row model.GameConfigRecord
	err := getDBFromCtx(ctx, r.db).
		Where(&model.GameConfigRecord{StateKey: configStateKey}).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.GameConfig{}, ports.ErrNotFound
		}
		return ports.GameConfig{}, err
	}
	var cfg ports.GameConfig
	if err := json.Unmarshal(row.Doc, &cfg); err != nil {
		return ports.GameConfig{}, err
	}
	return cfg, nil
}

func (r ConfigRepo) Save(ctx context.Context, cfg ports.GameConfig) error {
	doc, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	row := model.GameConfigRecord{
		StateKey:  configStateKey,
		Doc:       doc,
		UpdatedAt: time.Now(),
	}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "state_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"doc", "updated_at"}),
	}).Create(&row).Error
}
