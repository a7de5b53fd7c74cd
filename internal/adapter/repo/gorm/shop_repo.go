package gormrepo

import (
	"context"
	"encoding/json"
	"time"

	"verdant/internal/adapter/repo/gorm/model"
	"verdant/internal/app/ports"
	"verdant/internal/domain/economy"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShopRepo struct {
	db *gorm.DB
}

func NewShopRepo(db *gorm.DB) ShopRepo {
	return ShopRepo{db: db}
}

func (r ShopRepo) LoadAll(ctx context.Context) ([]economy.ShopState, error) {
	var rows []model.ShopRecord
	err := getDBFromCtx(ctx, r.db).
		Order("name asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}
	out := make([]economy.ShopState, 0, len(rows))
	for _, row := range rows {
		var st economy.ShopState
		if err := json.Unmarshal(row.Doc, &st); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

func (r ShopRepo) Save(ctx context.Context, state economy.ShopState) error {
	doc, err := json.Marshal(state)
	if err != nil {
		return err
	}
	row := model.ShopRecord{
		Name:      state.Name,
		Doc:       doc,
		UpdatedAt: time.Now(),
	}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"doc", "updated_at"}),
	}).Create(&row).Error
}
