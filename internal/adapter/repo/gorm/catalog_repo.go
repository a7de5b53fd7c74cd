package gormrepo

import (
	"context"
	"encoding/json"
	"time"

	"verdant/internal/adapter/repo/gorm/model"
	"verdant/internal/app/ports"
	"verdant/internal/domain/item"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CatalogRepo struct {
	db *gorm.DB
}

func NewCatalogRepo(db *gorm.DB) CatalogRepo {
	return CatalogRepo{db: db}
}

func (r CatalogRepo) Load(ctx context.Context) ([]item.Item, error) {
	var rows []model.ItemRecord
	err := getDBFromCtx(ctx, r.db).
		Order("position asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}
	out := make([]item.Item, 0, len(rows))
	for _, row := range rows {
		var it item.Item
		if err := json.Unmarshal(row.Doc, &it); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, nil
}

func (r CatalogRepo) Save(ctx context.Context, items []item.Item) error {
	db := getDBFromCtx(ctx, r.db)
	now := time.Now()
	for i, it := range items {
		doc, err := json.Marshal(it)
		if err != nil {
			return err
		}
		row := model.ItemRecord{
			ItemID:    it.ID,
			Position:  int32(i),
			Doc:       doc,
			UpdatedAt: now,
		}
		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"position", "doc", "updated_at"}),
		}).Create(&row).Error
		if err != nil {
			return err
		}
	}
	return nil
}
