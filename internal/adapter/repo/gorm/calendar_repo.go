package gormrepo

import (
	"context"
	"errors"
	"time"

	"verdant/internal/adapter/repo/gorm/model"
	"verdant/internal/app/ports"
	"verdant/internal/domain/world"

	"gorm.io/gorm"
)

const calendarStateKey = "global"

type CalendarRepo struct {
	db *gorm.DB
}

func NewCalendarRepo(db *gorm.DB) CalendarRepo {
	return CalendarRepo{db: db}
}

func (r CalendarRepo) Load(ctx context.Context) (world.CalendarState, error) {
	var row model.CalendarState
	err := getDBFromCtx(ctx, r.db).
		Where(&model.CalendarState{StateKey: calendarStateKey}).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return world.CalendarState{}, ports.ErrNotFound
		}
		return world.CalendarState{}, err
	}
	return world.CalendarState{
		Minute:    row.Minute,
		Hour:      int(row.Hour),
		Day:       int(row.Day),
		SeasonIdx: int(row.SeasonIdx),
		Year:      int(row.Year),
		TimeScale: row.TimeScale,
	}, nil
}

func (r CalendarRepo) Save(ctx context.Context, state world.CalendarState) error {
	return getDBFromCtx(ctx, r.db).
		Where(&model.CalendarState{StateKey: calendarStateKey}).
		Assign(model.CalendarState{
			Minute:    state.Minute,
			Hour:      int32(state.Hour),
			Day:       int32(state.Day),
			SeasonIdx: int32(state.SeasonIdx),
			Year:      int32(state.Year),
			TimeScale: state.TimeScale,
			UpdatedAt: time.Now(),
		}).
		FirstOrCreate(&model.CalendarState{}).Error
}
