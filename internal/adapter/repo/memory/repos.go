package memory

import (
	"context"

	"verdant/internal/app/ports"
	"verdant/internal/domain/economy"
	"verdant/internal/domain/item"
	"verdant/internal/domain/world"
)

type CatalogRepo struct {
	store *Store
}

func NewCatalogRepo(store *Store) CatalogRepo {
	return CatalogRepo{store: store}
}

func (r CatalogRepo) Load(_ context.Context) ([]item.Item, error) {
	if r.store.catalog == nil {
		return nil, ports.ErrNotFound
	}
	out := make([]item.Item, len(r.store.catalog))
	copy(out, r.store.catalog)
	return out, nil
}

func (r CatalogRepo) Save(_ context.Context, items []item.Item) error {
	r.store.catalog = make([]item.Item, len(items))
	copy(r.store.catalog, items)
	return nil
}

type MapRepo struct {
	store *Store
}

func NewMapRepo(store *Store) MapRepo {
	return MapRepo{store: store}
}

func (r MapRepo) Load(_ context.Context) (world.MapState, error) {
	if r.store.mapState == nil {
		return world.MapState{}, ports.ErrNotFound
	}
	return *r.store.mapState, nil
}

func (r MapRepo) Save(_ context.Context, state world.MapState) error {
	r.store.mapState = &state
	return nil
}

type ShopRepo struct {
	store *Store
}

func NewShopRepo(store *Store) ShopRepo {
	return ShopRepo{store: store}
}

func (r ShopRepo) LoadAll(_ context.Context) ([]economy.ShopState, error) {
	if len(r.store.shops) == 0 {
		return nil, ports.ErrNotFound
	}
	out := make([]economy.ShopState, 0, len(r.store.shops))
	for _, st := range r.store.shops {
		out = append(out, st)
	}
	return out, nil
}

func (r ShopRepo) Save(_ context.Context, state economy.ShopState) error {
	r.store.shops[state.Name] = state
	return nil
}

type ConfigRepo struct {
	store *Store
}

func NewConfigRepo(store *Store) ConfigRepo {
	return ConfigRepo{store: store}
}

func (r ConfigRepo) Load(_ context.Context) (ports.GameConfig, error) {
	if r.store.config == nil {
		return ports.GameConfig{}, ports.ErrNotFound
	}
	return *r.store.config, nil
}

func (r ConfigRepo) Save(_ context.Context, cfg ports.GameConfig) error {
	r.store.config = &cfg
	return nil
}

type CalendarRepo struct {
	store *Store
}

func NewCalendarRepo(store *Store) CalendarRepo {
	return CalendarRepo{store: store}
}

func (r CalendarRepo) Load(_ context.Context) (world.CalendarState, error) {
	if r.store.calendar == nil {
		return world.CalendarState{}, ports.ErrNotFound
	}
	return *r.store.calendar, nil
}

func (r CalendarRepo) Save(_ context.Context, state world.CalendarState) error {
	r.store.calendar = &state
	return nil
}
