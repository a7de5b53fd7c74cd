package memory

import (
	"sync"

	"verdant/internal/app/ports"
	"verdant/internal/domain/economy"
	"verdant/internal/domain/item"
	"verdant/internal/domain/world"
)

// Store backs every memory repo. The TxManager takes the single lock,
// repo methods themselves run unguarded inside it.
type Store struct {
	mu       sync.RWMutex
	catalog  []item.Item
	mapState *world.MapState
	shops    map[string]economy.ShopState
	config   *ports.GameConfig
	calendar *world.CalendarState
}

func NewStore() *Store {
	return &Store{
		shops: make(map[string]economy.ShopState),
	}
}
