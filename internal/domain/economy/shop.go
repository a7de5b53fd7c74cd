package economy

import (
	"verdant/internal/domain/inventory"
	"verdant/internal/domain/item"
)

const (
	DefaultBuyMultiplier  = 0.5
	DefaultSellMultiplier = 1.0

	stockSlots = 32
)

// StockEntry tracks one restockable line: the quantity the shop keeps on
// hand and an optional per-item price multiplier.
type StockEntry struct {
	ItemID      string  `json:"item_id"`
	MaxQuantity int     `json:"max_quantity"`
	PriceMult   float64 `json:"price_multiplier"`
}

// Shop wraps a stock inventory with pricing. It never mutates player
// currency, the caller owns that field.
type Shop struct {
	Name     string
	Owner    string
	BuyMult  float64
	SellMult float64
	Stock    *inventory.Inventory

	entries []StockEntry
	catalog *item.Catalog
}

func NewShop(name, owner string, catalog *item.Catalog) *Shop {
	return &Shop{
		Name:     name,
		Owner:    owner,
		BuyMult:  DefaultBuyMultiplier,
		SellMult: DefaultSellMultiplier,
		Stock:    inventory.New(stockSlots),
		catalog:  catalog,
	}
}

// SetStock replaces the tracked lines and fills the shelves to max.
func (s *Shop) SetStock(entries []StockEntry) {
	s.entries = make([]StockEntry, 0, len(entries))
	for _, e := range entries {
		if e.ItemID == "" || e.MaxQuantity <= 0 {
			continue
		}
		if e.PriceMult <= 0 {
			e.PriceMult = 1.0
		}
		s.entries = append(s.entries, e)
	}
	s.Restock()
}

func (s *Shop) Entries() []StockEntry {
	out := make([]StockEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Shop) priceMultFor(itemID string) float64 {
	for _, e := range s.entries {
		if e.ItemID == itemID {
			return e.PriceMult
		}
	}
	return 1.0
}

// BuyPrice is what the shop pays the player per unit. Quality raises the
// item's base value before the shop margin applies. Always at least 1 for
// a known item.
func (s *Shop) BuyPrice(itemID string, quality item.Quality) (int, bool) {
	def, ok := s.catalog.Get(itemID)
	if !ok {
		return 0, false
	}
	price := int(float64(def.Value) * quality.Multiplier() * s.BuyMult)
	if price < 1 {
		price = 1
	}
	return price, true
}

// SellPrice is what the shop charges the player per unit, refined by the
// per-item multiplier recorded at stock load.
func (s *Shop) SellPrice(itemID string) (int, bool) {
	def, ok := s.catalog.Get(itemID)
	if !ok {
		return 0, false
	}
	price := int(float64(def.Value) * s.SellMult * s.priceMultFor(itemID))
	if price < 1 {
		price = 1
	}
	return price, true
}

// BuyFromPlayer moves qty out of the player's inventory and returns the
// payout owed. Crediting the player is the caller's step.
func (s *Shop) BuyFromPlayer(playerInv *inventory.Inventory, itemID string, quality item.Quality, qty int) (int, bool) {
	if qty <= 0 {
		return 0, false
	}
	def, ok := s.catalog.Get(itemID)
	if !ok {
		return 0, false
	}
	unit, _ := s.BuyPrice(itemID, quality)
	if !playerInv.HasQuality(itemID, quality, qty) {
		return 0, false
	}
	if playerInv.Remove(itemID, quality, qty) != qty {
		return 0, false
	}
	s.Stock.Add(def, quality, qty)
	return unit * qty, true
}

// SellToPlayer moves qty from stock into the player's inventory and
// returns the total charge. The transfer is atomic: if the player's
// inventory cannot absorb the full quantity the stock is restored and the
// sale fails whole. Debiting the player is the caller's step.
func (s *Shop) SellToPlayer(playerInv *inventory.Inventory, playerMoney int, itemID string, qty int) (int, bool) {
	if qty <= 0 {
		return 0, false
	}
	def, ok := s.catalog.Get(itemID)
	if !ok {
		return 0, false
	}
	unit, _ := s.SellPrice(itemID)
	total := unit * qty
	if playerMoney < total {
		return 0, false
	}
	// Stock can hold player-sold units at other qualities; only normal
	// units are sellable.
	if !s.Stock.HasQuality(itemID, item.QualityNormal, qty) {
		return 0, false
	}
	if s.Stock.Remove(itemID, item.QualityNormal, qty) != qty {
		return 0, false
	}
	if overflow := playerInv.Add(def, item.QualityNormal, qty); overflow > 0 {
		playerInv.Remove(itemID, item.QualityNormal, qty-overflow)
		s.Stock.Add(def, item.QualityNormal, qty)
		return 0, false
	}
	return total, true
}

// Restock tops each tracked line up to its configured maximum. Stock above
// max is left alone.
func (s *Shop) Restock() {
	for _, e := range s.entries {
		def, ok := s.catalog.Get(e.ItemID)
		if !ok {
			continue
		}
		current := s.Stock.Count(e.ItemID)
		if current < e.MaxQuantity {
			s.Stock.Add(def, item.QualityNormal, e.MaxQuantity-current)
		}
	}
}

// ShopState is the persisted form of a Shop.
type ShopState struct {
	Name     string           `json:"name"`
	Owner    string           `json:"owner"`
	BuyMult  float64          `json:"buy_multiplier"`
	SellMult float64          `json:"sell_multiplier"`
	Entries  []StockEntry     `json:"entries"`
	Slots    []inventory.Slot `json:"slots"`
}

func (s *Shop) State() ShopState {
	return ShopState{
		Name:     s.Name,
		Owner:    s.Owner,
		BuyMult:  s.BuyMult,
		SellMult: s.SellMult,
		Entries:  s.Entries(),
		Slots:    s.Stock.Slots(),
	}
}

func ShopFromState(st ShopState, catalog *item.Catalog) *Shop {
	s := NewShop(st.Name, st.Owner, catalog)
	if st.BuyMult > 0 {
		s.BuyMult = st.BuyMult
	}
	if st.SellMult > 0 {
		s.SellMult = st.SellMult
	}
	s.entries = append(s.entries, st.Entries...)
	if len(st.Slots) > 0 {
		s.Stock = inventory.FromSlots(st.Slots, 0)
	} else {
		s.Restock()
	}
	return s
}

// DefaultGeneralStore is the first-run shop when no stock records exist.
func DefaultGeneralStore(catalog *item.Catalog) *Shop {
	s := NewShop("general_store", "Pierre", catalog)
	s.SetStock([]StockEntry{
		{ItemID: "turnip_seed", MaxQuantity: 20, PriceMult: 1.0},
		{ItemID: "potato_seed", MaxQuantity: 15, PriceMult: 1.0},
		{ItemID: "tomato_seed", MaxQuantity: 10, PriceMult: 1.0},
		{ItemID: "hoe", MaxQuantity: 1, PriceMult: 1.0},
		{ItemID: "watering_can", MaxQuantity: 1, PriceMult: 1.0},
		{ItemID: "axe", MaxQuantity: 1, PriceMult: 1.0},
	})
	return s
}
