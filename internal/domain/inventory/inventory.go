package inventory

import "verdant/internal/domain/item"

const DefaultSize = 24

// Slot holds one stack. Empty is a valid state with no item and count 0.
type Slot struct {
	ItemID  string       `json:"item_id,omitempty"`
	Quality item.Quality `json:"quality,omitempty"`
	Count   int          `json:"count"`
}

func (s Slot) Empty() bool {
	return s.Count == 0
}

// Inventory is a fixed-size ordered sequence of slots with a selected
// index. All stack bookkeeping lives here, callers never touch slots
// directly.
type Inventory struct {
	slots    []Slot
	selected int
}

func New(size int) *Inventory {
	if size <= 0 {
		size = DefaultSize
	}
	return &Inventory{slots: make([]Slot, size)}
}

// FromSlots rebuilds an inventory from persisted slots.
func FromSlots(slots []Slot, selected int) *Inventory {
	inv := New(len(slots))
	copy(inv.slots, slots)
	for i := range inv.slots {
		if inv.slots[i].Count <= 0 {
			inv.slots[i] = Slot{}
			continue
		}
		if inv.slots[i].Quality == "" {
			inv.slots[i].Quality = item.QualityNormal
		}
	}
	inv.Select(selected)
	return inv
}

func (inv *Inventory) Size() int {
	return len(inv.slots)
}

func (inv *Inventory) Slots() []Slot {
	out := make([]Slot, len(inv.slots))
	copy(out, inv.slots)
	return out
}

func (inv *Inventory) Slot(i int) (Slot, bool) {
	if i < 0 || i >= len(inv.slots) {
		return Slot{}, false
	}
	return inv.slots[i], true
}

func (inv *Inventory) Selected() int {
	return inv.selected
}

func (inv *Inventory) Select(i int) bool {
	if i < 0 || i >= len(inv.slots) {
		return false
	}
	inv.selected = i
	return true
}

func (inv *Inventory) SelectedSlot() Slot {
	return inv.slots[inv.selected]
}

func normalizeQuality(q item.Quality) item.Quality {
	if q == "" {
		return item.QualityNormal
	}
	return q
}

// Add places a quantity into the inventory: existing matching stacks fill
// first in slot order, then empty slots. The unplaceable remainder is
// returned as overflow, never an error.
func (inv *Inventory) Add(def item.Item, quality item.Quality, qty int) int {
	if qty <= 0 || def.ID == "" {
		return 0
	}
	quality = normalizeQuality(quality)
	stackSize := def.StackSize
	if stackSize <= 0 {
		stackSize = 1
	}

	remaining := qty
	for i := range inv.slots {
		if remaining == 0 {
			break
		}
		s := &inv.slots[i]
		if s.Empty() || s.ItemID != def.ID || s.Quality != quality {
			continue
		}
		space := stackSize - s.Count
		if space <= 0 {
			continue
		}
		take := min(space, remaining)
		s.Count += take
		remaining -= take
	}
	for i := range inv.slots {
		if remaining == 0 {
			break
		}
		s := &inv.slots[i]
		if !s.Empty() {
			continue
		}
		take := min(stackSize, remaining)
		*s = Slot{ItemID: def.ID, Quality: quality, Count: take}
		remaining -= take
	}
	return remaining
}

// Remove drains matching slots in slot order and returns the amount
// actually removed, which may be less than requested.
func (inv *Inventory) Remove(itemID string, quality item.Quality, qty int) int {
	if qty <= 0 || itemID == "" {
		return 0
	}
	quality = normalizeQuality(quality)

	removed := 0
	for i := range inv.slots {
		if removed == qty {
			break
		}
		s := &inv.slots[i]
		if s.Empty() || s.ItemID != itemID || s.Quality != quality {
			continue
		}
		take := min(s.Count, qty-removed)
		s.Count -= take
		removed += take
		if s.Count == 0 {
			*s = Slot{}
		}
	}
	return removed
}

// Count sums the item across all qualities.
func (inv *Inventory) Count(itemID string) int {
	total := 0
	for _, s := range inv.slots {
		if !s.Empty() && s.ItemID == itemID {
			total += s.Count
		}
	}
	return total
}

func (inv *Inventory) CountQuality(itemID string, quality item.Quality) int {
	quality = normalizeQuality(quality)
	total := 0
	for _, s := range inv.slots {
		if !s.Empty() && s.ItemID == itemID && s.Quality == quality {
			total += s.Count
		}
	}
	return total
}

// Has reports whether the cumulative count across qualities covers the
// requested quantity.
func (inv *Inventory) Has(itemID string, qty int) bool {
	return inv.Count(itemID) >= qty
}

func (inv *Inventory) HasQuality(itemID string, quality item.Quality, qty int) bool {
	return inv.CountQuality(itemID, quality) >= qty
}

// TotalCount sums every slot, used to check conservation across adds.
func (inv *Inventory) TotalCount() int {
	total := 0
	for _, s := range inv.slots {
		total += s.Count
	}
	return total
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
