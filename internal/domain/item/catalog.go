package item

import (
	"errors"
	"fmt"

	"verdant/internal/domain/world"
)

var (
	ErrDuplicateItem = errors.New("duplicate item id")
	ErrBrokenPairing = errors.New("seed/crop pairing is not bidirectional")
)

// Catalog is the immutable item registry. Lookups are pure reads, a missing
// id is an explicit miss, never a fallback item.
type Catalog struct {
	items map[string]Item
	order []string
}

// NewCatalog validates the definitions: ids are unique, stack sizes are
// positive, and every seed's crop id resolves to a crop whose seed id
// resolves back.
func NewCatalog(items []Item) (*Catalog, error) {
	c := &Catalog{items: make(map[string]Item, len(items))}
	for _, it := range items {
		if it.ID == "" {
			return nil, fmt.Errorf("item with empty id")
		}
		if _, exists := c.items[it.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateItem, it.ID)
		}
		if it.StackSize <= 0 {
			it.StackSize = 1
		}
		c.items[it.ID] = it
		c.order = append(c.order, it.ID)
	}
	for _, it := range c.items {
		if it.Seed != nil {
			crop, ok := c.items[it.Seed.CropID]
			if !ok || crop.Crop == nil || crop.Crop.SeedID != it.ID {
				return nil, fmt.Errorf("%w: seed %s -> crop %s", ErrBrokenPairing, it.ID, it.Seed.CropID)
			}
		}
		if it.Crop != nil {
			seed, ok := c.items[it.Crop.SeedID]
			if !ok || seed.Seed == nil || seed.Seed.CropID != it.ID {
				return nil, fmt.Errorf("%w: crop %s -> seed %s", ErrBrokenPairing, it.ID, it.Crop.SeedID)
			}
		}
	}
	return c, nil
}

func (c *Catalog) Get(id string) (Item, bool) {
	it, ok := c.items[id]
	return it, ok
}

func (c *Catalog) Seed(id string) (Item, bool) {
	it, ok := c.items[id]
	if !ok || it.Seed == nil {
		return Item{}, false
	}
	return it, true
}

func (c *Catalog) Crop(id string) (Item, bool) {
	it, ok := c.items[id]
	if !ok || it.Crop == nil {
		return Item{}, false
	}
	return it, true
}

// CropForSeed resolves the crop a seed grows into.
func (c *Catalog) CropForSeed(seedID string) (Item, bool) {
	seed, ok := c.Seed(seedID)
	if !ok {
		return Item{}, false
	}
	return c.Crop(seed.Seed.CropID)
}

// SeedForCrop resolves the seed a crop originated from.
func (c *Catalog) SeedForCrop(cropID string) (Item, bool) {
	crop, ok := c.Crop(cropID)
	if !ok {
		return Item{}, false
	}
	return c.Seed(crop.Crop.SeedID)
}

// ItemsForSeason returns every seed plantable in the given season, in
// catalog order.
func (c *Catalog) ItemsForSeason(season world.Season) []Item {
	var out []Item
	for _, id := range c.order {
		it := c.items[id]
		if it.Seed == nil {
			continue
		}
		for _, s := range it.Seed.Seasons {
			if s == season {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// All returns the definitions in registration order.
func (c *Catalog) All() []Item {
	out := make([]Item, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.items)
}
