package inventory

import (
	"testing"

	"verdant/internal/domain/item"
)

func seedDef() item.Item {
	return item.Item{ID: "turnip_seed", Category: item.CategorySeed, StackSize: 99}
}

func TestAddFillsExistingStacksFirst(t *testing.T) {
	inv := New(4)
	def := seedDef()

	if overflow := inv.Add(def, item.QualityNormal, 50); overflow != 0 {
		t.Fatalf("expected no overflow, got %d", overflow)
	}
	if overflow := inv.Add(def, item.QualityNormal, 60); overflow != 0 {
		t.Fatalf("expected no overflow, got %d", overflow)
	}

	first, _ := inv.Slot(0)
	second, _ := inv.Slot(1)
	if first.Count != 99 {
		t.Fatalf("expected slot 0 topped up to 99, got %d", first.Count)
	}
	if second.Count != 11 {
		t.Fatalf("expected spill of 11 into slot 1, got %d", second.Count)
	}
}

func TestAddSeparatesQualities(t *testing.T) {
	inv := New(4)
	def := seedDef()

	inv.Add(def, item.QualityNormal, 10)
	inv.Add(def, item.QualityGold, 10)

	first, _ := inv.Slot(0)
	second, _ := inv.Slot(1)
	if first.Quality != item.QualityNormal || second.Quality != item.QualityGold {
		t.Fatalf("expected qualities in separate slots, got %+v / %+v", first, second)
	}
	if inv.CountQuality("turnip_seed", item.QualityGold) != 10 {
		t.Fatalf("expected 10 gold seeds")
	}
}

func TestRoundTripRestoresLayout(t *testing.T) {
	inv := New(6)
	def := seedDef()
	inv.Add(def, item.QualityNormal, 40)
	before := inv.Slots()

	if overflow := inv.Add(def, item.QualityNormal, 30); overflow != 0 {
		t.Fatalf("expected no overflow, got %d", overflow)
	}
	if removed := inv.Remove("turnip_seed", item.QualityNormal, 30); removed != 30 {
		t.Fatalf("expected removed 30, got %d", removed)
	}

	after := inv.Slots()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("expected slot %d restored, got %+v want %+v", i, after[i], before[i])
		}
	}
}

func TestOverflowConservation(t *testing.T) {
	inv := New(2)
	def := seedDef()

	requested := 0
	overflowed := 0
	for _, qty := range []int{80, 90, 70, 120} {
		requested += qty
		overflowed += inv.Add(def, item.QualityNormal, qty)
	}
	if stored := inv.TotalCount(); requested-overflowed != stored {
		t.Fatalf("expected requested-overflow == stored, got %d-%d != %d", requested, overflowed, stored)
	}
}

func TestSingleSlotScenario(t *testing.T) {
	inv := New(1)
	def := seedDef()

	if overflow := inv.Add(def, item.QualityNormal, 99); overflow != 0 {
		t.Fatalf("expected 99 to fit exactly, overflow %d", overflow)
	}
	slot, _ := inv.Slot(0)
	if slot.ItemID != "turnip_seed" || slot.Count != 99 {
		t.Fatalf("expected slot 0 to hold (turnip_seed, 99), got %+v", slot)
	}

	if overflow := inv.Add(def, item.QualityNormal, 1); overflow != 1 {
		t.Fatalf("expected overflow 1 on full inventory, got %d", overflow)
	}
	slot, _ = inv.Slot(0)
	if slot.Count != 99 {
		t.Fatalf("expected slot unchanged at 99, got %d", slot.Count)
	}
}

func TestRemoveDrainsInSlotOrder(t *testing.T) {
	inv := New(3)
	def := seedDef()
	inv.Add(def, item.QualityNormal, 99)
	inv.Add(def, item.QualityNormal, 50)

	if removed := inv.Remove("turnip_seed", item.QualityNormal, 120); removed != 120 {
		t.Fatalf("expected removed 120, got %d", removed)
	}
	first, _ := inv.Slot(0)
	second, _ := inv.Slot(1)
	if !first.Empty() {
		t.Fatalf("expected slot 0 drained first, got %+v", first)
	}
	if second.Count != 29 {
		t.Fatalf("expected 29 left in slot 1, got %d", second.Count)
	}
}

func TestRemoveIsBoundedAndQualityScoped(t *testing.T) {
	inv := New(3)
	def := seedDef()
	inv.Add(def, item.QualityNormal, 10)
	inv.Add(def, item.QualityGold, 5)

	if removed := inv.Remove("turnip_seed", item.QualityNormal, 100); removed != 10 {
		t.Fatalf("expected partial removal of 10, got %d", removed)
	}
	if inv.CountQuality("turnip_seed", item.QualityGold) != 5 {
		t.Fatalf("expected gold stack untouched")
	}
	if removed := inv.Remove("no_such", item.QualityNormal, 1); removed != 0 {
		t.Fatalf("expected zero removal for unknown item, got %d", removed)
	}
}

func TestHasCountsAcrossQualities(t *testing.T) {
	inv := New(3)
	def := seedDef()
	inv.Add(def, item.QualityNormal, 3)
	inv.Add(def, item.QualityGold, 2)

	if !inv.Has("turnip_seed", 5) {
		t.Fatalf("expected Has to sum across qualities")
	}
	if inv.Has("turnip_seed", 6) {
		t.Fatalf("expected Has false above total")
	}
	if inv.HasQuality("turnip_seed", item.QualityGold, 3) {
		t.Fatalf("expected quality-scoped check to see only 2")
	}
}

func TestSelectBounds(t *testing.T) {
	inv := New(4)
	if inv.Select(-1) || inv.Select(4) {
		t.Fatalf("expected out-of-range select to fail")
	}
	if !inv.Select(3) {
		t.Fatalf("expected in-range select to succeed")
	}
	if inv.Selected() != 3 {
		t.Fatalf("expected selected 3, got %d", inv.Selected())
	}
}

func TestFromSlotsNormalizes(t *testing.T) {
	inv := FromSlots([]Slot{
		{ItemID: "wood", Count: 4},
		{ItemID: "stale", Count: 0},
	}, 9)
	slot, _ := inv.Slot(0)
	if slot.Quality != item.QualityNormal {
		t.Fatalf("expected missing quality normalized, got %q", slot.Quality)
	}
	second, _ := inv.Slot(1)
	if !second.Empty() {
		t.Fatalf("expected zero-count slot cleared")
	}
	if inv.Selected() != 0 {
		t.Fatalf("expected invalid selected index ignored")
	}
}
