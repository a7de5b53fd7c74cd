package economy

import (
	"testing"

	"verdant/internal/domain/inventory"
	"verdant/internal/domain/item"
)

func testShop(t *testing.T) *Shop {
	t.Helper()
	return DefaultGeneralStore(item.DefaultCatalog())
}

func TestPricesFloorAtOne(t *testing.T) {
	catalog, err := item.NewCatalog([]item.Item{
		{ID: "pebble", Category: item.CategoryMaterial, Value: 1, StackSize: 99},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	s := NewShop("test", "nobody", catalog)

	price, ok := s.BuyPrice("pebble", item.QualityNormal)
	if !ok || price != 1 {
		t.Fatalf("expected floor price 1, got %d ok=%v", price, ok)
	}
	if _, ok := s.BuyPrice("no_such", item.QualityNormal); ok {
		t.Fatalf("expected unknown item to miss")
	}
}

func TestBuyPriceScalesWithQuality(t *testing.T) {
	s := testShop(t)
	normal, _ := s.BuyPrice("crop_pumpkin", item.QualityNormal)
	gold, _ := s.BuyPrice("crop_pumpkin", item.QualityGold)
	if normal != 160 {
		t.Fatalf("expected 320*0.5=160, got %d", normal)
	}
	if gold != 240 {
		t.Fatalf("expected 320*1.5*0.5=240, got %d", gold)
	}
}

func TestSellPriceUsesPerItemMultiplier(t *testing.T) {
	s := NewShop("test", "nobody", item.DefaultCatalog())
	s.SetStock([]StockEntry{{ItemID: "turnip_seed", MaxQuantity: 5, PriceMult: 2.0}})
	price, ok := s.SellPrice("turnip_seed")
	if !ok || price != 40 {
		t.Fatalf("expected 20*1.0*2.0=40, got %d", price)
	}
}

func TestBuyFromPlayer(t *testing.T) {
	s := testShop(t)
	catalog := item.DefaultCatalog()
	inv := inventory.New(4)
	turnip, _ := catalog.Get("crop_turnip")
	inv.Add(turnip, item.QualityNormal, 3)

	payout, ok := s.BuyFromPlayer(inv, "crop_turnip", item.QualityNormal, 2)
	if !ok {
		t.Fatalf("expected buy to succeed")
	}
	if payout != 34 {
		t.Fatalf("expected payout 2*17, got %d", payout)
	}
	if inv.Count("crop_turnip") != 1 {
		t.Fatalf("expected 1 turnip left, got %d", inv.Count("crop_turnip"))
	}

	if _, ok := s.BuyFromPlayer(inv, "crop_turnip", item.QualityNormal, 5); ok {
		t.Fatalf("expected buy beyond holdings to fail")
	}
	if inv.Count("crop_turnip") != 1 {
		t.Fatalf("expected failed buy to leave inventory alone")
	}
}

func TestSellToPlayerHappyPath(t *testing.T) {
	s := testShop(t)
	inv := inventory.New(8)

	total, ok := s.SellToPlayer(inv, 500, "turnip_seed", 5)
	if !ok {
		t.Fatalf("expected sale to succeed")
	}
	if total != 100 {
		t.Fatalf("expected total 5*20, got %d", total)
	}
	if inv.Count("turnip_seed") != 5 {
		t.Fatalf("expected 5 seeds delivered, got %d", inv.Count("turnip_seed"))
	}
	if s.Stock.Count("turnip_seed") != 15 {
		t.Fatalf("expected stock reduced to 15, got %d", s.Stock.Count("turnip_seed"))
	}
}

func TestSellToPlayerInsufficientMoney(t *testing.T) {
	catalog, err := item.NewCatalog([]item.Item{
		{ID: "gem", Category: item.CategoryMaterial, Value: 100, StackSize: 99},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	s := NewShop("test", "nobody", catalog)
	s.SetStock([]StockEntry{{ItemID: "gem", MaxQuantity: 1, PriceMult: 1.0}})
	inv := inventory.New(4)

	if _, ok := s.SellToPlayer(inv, 50, "gem", 1); ok {
		t.Fatalf("expected sale to fail on short money")
	}
	if s.Stock.Count("gem") != 1 {
		t.Fatalf("expected stock unchanged, got %d", s.Stock.Count("gem"))
	}
	if inv.Count("gem") != 0 {
		t.Fatalf("expected no delivery on failed sale")
	}
}

func TestSellToPlayerRollsBackOnOverflow(t *testing.T) {
	s := testShop(t)
	catalog := item.DefaultCatalog()
	inv := inventory.New(1)
	hoe, _ := catalog.Get("hoe")
	inv.Add(hoe, item.QualityNormal, 1)

	stockBefore := s.Stock.Count("turnip_seed")
	if _, ok := s.SellToPlayer(inv, 10000, "turnip_seed", 5); ok {
		t.Fatalf("expected sale into full inventory to fail")
	}
	if s.Stock.Count("turnip_seed") != stockBefore {
		t.Fatalf("expected stock restored to %d, got %d", stockBefore, s.Stock.Count("turnip_seed"))
	}
	if inv.Count("turnip_seed") != 0 {
		t.Fatalf("expected no partial delivery")
	}
}

func TestSellToPlayerMixedQualityStock(t *testing.T) {
	catalog := item.DefaultCatalog()
	s := NewShop("test", "nobody", catalog)
	s.SetStock([]StockEntry{{ItemID: "crop_turnip", MaxQuantity: 2, PriceMult: 1.0}})
	turnip, _ := catalog.Get("crop_turnip")

	seller := inventory.New(4)
	seller.Add(turnip, item.QualitySilver, 3)
	if _, ok := s.BuyFromPlayer(seller, "crop_turnip", item.QualitySilver, 3); !ok {
		t.Fatalf("expected silver buy-in to succeed")
	}
	if s.Stock.Count("crop_turnip") != 5 {
		t.Fatalf("expected mixed stock of 5, got %d", s.Stock.Count("crop_turnip"))
	}

	buyer := inventory.New(8)
	if _, ok := s.SellToPlayer(buyer, 10000, "crop_turnip", 5); ok {
		t.Fatalf("expected sale beyond normal-quality stock to fail")
	}
	if s.Stock.Count("crop_turnip") != 5 {
		t.Fatalf("expected failed sale to leave stock at 5, got %d", s.Stock.Count("crop_turnip"))
	}
	if buyer.Count("crop_turnip") != 0 {
		t.Fatalf("expected no delivery on failed sale")
	}

	total, ok := s.SellToPlayer(buyer, 10000, "crop_turnip", 2)
	if !ok {
		t.Fatalf("expected sale within normal-quality stock to succeed")
	}
	if total == 0 {
		t.Fatalf("expected a nonzero charge")
	}
	if s.Stock.CountQuality("crop_turnip", item.QualitySilver) != 3 {
		t.Fatalf("expected silver units untouched, got %d", s.Stock.CountQuality("crop_turnip", item.QualitySilver))
	}
	if buyer.Count("crop_turnip") != 2 {
		t.Fatalf("expected 2 turnips delivered, got %d", buyer.Count("crop_turnip"))
	}
}

func TestRestockTopsUpToMax(t *testing.T) {
	s := testShop(t)
	inv := inventory.New(8)
	if _, ok := s.SellToPlayer(inv, 10000, "turnip_seed", 8); !ok {
		t.Fatalf("expected sale to succeed")
	}
	s.Restock()
	if s.Stock.Count("turnip_seed") != 20 {
		t.Fatalf("expected restock to 20, got %d", s.Stock.Count("turnip_seed"))
	}

	catalog := item.DefaultCatalog()
	seed, _ := catalog.Get("turnip_seed")
	s.Stock.Add(seed, item.QualityNormal, 10)
	s.Restock()
	if s.Stock.Count("turnip_seed") != 30 {
		t.Fatalf("expected restock to leave surplus alone, got %d", s.Stock.Count("turnip_seed"))
	}
}

func TestShopStateRoundTrip(t *testing.T) {
	catalog := item.DefaultCatalog()
	s := DefaultGeneralStore(catalog)
	inv := inventory.New(8)
	s.SellToPlayer(inv, 10000, "turnip_seed", 3)

	restored := ShopFromState(s.State(), catalog)
	if restored.Name != "general_store" || restored.Owner != "Pierre" {
		t.Fatalf("expected identity preserved, got %s/%s", restored.Name, restored.Owner)
	}
	if restored.Stock.Count("turnip_seed") != 17 {
		t.Fatalf("expected depleted stock preserved, got %d", restored.Stock.Count("turnip_seed"))
	}
	if len(restored.Entries()) != len(s.Entries()) {
		t.Fatalf("expected entries preserved")
	}
}
