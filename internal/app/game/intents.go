package game

import (
	"verdant/internal/domain/actor"
	"verdant/internal/domain/inventory"
	"verdant/internal/domain/item"
	"verdant/internal/domain/world"
)

type IntentType string

const (
	IntentMove         IntentType = "move"
	IntentSelectSlot   IntentType = "select_slot"
	IntentUseItem      IntentType = "use_item"
	IntentUseTool      IntentType = "use_tool"
	IntentPlant        IntentType = "plant"
	IntentHarvest      IntentType = "harvest"
	IntentEat          IntentType = "eat"
	IntentTalk         IntentType = "talk"
	IntentGift         IntentType = "gift"
	IntentBuy          IntentType = "buy"
	IntentSell         IntentType = "sell"
	IntentPause        IntentType = "pause"
	IntentResume       IntentType = "resume"
	IntentSetTimeScale IntentType = "set_time_scale"
)

// Intent is one discrete player command from the input layer. Unused
// fields stay zero.
type Intent struct {
	Type IntentType `json:"type"`

	DX float64 `json:"dx,omitempty"`
	DY float64 `json:"dy,omitempty"`

	Slot int `json:"slot,omitempty"`

	// Target world position, zero means "in front of the player".
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`

	ItemID   string       `json:"item_id,omitempty"`
	Quality  item.Quality `json:"quality,omitempty"`
	Quantity int          `json:"quantity,omitempty"`
	Shop     string       `json:"shop,omitempty"`

	Scale float64 `json:"scale,omitempty"`
}

// Result reports an intent outcome. Invalid game actions are rejections
// with a reason, never errors.
type Result struct {
	OK      bool   `json:"ok"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

func accepted() Result                { return Result{OK: true} }
func acceptedMsg(msg string) Result   { return Result{OK: true, Message: msg} }
func rejected(reason string) Result   { return Result{Reason: reason} }

type intentHandler func(o *Orchestrator, in Intent) Result

func intentRegistry() map[IntentType]intentHandler {
	return map[IntentType]intentHandler{
		IntentMove:         handleMove,
		IntentSelectSlot:   handleSelectSlot,
		IntentUseItem:      handleUseItem,
		IntentUseTool:      handleUseTool,
		IntentPlant:        handlePlant,
		IntentHarvest:      handleHarvest,
		IntentEat:          handleEat,
		IntentTalk:         handleTalk,
		IntentGift:         handleGift,
		IntentBuy:          handleBuy,
		IntentSell:         handleSell,
		IntentPause:        handlePause,
		IntentResume:       handleResume,
		IntentSetTimeScale: handleSetTimeScale,
	}
}

func handleMove(o *Orchestrator, in Intent) Result {
	dx, dy := clampAxis(in.DX), clampAxis(in.DY)
	o.moveX, o.moveY = dx, dy
	return accepted()
}

func clampAxis(v float64) float64 {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

func handleSelectSlot(o *Orchestrator, in Intent) Result {
	if !o.State.Player.Inventory.Select(in.Slot) {
		return rejected("slot_out_of_range")
	}
	return accepted()
}

// handleUseItem dispatches on the selected item's category: tools swing,
// seeds plant, edibles are eaten.
func handleUseItem(o *Orchestrator, in Intent) Result {
	slot := o.State.Player.Inventory.SelectedSlot()
	if slot.Empty() {
		return rejected("empty_slot")
	}
	def, ok := o.State.Catalog.Get(slot.ItemID)
	if !ok {
		return rejected("unknown_item")
	}
	switch def.Category {
	case item.CategoryTool:
		in.ItemID = def.ID
		return handleUseTool(o, in)
	case item.CategorySeed:
		in.ItemID = def.ID
		return handlePlant(o, in)
	case item.CategoryFood, item.CategoryCrop:
		in.ItemID = def.ID
		return handleEat(o, in)
	}
	return rejected("item_not_usable")
}

func handleUseTool(o *Orchestrator, in Intent) Result {
	toolID := in.ItemID
	if toolID == "" {
		toolID = o.State.Player.Inventory.SelectedSlot().ItemID
	}
	def, ok := o.State.Catalog.Get(toolID)
	if !ok || def.Tool == nil {
		return rejected("not_a_tool")
	}
	if !o.State.Player.Inventory.Has(toolID, 1) {
		return rejected("tool_not_owned")
	}
	wx, wy := o.targetPos(in)

	switch toolID {
	case "watering_can":
		if !o.State.World.Water(wx, wy, o.State.Player) {
			return rejected("nothing_to_water")
		}
		return accepted()
	case "hoe":
		if o.State.Player.Energy < def.Tool.EnergyCost {
			return rejected("not_enough_energy")
		}
		if !o.State.World.Till(wx, wy) {
			return rejected("cannot_till")
		}
		o.State.Player.SpendEnergy(def.Tool.EnergyCost)
		return accepted()
	case "axe", "pickaxe", "scythe":
		return o.clearObject(toolID, def.Tool.EnergyCost, wx, wy)
	}
	return rejected("tool_has_no_effect")
}

func handlePlant(o *Orchestrator, in Intent) Result {
	seedID := in.ItemID
	if seedID == "" {
		seedID = o.State.Player.Inventory.SelectedSlot().ItemID
	}
	seed, ok := o.State.Catalog.Seed(seedID)
	if !ok {
		return rejected("not_a_seed")
	}
	quality, ok := seedQuality(o.State.Player.Inventory, seedID)
	if !ok {
		return rejected("seed_not_owned")
	}
	wx, wy := o.targetPos(in)
	spec := world.PlantSpec{CropID: seed.Seed.CropID, Seasons: seed.Seed.Seasons}
	if !o.State.World.Plant(spec, o.State.Calendar.Season(), wx, wy) {
		return rejected("cannot_plant")
	}
	o.State.Player.Inventory.Remove(seedID, quality, 1)
	return accepted()
}

// seedQuality locates a unit of the seed to spend, preferring the selected
// slot so the consumed quality matches what the player is holding.
func seedQuality(inv *inventory.Inventory, seedID string) (item.Quality, bool) {
	if sel := inv.SelectedSlot(); sel.ItemID == seedID && sel.Count > 0 {
		return sel.Quality, true
	}
	for _, s := range inv.Slots() {
		if s.ItemID == seedID && s.Count > 0 {
			return s.Quality, true
		}
	}
	return "", false
}

func handleHarvest(o *Orchestrator, in Intent) Result {
	wx, wy := o.targetPos(in)
	harvester := farmHand{o: o}
	if !o.State.World.Harvest(wx, wy, harvester) {
		return rejected("cannot_harvest")
	}
	o.State.Player.AddSkillXP(actor.SkillFarming, harvestXP)
	return accepted()
}

func handleEat(o *Orchestrator, in Intent) Result {
	itemID := in.ItemID
	if itemID == "" {
		itemID = o.State.Player.Inventory.SelectedSlot().ItemID
	}
	def, ok := o.State.Catalog.Get(itemID)
	if !ok {
		return rejected("unknown_item")
	}
	if !o.State.Player.Eat(def) {
		return rejected("cannot_eat")
	}
	return accepted()
}

// handleTalk greets the closest NPC in range, or ends a conversation
// already underway.
func handleTalk(o *Orchestrator, in Intent) Result {
	npc := o.nearestNpc()
	if npc == nil {
		return rejected("nobody_nearby")
	}
	if npc.Dialogue == actor.DialogueTalking {
		npc.EndTalk()
		return accepted()
	}
	return acceptedMsg(npc.Greet(o.Rng))
}

func handleGift(o *Orchestrator, in Intent) Result {
	npc := o.nearestNpc()
	if npc == nil {
		return rejected("nobody_nearby")
	}
	slot := o.State.Player.Inventory.SelectedSlot()
	if slot.Empty() {
		return rejected("empty_slot")
	}
	if o.State.Player.Inventory.Remove(slot.ItemID, slot.Quality, 1) != 1 {
		return rejected("empty_slot")
	}
	return acceptedMsg(npc.ReceiveGift())
}

func handleBuy(o *Orchestrator, in Intent) Result {
	shop, ok := o.State.Shops[in.Shop]
	if !ok {
		return rejected("shop_not_found")
	}
	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}
	p := o.State.Player
	total, ok := shop.SellToPlayer(p.Inventory, p.Money, in.ItemID, qty)
	if !ok {
		return rejected("purchase_failed")
	}
	p.SpendMoney(total)
	return accepted()
}

func handleSell(o *Orchestrator, in Intent) Result {
	shop, ok := o.State.Shops[in.Shop]
	if !ok {
		return rejected("shop_not_found")
	}
	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}
	p := o.State.Player
	payout, ok := shop.BuyFromPlayer(p.Inventory, in.ItemID, in.Quality, qty)
	if !ok {
		return rejected("sale_failed")
	}
	p.AddMoney(payout)
	return accepted()
}

func handlePause(o *Orchestrator, _ Intent) Result {
	o.State.Calendar.Pause()
	return accepted()
}

func handleResume(o *Orchestrator, _ Intent) Result {
	o.State.Calendar.Resume()
	return accepted()
}

func handleSetTimeScale(o *Orchestrator, in Intent) Result {
	if in.Scale <= 0 {
		return rejected("invalid_scale")
	}
	o.State.Calendar.SetTimeScale(in.Scale)
	return accepted()
}
