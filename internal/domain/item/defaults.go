package item

import "verdant/internal/domain/world"

// DefaultItems is the built-in catalog used when no persisted records
// exist. Written back on first run.
func DefaultItems() []Item {
	return []Item{
		{
			ID: "turnip_seed", Name: "Turnip Seeds", Category: CategorySeed,
			Description: "Plant these in spring. Takes 5 days to mature.",
			Value:       20, StackSize: 99,
			Seed: &SeedInfo{CropID: "crop_turnip", GrowDays: 5, Seasons: []world.Season{world.SeasonSpring}},
		},
		{
			ID: "potato_seed", Name: "Potato Seeds", Category: CategorySeed,
			Description: "Plant these in spring. Takes 6 days to mature.",
			Value:       50, StackSize: 99,
			Seed: &SeedInfo{CropID: "crop_potato", GrowDays: 6, Seasons: []world.Season{world.SeasonSpring}},
		},
		{
			ID: "tomato_seed", Name: "Tomato Seeds", Category: CategorySeed,
			Description: "Plant these in summer. Takes 11 days to mature, but keeps producing after that.",
			Value:       50, StackSize: 99,
			Seed: &SeedInfo{CropID: "crop_tomato", GrowDays: 11, RegrowDays: 4, Seasons: []world.Season{world.SeasonSummer}},
		},
		{
			ID: "corn_seed", Name: "Corn Seeds", Category: CategorySeed,
			Description: "Plant these in summer or fall. Takes 14 days to mature, but keeps producing after that.",
			Value:       150, StackSize: 99,
			Seed: &SeedInfo{CropID: "crop_corn", GrowDays: 14, RegrowDays: 4, Seasons: []world.Season{world.SeasonSummer, world.SeasonFall}},
		},
		{
			ID: "pumpkin_seed", Name: "Pumpkin Seeds", Category: CategorySeed,
			Description: "Plant these in fall. Takes 13 days to mature.",
			Value:       100, StackSize: 99,
			Seed: &SeedInfo{CropID: "crop_pumpkin", GrowDays: 13, Seasons: []world.Season{world.SeasonFall}},
		},

		{
			ID: "crop_turnip", Name: "Turnip", Category: CategoryCrop,
			Description: "A spring crop.",
			Value:       35, StackSize: 99,
			Crop: &CropInfo{SeedID: "turnip_seed", Energy: 15, Health: 5, Seasons: []world.Season{world.SeasonSpring}},
		},
		{
			ID: "crop_potato", Name: "Potato", Category: CategoryCrop,
			Description: "A starchy tuber.",
			Value:       80, StackSize: 99,
			Crop: &CropInfo{SeedID: "potato_seed", Energy: 25, Health: 10, Seasons: []world.Season{world.SeasonSpring}},
		},
		{
			ID: "crop_tomato", Name: "Tomato", Category: CategoryCrop,
			Description: "A juicy summer fruit.",
			Value:       60, StackSize: 99,
			Crop: &CropInfo{SeedID: "tomato_seed", Energy: 20, Health: 8, Regrows: true, RegrowDays: 4, Seasons: []world.Season{world.SeasonSummer}},
		},
		{
			ID: "crop_corn", Name: "Corn", Category: CategoryCrop,
			Description: "A tall grain with high yield.",
			Value:       50, StackSize: 99,
			Crop: &CropInfo{SeedID: "corn_seed", Energy: 18, Health: 5, Regrows: true, RegrowDays: 4, Seasons: []world.Season{world.SeasonSummer, world.SeasonFall}},
		},
		{
			ID: "crop_pumpkin", Name: "Pumpkin", Category: CategoryCrop,
			Description: "A fall crop with many uses.",
			Value:       320, StackSize: 99,
			Crop: &CropInfo{SeedID: "pumpkin_seed", Energy: 45, Health: 20, Seasons: []world.Season{world.SeasonFall}},
		},

		{
			ID: "hoe", Name: "Hoe", Category: CategoryTool,
			Description: "Used to till soil for planting.",
			Value:       500, StackSize: 1,
			Tool: &ToolInfo{Tier: 1, EnergyCost: 2},
		},
		{
			ID: "watering_can", Name: "Watering Can", Category: CategoryTool,
			Description: "Used to water crops.",
			Value:       500, StackSize: 1,
			Tool: &ToolInfo{Tier: 1, EnergyCost: 1},
		},
		{
			ID: "axe", Name: "Axe", Category: CategoryTool,
			Description: "Used to chop down trees.",
			Value:       500, StackSize: 1,
			Tool: &ToolInfo{Tier: 1, EnergyCost: 4},
		},
		{
			ID: "pickaxe", Name: "Pickaxe", Category: CategoryTool,
			Description: "Used to break rocks.",
			Value:       500, StackSize: 1,
			Tool: &ToolInfo{Tier: 1, EnergyCost: 4},
		},
		{
			ID: "scythe", Name: "Scythe", Category: CategoryTool,
			Description: "Used to harvest crops and cut grass.",
			Value:       500, StackSize: 1,
			Tool: &ToolInfo{Tier: 1, EnergyCost: 1},
		},

		{
			ID: "bread", Name: "Bread", Category: CategoryFood,
			Description: "A simple loaf of bread.",
			Value:       60, StackSize: 99,
			Food: &FoodInfo{Energy: 50, Health: 20},
		},
		{
			ID: "salad", Name: "Salad", Category: CategoryFood,
			Description: "A fresh garden salad.",
			Value:       110, StackSize: 99,
			Food: &FoodInfo{Energy: 80, Health: 45},
		},
		{
			ID: "vegetable_stew", Name: "Vegetable Stew", Category: CategoryFood,
			Description: "A hearty stew made from vegetables.",
			Value:       200, StackSize: 99,
			Food: &FoodInfo{Energy: 160, Health: 70, Buff: "farming", BuffMinutes: 120},
		},

		{
			ID: "wood", Name: "Wood", Category: CategoryMaterial,
			Description: "Chopped from trees and stumps.",
			Value:       5, StackSize: 99,
		},
		{
			ID: "stone", Name: "Stone", Category: CategoryMaterial,
			Description: "Broken off rocks.",
			Value:       5, StackSize: 99,
		},
		{
			ID: "fiber", Name: "Fiber", Category: CategoryMaterial,
			Description: "Cut from bushes.",
			Value:       2, StackSize: 99,
		},
	}
}

// DefaultCatalog builds the built-in catalog. The defaults are known good,
// a validation failure here is a programming error.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultItems())
	if err != nil {
		panic(err)
	}
	return c
}
