package database

import (
	"time"

	"merchant-dashboard-backend/models"
)

// DefaultCategoryNames are created for every new store.
var DefaultCategoryNames = []string{
	"Starters",
	"Main Course",
	"Desserts",
	"Beverages",
	"Snacks",
	"Combos",
	"Add-ons",
}

// Seed is the initial state a Catalog is built from.
type Seed struct {
	Stores     []models.Store
	Categories []models.Category
	Items      []models.MenuItem
	Profile    models.MerchantProfile
}

// EmptySeed holds no records and a blank profile.
func EmptySeed() Seed {
	return Seed{}
}

// DefaultSeed returns the demo data the dashboard starts with.
func DefaultSeed(now time.Time) Seed {
	return Seed{
		Stores: []models.Store{
			{
				ID:          "store-1",
				Name:        "The Golden Spoon",
				Address:     "123 Culinary Ave",
				City:        "New York, NY",
				Logo:        "https://picsum.photos/100/100?random=101",
				CoverImage:  "https://picsum.photos/800/400?random=201",
				IsOpen:      true,
				Lat:         40.7128,
				Lng:         -74.0060,
				LastUpdated: now,
				Rating:      4.8,
			},
			{
				ID:          "store-2",
				Name:        "Burger & Co",
				Address:     "45 Meatpacker Dist",
				City:        "New York, NY",
				Logo:        "https://picsum.photos/100/100?random=102",
				CoverImage:  "https://picsum.photos/800/400?random=202",
				IsOpen:      false,
				Lat:         40.7589,
				Lng:         -73.9851,
				LastUpdated: now.Add(-24 * time.Hour),
				Rating:      4.5,
			},
		},
		Categories: []models.Category{
			{ID: "c1", StoreID: "store-1", Name: "Starters"},
			{ID: "c2", StoreID: "store-1", Name: "Mains"},
			{ID: "c3", StoreID: "store-2", Name: "Burgers"},
			{ID: "c4", StoreID: "store-2", Name: "Drinks"},
		},
		Items: []models.MenuItem{
			{
				ID:          "i1",
				StoreID:     "store-1",
				Name:        "Truffle Pasta",
				Description: "Tagliatelle with black truffle cream.",
				Price:       24.00,
				Category:    "Mains",
				Image:       "https://picsum.photos/200/200?random=1",
				InStock:     true,
				ItemType:    models.ItemTypeVeg,
			},
			{
				ID:          "i2",
				StoreID:     "store-1",
				Name:        "Burrata",
				Description: "Creamy cheese with tomatoes.",
				Price:       18.00,
				Category:    "Starters",
				Image:       "https://picsum.photos/200/200?random=2",
				InStock:     true,
				ItemType:    models.ItemTypeVeg,
			},
			{
				ID:          "i3",
				StoreID:     "store-2",
				Name:        "Classic Smash",
				Description: "Double beef patty, cheese, onion.",
				Price:       14.00,
				Category:    "Burgers",
				Image:       "https://picsum.photos/200/200?random=3",
				InStock:     true,
				ItemType:    models.ItemTypeNonVeg,
			},
		},
		Profile: models.MerchantProfile{
			Name:       "Alex Merchant",
			ID:         "M-8839201",
			Email:      "alex@goldenspoon.com",
			Phone:      "+1 (555) 012-3456",
			Avatar:     "https://picsum.photos/200/200?random=888",
			Plan:       "Pro Merchant",
			Revenue:    "$12.4k",
			StoreCount: 2,
			Rating:     4.9,
		},
	}
}
