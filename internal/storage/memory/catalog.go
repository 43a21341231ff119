package memory

import (
	"github.com/shopspring/decimal"

	"github.com/polkiloo/staybook/internal/domain/model"
)

// DefaultCatalog returns the fixed set of bookable properties, all available.
func DefaultCatalog() []model.Property {
	seed := []struct {
		location  string
		price     int64
		amenities []string
	}{
		{"New York", 150, []string{"WiFi", "Parking"}},
		{"San Francisco", 200, []string{"WiFi", "Breakfast", "Pool"}},
		{"Los Angeles", 180, []string{"WiFi", "Parking", "Gym"}},
		{"Miami", 220, []string{"WiFi", "Pool", "Ocean View"}},
		{"Chicago", 160, []string{"WiFi", "Breakfast", "Fitness Center"}},
		{"Seattle", 175, []string{"WiFi", "Parking", "Mountain View"}},
		{"Austin", 145, []string{"WiFi", "Breakfast", "Pet Friendly"}},
		{"Boston", 195, []string{"WiFi", "Parking", "Gym"}},
		{"Las Vegas", 250, []string{"WiFi", "Casino Access", "Entertainment"}},
		{"Orlando", 210, []string{"WiFi", "Pool", "Family Friendly"}},
	}

	catalog := make([]model.Property, 0, len(seed))
	for i, s := range seed {
		catalog = append(catalog, model.Property{
			ID:           int64(i + 1),
			Location:     s.location,
			NightlyPrice: decimal.NewFromInt(s.price),
			Amenities:    s.amenities,
			Available:    true,
		})
	}
	return catalog
}
