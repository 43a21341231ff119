package model

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Property is a bookable catalog entry.
type Property struct {
	ID           int64
	Location     string
	NightlyPrice decimal.Decimal
	Amenities    []string
	Available    bool
}

// Clone returns a copy that does not share the amenity slice.
func (p Property) Clone() Property {
	p.Amenities = slices.Clone(p.Amenities)
	return p
}
