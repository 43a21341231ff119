package dto

import "github.com/shopspring/decimal"

// PropertyResponse describes a catalog entry.
type PropertyResponse struct {
	ID           int64           `json:"id"`
	Location     string          `json:"location"`
	NightlyPrice decimal.Decimal `json:"nightly_price"`
	Amenities    []string        `json:"amenities"`
	Available    bool            `json:"available"`
}
