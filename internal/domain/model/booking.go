package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format accepted for check-in and check-out.
const DateLayout = "2006-01-02"

// Stay is a check-in/check-out date pair.
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// Nights returns the number of calendar days between check-in and check-out.
// The result is negative when check-out precedes check-in.
func (s Stay) Nights() int {
	return int(civilDay(s.CheckOut) - civilDay(s.CheckIn))
}

// civilDay numbers the calendar date of t counting from the Unix epoch.
func civilDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
}

const secondsPerDay = 24 * 60 * 60

// Total prices the stay at the given nightly rate.
func (s Stay) Total(nightly decimal.Decimal) decimal.Decimal {
	return nightly.Mul(decimal.NewFromInt(int64(s.Nights())))
}

// Booking is a live reservation of one property by one customer.
type Booking struct {
	ID         int64
	PropertyID int64
	Location   string
	CustomerID int64
	CheckIn    time.Time
	CheckOut   time.Time
	Nights     int
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
}

// Stay returns the booked date range.
func (b Booking) Stay() Stay {
	return Stay{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}
