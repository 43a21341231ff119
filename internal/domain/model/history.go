package model

// History is everything a customer currently has on record.
type History struct {
	Bookings []Booking
	Payments []Payment
}

// Empty reports whether there is nothing to show.
func (h History) Empty() bool {
	return len(h.Bookings) == 0 && len(h.Payments) == 0
}
