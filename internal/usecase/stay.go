package usecase

import (
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/staybook/internal/domain/errors"
	"github.com/polkiloo/staybook/internal/domain/model"
)

// ParseStay parses check-in and check-out dates in YYYY-MM-DD form. A stay
// must cover at least one night.
func ParseStay(checkIn, checkOut string) (model.Stay, error) {
	in, err := parseDate(checkIn)
	if err != nil {
		return model.Stay{}, fmt.Errorf("check-in: %w", err)
	}
	out, err := parseDate(checkOut)
	if err != nil {
		return model.Stay{}, fmt.Errorf("check-out: %w", err)
	}

	stay := model.Stay{CheckIn: in, CheckOut: out}
	if stay.Nights() <= 0 {
		return model.Stay{}, domainErrors.ErrInvalidStay
	}
	return stay, nil
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(model.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must be YYYY-MM-DD: %w", value, domainErrors.ErrInvalidInput)
	}
	return t, nil
}
