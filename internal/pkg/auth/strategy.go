package auth

import (
	"errors"
	"time"
)

// ErrInvalidToken is returned for malformed, forged or expired tokens.
var ErrInvalidToken = errors.New("invalid auth token")

const defaultTokenTTL = 24 * time.Hour

// Strategy issues session tokens bound to a user identifier.
type Strategy interface {
	IssueToken(userID int64) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

// Options tune token strategies.
type Options struct {
	TTL time.Duration
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

func (o Options) normalized() Options {
	if o.TTL <= 0 {
		o.TTL = defaultTokenTTL
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
