package model

import "time"

// User represents a registered customer. Names are not unique.
type User struct {
	ID           int64
	Name         string
	SecretDigest string
	CreatedAt    time.Time
}
