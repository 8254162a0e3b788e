package entity

import (
	"time"
)

// User is an account allowed to authenticate.
// Password holds a bcrypt hash and must never be serialized to clients.
type User struct {
	ID        string
	Username  string
	Email     string
	Password  string
	CreatedAt time.Time
}
