package teacher

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("teacher not found")
	ErrUsernameRequired = errors.New("username is required")
	ErrUsernameTaken    = errors.New("username already registered")
)

// Teacher is an entry in the school's teacher directory, keyed by username.
// Existence of an entry is the only authentication signal the system uses.
type Teacher struct {
	Username    string
	DisplayName *string
	CreatedAt   time.Time
}
