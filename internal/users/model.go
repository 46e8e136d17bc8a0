package users

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("user not found")

// User is an identity record keyed by phone number. Name is a mutable
// display label; the login flow records whatever non-empty password value
// the caller sent as the new name.
type User struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Reader is the lookup capability the admin gate depends on.
type Reader interface {
	GetByID(ctx context.Context, id string) (*User, error)
}
