package http

import (
	"context"

	"github.com/sofili-studio/studio-backend/internal/users"
)

// LoginStore is the slice of the users repo the login handler needs.
type LoginStore interface {
	Login(ctx context.Context, phone, name string) (*users.User, error)
}

type Handler struct {
	store LoginStore
	cache *users.Cache
}

// New builds the auth handler. cache may be nil; when present, login
// refreshes the cached user record consulted by the admin gate.
func New(store LoginStore, cache *users.Cache) *Handler {
	return &Handler{
		store: store,
		cache: cache,
	}
}
