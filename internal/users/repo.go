package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Login resolves or creates the user for a phone number in one upsert, so
// two concurrent first logins with the same phone still end up with a single
// row. A non-empty name overwrites the stored one; an empty name leaves it
// alone, defaulting to "User" on first insert. is_admin is never touched.
func (r *Repo) Login(ctx context.Context, phone, name string) (*User, error) {
	if phone == "" {
		return nil, fmt.Errorf("phone required")
	}

	const q = `
insert into users (id, phone, name, updated_at)
values ($1, $2, coalesce(nullif($3,''), 'User'), now())
on conflict (phone) do update
set
  name = case when nullif($3,'') is null then users.name else $3 end,
  updated_at = now()
returning id, phone, name, is_admin, created_at, updated_at;
`
	var u User
	err := r.db.QueryRow(ctx, q, uuid.New().String(), phone, name).
		Scan(&u.ID, &u.Phone, &u.Name, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("login upsert: %w", err)
	}
	return &u, nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (*User, error) {
	const q = `
select id, phone, name, is_admin, created_at, updated_at
from users
where id = $1;
`
	var u User
	err := r.db.QueryRow(ctx, q, id).
		Scan(&u.ID, &u.Phone, &u.Name, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
