package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements is applied at startup. The unique index on users.phone is
// load-bearing: the login upsert relies on it to keep one user per phone
// under concurrent first logins.
var schemaStatements = []string{
	`create table if not exists users (
		id         text primary key,
		phone      text not null,
		name       text not null default 'User',
		is_admin   boolean not null default false,
		created_at timestamptz not null default now(),
		updated_at timestamptz not null default now()
	)`,
	`create unique index if not exists users_phone_key on users (phone)`,
	`create table if not exists designs (
		id           text primary key,
		user_id      text not null,
		name         text not null,
		image        text not null,
		canvas_json  text not null,
		jewelry_type jsonb not null,
		metal_type   jsonb not null,
		notes        text not null default '',
		status       text not null default 'pending',
		date         timestamptz not null default now(),
		created_at   timestamptz not null default now(),
		updated_at   timestamptz not null default now()
	)`,
	`create index if not exists designs_user_id_idx on designs (user_id)`,
	`create index if not exists designs_date_idx on designs (date desc)`,
}

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
