package designs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Repo handles PostgreSQL operations for designs.
type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

const designColumns = `id, user_id, name, image, canvas_json, jewelry_type, metal_type, notes, status, date, created_at, updated_at`

// Create persists the design with a generated id, status forced to pending
// and date set to now.
func (r *Repo) Create(ctx context.Context, in NewDesign) (*Design, error) {
	jewelryJSON, err := json.Marshal(in.JewelryType)
	if err != nil {
		return nil, fmt.Errorf("marshal jewelry type: %w", err)
	}
	metalJSON, err := json.Marshal(in.MetalType)
	if err != nil {
		return nil, fmt.Errorf("marshal metal type: %w", err)
	}

	query := `
		INSERT INTO designs (id, user_id, name, image, canvas_json, jewelry_type, metal_type, notes, status, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, '` + StatusPending + `', NOW())
		RETURNING ` + designColumns

	row := r.db.QueryRowContext(ctx, query,
		uuid.New().String(),
		in.UserID,
		in.Name,
		in.Image,
		in.JSON,
		jewelryJSON,
		metalJSON,
		in.Notes,
	)

	d, err := scanDesign(row)
	if err != nil {
		return nil, fmt.Errorf("create design: %w", err)
	}
	return d, nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (*Design, error) {
	query := `SELECT ` + designColumns + ` FROM designs WHERE id = $1`

	d, err := scanDesign(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get design: %w", err)
	}
	return d, nil
}

// ListByUser returns the user's designs, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]Design, error) {
	query := `SELECT ` + designColumns + ` FROM designs WHERE user_id = $1 ORDER BY date DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list designs: %w", err)
	}
	defer rows.Close()

	return collectDesigns(rows)
}

// ListAll returns every design across all users, newest first.
func (r *Repo) ListAll(ctx context.Context) ([]Design, error) {
	query := `SELECT ` + designColumns + ` FROM designs ORDER BY date DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all designs: %w", err)
	}
	defer rows.Close()

	return collectDesigns(rows)
}

// ApplyPatch updates only the allow-listed fields that are set and returns
// the full updated record. The SET clause is built column by column from the
// patch, never merged from raw caller input.
func (r *Repo) ApplyPatch(ctx context.Context, id string, p Patch) (*Design, error) {
	set := make([]string, 0, 8)
	args := make([]any, 0, 8)

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Notes != nil {
		add("notes", *p.Notes)
	}
	if p.Status != nil {
		add("status", *p.Status)
	}
	if p.Image != nil {
		add("image", *p.Image)
	}
	if p.JSON != nil {
		add("canvas_json", *p.JSON)
	}
	if p.JewelryType != nil {
		b, err := json.Marshal(*p.JewelryType)
		if err != nil {
			return nil, fmt.Errorf("marshal jewelry type: %w", err)
		}
		add("jewelry_type", b)
	}
	if p.MetalType != nil {
		b, err := json.Marshal(*p.MetalType)
		if err != nil {
			return nil, fmt.Errorf("marshal metal type: %w", err)
		}
		add("metal_type", b)
	}

	// Empty patch still resolves the record, matching a no-op update.
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	set = append(set, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE designs SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), designColumns,
	)

	d, err := scanDesign(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("patch design: %w", err)
	}
	return d, nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM designs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete design: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete design: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountPending reports how many designs still wait for review.
func (r *Repo) CountPending(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM designs WHERE status = $1`, StatusPending,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pending: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDesign(row rowScanner) (*Design, error) {
	var d Design
	var jewelryJSON, metalJSON []byte

	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.Name,
		&d.Image,
		&d.JSON,
		&jewelryJSON,
		&metalJSON,
		&d.Notes,
		&d.Status,
		&d.Date,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(jewelryJSON, &d.JewelryType); err != nil {
		return nil, fmt.Errorf("unmarshal jewelry type: %w", err)
	}
	if err := json.Unmarshal(metalJSON, &d.MetalType); err != nil {
		return nil, fmt.Errorf("unmarshal metal type: %w", err)
	}
	return &d, nil
}

func collectDesigns(rows *sql.Rows) ([]Design, error) {
	out := make([]Design, 0, 16)
	for rows.Next() {
		d, err := scanDesign(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}
