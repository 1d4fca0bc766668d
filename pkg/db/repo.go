package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/truemindlabs-dev/synora/pkg/errors"
)

// ImageRecord is one generated image in a user's history.
type ImageRecord struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	UserEmail  string    `json:"user_email"`
	Prompt     string    `json:"prompt"`
	ImageURL   string    `json:"image_url"`
	ImageKey   string    `json:"image_key"`
	Resolution string    `json:"resolution"`
	Style      string    `json:"style"`
	Metadata   Metadata  `json:"metadata"`
	CreatedAt  time.Time `json:"created_at"`
}

// Metadata holds generation details that do not need their own columns.
type Metadata struct {
	Seed           *int64  `json:"seed,omitempty"`
	AlphaVerified  bool    `json:"alpha_verified"`
	TransparentPct float64 `json:"transparent_pct"`
	Provider       string  `json:"provider,omitempty"`
}

// timeLayout is fixed width so lexicographic order of stored values
// matches chronological order. It is only used on the write side; the
// driver converts the TIMESTAMP column back to time.Time on reads.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Repository reads and writes image history.
type Repository struct {
	handle *sql.DB
}

// NewRepository wraps an open database handle.
func NewRepository(handle *sql.DB) *Repository {
	return &Repository{handle: handle}
}

// Insert stores a record. CreatedAt defaults to now when unset.
func (r *Repository) Insert(ctx context.Context, rec ImageRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if rec.Resolution == "" {
		rec.Resolution = "512x512"
	}
	meta, err := json.Marshal(rec.Metadata)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "marshal metadata failed")
	}
	_, err = r.handle.ExecContext(ctx, `
		INSERT INTO images (id, user_id, user_email, prompt, image_url, image_key, resolution, style, metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.UserID, rec.UserEmail, rec.Prompt, rec.ImageURL, rec.ImageKey,
		rec.Resolution, rec.Style, string(meta), rec.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return errors.Wrap(errors.ErrCodeDatabase, err, "insert image %q failed", rec.ID)
	}
	return nil
}

// ListByUser returns a user's history, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]ImageRecord, error) {
	rows, err := r.handle.QueryContext(ctx, `
		SELECT id, user_id, user_email, prompt, image_url, image_key, resolution, style, metadata, created_at
		FROM images WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?`, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDatabase, err, "list images failed")
	}
	defer rows.Close()

	var out []ImageRecord
	for rows.Next() {
		var rec ImageRecord
		var meta string
		err := rows.Scan(&rec.ID, &rec.UserID, &rec.UserEmail, &rec.Prompt, &rec.ImageURL,
			&rec.ImageKey, &rec.Resolution, &rec.Style, &meta, &rec.CreatedAt)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeDatabase, err, "scan image row failed")
		}
		if err := json.Unmarshal([]byte(meta), &rec.Metadata); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "unmarshal metadata failed")
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDatabase, err, "iterate image rows failed")
	}
	return out, nil
}

// GetByKey returns the record for a storage key, for ownership checks on
// the image route.
func (r *Repository) GetByKey(ctx context.Context, key string) (ImageRecord, error) {
	row := r.handle.QueryRowContext(ctx, `
		SELECT id, user_id, user_email, prompt, image_url, image_key, resolution, style, metadata, created_at
		FROM images WHERE image_key = ?`, key)

	var rec ImageRecord
	var meta string
	err := row.Scan(&rec.ID, &rec.UserID, &rec.UserEmail, &rec.Prompt, &rec.ImageURL,
		&rec.ImageKey, &rec.Resolution, &rec.Style, &meta, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return ImageRecord{}, errors.New(errors.ErrCodeImageNotFound, "image %q not found", key)
	}
	if err != nil {
		return ImageRecord{}, errors.Wrap(errors.ErrCodeDatabase, err, "get image %q failed", key)
	}
	if err := json.Unmarshal([]byte(meta), &rec.Metadata); err != nil {
		return ImageRecord{}, errors.Wrap(errors.ErrCodeInternal, err, "unmarshal metadata failed")
	}
	return rec, nil
}

// CountByUser returns how many images a user has generated.
func (r *Repository) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.handle.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM images WHERE user_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeDatabase, err, "count images failed")
	}
	return n, nil
}

// StyleCounts returns how often a user has used each style.
func (r *Repository) StyleCounts(ctx context.Context, userID string) (map[string]int, error) {
	rows, err := r.handle.QueryContext(ctx, `
		SELECT style, COUNT(*) FROM images
		WHERE user_id = ? GROUP BY style`, userID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDatabase, err, "count styles failed")
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var style string
		var n int
		if err := rows.Scan(&style, &n); err != nil {
			return nil, errors.Wrap(errors.ErrCodeDatabase, err, "scan style row failed")
		}
		counts[style] = n
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDatabase, err, "iterate style rows failed")
	}
	return counts, nil
}
