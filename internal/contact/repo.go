package contact

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gitahub/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) Create(ctx context.Context, m models.ContactMessage) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO contact_messages (id, name, email, message, forwarded, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, m.ID, m.Name, m.Email, m.Message, m.Forwarded, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

func (r *Repo) MarkForwarded(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE contact_messages
		SET forwarded = 1
		WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("mark forwarded: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark forwarded rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("mark forwarded: message %s not found", id)
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, name, email, message, forwarded, created_at
		FROM contact_messages
		WHERE id = ?
	`, id)

	var m models.ContactMessage
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.Forwarded, &m.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact message: %w", err)
	}
	return &m, nil
}

// List returns messages newest first.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]models.ContactMessage, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count contact messages: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, email, message, forwarded, created_at
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	out := make([]models.ContactMessage, 0, limit)
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.Forwarded, &m.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan contact message: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows contact messages: %w", err)
	}
	return out, total, nil
}
