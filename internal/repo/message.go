package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bhekani17/Eargleevents2/internal/model"
)

func (r *repository) CreateMessage(ctx context.Context, m *model.Message) (int64, error) {
	query := `
		INSERT INTO messages (name, email, phone, subject, body, source, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NOW())
		RETURNING id
	`

	row := r.db.QueryRowContext(ctx, query,
		m.Name, m.Email, m.Phone, m.Subject, m.Body, m.Source,
	)

	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert message: %w", err)
	}
	return id, nil
}

func (r *repository) GetAllMessages(ctx context.Context, unreadOnly bool) ([]model.Message, error) {
	query := `
		SELECT id, name, email, phone, subject, body, source, is_read, created_at
		FROM messages
	`
	if unreadOnly {
		query += ` WHERE NOT is_read`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Email,
			&m.Phone,
			&m.Subject,
			&m.Body,
			&m.Source,
			&m.IsRead,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}

	return messages, nil
}

// MarkMessageRead is the only mutation messages allow.
func (r *repository) MarkMessageRead(ctx context.Context, id int64) error {
	query := `
		UPDATE messages
		SET is_read = TRUE
		WHERE id = $1
		RETURNING id
	`

	var got int64
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&got); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	return nil
}
