package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/bhekani17/Eargleevents2/internal/model"
)

func (r *repository) CreateAdmin(ctx context.Context, a *model.Admin) (int64, error) {
	query := `
		INSERT INTO admins (full_name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, a.FullName, a.Email, a.PasswordHash).Scan(&id)
	if err != nil {
		// 23505 unique_violation on admins_email_key
		if strings.Contains(err.Error(), "duplicate key") {
			return 0, ErrDuplicateAdmin
		}
		return 0, fmt.Errorf("failed to insert admin: %w", err)
	}
	return id, nil
}

func (r *repository) GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error) {
	query := `
		SELECT id, full_name, email, password_hash, created_at, updated_at
		FROM admins
		WHERE email = $1
	`
	row := r.db.QueryRowContext(ctx, query, email)

	var a model.Admin
	if err := row.Scan(
		&a.ID,
		&a.FullName,
		&a.Email,
		&a.PasswordHash,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, ErrAdminNotFound
	}

	return &a, nil
}

func (r *repository) GetAdminByID(ctx context.Context, id int64) (*model.Admin, error) {
	query := `
		SELECT id, full_name, email, password_hash, created_at, updated_at
		FROM admins
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, query, id)

	var a model.Admin
	if err := row.Scan(
		&a.ID,
		&a.FullName,
		&a.Email,
		&a.PasswordHash,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, ErrAdminNotFound
	}

	return &a, nil
}
