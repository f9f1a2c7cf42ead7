package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bhekani17/Eargleevents2/internal/model"
)

func (r *repository) CreatePackage(ctx context.Context, p *model.RentalPackage) (int64, error) {
	query := `
		INSERT INTO packages (name, description, category, price_per_day, items_included, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	row := r.db.QueryRowContext(ctx, query,
		p.Name, p.Description, p.Category, p.PricePerDay, p.ItemsIncluded, p.IsActive,
	)

	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert package: %w", err)
	}
	return id, nil
}

func (r *repository) GetPackageByID(ctx context.Context, id int64) (*model.RentalPackage, error) {
	query := `
		SELECT id, name, description, category, price_per_day, items_included,
		       is_active, created_at, updated_at
		FROM packages WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, query, id)

	var p model.RentalPackage
	if err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Category, &p.PricePerDay, &p.ItemsIncluded,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, ErrPackageNotFound
	}
	return &p, nil
}

func (r *repository) GetAllPackages(ctx context.Context, activeOnly bool) ([]model.RentalPackage, error) {
	query := `
		SELECT id, name, description, category, price_per_day, items_included,
		       is_active, created_at, updated_at
		FROM packages
	`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY category, name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get packages: %w", err)
	}
	defer rows.Close()

	var packages []model.RentalPackage
	for rows.Next() {
		var p model.RentalPackage
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Category,
			&p.PricePerDay,
			&p.ItemsIncluded,
			&p.IsActive,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan package: %w", err)
		}
		packages = append(packages, p)
	}

	return packages, nil
}

func (r *repository) UpdatePackage(ctx context.Context, p *model.RentalPackage) error {
	query := `
		UPDATE packages
		SET name = $1, description = $2, category = $3, price_per_day = $4,
		    items_included = $5, is_active = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		p.Name, p.Description, p.Category, p.PricePerDay, p.ItemsIncluded, p.IsActive, p.ID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPackageNotFound
		}
		return fmt.Errorf("failed to update package: %w", err)
	}
	return nil
}

func (r *repository) DeletePackage(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM packages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete package: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrPackageNotFound
	}
	return nil
}
