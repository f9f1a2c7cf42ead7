package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bhekani17/Eargleevents2/internal/model"
)

func (r *repository) GetCustomerByID(ctx context.Context, id int64) (*model.Customer, error) {
	query := `
		SELECT id, full_name, email, phone, company, status, created_at, updated_at
		FROM customers
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, query, id)

	var c model.Customer
	if err := row.Scan(
		&c.ID,
		&c.FullName,
		&c.Email,
		&c.Phone,
		&c.Company,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, ErrCustomerNotFound
	}

	return &c, nil
}

func (r *repository) GetAllCustomers(ctx context.Context, status string) ([]model.Customer, error) {
	query := `
		SELECT id, full_name, email, phone, company, status, created_at, updated_at
		FROM customers
	`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(
			&c.ID,
			&c.FullName,
			&c.Email,
			&c.Phone,
			&c.Company,
			&c.Status,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	return customers, nil
}

func (r *repository) UpdateCustomerStatusTx(ctx context.Context, customerID int64, newStatus string) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	query := `
		UPDATE customers
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var id int64
	if err := tx.QueryRowContext(ctx, query, newStatus, customerID).Scan(&id); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("failed to update customer status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteStaleQuotationCustomers removes every customer still in quotation
// status whose record is older than the cutoff. Their pending quotes go with
// them through the FK cascade. Returns the number of customers deleted.
func (r *repository) DeleteStaleQuotationCustomers(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM customers
		WHERE status = 'quotation' AND created_at < $1
	`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale quotation customers: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return deleted, nil
}
