package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bhekani17/Eargleevents2/internal/model"
)

// CreateQuoteTx finds or creates the customer by email, prices the requested
// items from the package catalogue and inserts the quote with its items, all
// in one transaction. The quote total and customer ID are filled in on the
// passed structs.
func (r *repository) CreateQuoteTx(ctx context.Context, quote *model.Quote, customer *model.Customer) (int64, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	var customerID int64
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM customers WHERE email = $1 FOR UPDATE
	`, customer.Email).Scan(&customerID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		err = tx.QueryRowContext(ctx, `
			INSERT INTO customers (full_name, email, phone, company, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			RETURNING id
		`, customer.FullName, customer.Email, customer.Phone, customer.Company, customer.Status).Scan(&customerID)
		if err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("failed to create customer: %w", err)
		}
	case err != nil:
		_ = tx.Rollback()
		return 0, fmt.Errorf("failed to look up customer: %w", err)
	}
	customer.ID = int(customerID)
	quote.CustomerID = int(customerID)

	var total float64
	for i := range quote.Items {
		item := &quote.Items[i]

		var price float64
		err = tx.QueryRowContext(ctx, `
			SELECT price_per_day FROM packages
			WHERE id = $1 AND is_active
			FOR UPDATE
		`, item.PackageID).Scan(&price)
		if err != nil {
			_ = tx.Rollback()
			return 0, ErrPackageNotFound
		}

		item.UnitPrice = price
		item.LineTotal = price * float64(item.Quantity)
		total += item.LineTotal
	}
	quote.Total = total

	var quoteID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO quotes (customer_id, event_type, event_date, notes, status, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id
	`, quote.CustomerID, quote.EventType, quote.EventDate, quote.Notes, quote.Status, quote.Total).Scan(&quoteID)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("failed to create quote: %w", err)
	}

	for i := range quote.Items {
		item := &quote.Items[i]
		item.QuoteID = int(quoteID)
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO quote_items (quote_id, package_id, quantity, unit_price, line_total)
			VALUES ($1, $2, $3, $4, $5)
		`, quoteID, item.PackageID, item.Quantity, item.UnitPrice, item.LineTotal); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("failed to create quote item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return quoteID, nil
}

func (r *repository) GetQuoteByID(ctx context.Context, id int64) (*model.Quote, error) {
	query := `
		SELECT id, customer_id, event_type, event_date, notes, status, total, created_at, updated_at
		FROM quotes
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, query, id)

	var q model.Quote
	if err := row.Scan(
		&q.ID,
		&q.CustomerID,
		&q.EventType,
		&q.EventDate,
		&q.Notes,
		&q.Status,
		&q.Total,
		&q.CreatedAt,
		&q.UpdatedAt,
	); err != nil {
		return nil, ErrQuoteNotFound
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, quote_id, package_id, quantity, unit_price, line_total
		FROM quote_items
		WHERE quote_id = $1
		ORDER BY id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item model.QuoteItem
		if err := rows.Scan(
			&item.ID,
			&item.QuoteID,
			&item.PackageID,
			&item.Quantity,
			&item.UnitPrice,
			&item.LineTotal,
		); err != nil {
			return nil, fmt.Errorf("failed to scan quote item: %w", err)
		}
		q.Items = append(q.Items, item)
	}

	return &q, nil
}

func (r *repository) GetAllQuotes(ctx context.Context, status string) ([]model.Quote, error) {
	query := `
		SELECT id, customer_id, event_type, event_date, notes, status, total, created_at, updated_at
		FROM quotes
	`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get quotes: %w", err)
	}
	defer rows.Close()

	var quotes []model.Quote
	for rows.Next() {
		var q model.Quote
		if err := rows.Scan(
			&q.ID,
			&q.CustomerID,
			&q.EventType,
			&q.EventDate,
			&q.Notes,
			&q.Status,
			&q.Total,
			&q.CreatedAt,
			&q.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		quotes = append(quotes, q)
	}

	return quotes, nil
}

func (r *repository) UpdateQuoteStatusTx(ctx context.Context, quoteID int64, newStatus string) error {
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
		UPDATE quotes
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var id int64
	if err := tx.QueryRowContext(ctx, query, newStatus, quoteID).Scan(&id); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return ErrQuoteNotFound
		}
		return fmt.Errorf("failed to update quote status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
