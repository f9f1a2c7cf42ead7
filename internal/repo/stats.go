package repo

import (
	"context"
	"fmt"

	"github.com/bhekani17/Eargleevents2/internal/model"
)

// GetDashboardStats aggregates the counters the admin dashboard shows.
func (r *repository) GetDashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats

	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'rejected'),
			COALESCE(SUM(total) FILTER (WHERE status = 'approved'), 0)
		FROM quotes
	`).Scan(
		&stats.TotalQuotes,
		&stats.PendingQuotes,
		&stats.ApprovedQuotes,
		&stats.RejectedQuotes,
		&stats.ApprovedRevenue,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count quotes: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'quotation')
		FROM customers
	`).Scan(&stats.TotalCustomers, &stats.QuotationCustomers)
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM messages WHERE NOT is_read
	`).Scan(&stats.UnreadMessages)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread messages: %w", err)
	}

	return &stats, nil
}
