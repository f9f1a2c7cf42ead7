package repo

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/bhekani17/Eargleevents2/internal/model"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	mock.ExpectPing()

	log := zerolog.Nop()
	r, err := NewRepository(&dbpg.DB{Master: mockDB}, &log)
	require.NoError(t, err)

	return r, mock
}

func TestUpdateQuoteStatusTx(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE quotes\s+SET status = \$1, updated_at = NOW\(\)\s+WHERE id = \$2`).
		WithArgs("approved", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	err := r.UpdateQuoteStatusTx(context.Background(), 7, "approved")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateQuoteStatusTxNotFound(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE quotes`).
		WithArgs("approved", int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := r.UpdateQuoteStatusTx(context.Background(), 99, "approved")
	assert.ErrorIs(t, err, ErrQuoteNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteStaleQuotationCustomers(t *testing.T) {
	r, mock := newMockRepo(t)

	cutoff := time.Date(2026, 7, 24, 0, 0, 0, 0, time.UTC)

	// The filter must pair quotation status with the age cutoff: nothing
	// else is ever eligible for the sweep.
	mock.ExpectExec(`DELETE FROM customers\s+WHERE status = 'quotation' AND created_at < \$1`).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := r.DeleteStaleQuotationCustomers(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteStaleQuotationCustomersNoneEligible(t *testing.T) {
	r, mock := newMockRepo(t)

	cutoff := time.Now().Add(-30 * 24 * time.Hour)
	mock.ExpectExec(`DELETE FROM customers`).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := r.DeleteStaleQuotationCustomers(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestCreateQuoteTxNewCustomer(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM customers WHERE email = \$1 FOR UPDATE`).
		WithArgs("jane@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO customers`).
		WithArgs("Jane Doe", "jane@example.com", "+27110000000", "", "quotation").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
	mock.ExpectQuery(`SELECT price_per_day FROM packages`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"price_per_day"}).AddRow(150.0))
	mock.ExpectQuery(`SELECT price_per_day FROM packages`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"price_per_day"}).AddRow(80.0))
	mock.ExpectQuery(`INSERT INTO quotes`).
		WithArgs(12, "wedding", sqlmock.AnyArg(), "", "pending", 460.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(44))
	mock.ExpectExec(`INSERT INTO quote_items`).
		WithArgs(int64(44), 3, 2, 150.0, 300.0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO quote_items`).
		WithArgs(int64(44), 5, 2, 80.0, 160.0).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	customer := &model.Customer{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+27110000000",
		Status:   "quotation",
	}
	quote := &model.Quote{
		EventType: "wedding",
		EventDate: time.Now().Add(45 * 24 * time.Hour),
		Status:    "pending",
		Items: []model.QuoteItem{
			{PackageID: 3, Quantity: 2},
			{PackageID: 5, Quantity: 2},
		},
	}

	id, err := r.CreateQuoteTx(context.Background(), quote, customer)
	require.NoError(t, err)
	assert.Equal(t, int64(44), id)
	assert.Equal(t, 12, customer.ID)
	assert.Equal(t, 12, quote.CustomerID)
	assert.Equal(t, 460.0, quote.Total)
	assert.Equal(t, 300.0, quote.Items[0].LineTotal)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateQuoteTxExistingCustomer(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM customers WHERE email = \$1 FOR UPDATE`).
		WithArgs("jane@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
	mock.ExpectQuery(`SELECT price_per_day FROM packages`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"price_per_day"}).AddRow(150.0))
	mock.ExpectQuery(`INSERT INTO quotes`).
		WithArgs(12, "birthday", sqlmock.AnyArg(), "", "pending", 150.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(45))
	mock.ExpectExec(`INSERT INTO quote_items`).
		WithArgs(int64(45), 3, 1, 150.0, 150.0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	customer := &model.Customer{Email: "jane@example.com", Status: "quotation"}
	quote := &model.Quote{
		EventType: "birthday",
		EventDate: time.Now().Add(10 * 24 * time.Hour),
		Status:    "pending",
		Items:     []model.QuoteItem{{PackageID: 3, Quantity: 1}},
	}

	_, err := r.CreateQuoteTx(context.Background(), quote, customer)
	require.NoError(t, err)
	assert.Equal(t, 12, quote.CustomerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateQuoteTxUnknownPackage(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM customers`).
		WithArgs("jane@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
	mock.ExpectQuery(`SELECT price_per_day FROM packages`).
		WithArgs(999).
		WillReturnRows(sqlmock.NewRows([]string{"price_per_day"}))
	mock.ExpectRollback()

	customer := &model.Customer{Email: "jane@example.com", Status: "quotation"}
	quote := &model.Quote{
		EventType: "wedding",
		Status:    "pending",
		Items:     []model.QuoteItem{{PackageID: 999, Quantity: 1}},
	}

	_, err := r.CreateQuoteTx(context.Background(), quote, customer)
	assert.ErrorIs(t, err, ErrPackageNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkMessageReadNotFound(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`UPDATE messages\s+SET is_read = TRUE`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := r.MarkMessageRead(context.Background(), 5)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestGetDashboardStats(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM quotes`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"count", "pending", "approved", "rejected", "revenue"},
		).AddRow(10, 4, 5, 1, 12500.0))
	mock.ExpectQuery(`FROM customers`).
		WillReturnRows(sqlmock.NewRows([]string{"count", "quotation"}).AddRow(8, 3))
	mock.ExpectQuery(`FROM messages`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	stats, err := r.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, stats.TotalQuotes)
	assert.Equal(t, 5, stats.ApprovedQuotes)
	assert.Equal(t, 3, stats.QuotationCustomers)
	assert.Equal(t, 2, stats.UnreadMessages)
	assert.Equal(t, 12500.0, stats.ApprovedRevenue)
}
