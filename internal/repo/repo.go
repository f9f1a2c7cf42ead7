package repo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/dbpg"

	"github.com/bhekani17/Eargleevents2/internal/model"
)

var (
	ErrPackageNotFound  = errors.New("package not found")
	ErrQuoteNotFound    = errors.New("quote not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrMessageNotFound  = errors.New("message not found")
	ErrAdminNotFound    = errors.New("admin not found")
	ErrDuplicateAdmin   = errors.New("admin already exists")
)

type Repository interface {
	CreatePackage(ctx context.Context, p *model.RentalPackage) (int64, error)
	GetPackageByID(ctx context.Context, id int64) (*model.RentalPackage, error)
	GetAllPackages(ctx context.Context, activeOnly bool) ([]model.RentalPackage, error)
	UpdatePackage(ctx context.Context, p *model.RentalPackage) error
	DeletePackage(ctx context.Context, id int64) error

	CreateQuoteTx(ctx context.Context, quote *model.Quote, customer *model.Customer) (int64, error)
	GetQuoteByID(ctx context.Context, id int64) (*model.Quote, error)
	GetAllQuotes(ctx context.Context, status string) ([]model.Quote, error)
	UpdateQuoteStatusTx(ctx context.Context, quoteID int64, newStatus string) error

	GetCustomerByID(ctx context.Context, id int64) (*model.Customer, error)
	GetAllCustomers(ctx context.Context, status string) ([]model.Customer, error)
	UpdateCustomerStatusTx(ctx context.Context, customerID int64, newStatus string) error
	DeleteStaleQuotationCustomers(ctx context.Context, cutoff time.Time) (int64, error)

	CreateMessage(ctx context.Context, m *model.Message) (int64, error)
	GetAllMessages(ctx context.Context, unreadOnly bool) ([]model.Message, error)
	MarkMessageRead(ctx context.Context, id int64) error

	CreateAdmin(ctx context.Context, a *model.Admin) (int64, error)
	GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error)
	GetAdminByID(ctx context.Context, id int64) (*model.Admin, error)

	GetDashboardStats(ctx context.Context) (*model.DashboardStats, error)

	MigrateUp(migrationsDir string) error
	MigrateDown(migrationsDir string) error
}

type repository struct {
	db  *dbpg.DB
	log *zerolog.Logger
}

func NewRepository(db *dbpg.DB, log *zerolog.Logger) (Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	if err := db.Master.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	return &repository{db: db, log: log}, nil
}

func (r *repository) MigrateUp(migrationsDir string) error {
	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.up.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migration files: %w", err)
	}

	for _, file := range files {
		sqlBytes, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		if _, err := r.db.ExecContext(context.Background(), string(sqlBytes)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", file, err)
		}
	}

	r.log.Info().Msgf("Migrations applied successfully from %s", migrationsDir)
	return nil
}

func (r *repository) MigrateDown(migrationsDir string) error {
	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.down.sql"))
	if err != nil {
		return fmt.Errorf("failed to read rollback files: %w", err)
	}

	for _, file := range files {
		sqlBytes, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read rollback file %s: %w", file, err)
		}

		if _, err := r.db.ExecContext(context.Background(), string(sqlBytes)); err != nil {
			return fmt.Errorf("failed to rollback migration %s: %w", file, err)
		}
	}

	r.log.Info().Msgf("Migrations rolled back successfully from %s", migrationsDir)
	return nil
}
