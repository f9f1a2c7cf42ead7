package service

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/ginext"

	"github.com/bhekani17/Eargleevents2/internal/dto"
	"github.com/bhekani17/Eargleevents2/internal/model"
	"github.com/bhekani17/Eargleevents2/internal/repo"
)

type Service interface {
	CreatePackage(ctx *ginext.Context)
	UpdatePackage(ctx *ginext.Context)
	DeletePackage(ctx *ginext.Context)
	GetPackage(ctx *ginext.Context)
	GetAllPackages(ctx *ginext.Context)

	SubmitQuote(ctx *ginext.Context)
	GetQuote(ctx *ginext.Context)
	GetAllQuotes(ctx *ginext.Context)
	ApproveQuote(ctx *ginext.Context)
	RejectQuote(ctx *ginext.Context)

	GetAllCustomers(ctx *ginext.Context)
	CancelCustomer(ctx *ginext.Context)

	CreateMessage(ctx *ginext.Context)
	GetAllMessages(ctx *ginext.Context)
	MarkMessageRead(ctx *ginext.Context)

	Login(ctx *ginext.Context)
	RegisterAdmin(ctx *ginext.Context)

	GetDashboard(ctx *ginext.Context)
}

// Publisher is the slice of the rabbit client the service needs.
type Publisher interface {
	Publish(message []byte, delaySeconds int) error
}

type Config struct {
	JWTSecret     string
	TokenTTL      time.Duration
	ReminderDelay time.Duration
}

type service struct {
	repo repo.Repository
	log  *zerolog.Logger
	rbt  Publisher
	cfg  Config
}

func NewService(repo repo.Repository, logger *zerolog.Logger, rbt Publisher, cfg Config) Service {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.ReminderDelay <= 0 {
		cfg.ReminderDelay = 72 * time.Hour
	}
	return &service{
		repo: repo,
		log:  logger,
		rbt:  rbt,
		cfg:  cfg,
	}
}

// publishNotification enqueues a quote email. Failures are logged, never
// surfaced: notifications must not fail the request that triggered them.
func (s *service) publishNotification(quoteID int64, kind string, delay time.Duration) {
	msg := dto.QuoteNotificationMessage{QuoteID: quoteID, Kind: kind}
	payload, err := json.Marshal(msg)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to marshal notification message")
		return
	}
	if err := s.rbt.Publish(payload, int(delay.Seconds())); err != nil {
		s.log.Error().Err(err).
			Int64("quote_id", quoteID).
			Str("kind", kind).
			Msg("failed to publish notification to RabbitMQ")
	}
}

func toQuoteResponse(q *model.Quote) dto.QuoteResponse {
	resp := dto.QuoteResponse{
		ID:         int64(q.ID),
		CustomerID: int64(q.CustomerID),
		EventType:  q.EventType,
		EventDate:  q.EventDate,
		Notes:      q.Notes,
		Status:     q.Status,
		Total:      q.Total,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
	for _, item := range q.Items {
		resp.Items = append(resp.Items, dto.QuoteItemResponse{
			PackageID: int64(item.PackageID),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		})
	}
	return resp
}

func toCustomerResponse(c *model.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        int64(c.ID),
		FullName:  c.FullName,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toPackageResponse(p *model.RentalPackage) dto.PackageResponse {
	return dto.PackageResponse{
		ID:            int64(p.ID),
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		PricePerDay:   p.PricePerDay,
		ItemsIncluded: p.ItemsIncluded,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toMessageResponse(m *model.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:        int64(m.ID),
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Body:      m.Body,
		Source:    m.Source,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}
