package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/bhekani17/Eargleevents2/internal/dto"
	"github.com/bhekani17/Eargleevents2/internal/lifecycle"
	"github.com/bhekani17/Eargleevents2/internal/metrics"
	"github.com/bhekani17/Eargleevents2/internal/model"
	"github.com/bhekani17/Eargleevents2/internal/repo"
	"github.com/bhekani17/Eargleevents2/pkg/validator"
)

func (s *service) SubmitQuote(ctx *ginext.Context) {
	var req dto.SubmitQuoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		s.log.Error().Err(err).Msg("failed to parse quote request")
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	if verr := validator.Validate(ctx, req); verr != nil {
		s.log.Error().Msgf("validation failed: %v", verr)
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	customer := &model.Customer{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Company:  req.Company,
		Status:   string(lifecycle.CustomerQuotation),
	}

	quote := &model.Quote{
		EventType: req.EventType,
		EventDate: req.EventDate,
		Notes:     req.Notes,
		Status:    string(lifecycle.QuotePending),
	}
	for _, item := range req.Items {
		quote.Items = append(quote.Items, model.QuoteItem{
			PackageID: int(item.PackageID),
			Quantity:  item.Quantity,
		})
	}

	id, err := s.repo.CreateQuoteTx(ctx.Request.Context(), quote, customer)
	if err != nil {
		if errors.Is(err, repo.ErrPackageNotFound) {
			dto.PackageNotFoundError(ctx)
			return
		}
		s.log.Error().Err(err).Msg("failed to create quote")
		dto.InternalServerError(ctx)
		return
	}
	quote.ID = int(id)

	s.log.Info().Int64("quote_id", id).Int("customer_id", quote.CustomerID).Msg("quote created successfully")

	if req.Notes != "" {
		message := &model.Message{
			Name:    req.FullName,
			Email:   req.Email,
			Phone:   req.Phone,
			Subject: fmt.Sprintf("Quote request #%d", id),
			Body:    req.Notes,
			Source:  dto.MessageSourceQuote,
		}
		if _, err := s.repo.CreateMessage(ctx.Request.Context(), message); err != nil {
			s.log.Warn().Err(err).Int64("quote_id", id).Msg("failed to record quote message")
		}
	}

	s.publishNotification(id, dto.NotifyQuoteReceived, 0)
	s.publishNotification(id, dto.NotifyQuoteReminder, s.cfg.ReminderDelay)

	resp := toQuoteResponse(quote)
	resp.CreatedAt = time.Now()
	dto.SuccessCreatedResponse(ctx, resp)
}

func (s *service) GetQuote(ctx *ginext.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid quote ID")
		return
	}

	quote, err := s.repo.GetQuoteByID(ctx.Request.Context(), id)
	if err != nil {
		dto.QuoteNotFoundError(ctx)
		return
	}

	dto.SuccessResponse(ctx, toQuoteResponse(quote))
}

func (s *service) GetAllQuotes(ctx *ginext.Context) {
	status := ctx.Query("status")
	if status != "" {
		if _, err := lifecycle.ParseQuoteStatus(status); err != nil {
			dto.BadResponseError(ctx, dto.FieldIncorrect, "Unknown quote status")
			return
		}
	}

	quotes, err := s.repo.GetAllQuotes(ctx.Request.Context(), status)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list quotes")
		dto.InternalServerError(ctx)
		return
	}

	resp := make([]dto.QuoteResponse, 0, len(quotes))
	for i := range quotes {
		resp = append(resp, toQuoteResponse(&quotes[i]))
	}
	dto.SuccessResponse(ctx, resp)
}

func (s *service) ApproveQuote(ctx *ginext.Context) {
	s.transitionQuote(ctx, lifecycle.QuoteApproved)
}

func (s *service) RejectQuote(ctx *ginext.Context) {
	s.transitionQuote(ctx, lifecycle.QuoteRejected)
}

// transitionQuote validates the requested transition against the lifecycle
// table and persists both the quote and, on approval, the owning customer.
func (s *service) transitionQuote(ctx *ginext.Context, target lifecycle.QuoteStatus) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid quote ID")
		return
	}

	quote, err := s.repo.GetQuoteByID(ctx.Request.Context(), id)
	if err != nil {
		dto.QuoteNotFoundError(ctx)
		return
	}

	prevStatus := quote.Status
	if err := lifecycle.TransitionQuote(quote, target, time.Now()); err != nil {
		dto.InvalidTransitionError(ctx, fmt.Sprintf("%v", err))
		return
	}
	if quote.Status == prevStatus {
		// Re-applying the current status is a no-op.
		dto.SuccessResponse(ctx, toQuoteResponse(quote))
		return
	}

	if err := s.repo.UpdateQuoteStatusTx(ctx.Request.Context(), id, quote.Status); err != nil {
		s.log.Error().Err(err).Int64("quote_id", id).Msg("failed to update quote status")
		dto.InternalServerError(ctx)
		return
	}
	metrics.IncQuoteTransition(string(target))

	s.log.Info().
		Int64("quote_id", id).
		Str("status", quote.Status).
		Msg("quote status updated")

	if target == lifecycle.QuoteApproved {
		s.confirmCustomer(ctx, int64(quote.CustomerID))
	}

	s.publishNotification(id, string(target), 0)

	dto.SuccessResponse(ctx, toQuoteResponse(quote))
}

// confirmCustomer moves the quote's owner out of quotation status. A customer
// already confirmed is a no-op; a cancelled one is logged and left alone.
func (s *service) confirmCustomer(ctx *ginext.Context, customerID int64) {
	customer, err := s.repo.GetCustomerByID(ctx.Request.Context(), customerID)
	if err != nil {
		s.log.Warn().Err(err).Int64("customer_id", customerID).Msg("customer missing for approved quote")
		return
	}

	if err := lifecycle.TransitionCustomer(customer, lifecycle.CustomerConfirmed, time.Now()); err != nil {
		s.log.Warn().Err(err).
			Int64("customer_id", customerID).
			Str("status", customer.Status).
			Msg("cannot confirm customer for approved quote")
		return
	}

	if err := s.repo.UpdateCustomerStatusTx(ctx.Request.Context(), customerID, customer.Status); err != nil {
		s.log.Error().Err(err).Int64("customer_id", customerID).Msg("failed to confirm customer")
	}
}
