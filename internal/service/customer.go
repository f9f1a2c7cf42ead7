package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/bhekani17/Eargleevents2/internal/dto"
	"github.com/bhekani17/Eargleevents2/internal/lifecycle"
)

func (s *service) GetAllCustomers(ctx *ginext.Context) {
	status := ctx.Query("status")
	if status != "" {
		if _, err := lifecycle.ParseCustomerStatus(status); err != nil {
			dto.BadResponseError(ctx, dto.FieldIncorrect, "Unknown customer status")
			return
		}
	}

	customers, err := s.repo.GetAllCustomers(ctx.Request.Context(), status)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list customers")
		dto.InternalServerError(ctx)
		return
	}

	resp := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		resp = append(resp, toCustomerResponse(&customers[i]))
	}
	dto.SuccessResponse(ctx, resp)
}

func (s *service) CancelCustomer(ctx *ginext.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid customer ID")
		return
	}

	customer, err := s.repo.GetCustomerByID(ctx.Request.Context(), id)
	if err != nil {
		dto.CustomerNotFoundError(ctx)
		return
	}

	prevStatus := customer.Status
	if err := lifecycle.TransitionCustomer(customer, lifecycle.CustomerCancelled, time.Now()); err != nil {
		dto.InvalidTransitionError(ctx, fmt.Sprintf("%v", err))
		return
	}

	if customer.Status != prevStatus {
		if err := s.repo.UpdateCustomerStatusTx(ctx.Request.Context(), id, customer.Status); err != nil {
			s.log.Error().Err(err).Int64("customer_id", id).Msg("failed to cancel customer")
			dto.InternalServerError(ctx)
			return
		}
	}

	s.log.Info().Int64("customer_id", id).Msg("customer cancelled")
	dto.SuccessResponse(ctx, toCustomerResponse(customer))
}
