package service

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/wb-go/wbf/ginext"

	"github.com/bhekani17/Eargleevents2/internal/dto"
	"github.com/bhekani17/Eargleevents2/internal/model"
	"github.com/bhekani17/Eargleevents2/internal/repo"
	"github.com/bhekani17/Eargleevents2/pkg/validator"
)

func (s *service) CreateMessage(ctx *ginext.Context) {
	var req dto.CreateMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	source := req.Source
	switch source {
	case "":
		source = dto.MessageSourceContact
	case dto.MessageSourceContact, dto.MessageSourceQuote, dto.MessageSourceOther:
	default:
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Unknown message source")
		return
	}

	message := &model.Message{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Body:    req.Body,
		Source:  source,
	}

	id, err := s.repo.CreateMessage(ctx.Request.Context(), message)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create message in DB")
		dto.InternalServerError(ctx)
		return
	}
	message.ID = int(id)

	s.log.Info().Int64("message_id", id).Str("source", source).Msg("message received")
	dto.SuccessCreatedResponse(ctx, toMessageResponse(message))
}

func (s *service) GetAllMessages(ctx *ginext.Context) {
	unreadOnly := ctx.Query("unread") == "true"

	messages, err := s.repo.GetAllMessages(ctx.Request.Context(), unreadOnly)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list messages")
		dto.InternalServerError(ctx)
		return
	}

	resp := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		resp = append(resp, toMessageResponse(&messages[i]))
	}
	dto.SuccessResponse(ctx, resp)
}

func (s *service) MarkMessageRead(ctx *ginext.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid message ID")
		return
	}

	if err := s.repo.MarkMessageRead(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, repo.ErrMessageNotFound) {
			dto.MessageNotFoundError(ctx)
			return
		}
		s.log.Error().Err(err).Int64("message_id", id).Msg("failed to mark message read")
		dto.InternalServerError(ctx)
		return
	}

	dto.SuccessResponse(ctx, nil)
}
