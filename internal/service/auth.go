package service

import (
	"errors"
	"fmt"

	"github.com/wb-go/wbf/ginext"

	"github.com/bhekani17/Eargleevents2/internal/auth"
	"github.com/bhekani17/Eargleevents2/internal/dto"
	"github.com/bhekani17/Eargleevents2/internal/model"
	"github.com/bhekani17/Eargleevents2/internal/repo"
	"github.com/bhekani17/Eargleevents2/pkg/validator"
)

func (s *service) Login(ctx *ginext.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	admin, err := s.repo.GetAdminByEmail(ctx.Request.Context(), req.Email)
	if err != nil {
		dto.UnauthorizedError(ctx, "Invalid email or password")
		return
	}

	if !auth.CheckPassword(req.Password, admin.PasswordHash) {
		dto.UnauthorizedError(ctx, "Invalid email or password")
		return
	}

	token, err := auth.GenerateToken(admin.ID, s.cfg.JWTSecret, s.cfg.TokenTTL)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to sign session token")
		dto.InternalServerError(ctx)
		return
	}

	s.log.Info().Int("admin_id", admin.ID).Msg("admin logged in")

	dto.SuccessResponse(ctx, dto.LoginResponse{
		Token: token,
		Admin: dto.AdminResponse{
			ID:       int64(admin.ID),
			FullName: admin.FullName,
			Email:    admin.Email,
		},
	})
}

func (s *service) RegisterAdmin(ctx *ginext.Context) {
	var req dto.RegisterAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to hash password")
		dto.InternalServerError(ctx)
		return
	}

	admin := &model.Admin{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
	}

	id, err := s.repo.CreateAdmin(ctx.Request.Context(), admin)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateAdmin) {
			dto.ConflictError(ctx, dto.AdminDuplicate, "An admin with this email already exists")
			return
		}
		s.log.Error().Err(err).Msg("failed to create admin")
		dto.InternalServerError(ctx)
		return
	}

	s.log.Info().Int64("admin_id", id).Msg("admin account created")

	dto.SuccessCreatedResponse(ctx, dto.AdminResponse{
		ID:       id,
		FullName: admin.FullName,
		Email:    admin.Email,
	})
}
