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

func (s *service) CreatePackage(ctx *ginext.Context) {
	var req dto.PackageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		s.log.Error().Err(err).Msg("failed to parse create package request")
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	pkg := &model.RentalPackage{
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		PricePerDay:   req.PricePerDay,
		ItemsIncluded: req.ItemsIncluded,
		IsActive:      true,
	}
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}

	id, err := s.repo.CreatePackage(ctx.Request.Context(), pkg)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create package in DB")
		dto.InternalServerError(ctx)
		return
	}
	pkg.ID = int(id)

	s.log.Info().Int64("package_id", id).Msg("package created successfully")
	dto.SuccessCreatedResponse(ctx, toPackageResponse(pkg))
}

func (s *service) UpdatePackage(ctx *ginext.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid package ID")
		return
	}

	var req dto.PackageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	pkg, err := s.repo.GetPackageByID(ctx.Request.Context(), id)
	if err != nil {
		dto.PackageNotFoundError(ctx)
		return
	}

	pkg.Name = req.Name
	pkg.Description = req.Description
	pkg.Category = req.Category
	pkg.PricePerDay = req.PricePerDay
	pkg.ItemsIncluded = req.ItemsIncluded
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}

	if err := s.repo.UpdatePackage(ctx.Request.Context(), pkg); err != nil {
		if errors.Is(err, repo.ErrPackageNotFound) {
			dto.PackageNotFoundError(ctx)
			return
		}
		s.log.Error().Err(err).Int64("package_id", id).Msg("failed to update package")
		dto.InternalServerError(ctx)
		return
	}

	dto.SuccessResponse(ctx, toPackageResponse(pkg))
}

func (s *service) DeletePackage(ctx *ginext.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid package ID")
		return
	}

	if err := s.repo.DeletePackage(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, repo.ErrPackageNotFound) {
			dto.PackageNotFoundError(ctx)
			return
		}
		s.log.Error().Err(err).Int64("package_id", id).Msg("failed to delete package")
		dto.InternalServerError(ctx)
		return
	}

	s.log.Info().Int64("package_id", id).Msg("package deleted")
	dto.SuccessResponse(ctx, nil)
}

func (s *service) GetPackage(ctx *ginext.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid package ID")
		return
	}

	pkg, err := s.repo.GetPackageByID(ctx.Request.Context(), id)
	if err != nil {
		dto.PackageNotFoundError(ctx)
		return
	}

	dto.SuccessResponse(ctx, toPackageResponse(pkg))
}

func (s *service) GetAllPackages(ctx *ginext.Context) {
	activeOnly := ctx.Query("all") != "true"

	packages, err := s.repo.GetAllPackages(ctx.Request.Context(), activeOnly)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list packages")
		dto.InternalServerError(ctx)
		return
	}

	resp := make([]dto.PackageResponse, 0, len(packages))
	for i := range packages {
		resp = append(resp, toPackageResponse(&packages[i]))
	}
	dto.SuccessResponse(ctx, resp)
}
