package service

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/bhekani17/Eargleevents2/internal/dto"
)

func (s *service) GetDashboard(ctx *ginext.Context) {
	stats, err := s.repo.GetDashboardStats(ctx.Request.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load dashboard stats")
		dto.InternalServerError(ctx)
		return
	}

	dto.SuccessResponse(ctx, stats)
}
