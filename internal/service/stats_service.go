package service

import (
	"context"

	"github.com/google/uuid"

	"grampanchayat/internal/domain"
	"grampanchayat/internal/port"
)

// StatsService provides dashboard counts.
type StatsService interface {
	GetPortalStats(ctx context.Context) (*domain.PortalStats, error)
	GetVillageStats(ctx context.Context, villageID uuid.UUID) (*domain.VillageStats, error)
}

type statsService struct {
	statsRepo port.StatsRepository
}

// NewStatsService creates a new StatsService implementation.
func NewStatsService(statsRepo port.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetPortalStats(ctx context.Context) (*domain.PortalStats, error) {
	return s.statsRepo.GetPortalStats(ctx)
}

func (s *statsService) GetVillageStats(ctx context.Context, villageID uuid.UUID) (*domain.VillageStats, error) {
	return s.statsRepo.GetVillageStats(ctx, villageID)
}
