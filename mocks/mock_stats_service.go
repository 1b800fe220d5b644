package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"grampanchayat/internal/domain"
)

// MockStatsService is a mock implementation of service.StatsService.
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetPortalStats(ctx context.Context) (*domain.PortalStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortalStats), args.Error(1)
}

func (m *MockStatsService) GetVillageStats(ctx context.Context, villageID uuid.UUID) (*domain.VillageStats, error) {
	args := m.Called(ctx, villageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VillageStats), args.Error(1)
}
