package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"grampanchayat/internal/domain"
)

// MockStatsRepo is a mock implementation of port.StatsRepository.
type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) GetPortalStats(ctx context.Context) (*domain.PortalStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortalStats), args.Error(1)
}

func (m *MockStatsRepo) GetVillageStats(ctx context.Context, villageID uuid.UUID) (*domain.VillageStats, error) {
	args := m.Called(ctx, villageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VillageStats), args.Error(1)
}
