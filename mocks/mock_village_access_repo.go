package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"grampanchayat/internal/domain"
)

// MockVillageAccessRepo is a mock implementation of port.VillageAccessRepository.
type MockVillageAccessRepo struct {
	mock.Mock
}

func (m *MockVillageAccessRepo) Grant(ctx context.Context, access *domain.UserVillageAccess) error {
	args := m.Called(ctx, access)
	return args.Error(0)
}

func (m *MockVillageAccessRepo) Revoke(ctx context.Context, userID, villageID uuid.UUID) error {
	args := m.Called(ctx, userID, villageID)
	return args.Error(0)
}

func (m *MockVillageAccessRepo) ListVillageIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}
