package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"grampanchayat/internal/domain"
)

// MockVillageRepo is a mock implementation of port.VillageRepository.
type MockVillageRepo struct {
	mock.Mock
}

func (m *MockVillageRepo) Create(ctx context.Context, village *domain.Village) error {
	args := m.Called(ctx, village)
	return args.Error(0)
}

func (m *MockVillageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Village, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Village), args.Error(1)
}

func (m *MockVillageRepo) List(ctx context.Context, offset, limit int) ([]domain.Village, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Village), args.Int(1), args.Error(2)
}

func (m *MockVillageRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Village, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Village), args.Error(1)
}

func (m *MockVillageRepo) Update(ctx context.Context, village *domain.Village) error {
	args := m.Called(ctx, village)
	return args.Error(0)
}

func (m *MockVillageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
