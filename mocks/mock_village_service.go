package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"grampanchayat/internal/domain"
	"grampanchayat/internal/service"
)

// MockVillageService is a mock implementation of service.VillageService.
type MockVillageService struct {
	mock.Mock
}

func (m *MockVillageService) Create(ctx context.Context, input service.CreateVillageInput) (*domain.Village, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Village), args.Error(1)
}

func (m *MockVillageService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Village, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Village), args.Error(1)
}

func (m *MockVillageService) List(ctx context.Context, offset, limit int) ([]domain.Village, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Village), args.Int(1), args.Error(2)
}

func (m *MockVillageService) ListForSession(ctx context.Context, claims *service.Claims) ([]domain.Village, error) {
	args := m.Called(ctx, claims)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Village), args.Error(1)
}

func (m *MockVillageService) Update(ctx context.Context, id uuid.UUID, input service.UpdateVillageInput) (*domain.Village, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Village), args.Error(1)
}

func (m *MockVillageService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
