package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"grampanchayat/internal/domain"
)

// MockPropertyRepo is a mock implementation of port.PropertyRepository.
type MockPropertyRepo struct {
	mock.Mock
}

func (m *MockPropertyRepo) Create(ctx context.Context, property *domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepo) GetByID(ctx context.Context, villageID, propertyID uuid.UUID) (*domain.Property, error) {
	args := m.Called(ctx, villageID, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyRepo) ListByVillage(ctx context.Context, villageID uuid.UUID, offset, limit int) ([]domain.Property, int, error) {
	args := m.Called(ctx, villageID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Property), args.Int(1), args.Error(2)
}

func (m *MockPropertyRepo) ListAllByVillage(ctx context.Context, villageID uuid.UUID) ([]domain.Property, error) {
	args := m.Called(ctx, villageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *MockPropertyRepo) Update(ctx context.Context, property *domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepo) Delete(ctx context.Context, villageID, propertyID uuid.UUID) error {
	args := m.Called(ctx, villageID, propertyID)
	return args.Error(0)
}
