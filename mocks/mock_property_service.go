package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"grampanchayat/internal/domain"
	"grampanchayat/internal/service"
)

// MockPropertyService is a mock implementation of service.PropertyService.
type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) Create(ctx context.Context, villageID uuid.UUID, input service.CreatePropertyInput) (*domain.Property, error) {
	args := m.Called(ctx, villageID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyService) GetByID(ctx context.Context, villageID, propertyID uuid.UUID) (*domain.Property, error) {
	args := m.Called(ctx, villageID, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyService) List(ctx context.Context, villageID uuid.UUID, offset, limit int) ([]domain.Property, int, error) {
	args := m.Called(ctx, villageID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Property), args.Int(1), args.Error(2)
}

func (m *MockPropertyService) Update(ctx context.Context, villageID, propertyID uuid.UUID, input service.UpdatePropertyInput) (*domain.Property, error) {
	args := m.Called(ctx, villageID, propertyID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyService) Delete(ctx context.Context, villageID, propertyID uuid.UUID) error {
	args := m.Called(ctx, villageID, propertyID)
	return args.Error(0)
}
