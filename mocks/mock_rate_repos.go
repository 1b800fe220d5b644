package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"grampanchayat/internal/domain"
)

// MockConstructionLandRateRepo is a mock implementation of port.ConstructionLandRateRepository.
type MockConstructionLandRateRepo struct {
	mock.Mock
}

func (m *MockConstructionLandRateRepo) Create(ctx context.Context, rate *domain.ConstructionLandRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockConstructionLandRateRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ConstructionLandRate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConstructionLandRate), args.Error(1)
}

func (m *MockConstructionLandRateRepo) List(ctx context.Context) ([]domain.ConstructionLandRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConstructionLandRate), args.Error(1)
}

func (m *MockConstructionLandRateRepo) Update(ctx context.Context, rate *domain.ConstructionLandRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockConstructionLandRateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDepreciationRateRepo is a mock implementation of port.DepreciationRateRepository.
type MockDepreciationRateRepo struct {
	mock.Mock
}

func (m *MockDepreciationRateRepo) Create(ctx context.Context, rate *domain.DepreciationRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockDepreciationRateRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DepreciationRate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DepreciationRate), args.Error(1)
}

func (m *MockDepreciationRateRepo) List(ctx context.Context) ([]domain.DepreciationRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepreciationRate), args.Error(1)
}

func (m *MockDepreciationRateRepo) Update(ctx context.Context, rate *domain.DepreciationRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockDepreciationRateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUsageFactorRepo is a mock implementation of port.UsageFactorRepository.
type MockUsageFactorRepo struct {
	mock.Mock
}

func (m *MockUsageFactorRepo) Create(ctx context.Context, rate *domain.UsageFactor) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockUsageFactorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.UsageFactor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UsageFactor), args.Error(1)
}

func (m *MockUsageFactorRepo) List(ctx context.Context) ([]domain.UsageFactor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UsageFactor), args.Error(1)
}

func (m *MockUsageFactorRepo) Update(ctx context.Context, rate *domain.UsageFactor) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockUsageFactorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockWaterSupplyTaxRateRepo is a mock implementation of port.WaterSupplyTaxRateRepository.
type MockWaterSupplyTaxRateRepo struct {
	mock.Mock
}

func (m *MockWaterSupplyTaxRateRepo) Create(ctx context.Context, rate *domain.WaterSupplyTaxRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockWaterSupplyTaxRateRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WaterSupplyTaxRate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WaterSupplyTaxRate), args.Error(1)
}

func (m *MockWaterSupplyTaxRateRepo) List(ctx context.Context) ([]domain.WaterSupplyTaxRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WaterSupplyTaxRate), args.Error(1)
}

func (m *MockWaterSupplyTaxRateRepo) Update(ctx context.Context, rate *domain.WaterSupplyTaxRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockWaterSupplyTaxRateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSlabTaxRateRepo is a mock implementation of port.SlabTaxRateRepository.
type MockSlabTaxRateRepo struct {
	mock.Mock
}

func (m *MockSlabTaxRateRepo) Create(ctx context.Context, rate *domain.SlabTaxRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockSlabTaxRateRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SlabTaxRate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SlabTaxRate), args.Error(1)
}

func (m *MockSlabTaxRateRepo) List(ctx context.Context, key domain.SlabTaxKey) ([]domain.SlabTaxRate, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SlabTaxRate), args.Error(1)
}

func (m *MockSlabTaxRateRepo) Update(ctx context.Context, rate *domain.SlabTaxRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockSlabTaxRateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
