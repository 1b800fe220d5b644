package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"grampanchayat/internal/domain"
	"grampanchayat/internal/service"
)

// MockRateService is a mock implementation of service.RateService.
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) ListConstructionLandRates(ctx context.Context) ([]domain.ConstructionLandRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConstructionLandRate), args.Error(1)
}

func (m *MockRateService) CreateConstructionLandRate(ctx context.Context, input service.ConstructionLandRateInput) (*domain.ConstructionLandRate, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConstructionLandRate), args.Error(1)
}

func (m *MockRateService) UpdateConstructionLandRate(ctx context.Context, id uuid.UUID, input service.ConstructionLandRatePatch) (*domain.ConstructionLandRate, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConstructionLandRate), args.Error(1)
}

func (m *MockRateService) DeleteConstructionLandRate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRateService) ListDepreciationRates(ctx context.Context) ([]domain.DepreciationRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepreciationRate), args.Error(1)
}

func (m *MockRateService) CreateDepreciationRate(ctx context.Context, input service.DepreciationRateInput) (*domain.DepreciationRate, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DepreciationRate), args.Error(1)
}

func (m *MockRateService) UpdateDepreciationRate(ctx context.Context, id uuid.UUID, input service.DepreciationRatePatch) (*domain.DepreciationRate, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DepreciationRate), args.Error(1)
}

func (m *MockRateService) DeleteDepreciationRate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRateService) ListUsageFactors(ctx context.Context) ([]domain.UsageFactor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UsageFactor), args.Error(1)
}

func (m *MockRateService) CreateUsageFactor(ctx context.Context, input service.UsageFactorInput) (*domain.UsageFactor, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UsageFactor), args.Error(1)
}

func (m *MockRateService) UpdateUsageFactor(ctx context.Context, id uuid.UUID, input service.UsageFactorPatch) (*domain.UsageFactor, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UsageFactor), args.Error(1)
}

func (m *MockRateService) DeleteUsageFactor(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRateService) ListWaterSupplyRates(ctx context.Context) ([]domain.WaterSupplyTaxRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WaterSupplyTaxRate), args.Error(1)
}

func (m *MockRateService) CreateWaterSupplyRate(ctx context.Context, input service.WaterSupplyRateInput) (*domain.WaterSupplyTaxRate, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WaterSupplyTaxRate), args.Error(1)
}

func (m *MockRateService) UpdateWaterSupplyRate(ctx context.Context, id uuid.UUID, input service.WaterSupplyRatePatch) (*domain.WaterSupplyTaxRate, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WaterSupplyTaxRate), args.Error(1)
}

func (m *MockRateService) DeleteWaterSupplyRate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRateService) ListSlabTaxRates(ctx context.Context, key domain.SlabTaxKey) ([]domain.SlabTaxRate, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SlabTaxRate), args.Error(1)
}

func (m *MockRateService) CreateSlabTaxRate(ctx context.Context, key domain.SlabTaxKey, input service.SlabTaxRateInput) (*domain.SlabTaxRate, error) {
	args := m.Called(ctx, key, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SlabTaxRate), args.Error(1)
}

func (m *MockRateService) UpdateSlabTaxRate(ctx context.Context, key domain.SlabTaxKey, id uuid.UUID, input service.SlabTaxRatePatch) (*domain.SlabTaxRate, error) {
	args := m.Called(ctx, key, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SlabTaxRate), args.Error(1)
}

func (m *MockRateService) DeleteSlabTaxRate(ctx context.Context, key domain.SlabTaxKey, id uuid.UUID) error {
	args := m.Called(ctx, key, id)
	return args.Error(0)
}
