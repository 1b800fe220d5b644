package port

import (
	"context"

	"github.com/google/uuid"

	"grampanchayat/internal/domain"
)

// ConstructionLandRateRepository persists construction/land rates.
// List returns rows newest effective date first.
type ConstructionLandRateRepository interface {
	Create(ctx context.Context, rate *domain.ConstructionLandRate) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ConstructionLandRate, error)
	List(ctx context.Context) ([]domain.ConstructionLandRate, error)
	Update(ctx context.Context, rate *domain.ConstructionLandRate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DepreciationRateRepository persists depreciation bands.
type DepreciationRateRepository interface {
	Create(ctx context.Context, rate *domain.DepreciationRate) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DepreciationRate, error)
	List(ctx context.Context) ([]domain.DepreciationRate, error)
	Update(ctx context.Context, rate *domain.DepreciationRate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UsageFactorRepository persists usage weightages.
type UsageFactorRepository interface {
	Create(ctx context.Context, rate *domain.UsageFactor) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.UsageFactor, error)
	List(ctx context.Context) ([]domain.UsageFactor, error)
	Update(ctx context.Context, rate *domain.UsageFactor) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// WaterSupplyTaxRateRepository persists flat water tax amounts.
type WaterSupplyTaxRateRepository interface {
	Create(ctx context.Context, rate *domain.WaterSupplyTaxRate) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WaterSupplyTaxRate, error)
	List(ctx context.Context) ([]domain.WaterSupplyTaxRate, error)
	Update(ctx context.Context, rate *domain.WaterSupplyTaxRate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SlabTaxRateRepository persists area-banded levies. List is scoped to one tax key.
type SlabTaxRateRepository interface {
	Create(ctx context.Context, rate *domain.SlabTaxRate) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SlabTaxRate, error)
	List(ctx context.Context, key domain.SlabTaxKey) ([]domain.SlabTaxRate, error)
	Update(ctx context.Context, rate *domain.SlabTaxRate) error
	Delete(ctx context.Context, id uuid.UUID) error
}
