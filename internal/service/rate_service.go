package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"grampanchayat/internal/domain"
	"grampanchayat/internal/port"
)

// ConstructionLandRateInput is the DTO for creating a construction/land rate.
type ConstructionLandRateInput struct {
	PropertyTypeMr       string   `json:"property_type_mr" binding:"required"`
	ConstructionRate     *float64 `json:"construction_rate" binding:"required"`
	ConstructionLandRate *float64 `json:"construction_land_rate" binding:"required"`
	LandRate             *float64 `json:"land_rate" binding:"required"`
	ApprovedRate         *float64 `json:"approved_rate" binding:"required"`
	EffectiveFrom        string   `json:"effective_from" binding:"required"`
}

// ConstructionLandRatePatch is the DTO for updating a construction/land rate.
type ConstructionLandRatePatch struct {
	PropertyTypeMr       *string  `json:"property_type_mr"`
	ConstructionRate     *float64 `json:"construction_rate"`
	ConstructionLandRate *float64 `json:"construction_land_rate"`
	LandRate             *float64 `json:"land_rate"`
	ApprovedRate         *float64 `json:"approved_rate"`
	EffectiveFrom        *string  `json:"effective_from"`
}

// DepreciationRateInput is the DTO for creating a depreciation band.
type DepreciationRateInput struct {
	AgeFromYear      *int     `json:"age_from_year" binding:"required"`
	AgeToYear        *int     `json:"age_to_year"`
	DepreciationRate *float64 `json:"depreciation_rate" binding:"required"`
	EffectiveFrom    string   `json:"effective_from" binding:"required"`
}

// DepreciationRatePatch is the DTO for updating a depreciation band.
// ClearAgeTo makes the band open-ended.
type DepreciationRatePatch struct {
	AgeFromYear      *int     `json:"age_from_year"`
	AgeToYear        *int     `json:"age_to_year"`
	ClearAgeTo       bool     `json:"clear_age_to"`
	DepreciationRate *float64 `json:"depreciation_rate"`
	EffectiveFrom    *string  `json:"effective_from"`
}

// UsageFactorInput is the DTO for creating a usage factor.
type UsageFactorInput struct {
	UsageTypeMr   string   `json:"usage_type_mr" binding:"required"`
	Weightage     *float64 `json:"weightage" binding:"required"`
	EffectiveFrom string   `json:"effective_from" binding:"required"`
}

// UsageFactorPatch is the DTO for updating a usage factor.
type UsageFactorPatch struct {
	UsageTypeMr   *string  `json:"usage_type_mr"`
	Weightage     *float64 `json:"weightage"`
	EffectiveFrom *string  `json:"effective_from"`
}

// WaterSupplyRateInput is the DTO for creating a water tax rate.
type WaterSupplyRateInput struct {
	WaterTaxTypeMr string   `json:"water_tax_type_mr" binding:"required"`
	Rate           *float64 `json:"rate" binding:"required"`
	EffectiveFrom  string   `json:"effective_from" binding:"required"`
}

// WaterSupplyRatePatch is the DTO for updating a water tax rate.
type WaterSupplyRatePatch struct {
	WaterTaxTypeMr *string  `json:"water_tax_type_mr"`
	Rate           *float64 `json:"rate"`
	EffectiveFrom  *string  `json:"effective_from"`
}

// SlabTaxRateInput is the DTO for creating a slab levy band.
type SlabTaxRateInput struct {
	SlabFromSqFt  *float64 `json:"slab_from_sq_ft" binding:"required"`
	SlabToSqFt    *float64 `json:"slab_to_sq_ft"`
	Rate          *float64 `json:"rate" binding:"required"`
	EffectiveFrom string   `json:"effective_from" binding:"required"`
}

// SlabTaxRatePatch is the DTO for updating a slab levy band.
// ClearSlabTo makes the band open-ended.
type SlabTaxRatePatch struct {
	SlabFromSqFt  *float64 `json:"slab_from_sq_ft"`
	SlabToSqFt    *float64 `json:"slab_to_sq_ft"`
	ClearSlabTo   bool     `json:"clear_slab_to"`
	Rate          *float64 `json:"rate"`
	EffectiveFrom *string  `json:"effective_from"`
}

// RateRepos groups the rate catalog repositories.
type RateRepos struct {
	Construction port.ConstructionLandRateRepository
	Depreciation port.DepreciationRateRepository
	Usage        port.UsageFactorRepository
	Water        port.WaterSupplyTaxRateRepository
	Slab         port.SlabTaxRateRepository
}

// RateService manages the global, effective-dated rate catalog.
type RateService interface {
	ListConstructionLandRates(ctx context.Context) ([]domain.ConstructionLandRate, error)
	CreateConstructionLandRate(ctx context.Context, input ConstructionLandRateInput) (*domain.ConstructionLandRate, error)
	UpdateConstructionLandRate(ctx context.Context, id uuid.UUID, input ConstructionLandRatePatch) (*domain.ConstructionLandRate, error)
	DeleteConstructionLandRate(ctx context.Context, id uuid.UUID) error

	ListDepreciationRates(ctx context.Context) ([]domain.DepreciationRate, error)
	CreateDepreciationRate(ctx context.Context, input DepreciationRateInput) (*domain.DepreciationRate, error)
	UpdateDepreciationRate(ctx context.Context, id uuid.UUID, input DepreciationRatePatch) (*domain.DepreciationRate, error)
	DeleteDepreciationRate(ctx context.Context, id uuid.UUID) error

	ListUsageFactors(ctx context.Context) ([]domain.UsageFactor, error)
	CreateUsageFactor(ctx context.Context, input UsageFactorInput) (*domain.UsageFactor, error)
	UpdateUsageFactor(ctx context.Context, id uuid.UUID, input UsageFactorPatch) (*domain.UsageFactor, error)
	DeleteUsageFactor(ctx context.Context, id uuid.UUID) error

	ListWaterSupplyRates(ctx context.Context) ([]domain.WaterSupplyTaxRate, error)
	CreateWaterSupplyRate(ctx context.Context, input WaterSupplyRateInput) (*domain.WaterSupplyTaxRate, error)
	UpdateWaterSupplyRate(ctx context.Context, id uuid.UUID, input WaterSupplyRatePatch) (*domain.WaterSupplyTaxRate, error)
	DeleteWaterSupplyRate(ctx context.Context, id uuid.UUID) error

	ListSlabTaxRates(ctx context.Context, key domain.SlabTaxKey) ([]domain.SlabTaxRate, error)
	CreateSlabTaxRate(ctx context.Context, key domain.SlabTaxKey, input SlabTaxRateInput) (*domain.SlabTaxRate, error)
	UpdateSlabTaxRate(ctx context.Context, key domain.SlabTaxKey, id uuid.UUID, input SlabTaxRatePatch) (*domain.SlabTaxRate, error)
	DeleteSlabTaxRate(ctx context.Context, key domain.SlabTaxKey, id uuid.UUID) error
}

type rateService struct {
	repos RateRepos
}

// NewRateService creates a new RateService implementation.
func NewRateService(repos RateRepos) RateService {
	return &rateService{repos: repos}
}

// Construction/land rates

func (s *rateService) ListConstructionLandRates(ctx context.Context) ([]domain.ConstructionLandRate, error) {
	return s.repos.Construction.List(ctx)
}

func (s *rateService) CreateConstructionLandRate(ctx context.Context, in ConstructionLandRateInput) (*domain.ConstructionLandRate, error) {
	key, err := rateKey(in.PropertyTypeMr)
	if err != nil {
		return nil, err
	}
	eff, err := ParseDate(in.EffectiveFrom)
	if err != nil {
		return nil, err
	}
	r := &domain.ConstructionLandRate{
		PropertyTypeMr:       key,
		ConstructionRate:     deref(in.ConstructionRate),
		ConstructionLandRate: deref(in.ConstructionLandRate),
		LandRate:             deref(in.LandRate),
		ApprovedRate:         deref(in.ApprovedRate),
		EffectiveFrom:        eff,
	}
	if err := validateConstructionLandRate(r); err != nil {
		return nil, err
	}
	if err := s.repos.Construction.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *rateService) UpdateConstructionLandRate(ctx context.Context, id uuid.UUID, in ConstructionLandRatePatch) (*domain.ConstructionLandRate, error) {
	r, err := s.repos.Construction.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.PropertyTypeMr != nil {
		if r.PropertyTypeMr, err = rateKey(*in.PropertyTypeMr); err != nil {
			return nil, err
		}
	}
	setFloat(&r.ConstructionRate, in.ConstructionRate)
	setFloat(&r.ConstructionLandRate, in.ConstructionLandRate)
	setFloat(&r.LandRate, in.LandRate)
	setFloat(&r.ApprovedRate, in.ApprovedRate)
	if err := setDate(&r.EffectiveFrom, in.EffectiveFrom); err != nil {
		return nil, err
	}
	if err := validateConstructionLandRate(r); err != nil {
		return nil, err
	}
	if err := s.repos.Construction.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *rateService) DeleteConstructionLandRate(ctx context.Context, id uuid.UUID) error {
	return s.repos.Construction.Delete(ctx, id)
}

// Depreciation bands

func (s *rateService) ListDepreciationRates(ctx context.Context) ([]domain.DepreciationRate, error) {
	return s.repos.Depreciation.List(ctx)
}

func (s *rateService) CreateDepreciationRate(ctx context.Context, in DepreciationRateInput) (*domain.DepreciationRate, error) {
	eff, err := ParseDate(in.EffectiveFrom)
	if err != nil {
		return nil, err
	}
	r := &domain.DepreciationRate{
		AgeToYear:        in.AgeToYear,
		DepreciationRate: deref(in.DepreciationRate),
		EffectiveFrom:    eff,
	}
	if in.AgeFromYear != nil {
		r.AgeFromYear = *in.AgeFromYear
	}
	if err := validateDepreciationRate(r); err != nil {
		return nil, err
	}
	if err := s.repos.Depreciation.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *rateService) UpdateDepreciationRate(ctx context.Context, id uuid.UUID, in DepreciationRatePatch) (*domain.DepreciationRate, error) {
	r, err := s.repos.Depreciation.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.AgeFromYear != nil {
		r.AgeFromYear = *in.AgeFromYear
	}
	switch {
	case in.ClearAgeTo:
		r.AgeToYear = nil
	case in.AgeToYear != nil:
		to := *in.AgeToYear
		r.AgeToYear = &to
	}
	setFloat(&r.DepreciationRate, in.DepreciationRate)
	if err := setDate(&r.EffectiveFrom, in.EffectiveFrom); err != nil {
		return nil, err
	}
	if err := validateDepreciationRate(r); err != nil {
		return nil, err
	}
	if err := s.repos.Depreciation.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *rateService) DeleteDepreciationRate(ctx context.Context, id uuid.UUID) error {
	return s.repos.Depreciation.Delete(ctx, id)
}

// Usage factors

func (s *rateService) ListUsageFactors(ctx context.Context) ([]domain.UsageFactor, error) {
	return s.repos.Usage.List(ctx)
}

func (s *rateService) CreateUsageFactor(ctx context.Context, in UsageFactorInput) (*domain.UsageFactor, error) {
	key, err := rateKey(in.UsageTypeMr)
	if err != nil {
		return nil, err
	}
	eff, err := ParseDate(in.EffectiveFrom)
	if err != nil {
		return nil, err
	}
	r := &domain.UsageFactor{UsageTypeMr: key, Weightage: deref(in.Weightage), EffectiveFrom: eff}
	if err := nonNegative(r.Weightage); err != nil {
		return nil, err
	}
	if err := s.repos.Usage.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *rateService) UpdateUsageFactor(ctx context.Context, id uuid.UUID, in UsageFactorPatch) (*domain.UsageFactor, error) {
	r, err := s.repos.Usage.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.UsageTypeMr != nil {
		if r.UsageTypeMr, err = rateKey(*in.UsageTypeMr); err != nil {
			return nil, err
		}
	}
	setFloat(&r.Weightage, in.Weightage)
	if err := setDate(&r.EffectiveFrom, in.EffectiveFrom); err != nil {
		return nil, err
	}
	if err := nonNegative(r.Weightage); err != nil {
		return nil, err
	}
	if err := s.repos.Usage.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *rateService) DeleteUsageFactor(ctx context.Context, id uuid.UUID) error {
	return s.repos.Usage.Delete(ctx, id)
}

// Water supply rates

func (s *rateService) ListWaterSupplyRates(ctx context.Context) ([]domain.WaterSupplyTaxRate, error) {
	return s.repos.Water.List(ctx)
}

func (s *rateService) CreateWaterSupplyRate(ctx context.Context, in WaterSupplyRateInput) (*domain.WaterSupplyTaxRate, error) {
	key, err := rateKey(in.WaterTaxTypeMr)
	if err != nil {
		return nil, err
	}
	eff, err := ParseDate(in.EffectiveFrom)
	if err != nil {
		return nil, err
	}
	r := &domain.WaterSupplyTaxRate{WaterTaxTypeMr: key, Rate: deref(in.Rate), EffectiveFrom: eff}
	if err := nonNegative(r.Rate); err != nil {
		return nil, err
	}
	if err := s.repos.Water.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *rateService) UpdateWaterSupplyRate(ctx context.Context, id uuid.UUID, in WaterSupplyRatePatch) (*domain.WaterSupplyTaxRate, error) {
	r, err := s.repos.Water.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.WaterTaxTypeMr != nil {
		if r.WaterTaxTypeMr, err = rateKey(*in.WaterTaxTypeMr); err != nil {
			return nil, err
		}
	}
	setFloat(&r.Rate, in.Rate)
	if err := setDate(&r.EffectiveFrom, in.EffectiveFrom); err != nil {
		return nil, err
	}
	if err := nonNegative(r.Rate); err != nil {
		return nil, err
	}
	if err := s.repos.Water.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *rateService) DeleteWaterSupplyRate(ctx context.Context, id uuid.UUID) error {
	return s.repos.Water.Delete(ctx, id)
}

// Slab levies

func (s *rateService) ListSlabTaxRates(ctx context.Context, key domain.SlabTaxKey) ([]domain.SlabTaxRate, error) {
	if !domain.ValidSlabTaxKey(key) {
		return nil, domain.ErrInvalidTaxKey
	}
	return s.repos.Slab.List(ctx, key)
}

func (s *rateService) CreateSlabTaxRate(ctx context.Context, key domain.SlabTaxKey, in SlabTaxRateInput) (*domain.SlabTaxRate, error) {
	if !domain.ValidSlabTaxKey(key) {
		return nil, domain.ErrInvalidTaxKey
	}
	eff, err := ParseDate(in.EffectiveFrom)
	if err != nil {
		return nil, err
	}
	r := &domain.SlabTaxRate{
		TaxKey:        key,
		SlabFromSqFt:  deref(in.SlabFromSqFt),
		SlabToSqFt:    in.SlabToSqFt,
		Rate:          deref(in.Rate),
		EffectiveFrom: eff,
	}
	if err := validateSlabTaxRate(r); err != nil {
		return nil, err
	}
	if err := s.repos.Slab.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *rateService) UpdateSlabTaxRate(ctx context.Context, key domain.SlabTaxKey, id uuid.UUID, in SlabTaxRatePatch) (*domain.SlabTaxRate, error) {
	r, err := s.slabForKey(ctx, key, id)
	if err != nil {
		return nil, err
	}
	setFloat(&r.SlabFromSqFt, in.SlabFromSqFt)
	switch {
	case in.ClearSlabTo:
		r.SlabToSqFt = nil
	case in.SlabToSqFt != nil:
		to := *in.SlabToSqFt
		r.SlabToSqFt = &to
	}
	setFloat(&r.Rate, in.Rate)
	if err := setDate(&r.EffectiveFrom, in.EffectiveFrom); err != nil {
		return nil, err
	}
	if err := validateSlabTaxRate(r); err != nil {
		return nil, err
	}
	if err := s.repos.Slab.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *rateService) DeleteSlabTaxRate(ctx context.Context, key domain.SlabTaxKey, id uuid.UUID) error {
	if _, err := s.slabForKey(ctx, key, id); err != nil {
		return err
	}
	return s.repos.Slab.Delete(ctx, id)
}

// slabForKey loads a band and hides it when it belongs to a different levy.
func (s *rateService) slabForKey(ctx context.Context, key domain.SlabTaxKey, id uuid.UUID) (*domain.SlabTaxRate, error) {
	if !domain.ValidSlabTaxKey(key) {
		return nil, domain.ErrInvalidTaxKey
	}
	r, err := s.repos.Slab.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.TaxKey != key {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

func validateConstructionLandRate(r *domain.ConstructionLandRate) error {
	return nonNegative(r.ConstructionRate, r.ConstructionLandRate, r.LandRate, r.ApprovedRate)
}

func validateDepreciationRate(r *domain.DepreciationRate) error {
	if r.AgeFromYear < 0 || (r.AgeToYear != nil && *r.AgeToYear < 0) {
		return domain.ErrInvalidRate
	}
	if r.DepreciationRate < 0 || r.DepreciationRate > 100 {
		return domain.ErrInvalidRate
	}
	if r.AgeToYear != nil && *r.AgeToYear < r.AgeFromYear {
		return domain.ErrInvalidSlabRange
	}
	return nil
}

func validateSlabTaxRate(r *domain.SlabTaxRate) error {
	if err := nonNegative(r.SlabFromSqFt, r.Rate); err != nil {
		return err
	}
	if r.SlabToSqFt != nil && *r.SlabToSqFt < r.SlabFromSqFt {
		return domain.ErrInvalidSlabRange
	}
	return nil
}

func nonNegative(vals ...float64) error {
	for _, v := range vals {
		if v < 0 {
			return domain.ErrInvalidRate
		}
	}
	return nil
}

func rateKey(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", domain.ErrInvalidRate
	}
	return s, nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setDate(dst *time.Time, src *string) error {
	if src == nil {
		return nil
	}
	t, err := ParseDate(*src)
	if err != nil {
		return err
	}
	*dst = t
	return nil
}
