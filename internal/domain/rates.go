package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConstructionLandRate holds the per-square-metre rates for one property type.
// ApprovedRate is the per-mille tax multiplier applied to capital value.
type ConstructionLandRate struct {
	ID                   uuid.UUID `db:"id" json:"id"`
	PropertyTypeMr       string    `db:"property_type_mr" json:"property_type_mr"`
	ConstructionRate     float64   `db:"construction_rate" json:"construction_rate"`
	ConstructionLandRate float64   `db:"construction_land_rate" json:"construction_land_rate"`
	LandRate             float64   `db:"land_rate" json:"land_rate"`
	ApprovedRate         float64   `db:"approved_rate" json:"approved_rate"`
	EffectiveFrom        time.Time `db:"effective_from" json:"effective_from"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
}

func (r ConstructionLandRate) EffectiveDate() time.Time { return r.EffectiveFrom }
func (r ConstructionLandRate) CreatedDate() time.Time   { return r.CreatedAt }

// DepreciationRate maps a building-age band to the percentage of construction
// value retained. A nil AgeToYear means "and above".
type DepreciationRate struct {
	ID               uuid.UUID `db:"id" json:"id"`
	AgeFromYear      int       `db:"age_from_year" json:"age_from_year"`
	AgeToYear        *int      `db:"age_to_year" json:"age_to_year"`
	DepreciationRate float64   `db:"depreciation_rate" json:"depreciation_rate"`
	EffectiveFrom    time.Time `db:"effective_from" json:"effective_from"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

func (r DepreciationRate) EffectiveDate() time.Time { return r.EffectiveFrom }
func (r DepreciationRate) CreatedDate() time.Time   { return r.CreatedAt }

// UsageFactor is the capital value multiplier for a usage type.
type UsageFactor struct {
	ID            uuid.UUID `db:"id" json:"id"`
	UsageTypeMr   string    `db:"usage_type_mr" json:"usage_type_mr"`
	Weightage     float64   `db:"weightage" json:"weightage"`
	EffectiveFrom time.Time `db:"effective_from" json:"effective_from"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

func (r UsageFactor) EffectiveDate() time.Time { return r.EffectiveFrom }
func (r UsageFactor) CreatedDate() time.Time   { return r.CreatedAt }

// WaterSupplyTaxRate is a flat water tax amount for a connection type.
type WaterSupplyTaxRate struct {
	ID             uuid.UUID `db:"id" json:"id"`
	WaterTaxTypeMr string    `db:"water_tax_type_mr" json:"water_tax_type_mr"`
	Rate           float64   `db:"rate" json:"rate"`
	EffectiveFrom  time.Time `db:"effective_from" json:"effective_from"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

func (r WaterSupplyTaxRate) EffectiveDate() time.Time { return r.EffectiveFrom }
func (r WaterSupplyTaxRate) CreatedDate() time.Time   { return r.CreatedAt }

// SlabTaxRate is one area band of a slab levy. A nil SlabToSqFt means "and above".
type SlabTaxRate struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	TaxKey        SlabTaxKey `db:"tax_key" json:"tax_key"`
	SlabFromSqFt  float64    `db:"slab_from_sq_ft" json:"slab_from_sq_ft"`
	SlabToSqFt    *float64   `db:"slab_to_sq_ft" json:"slab_to_sq_ft"`
	Rate          float64    `db:"rate" json:"rate"`
	EffectiveFrom time.Time  `db:"effective_from" json:"effective_from"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

func (r SlabTaxRate) EffectiveDate() time.Time { return r.EffectiveFrom }
func (r SlabTaxRate) CreatedDate() time.Time   { return r.CreatedAt }
