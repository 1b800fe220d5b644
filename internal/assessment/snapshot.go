package assessment

import (
	"time"

	"grampanchayat/internal/domain"
)

// Rates is the raw content of every rate table as read from the catalog.
type Rates struct {
	Construction []domain.ConstructionLandRate
	Depreciation []domain.DepreciationRate
	Usage        []domain.UsageFactor
	Water        []domain.WaterSupplyTaxRate
	Slabs        map[domain.SlabTaxKey][]domain.SlabTaxRate
}

// Snapshot is the resolved, read-only view of the rate tables used for one
// assessment run. It is safe to share between goroutines once built.
type Snapshot struct {
	asOf         *time.Time
	construction map[string]domain.ConstructionLandRate
	usage        map[string]domain.UsageFactor
	water        map[string]domain.WaterSupplyTaxRate
	depreciation []Band
	levies       map[domain.SlabTaxKey][]Band
}

// NewSnapshot resolves every category against asOf. A nil asOf keeps the
// newest row per key regardless of its effective date.
func NewSnapshot(r Rates, asOf *time.Time) *Snapshot {
	s := &Snapshot{
		asOf: asOf,
		construction: Index(Resolve(r.Construction, asOf), func(x domain.ConstructionLandRate) string {
			return x.PropertyTypeMr
		}),
		usage: Index(Resolve(r.Usage, asOf), func(x domain.UsageFactor) string {
			return x.UsageTypeMr
		}),
		water: Index(Resolve(r.Water, asOf), func(x domain.WaterSupplyTaxRate) string {
			return x.WaterTaxTypeMr
		}),
		depreciation: DepreciationBands(Resolve(r.Depreciation, asOf)),
		levies:       make(map[domain.SlabTaxKey][]Band, len(r.Slabs)),
	}
	for key, rows := range r.Slabs {
		s.levies[key] = LevyBands(Resolve(rows, asOf))
	}
	return s
}

// AsOf returns the date the snapshot was pinned to, or nil.
func (s *Snapshot) AsOf() *time.Time {
	return s.asOf
}

// ConstructionRate looks up the construction/land rate for a property type.
func (s *Snapshot) ConstructionRate(propertyType string) (domain.ConstructionLandRate, bool) {
	r, ok := s.construction[propertyType]
	return r, ok
}

// UsageFactor looks up the weightage row for a usage type.
func (s *Snapshot) UsageFactor(usageType string) (domain.UsageFactor, bool) {
	r, ok := s.usage[usageType]
	return r, ok
}

// WaterRate looks up the flat water tax for a connection type.
func (s *Snapshot) WaterRate(waterTaxType string) (domain.WaterSupplyTaxRate, bool) {
	r, ok := s.water[waterTaxType]
	return r, ok
}

// Depreciation matches a building age against the depreciation bands.
func (s *Snapshot) Depreciation(age int) (Band, bool) {
	return MatchSlab(s.depreciation, float64(age))
}

// Levy matches an area in square feet against one levy's bands.
func (s *Snapshot) Levy(key domain.SlabTaxKey, areaSqFt float64) (Band, bool) {
	return MatchSlab(s.levies[key], areaSqFt)
}
