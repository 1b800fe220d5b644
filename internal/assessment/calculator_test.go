package assessment_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grampanchayat/internal/assessment"
	"grampanchayat/internal/domain"
)

const assessYear = 2025

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func baseRates() assessment.Rates {
	return assessment.Rates{
		Construction: []domain.ConstructionLandRate{
			{ID: uuid.New(), PropertyTypeMr: "RCC", ConstructionRate: 1000, LandRate: 200, ApprovedRate: 0.6, EffectiveFrom: date(2024, 4, 1)},
		},
		Usage: []domain.UsageFactor{
			{ID: uuid.New(), UsageTypeMr: "Residential", Weightage: 1.0, EffectiveFrom: date(2024, 4, 1)},
			{ID: uuid.New(), UsageTypeMr: "Commercial", Weightage: 1.5, EffectiveFrom: date(2024, 4, 1)},
		},
		Depreciation: []domain.DepreciationRate{
			{ID: uuid.New(), AgeFromYear: 0, AgeToYear: intPtr(15), DepreciationRate: 70, EffectiveFrom: date(2024, 4, 1)},
			{ID: uuid.New(), AgeFromYear: 16, AgeToYear: intPtr(30), DepreciationRate: 50, EffectiveFrom: date(2024, 4, 1)},
		},
	}
}

func line(year int) domain.PropertyConstruction {
	return domain.PropertyConstruction{
		UsageType:        "Residential",
		ConstructionType: "RCC",
		ConstructionYear: year,
		Floor:            "Ground",
		Length:           10,
		Width:            5,
		AreaSqFt:         50,
	}
}

func TestValueConstruction_OpenLandExample(t *testing.T) {
	snap := assessment.NewSnapshot(baseRates(), nil)

	lv, notes := assessment.ValueConstruction(line(domain.OpenLandYear), snap, assessYear)

	assert.Empty(t, notes)
	assert.Equal(t, 0, lv.Age)
	assert.Equal(t, 0.0, lv.DepPercentage)
	assert.InDelta(t, 4.645, lv.AreaSqMeter, 0.001)
	assert.Equal(t, 200.0, lv.EffectiveRate)
	assert.InDelta(t, 929.03, lv.CapitalValue, 0.01)
	assert.Equal(t, int64(1), lv.TaxAmount)
	assert.Equal(t, assessment.SourceResolved, lv.Sources.ConstructionRate)
	assert.Equal(t, assessment.SourceResolved, lv.Sources.UsageFactor)
	assert.Equal(t, assessment.SourceDefaultedZero, lv.Sources.Depreciation)
}

func TestValueConstruction_DepreciatedBuildingExample(t *testing.T) {
	snap := assessment.NewSnapshot(baseRates(), nil)

	lv, notes := assessment.ValueConstruction(line(assessYear-10), snap, assessYear)

	assert.Empty(t, notes)
	assert.Equal(t, 10, lv.Age)
	assert.Equal(t, 70.0, lv.DepPercentage)
	assert.InDelta(t, 900.0, lv.EffectiveRate, 1e-9)
	assert.InDelta(t, 4180.64, lv.CapitalValue, 0.01)
	assert.Equal(t, int64(3), lv.TaxAmount)
	assert.Equal(t, assessment.SourceResolved, lv.Sources.Depreciation)
}

func TestValueConstruction_DepreciationBoundaries(t *testing.T) {
	withTop := baseRates()
	withTop.Depreciation = append(withTop.Depreciation, domain.DepreciationRate{
		ID: uuid.New(), AgeFromYear: 31, AgeToYear: nil, DepreciationRate: 30, EffectiveFrom: date(2024, 4, 1),
	})

	tests := []struct {
		name    string
		rates   assessment.Rates
		age     int
		wantDep float64
		wantSrc assessment.Source
	}{
		{"upper edge of first band stays in first band", baseRates(), 15, 70, assessment.SourceResolved},
		{"lower edge of second band", baseRates(), 16, 50, assessment.SourceResolved},
		{"upper edge of second band", baseRates(), 30, 50, assessment.SourceResolved},
		{"above closed bands without top band", baseRates(), 45, 100, assessment.SourceDefaultedMissing},
		{"above closed bands with open top band", withTop, 45, 30, assessment.SourceResolved},
		{"exactly at open top band start", withTop, 31, 30, assessment.SourceResolved},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := assessment.NewSnapshot(tc.rates, nil)
			lv, _ := assessment.ValueConstruction(line(assessYear-tc.age), snap, assessYear)
			assert.Equal(t, tc.age, lv.Age)
			assert.Equal(t, tc.wantDep, lv.DepPercentage)
			assert.Equal(t, tc.wantSrc, lv.Sources.Depreciation)
		})
	}
}

func TestValueConstruction_OpenLandIgnoresDepreciationBands(t *testing.T) {
	rates := baseRates()
	rates.Depreciation = []domain.DepreciationRate{
		{ID: uuid.New(), AgeFromYear: 0, AgeToYear: nil, DepreciationRate: 90, EffectiveFrom: date(2024, 4, 1)},
	}
	snap := assessment.NewSnapshot(rates, nil)

	lv, _ := assessment.ValueConstruction(line(domain.OpenLandYear), snap, assessYear)

	assert.Equal(t, 0, lv.Age)
	assert.Equal(t, 0.0, lv.DepPercentage)
}

func TestValueConstruction_UnknownConstructionTypeYieldsZero(t *testing.T) {
	snap := assessment.NewSnapshot(baseRates(), nil)
	c := line(assessYear - 5)
	c.ConstructionType = "Tin-shed"

	var lv assessment.LineValuation
	var notes []assessment.DefaultNote
	require.NotPanics(t, func() {
		lv, notes = assessment.ValueConstruction(c, snap, assessYear)
	})

	assert.Equal(t, 0.0, lv.CapitalValue)
	assert.Equal(t, int64(0), lv.TaxAmount)
	assert.Equal(t, assessment.SourceDefaultedZero, lv.Sources.ConstructionRate)
	require.Len(t, notes, 1)
	assert.Equal(t, assessment.FactorConstructionRate, notes[0].Factor)
	assert.Equal(t, "Tin-shed", notes[0].Key)
}

func TestValueConstruction_UnknownUsageDefaultsToOne(t *testing.T) {
	snap := assessment.NewSnapshot(baseRates(), nil)
	c := line(domain.OpenLandYear)
	c.UsageType = "residential" // keys are case sensitive

	lv, notes := assessment.ValueConstruction(c, snap, assessYear)

	assert.Equal(t, 1.0, lv.Weightage)
	assert.Equal(t, assessment.SourceDefaultedMissing, lv.Sources.UsageFactor)
	require.Len(t, notes, 1)
	assert.Equal(t, assessment.FactorUsageFactor, notes[0].Factor)
}

func TestValueConstruction_WeightageScalesCapitalValue(t *testing.T) {
	snap := assessment.NewSnapshot(baseRates(), nil)
	res := line(domain.OpenLandYear)
	com := res
	com.UsageType = "Commercial"

	a, _ := assessment.ValueConstruction(res, snap, assessYear)
	b, _ := assessment.ValueConstruction(com, snap, assessYear)

	assert.InDelta(t, a.CapitalValue*1.5, b.CapitalValue, 1e-9)
}

func TestValueConstruction_NoRatesAtAll(t *testing.T) {
	snap := assessment.NewSnapshot(assessment.Rates{}, nil)

	lv, notes := assessment.ValueConstruction(line(assessYear-3), snap, assessYear)

	assert.Equal(t, int64(0), lv.TaxAmount)
	assert.Equal(t, 100.0, lv.DepPercentage)
	assert.Equal(t, 1.0, lv.Weightage)
	assert.Len(t, notes, 3)
}

func TestValueConstruction_Idempotent(t *testing.T) {
	snap := assessment.NewSnapshot(baseRates(), nil)
	c := line(assessYear - 20)

	first, firstNotes := assessment.ValueConstruction(c, snap, assessYear)
	second, secondNotes := assessment.ValueConstruction(c, snap, assessYear)

	assert.Equal(t, first, second)
	assert.Equal(t, firstNotes, secondNotes)
}

func TestRoundTax_HalfUp(t *testing.T) {
	assert.Equal(t, int64(1), assessment.RoundTax(0.5574))
	assert.Equal(t, int64(3), assessment.RoundTax(2.508))
	assert.Equal(t, int64(3), assessment.RoundTax(2.5))
	assert.Equal(t, int64(2), assessment.RoundTax(2.4999))
	assert.Equal(t, int64(0), assessment.RoundTax(0))
}

func TestAssessProperty_TotalSumsRoundedLines(t *testing.T) {
	rates := assessment.Rates{
		Construction: []domain.ConstructionLandRate{
			{ID: uuid.New(), PropertyTypeMr: "Open", LandRate: 400, ApprovedRate: 1, EffectiveFrom: date(2024, 4, 1)},
		},
	}
	snap := assessment.NewSnapshot(rates, nil)
	oneSqMeter := domain.PropertyConstruction{
		UsageType:        "Residential",
		ConstructionType: "Open",
		ConstructionYear: domain.OpenLandYear,
		Length:           assessment.SqFtPerSqMeter,
		Width:            1,
		AreaSqFt:         assessment.SqFtPerSqMeter,
	}
	p := &domain.Property{ID: uuid.New(), Constructions: domain.Constructions{oneSqMeter, oneSqMeter}}

	a := assessment.AssessProperty(p, snap, assessYear)

	var unrounded float64
	for _, l := range a.Lines {
		assert.Equal(t, int64(0), l.TaxAmount)
		unrounded += l.CapitalValue * l.TaxRate / assessment.PerMille
	}
	assert.Equal(t, int64(0), a.TotalTax)
	assert.Equal(t, int64(1), assessment.RoundTax(unrounded))
}

func TestAssessProperty_AggregatesLinesAndReportsWaterSeparately(t *testing.T) {
	rates := baseRates()
	rates.Water = []domain.WaterSupplyTaxRate{
		{ID: uuid.New(), WaterTaxTypeMr: "Private tap", Rate: 600, EffectiveFrom: date(2024, 4, 1)},
	}
	snap := assessment.NewSnapshot(rates, nil)
	p := &domain.Property{
		ID:            uuid.New(),
		WaterTaxType:  "Private tap",
		Constructions: domain.Constructions{line(domain.OpenLandYear), line(assessYear - 10)},
	}

	a := assessment.AssessProperty(p, snap, assessYear)

	require.Len(t, a.Lines, 2)
	assert.Equal(t, int64(4), a.TotalTax)
	assert.Equal(t, 600.0, a.WaterTax)
	assert.Equal(t, assessment.SourceResolved, a.WaterTaxSource)
	assert.Equal(t, p.ID, a.PropertyID)
	assert.Equal(t, assessYear, a.Year)
}

func TestAssessProperty_UnknownWaterTypeDefaultsToZero(t *testing.T) {
	snap := assessment.NewSnapshot(baseRates(), nil)
	p := &domain.Property{ID: uuid.New(), WaterTaxType: "Well"}

	a := assessment.AssessProperty(p, snap, assessYear)

	assert.Equal(t, 0.0, a.WaterTax)
	assert.Equal(t, assessment.SourceDefaultedZero, a.WaterTaxSource)
	assert.Contains(t, a.Defaults, assessment.DefaultNote{Line: -1, Factor: assessment.FactorWaterTax, Key: "Well", Source: assessment.SourceDefaultedZero})
}

func TestAssessProperty_TaxExemptShortCircuits(t *testing.T) {
	rates := baseRates()
	rates.Slabs = map[domain.SlabTaxKey][]domain.SlabTaxRate{
		domain.SlabTaxHealth: {{ID: uuid.New(), TaxKey: domain.SlabTaxHealth, SlabFromSqFt: 0, Rate: 50, EffectiveFrom: date(2024, 4, 1)}},
	}
	snap := assessment.NewSnapshot(rates, nil)
	p := &domain.Property{
		ID:            uuid.New(),
		IsTaxExempt:   true,
		Constructions: domain.Constructions{line(assessYear - 10), line(domain.OpenLandYear)},
	}

	a := assessment.AssessProperty(p, snap, assessYear)

	assert.True(t, a.IsTaxExempt)
	assert.Equal(t, int64(0), a.TotalTax)
	require.Len(t, a.Lines, 2)
	for _, l := range a.Lines {
		assert.Equal(t, "RCC", l.ConstructionType)
		assert.Equal(t, 50.0, l.AreaSqFt)
		assert.Equal(t, 0.0, l.CapitalValue)
		assert.Equal(t, int64(0), l.TaxAmount)
		assert.Equal(t, assessment.SourceDefaultedZero, l.Sources.ConstructionRate)
	}
	for _, lv := range a.Levies {
		assert.Equal(t, 0.0, lv.Rate)
	}
	assert.Empty(t, a.Defaults)
}

func TestAssessProperty_SlabLevies(t *testing.T) {
	rates := baseRates()
	rates.Slabs = map[domain.SlabTaxKey][]domain.SlabTaxRate{
		domain.SlabTaxHealth: {
			{ID: uuid.New(), TaxKey: domain.SlabTaxHealth, SlabFromSqFt: 0, SlabToSqFt: floatPtr(1000), Rate: 50, EffectiveFrom: date(2024, 4, 1)},
			{ID: uuid.New(), TaxKey: domain.SlabTaxHealth, SlabFromSqFt: 1001, SlabToSqFt: nil, Rate: 100, EffectiveFrom: date(2024, 4, 1)},
		},
		domain.SlabTaxDivabatti: {
			{ID: uuid.New(), TaxKey: domain.SlabTaxDivabatti, SlabFromSqFt: 0, SlabToSqFt: floatPtr(500), Rate: 20, EffectiveFrom: date(2024, 4, 1)},
		},
	}
	snap := assessment.NewSnapshot(rates, nil)
	big := line(assessYear - 1)
	big.Length, big.Width, big.AreaSqFt = 40, 30, 1200
	p := &domain.Property{ID: uuid.New(), Constructions: domain.Constructions{big}}

	a := assessment.AssessProperty(p, snap, assessYear)

	require.Len(t, a.Levies, 3)
	assert.Equal(t, domain.SlabTaxHealth, a.Levies[0].TaxKey)
	assert.Equal(t, 100.0, a.Levies[0].Rate)
	assert.Equal(t, 1200.0, a.Levies[0].AreaSqFt)
	assert.Equal(t, assessment.SourceResolved, a.Levies[0].Source)
	assert.Equal(t, domain.SlabTaxElectricitySupply, a.Levies[1].TaxKey)
	assert.Equal(t, assessment.SourceDefaultedZero, a.Levies[1].Source)
	assert.Equal(t, 0.0, a.Levies[2].Rate)
	assert.Equal(t, assessment.SourceDefaultedZero, a.Levies[2].Source)
}

func TestAssessProperty_DefaultNotesCarryLineIndex(t *testing.T) {
	snap := assessment.NewSnapshot(baseRates(), nil)
	bad := line(domain.OpenLandYear)
	bad.ConstructionType = "Unknown"
	p := &domain.Property{ID: uuid.New(), Constructions: domain.Constructions{line(domain.OpenLandYear), bad}}

	a := assessment.AssessProperty(p, snap, assessYear)

	assert.Contains(t, a.Defaults, assessment.DefaultNote{Line: 1, Factor: assessment.FactorConstructionRate, Key: "Unknown", Source: assessment.SourceDefaultedZero})
}
