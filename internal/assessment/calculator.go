package assessment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"grampanchayat/internal/domain"
)

const (
	// SqFtPerSqMeter converts recorded square feet to square metres.
	SqFtPerSqMeter = 10.763910416709722
	// PerMille is the divisor applied to the approved tax rate.
	PerMille = 1000
	// FullRetainedPercent is used when a building's age matches no depreciation band.
	FullRetainedPercent = 100
	// DefaultWeightage is used when a usage type matches no usage factor.
	DefaultWeightage = 1
)

// Source tags how a factor was obtained so callers can tell a real match from
// a fallback.
type Source string

const (
	SourceResolved         Source = "resolved"
	SourceDefaultedMissing Source = "defaulted_missing"
	SourceDefaultedZero    Source = "defaulted_zero"
)

// Factor names used in default notes.
const (
	FactorConstructionRate = "construction_rate"
	FactorUsageFactor      = "usage_factor"
	FactorDepreciation     = "depreciation"
	FactorWaterTax         = "water_tax"
	FactorLevy             = "levy"
)

// LineSources records the resolution path of each factor of a line.
type LineSources struct {
	ConstructionRate Source `json:"construction_rate"`
	UsageFactor      Source `json:"usage_factor"`
	Depreciation     Source `json:"depreciation"`
}

// LineValuation is the computed assessment of one construction line.
type LineValuation struct {
	ConstructionType string      `json:"construction_type"`
	UsageType        string      `json:"usage_type"`
	Floor            string      `json:"floor"`
	ConstructionYear int         `json:"construction_year"`
	Age              int         `json:"age"`
	Length           float64     `json:"length"`
	Width            float64     `json:"width"`
	AreaSqFt         float64     `json:"area_sq_ft"`
	AreaSqMeter      float64     `json:"area_sq_meter"`
	LandRate         float64     `json:"land_rate"`
	ConstructionRate float64     `json:"construction_rate"`
	TaxRate          float64     `json:"tax_rate"`
	DepPercentage    float64     `json:"dep_percentage"`
	Weightage        float64     `json:"weightage"`
	EffectiveRate    float64     `json:"effective_rate"`
	CapitalValue     float64     `json:"capital_value"`
	TaxAmount        int64       `json:"tax_amount"`
	Sources          LineSources `json:"sources"`
}

// Levy is the matched slab levy for a property.
type Levy struct {
	TaxKey   domain.SlabTaxKey `json:"tax_key"`
	AreaSqFt float64           `json:"area_sq_ft"`
	Rate     float64           `json:"rate"`
	Source   Source            `json:"source"`
}

// DefaultNote describes one fallback that fired. Line is -1 for
// property-level factors.
type DefaultNote struct {
	Line   int    `json:"line"`
	Factor string `json:"factor"`
	Key    string `json:"key"`
	Source Source `json:"source"`
}

// Assessment is the full computed result for one property. It is never
// persisted; every read recomputes it.
type Assessment struct {
	PropertyID     uuid.UUID       `json:"property_id"`
	AsOf           *time.Time      `json:"as_of"`
	Year           int             `json:"year"`
	IsTaxExempt    bool            `json:"is_tax_exempt"`
	Lines          []LineValuation `json:"lines"`
	TotalTax       int64           `json:"total_tax"`
	WaterTaxType   string          `json:"water_tax_type"`
	WaterTax       float64         `json:"water_tax"`
	WaterTaxSource Source          `json:"water_tax_source"`
	Levies         []Levy          `json:"levies"`
	Defaults       []DefaultNote   `json:"defaults,omitempty"`
}

// RoundTax rounds a tax amount to the nearest whole currency unit, halves up.
func RoundTax(v float64) int64 {
	return decimal.NewFromFloat(v).Round(0).IntPart()
}

// BuildingAge is the age in whole years at the assessment year. Open land is
// always age 0.
func BuildingAge(constructionYear, year int) int {
	if constructionYear == domain.OpenLandYear {
		return 0
	}
	return year - constructionYear
}

// ValueConstruction computes one line. It never fails: unmatched keys and
// bands fall back to documented defaults, each reported in the returned notes.
func ValueConstruction(c domain.PropertyConstruction, snap *Snapshot, year int) (LineValuation, []DefaultNote) {
	var notes []DefaultNote
	lv := baseLine(c)

	if rate, ok := snap.ConstructionRate(c.ConstructionType); ok {
		lv.ConstructionRate = rate.ConstructionRate
		lv.LandRate = rate.LandRate
		lv.TaxRate = rate.ApprovedRate
		lv.Sources.ConstructionRate = SourceResolved
	} else {
		lv.Sources.ConstructionRate = SourceDefaultedZero
		notes = append(notes, DefaultNote{Factor: FactorConstructionRate, Key: c.ConstructionType, Source: SourceDefaultedZero})
	}

	if usage, ok := snap.UsageFactor(c.UsageType); ok {
		lv.Weightage = usage.Weightage
		lv.Sources.UsageFactor = SourceResolved
	} else {
		lv.Weightage = DefaultWeightage
		lv.Sources.UsageFactor = SourceDefaultedMissing
		notes = append(notes, DefaultNote{Factor: FactorUsageFactor, Key: c.UsageType, Source: SourceDefaultedMissing})
	}

	lv.Age = BuildingAge(c.ConstructionYear, year)
	switch {
	case c.IsOpenLand():
		lv.DepPercentage = 0
		lv.Sources.Depreciation = SourceDefaultedZero
	default:
		if band, ok := snap.Depreciation(lv.Age); ok {
			lv.DepPercentage = band.Value
			lv.Sources.Depreciation = SourceResolved
		} else {
			lv.DepPercentage = FullRetainedPercent
			lv.Sources.Depreciation = SourceDefaultedMissing
			notes = append(notes, DefaultNote{Factor: FactorDepreciation, Source: SourceDefaultedMissing})
		}
	}

	lv.AreaSqMeter = c.AreaSqFt / SqFtPerSqMeter
	lv.EffectiveRate = lv.LandRate + lv.ConstructionRate*(lv.DepPercentage/100)
	lv.CapitalValue = lv.EffectiveRate * lv.AreaSqMeter * lv.Weightage
	lv.TaxAmount = RoundTax(lv.CapitalValue * lv.TaxRate / PerMille)
	return lv, notes
}

// AssessProperty values every line of p and aggregates the result. The total
// is the sum of the already rounded line amounts. Water tax and slab levies
// are reported alongside the total, not added to it.
func AssessProperty(p *domain.Property, snap *Snapshot, year int) Assessment {
	a := Assessment{
		PropertyID:   p.ID,
		AsOf:         snap.AsOf(),
		Year:         year,
		IsTaxExempt:  p.IsTaxExempt,
		Lines:        make([]LineValuation, 0, len(p.Constructions)),
		WaterTaxType: p.WaterTaxType,
	}

	if p.IsTaxExempt {
		for _, c := range p.Constructions {
			a.Lines = append(a.Lines, exemptLine(c, year))
		}
	} else {
		for i, c := range p.Constructions {
			lv, notes := ValueConstruction(c, snap, year)
			for _, n := range notes {
				n.Line = i
				a.Defaults = append(a.Defaults, n)
			}
			a.Lines = append(a.Lines, lv)
			a.TotalTax += lv.TaxAmount
		}
	}

	a.WaterTax, a.WaterTaxSource = 0, SourceDefaultedZero
	if w, ok := snap.WaterRate(p.WaterTaxType); ok {
		a.WaterTax, a.WaterTaxSource = w.Rate, SourceResolved
	} else if p.WaterTaxType != "" {
		a.Defaults = append(a.Defaults, DefaultNote{Line: -1, Factor: FactorWaterTax, Key: p.WaterTaxType, Source: SourceDefaultedZero})
	}

	area := p.TotalAreaSqFt()
	for _, key := range domain.SlabTaxKeys {
		levy := Levy{TaxKey: key, AreaSqFt: area, Source: SourceDefaultedZero}
		if !p.IsTaxExempt {
			if band, ok := snap.Levy(key, area); ok {
				levy.Rate, levy.Source = band.Value, SourceResolved
			} else {
				a.Defaults = append(a.Defaults, DefaultNote{Line: -1, Factor: FactorLevy, Key: string(key), Source: SourceDefaultedZero})
			}
		}
		a.Levies = append(a.Levies, levy)
	}

	return a
}

func baseLine(c domain.PropertyConstruction) LineValuation {
	return LineValuation{
		ConstructionType: c.ConstructionType,
		UsageType:        c.UsageType,
		Floor:            c.Floor,
		ConstructionYear: c.ConstructionYear,
		Length:           c.Length,
		Width:            c.Width,
		AreaSqFt:         c.AreaSqFt,
	}
}

// exemptLine keeps the descriptive columns of an exempt property's line and
// zeroes every computed value.
func exemptLine(c domain.PropertyConstruction, year int) LineValuation {
	lv := baseLine(c)
	lv.Age = BuildingAge(c.ConstructionYear, year)
	lv.AreaSqMeter = c.AreaSqFt / SqFtPerSqMeter
	lv.Sources = LineSources{
		ConstructionRate: SourceDefaultedZero,
		UsageFactor:      SourceDefaultedZero,
		Depreciation:     SourceDefaultedZero,
	}
	return lv
}
