package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"grampanchayat/internal/assessment"
	"grampanchayat/internal/domain"
)

// Row kinds in the register.
const (
	RowLine    = "LINE"
	RowSummary = "SUMMARY"
	RowTotal   = "TOTAL"
)

// Columns is the register header row.
var Columns = []string{
	"Ward No",
	"Property No",
	"Owner Name",
	"Occupier Name",
	"Row",
	"Line",
	"Construction Type",
	"Usage Type",
	"Floor",
	"Construction Year",
	"Age",
	"Area (sq ft)",
	"Area (sq m)",
	"Land Rate",
	"Construction Rate",
	"Depreciation %",
	"Weightage",
	"Effective Rate",
	"Capital Value",
	"Tax Rate",
	"Tax Amount",
	"Water Tax",
	"Health Levy",
	"Electricity Levy",
	"Divabatti Levy",
	"Tax Exempt",
}

const (
	colTaxAmount = 20
	colWaterTax  = 21
	colLevyStart = 22
	colExempt    = 25
)

// Entry is one property and its assessment.
type Entry struct {
	Property   domain.Property
	Assessment assessment.Assessment
}

// Register is a village assessment register ready for rendering.
type Register struct {
	VillageName string
	VillageCode string
	AsOf        *time.Time
	Year        int
	GeneratedAt time.Time
	Entries     []Entry
}

// Totals are the village-wide sums printed in the last row.
type Totals struct {
	TotalTax int64
	WaterTax decimal.Decimal
	Levies   map[domain.SlabTaxKey]decimal.Decimal
}

// ComputeTotals sums the register. Water and levy amounts are summed as
// decimals so the footer matches the per-property figures exactly.
func ComputeTotals(r *Register) Totals {
	t := Totals{
		WaterTax: decimal.Zero,
		Levies:   make(map[domain.SlabTaxKey]decimal.Decimal, len(domain.SlabTaxKeys)),
	}
	for _, key := range domain.SlabTaxKeys {
		t.Levies[key] = decimal.Zero
	}
	for _, e := range r.Entries {
		t.TotalTax += e.Assessment.TotalTax
		t.WaterTax = t.WaterTax.Add(decimal.NewFromFloat(e.Assessment.WaterTax))
		for _, l := range e.Assessment.Levies {
			t.Levies[l.TaxKey] = t.Levies[l.TaxKey].Add(decimal.NewFromFloat(l.Rate))
		}
	}
	return t
}

// Rows flattens the register: one row per construction line, one summary
// row per property and a final total row. Cells are strings, ints or
// float64 values rounded to two places.
func Rows(r *Register) [][]interface{} {
	rows := make([][]interface{}, 0, len(r.Entries)*2+1)
	for _, e := range r.Entries {
		for i, lv := range e.Assessment.Lines {
			rows = append(rows, lineRow(&e.Property, i, lv))
		}
		rows = append(rows, summaryRow(&e.Property, &e.Assessment))
	}
	return append(rows, totalRow(ComputeTotals(r)))
}

func propertyCells(p *domain.Property, kind string) []interface{} {
	row := make([]interface{}, len(Columns))
	for i := range row {
		row[i] = ""
	}
	row[0] = p.WardNo
	row[1] = p.PropertyNo
	row[2] = p.OwnerName
	row[3] = p.OccupierName
	row[4] = kind
	return row
}

func lineRow(p *domain.Property, idx int, lv assessment.LineValuation) []interface{} {
	row := propertyCells(p, RowLine)
	row[5] = idx + 1
	row[6] = lv.ConstructionType
	row[7] = lv.UsageType
	row[8] = lv.Floor
	row[9] = lv.ConstructionYear
	row[10] = lv.Age
	row[11] = round2(lv.AreaSqFt)
	row[12] = round2(lv.AreaSqMeter)
	row[13] = round2(lv.LandRate)
	row[14] = round2(lv.ConstructionRate)
	row[15] = round2(lv.DepPercentage)
	row[16] = round2(lv.Weightage)
	row[17] = round2(lv.EffectiveRate)
	row[18] = round2(lv.CapitalValue)
	row[19] = lv.TaxRate
	row[colTaxAmount] = lv.TaxAmount
	return row
}

func summaryRow(p *domain.Property, a *assessment.Assessment) []interface{} {
	row := propertyCells(p, RowSummary)
	row[11] = round2(p.TotalAreaSqFt())
	row[colTaxAmount] = a.TotalTax
	row[colWaterTax] = round2(a.WaterTax)
	for i, key := range domain.SlabTaxKeys {
		row[colLevyStart+i] = round2(levyRate(a.Levies, key))
	}
	row[colExempt] = formatBool(a.IsTaxExempt)
	return row
}

func totalRow(t Totals) []interface{} {
	row := make([]interface{}, len(Columns))
	for i := range row {
		row[i] = ""
	}
	row[4] = RowTotal
	row[colTaxAmount] = t.TotalTax
	row[colWaterTax] = t.WaterTax.Round(2).InexactFloat64()
	for i, key := range domain.SlabTaxKeys {
		row[colLevyStart+i] = t.Levies[key].Round(2).InexactFloat64()
	}
	return row
}

func levyRate(levies []assessment.Levy, key domain.SlabTaxKey) float64 {
	for _, l := range levies {
		if l.TaxKey == key {
			return l.Rate
		}
	}
	return 0
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a village name for use in Content-Disposition.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "register"
	}
	return s
}

// BuildFilename returns {village}_register_{YYYY-MM-DD}.{ext}.
func BuildFilename(villageName, ext string, at time.Time) string {
	return fmt.Sprintf("%s_register_%s.%s", SanitizeFilename(villageName), at.Format("2006-01-02"), ext)
}
