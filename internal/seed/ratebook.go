// Package seed turns a rate workbook into SQL seed statements for the global
// rate catalog.
package seed

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"grampanchayat/internal/domain"
	"grampanchayat/internal/service"
)

// Sheet names read from the workbook. Missing sheets are skipped.
const (
	SheetConstructionLand = "construction_land"
	SheetDepreciation     = "depreciation"
	SheetUsageFactors     = "usage_factors"
	SheetWaterSupply      = "water_supply"
	SheetSlabTax          = "slab_tax"
)

// BatchSize caps the rows per INSERT statement.
const BatchSize = 500

// Book holds every rate row read from a workbook.
type Book struct {
	Construction []domain.ConstructionLandRate
	Depreciation []domain.DepreciationRate
	Usage        []domain.UsageFactor
	Water        []domain.WaterSupplyTaxRate
	Slab         []domain.SlabTaxRate
}

// Len is the total row count across all tables.
func (b *Book) Len() int {
	return len(b.Construction) + len(b.Depreciation) + len(b.Usage) + len(b.Water) + len(b.Slab)
}

// RowError points at the offending cell row, 1-based as shown in a spreadsheet.
type RowError struct {
	Sheet string
	Row   int
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s row %d: %v", e.Sheet, e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// ReadBook parses every known sheet. The first row of each sheet is a header;
// rows whose first cell is blank are skipped.
func ReadBook(f *excelize.File) (*Book, error) {
	b := &Book{}
	readers := []struct {
		sheet string
		read  func(row []string) error
	}{
		{SheetConstructionLand, b.addConstruction},
		{SheetDepreciation, b.addDepreciation},
		{SheetUsageFactors, b.addUsage},
		{SheetWaterSupply, b.addWater},
		{SheetSlabTax, b.addSlab},
	}

	for _, r := range readers {
		if idx, _ := f.GetSheetIndex(r.sheet); idx < 0 {
			continue
		}
		rows, err := f.GetRows(r.sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", r.sheet, err)
		}
		for i := 1; i < len(rows); i++ {
			if strings.TrimSpace(cellVal(rows[i], 0)) == "" {
				continue
			}
			if err := r.read(rows[i]); err != nil {
				return nil, &RowError{Sheet: r.sheet, Row: i + 1, Err: err}
			}
		}
	}
	return b, nil
}

// Columns: property_type_mr, construction_rate, construction_land_rate,
// land_rate, approved_rate, effective_from.
func (b *Book) addConstruction(row []string) error {
	nums, err := floats(row, 1, 4)
	if err != nil {
		return err
	}
	eff, err := service.ParseDate(cellVal(row, 5))
	if err != nil {
		return err
	}
	key := strings.TrimSpace(cellVal(row, 0))
	b.Construction = append(b.Construction, domain.ConstructionLandRate{
		ID:                   rowID(SheetConstructionLand, key, eff),
		PropertyTypeMr:       key,
		ConstructionRate:     nums[0],
		ConstructionLandRate: nums[1],
		LandRate:             nums[2],
		ApprovedRate:         nums[3],
		EffectiveFrom:        eff,
	})
	return nil
}

// Columns: age_from_year, age_to_year (blank for open-ended),
// depreciation_rate, effective_from.
func (b *Book) addDepreciation(row []string) error {
	from, err := strconv.Atoi(strings.TrimSpace(cellVal(row, 0)))
	if err != nil || from < 0 {
		return domain.ErrInvalidRate
	}
	var to *int
	if s := strings.TrimSpace(cellVal(row, 1)); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < from {
			return domain.ErrInvalidSlabRange
		}
		to = &v
	}
	nums, err := floats(row, 2, 1)
	if err != nil {
		return err
	}
	if nums[0] > 100 {
		return domain.ErrInvalidRate
	}
	eff, err := service.ParseDate(cellVal(row, 3))
	if err != nil {
		return err
	}
	b.Depreciation = append(b.Depreciation, domain.DepreciationRate{
		ID:               rowID(SheetDepreciation, cellVal(row, 0)+"-"+cellVal(row, 1), eff),
		AgeFromYear:      from,
		AgeToYear:        to,
		DepreciationRate: nums[0],
		EffectiveFrom:    eff,
	})
	return nil
}

// Columns: usage_type_mr, weightage, effective_from.
func (b *Book) addUsage(row []string) error {
	nums, err := floats(row, 1, 1)
	if err != nil {
		return err
	}
	eff, err := service.ParseDate(cellVal(row, 2))
	if err != nil {
		return err
	}
	key := strings.TrimSpace(cellVal(row, 0))
	b.Usage = append(b.Usage, domain.UsageFactor{
		ID:            rowID(SheetUsageFactors, key, eff),
		UsageTypeMr:   key,
		Weightage:     nums[0],
		EffectiveFrom: eff,
	})
	return nil
}

// Columns: water_tax_type_mr, rate, effective_from.
func (b *Book) addWater(row []string) error {
	nums, err := floats(row, 1, 1)
	if err != nil {
		return err
	}
	eff, err := service.ParseDate(cellVal(row, 2))
	if err != nil {
		return err
	}
	key := strings.TrimSpace(cellVal(row, 0))
	b.Water = append(b.Water, domain.WaterSupplyTaxRate{
		ID:             rowID(SheetWaterSupply, key, eff),
		WaterTaxTypeMr: key,
		Rate:           nums[0],
		EffectiveFrom:  eff,
	})
	return nil
}

// Columns: tax_key, slab_from_sq_ft, slab_to_sq_ft (blank for open-ended),
// rate, effective_from.
func (b *Book) addSlab(row []string) error {
	key := domain.SlabTaxKey(strings.ToUpper(strings.TrimSpace(cellVal(row, 0))))
	if !domain.ValidSlabTaxKey(key) {
		return domain.ErrInvalidTaxKey
	}
	from, err := floats(row, 1, 1)
	if err != nil {
		return err
	}
	var to *float64
	if s := strings.TrimSpace(cellVal(row, 2)); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < from[0] {
			return domain.ErrInvalidSlabRange
		}
		to = &v
	}
	rate, err := floats(row, 3, 1)
	if err != nil {
		return err
	}
	eff, err := service.ParseDate(cellVal(row, 4))
	if err != nil {
		return err
	}
	b.Slab = append(b.Slab, domain.SlabTaxRate{
		ID:            rowID(SheetSlabTax, string(key)+"|"+cellVal(row, 1)+"-"+cellVal(row, 2), eff),
		TaxKey:        key,
		SlabFromSqFt:  from[0],
		SlabToSqFt:    to,
		Rate:          rate[0],
		EffectiveFrom: eff,
	})
	return nil
}

// WriteSQL emits the book as batched multi-row INSERTs inside one transaction.
// Row IDs are derived from the row key so re-running the seed is a no-op.
func WriteSQL(w io.Writer, b *Book) error {
	var out strings.Builder
	fmt.Fprintf(&out, "-- Global rate seed data generated from a rate workbook.\n-- %d rows.\nBEGIN;\n", b.Len())

	writeTable(&out, "construction_land_rates",
		"id, property_type_mr, construction_rate, construction_land_rate, land_rate, approved_rate, effective_from",
		len(b.Construction), func(i int) string {
			r := b.Construction[i]
			return fmt.Sprintf("'%s', %s, %s, %s, %s, %s, %s", r.ID, quote(r.PropertyTypeMr),
				num(r.ConstructionRate), num(r.ConstructionLandRate), num(r.LandRate), num(r.ApprovedRate), date(r.EffectiveFrom))
		})
	writeTable(&out, "depreciation_rates",
		"id, age_from_year, age_to_year, depreciation_rate, effective_from",
		len(b.Depreciation), func(i int) string {
			r := b.Depreciation[i]
			to := "NULL"
			if r.AgeToYear != nil {
				to = strconv.Itoa(*r.AgeToYear)
			}
			return fmt.Sprintf("'%s', %d, %s, %s, %s", r.ID, r.AgeFromYear, to, num(r.DepreciationRate), date(r.EffectiveFrom))
		})
	writeTable(&out, "usage_factors",
		"id, usage_type_mr, weightage, effective_from",
		len(b.Usage), func(i int) string {
			r := b.Usage[i]
			return fmt.Sprintf("'%s', %s, %s, %s", r.ID, quote(r.UsageTypeMr), num(r.Weightage), date(r.EffectiveFrom))
		})
	writeTable(&out, "water_supply_tax_rates",
		"id, water_tax_type_mr, rate, effective_from",
		len(b.Water), func(i int) string {
			r := b.Water[i]
			return fmt.Sprintf("'%s', %s, %s, %s", r.ID, quote(r.WaterTaxTypeMr), num(r.Rate), date(r.EffectiveFrom))
		})
	writeTable(&out, "slab_tax_rates",
		"id, tax_key, slab_from_sq_ft, slab_to_sq_ft, rate, effective_from",
		len(b.Slab), func(i int) string {
			r := b.Slab[i]
			to := "NULL"
			if r.SlabToSqFt != nil {
				to = num(*r.SlabToSqFt)
			}
			return fmt.Sprintf("'%s', '%s', %s, %s, %s, %s", r.ID, r.TaxKey, num(r.SlabFromSqFt), to, num(r.Rate), date(r.EffectiveFrom))
		})

	out.WriteString("COMMIT;\n")
	_, err := io.WriteString(w, out.String())
	return err
}

func writeTable(out *strings.Builder, table, columns string, n int, values func(i int) string) {
	for start := 0; start < n; start += BatchSize {
		end := start + BatchSize
		if end > n {
			end = n
		}
		fmt.Fprintf(out, "\nINSERT INTO %s (%s) VALUES\n", table, columns)
		for i := start; i < end; i++ {
			if i > start {
				out.WriteString(",\n")
			}
			fmt.Fprintf(out, "  (%s)", values(i))
		}
		out.WriteString("\nON CONFLICT DO NOTHING;\n")
	}
}

func rowID(sheet, key string, eff time.Time) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(sheet+"|"+strings.TrimSpace(key)+"|"+eff.Format(service.DateLayout)))
}

// floats parses n numeric cells starting at column from. Negative values are rejected.
func floats(row []string, from, n int) ([]float64, error) {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(cellVal(row, from+i)), 64)
		if err != nil || v < 0 {
			return nil, domain.ErrInvalidRate
		}
		out[i] = v
	}
	return out, nil
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func date(t time.Time) string {
	return "'" + t.Format(service.DateLayout) + "'"
}
