package seed_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"grampanchayat/internal/domain"
	"grampanchayat/internal/seed"
)

func workbook(t *testing.T, sheets map[string][][]interface{}) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	for name, rows := range sheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}
	return f
}

func TestReadBook_AllSheets(t *testing.T) {
	f := workbook(t, map[string][][]interface{}{
		seed.SheetConstructionLand: {
			{"property_type_mr", "construction_rate", "construction_land_rate", "land_rate", "approved_rate", "effective_from"},
			{"RCC", 20000, 0, 3000, 1.2, "2024-04-01"},
			{"", "", "", "", "", ""},
		},
		seed.SheetDepreciation: {
			{"age_from_year", "age_to_year", "depreciation_rate", "effective_from"},
			{0, 20, 100, "2024-04-01"},
			{21, "", 70, "2024-04-01"},
		},
		seed.SheetUsageFactors: {
			{"usage_type_mr", "weightage", "effective_from"},
			{"Residential", 1, "2024-04-01"},
		},
		seed.SheetWaterSupply: {
			{"water_tax_type_mr", "rate", "effective_from"},
			{"Tap", 250, "2024-04-01"},
		},
		seed.SheetSlabTax: {
			{"tax_key", "slab_from_sq_ft", "slab_to_sq_ft", "rate", "effective_from"},
			{"health", 0, 1000, 20, "2024-04-01"},
			{"HEALTH", 1001, "", 40, "2024-04-01"},
		},
	})

	book, err := seed.ReadBook(f)

	require.NoError(t, err)
	assert.Equal(t, 7, book.Len())
	require.Len(t, book.Construction, 1)
	assert.Equal(t, 1.2, book.Construction[0].ApprovedRate)
	require.Len(t, book.Depreciation, 2)
	assert.Nil(t, book.Depreciation[1].AgeToYear)
	require.Len(t, book.Slab, 2)
	assert.Equal(t, domain.SlabTaxHealth, book.Slab[0].TaxKey)
	assert.Nil(t, book.Slab[1].SlabToSqFt)
}

func TestReadBook_MissingSheetsSkipped(t *testing.T) {
	f := workbook(t, map[string][][]interface{}{
		seed.SheetUsageFactors: {
			{"usage_type_mr", "weightage", "effective_from"},
			{"Commercial", 1.5, "2024-04-01"},
		},
	})

	book, err := seed.ReadBook(f)

	require.NoError(t, err)
	assert.Equal(t, 1, book.Len())
}

func TestReadBook_RowErrors(t *testing.T) {
	tests := []struct {
		name  string
		sheet string
		row   []interface{}
		want  error
	}{
		{"negative rate", seed.SheetWaterSupply, []interface{}{"Tap", -1, "2024-04-01"}, domain.ErrInvalidRate},
		{"bad date", seed.SheetUsageFactors, []interface{}{"Residential", 1, "01/04/2024"}, domain.ErrInvalidDate},
		{"unknown levy", seed.SheetSlabTax, []interface{}{"SEWAGE", 0, 100, 5, "2024-04-01"}, domain.ErrInvalidTaxKey},
		{"inverted slab", seed.SheetSlabTax, []interface{}{"HEALTH", 500, 100, 5, "2024-04-01"}, domain.ErrInvalidSlabRange},
		{"depreciation above 100", seed.SheetDepreciation, []interface{}{0, 10, 120, "2024-04-01"}, domain.ErrInvalidRate},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := workbook(t, map[string][][]interface{}{tc.sheet: {{"header"}, tc.row}})

			_, err := seed.ReadBook(f)

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			var rowErr *seed.RowError
			require.True(t, errors.As(err, &rowErr))
			assert.Equal(t, 2, rowErr.Row)
		})
	}
}

func TestWriteSQL(t *testing.T) {
	f := workbook(t, map[string][][]interface{}{
		seed.SheetUsageFactors: {
			{"usage_type_mr", "weightage", "effective_from"},
			{"Owner's shop", 1.25, "2024-04-01"},
		},
		seed.SheetSlabTax: {
			{"tax_key", "slab_from_sq_ft", "slab_to_sq_ft", "rate", "effective_from"},
			{"DIVABATTI", 0, "", 10, "2024-04-01"},
		},
	})
	book, err := seed.ReadBook(f)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, seed.WriteSQL(&buf, book))
	sql := buf.String()

	assert.True(t, strings.HasPrefix(sql, "-- Global rate seed data"))
	assert.Contains(t, sql, "INSERT INTO usage_factors")
	assert.Contains(t, sql, "'Owner''s shop', 1.25, '2024-04-01'")
	assert.Contains(t, sql, "'DIVABATTI', 0, NULL, 10, '2024-04-01'")
	assert.NotContains(t, sql, "INSERT INTO depreciation_rates")
	assert.Equal(t, 2, strings.Count(sql, "ON CONFLICT DO NOTHING"))
	assert.True(t, strings.HasSuffix(sql, "COMMIT;\n"))
}

func TestWriteSQL_StableIDs(t *testing.T) {
	rows := map[string][][]interface{}{
		seed.SheetWaterSupply: {{"h"}, {"Tap", 250, "2024-04-01"}},
	}
	a, err := seed.ReadBook(workbook(t, rows))
	require.NoError(t, err)
	b, err := seed.ReadBook(workbook(t, rows))
	require.NoError(t, err)

	assert.Equal(t, a.Water[0].ID, b.Water[0].ID)
}

func TestReadBook_DepreciationRow(t *testing.T) {
	f := workbook(t, map[string][][]interface{}{
		seed.SheetDepreciation: {
			{"age_from_year", "age_to_year", "depreciation_rate", "effective_from"},
			{0, 15, 70, "2024-04-01"},
		},
	})

	book, err := seed.ReadBook(f)

	require.NoError(t, err)
	require.Len(t, book.Depreciation, 1)
	d := book.Depreciation[0]
	assert.Equal(t, 0, d.AgeFromYear)
	require.NotNil(t, d.AgeToYear)
	assert.Equal(t, 15, *d.AgeToYear)
	assert.Equal(t, 70.0, d.DepreciationRate)
	assert.Equal(t, "2024-04-01", d.EffectiveFrom.Format("2006-01-02"))
}
