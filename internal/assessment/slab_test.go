package assessment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"grampanchayat/internal/assessment"
	"grampanchayat/internal/domain"
)

func TestMatchSlab(t *testing.T) {
	bands := []assessment.Band{
		{From: 0, To: floatPtr(500), Value: 10},
		{From: 501, To: floatPtr(1000), Value: 20},
		{From: 1001, To: nil, Value: 30},
	}

	tests := []struct {
		name  string
		probe float64
		want  float64
		found bool
	}{
		{"lower bound inclusive", 0, 10, true},
		{"upper bound inclusive", 500, 10, true},
		{"gap between closed bands", 500.5, 0, false},
		{"next band start", 501, 20, true},
		{"open top band", 1e6, 30, true},
		{"below every band", -1, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, ok := assessment.MatchSlab(bands, tc.probe)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.want, b.Value)
		})
	}
}

func TestMatchSlab_OverlapReturnsFirstInOrder(t *testing.T) {
	bands := []assessment.Band{
		{From: 0, To: floatPtr(100), Value: 1},
		{From: 50, To: floatPtr(150), Value: 2},
	}

	b, ok := assessment.MatchSlab(bands, 75)

	assert.True(t, ok)
	assert.Equal(t, 1.0, b.Value)
}

func TestMatchSlab_Empty(t *testing.T) {
	_, ok := assessment.MatchSlab(nil, 10)
	assert.False(t, ok)
}

func TestDepreciationBands_KeepsOpenTop(t *testing.T) {
	bands := assessment.DepreciationBands([]domain.DepreciationRate{
		{AgeFromYear: 0, AgeToYear: intPtr(10), DepreciationRate: 90},
		{AgeFromYear: 11, AgeToYear: nil, DepreciationRate: 40},
	})

	assert.Len(t, bands, 2)
	assert.Equal(t, 10.0, *bands[0].To)
	assert.Nil(t, bands[1].To)
	assert.Equal(t, 40.0, bands[1].Value)
}

func TestLevyBands_CopiesUpperBound(t *testing.T) {
	to := 300.0
	rows := []domain.SlabTaxRate{{SlabFromSqFt: 0, SlabToSqFt: &to, Rate: 15}}

	bands := assessment.LevyBands(rows)
	to = 1

	assert.Equal(t, 300.0, *bands[0].To)
}
