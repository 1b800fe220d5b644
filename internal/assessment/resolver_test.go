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

func usage(key string, weight float64, effective, created time.Time) domain.UsageFactor {
	return domain.UsageFactor{ID: uuid.New(), UsageTypeMr: key, Weightage: weight, EffectiveFrom: effective, CreatedAt: created}
}

func TestResolve_OrdersNewestEffectiveFirst(t *testing.T) {
	created := date(2024, 1, 1)
	rows := []domain.UsageFactor{
		usage("Residential", 1.0, date(2022, 4, 1), created),
		usage("Residential", 1.2, date(2024, 4, 1), created),
		usage("Residential", 1.1, date(2023, 4, 1), created),
	}

	got := assessment.Resolve(rows, nil)

	require.Len(t, got, 3)
	assert.Equal(t, 1.2, got[0].Weightage)
	assert.Equal(t, 1.1, got[1].Weightage)
	assert.Equal(t, 1.0, got[2].Weightage)
}

func TestResolve_TieBrokenByNewestCreatedAt(t *testing.T) {
	eff := date(2024, 4, 1)
	rows := []domain.UsageFactor{
		usage("Residential", 1.0, eff, date(2024, 1, 1)),
		usage("Residential", 1.3, eff, date(2024, 2, 1)),
	}

	got := assessment.Resolve(rows, nil)

	assert.Equal(t, 1.3, got[0].Weightage)
}

func TestResolve_DoesNotMutateInput(t *testing.T) {
	rows := []domain.UsageFactor{
		usage("A", 1.0, date(2022, 1, 1), date(2022, 1, 1)),
		usage("A", 2.0, date(2023, 1, 1), date(2023, 1, 1)),
	}

	_ = assessment.Resolve(rows, nil)

	assert.Equal(t, 1.0, rows[0].Weightage)
}

func TestResolve_WithoutAsOfFutureRowIsCurrent(t *testing.T) {
	rows := []domain.UsageFactor{
		usage("Residential", 1.0, date(2024, 4, 1), date(2024, 1, 1)),
		usage("Residential", 2.0, date(2030, 4, 1), date(2024, 6, 1)),
	}

	snap := assessment.NewSnapshot(assessment.Rates{Usage: rows}, nil)
	u, ok := snap.UsageFactor("Residential")

	require.True(t, ok)
	assert.Equal(t, 2.0, u.Weightage)
}

func TestResolve_AsOfFiltersFutureRows(t *testing.T) {
	rows := []domain.UsageFactor{
		usage("Residential", 1.0, date(2024, 4, 1), date(2024, 1, 1)),
		usage("Residential", 2.0, date(2030, 4, 1), date(2024, 6, 1)),
	}
	asOf := date(2025, 1, 1)

	snap := assessment.NewSnapshot(assessment.Rates{Usage: rows}, &asOf)
	u, ok := snap.UsageFactor("Residential")

	require.True(t, ok)
	assert.Equal(t, 1.0, u.Weightage)
	assert.Equal(t, &asOf, snap.AsOf())
}

func TestResolve_AsOfIncludesRowEffectiveThatDay(t *testing.T) {
	asOf := date(2025, 4, 1)
	rows := []domain.UsageFactor{usage("Residential", 1.4, asOf, asOf)}

	got := assessment.Resolve(rows, &asOf)

	assert.Len(t, got, 1)
}

func TestResolve_AsOfBeforeEverythingYieldsNothing(t *testing.T) {
	asOf := date(2020, 1, 1)
	rows := []domain.UsageFactor{usage("Residential", 1.4, date(2024, 4, 1), date(2024, 4, 1))}

	snap := assessment.NewSnapshot(assessment.Rates{Usage: rows}, &asOf)
	_, ok := snap.UsageFactor("Residential")

	assert.False(t, ok)
}

func TestIndex_FirstWinsPerKey(t *testing.T) {
	created := date(2024, 1, 1)
	resolved := assessment.Resolve([]domain.UsageFactor{
		usage("Residential", 1.0, date(2023, 4, 1), created),
		usage("Commercial", 1.5, date(2023, 4, 1), created),
		usage("Residential", 1.1, date(2024, 4, 1), created),
	}, nil)

	idx := assessment.Index(resolved, func(u domain.UsageFactor) string { return u.UsageTypeMr })

	assert.Len(t, idx, 2)
	assert.Equal(t, 1.1, idx["Residential"].Weightage)
	assert.Equal(t, 1.5, idx["Commercial"].Weightage)
}

func TestSnapshot_NewerDepreciationTableTakesPrecedence(t *testing.T) {
	rows := []domain.DepreciationRate{
		{ID: uuid.New(), AgeFromYear: 0, AgeToYear: intPtr(20), DepreciationRate: 80, EffectiveFrom: date(2022, 4, 1)},
		{ID: uuid.New(), AgeFromYear: 0, AgeToYear: intPtr(20), DepreciationRate: 60, EffectiveFrom: date(2024, 4, 1)},
	}

	snap := assessment.NewSnapshot(assessment.Rates{Depreciation: rows}, nil)
	band, ok := snap.Depreciation(10)

	require.True(t, ok)
	assert.Equal(t, 60.0, band.Value)

	older := date(2023, 1, 1)
	snap = assessment.NewSnapshot(assessment.Rates{Depreciation: rows}, &older)
	band, ok = snap.Depreciation(10)

	require.True(t, ok)
	assert.Equal(t, 80.0, band.Value)
}

func TestSnapshot_OlderDepreciationBandFillsGap(t *testing.T) {
	rows := []domain.DepreciationRate{
		{ID: uuid.New(), AgeFromYear: 0, AgeToYear: intPtr(15), DepreciationRate: 70, EffectiveFrom: date(2024, 4, 1)},
		{ID: uuid.New(), AgeFromYear: 16, AgeToYear: nil, DepreciationRate: 40, EffectiveFrom: date(2022, 4, 1)},
	}

	snap := assessment.NewSnapshot(assessment.Rates{Depreciation: rows}, nil)

	band, ok := snap.Depreciation(10)
	require.True(t, ok)
	assert.Equal(t, 70.0, band.Value)

	band, ok = snap.Depreciation(20)
	require.True(t, ok)
	assert.Equal(t, 40.0, band.Value)
}
