package assessment

import "grampanchayat/internal/domain"

// Band is a closed interval [From, To] carrying a value. A nil To leaves the
// band open-ended above.
type Band struct {
	From  float64
	To    *float64
	Value float64
}

// Contains reports whether probe falls inside the band.
func (b Band) Contains(probe float64) bool {
	if probe < b.From {
		return false
	}
	return b.To == nil || probe <= *b.To
}

// MatchSlab returns the first band containing probe, in candidate order.
// Overlapping bands are a catalog data problem; the earliest one wins.
func MatchSlab(candidates []Band, probe float64) (Band, bool) {
	for _, b := range candidates {
		if b.Contains(probe) {
			return b, true
		}
	}
	return Band{}, false
}

// DepreciationBands converts resolved depreciation rows to age bands.
func DepreciationBands(rows []domain.DepreciationRate) []Band {
	bands := make([]Band, 0, len(rows))
	for _, r := range rows {
		b := Band{From: float64(r.AgeFromYear), Value: r.DepreciationRate}
		if r.AgeToYear != nil {
			to := float64(*r.AgeToYear)
			b.To = &to
		}
		bands = append(bands, b)
	}
	return bands
}

// LevyBands converts resolved slab levy rows to area bands in square feet.
func LevyBands(rows []domain.SlabTaxRate) []Band {
	bands := make([]Band, 0, len(rows))
	for _, r := range rows {
		b := Band{From: r.SlabFromSqFt, Value: r.Rate}
		if r.SlabToSqFt != nil {
			to := *r.SlabToSqFt
			b.To = &to
		}
		bands = append(bands, b)
	}
	return bands
}
