package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"grampanchayat/internal/assessment"
	"grampanchayat/internal/config"
	"grampanchayat/internal/domain"
	"grampanchayat/internal/port"
)

// PropertyAssessment pairs a property with its computed assessment.
type PropertyAssessment struct {
	Property   domain.Property       `json:"property"`
	Assessment assessment.Assessment `json:"assessment"`
}

// VillageAssessment is the assessment of every property of one village
// against a single rate snapshot.
type VillageAssessment struct {
	Village domain.Village       `json:"village"`
	AsOf    *time.Time           `json:"as_of"`
	Year    int                  `json:"year"`
	Entries []PropertyAssessment `json:"entries"`
}

// AssessmentService computes property tax on demand. Nothing is persisted.
type AssessmentService interface {
	AssessProperty(ctx context.Context, villageID, propertyID uuid.UUID, asOf *time.Time) (*assessment.Assessment, error)
	AssessVillage(ctx context.Context, villageID uuid.UUID, asOf *time.Time) (*VillageAssessment, error)
}

type assessmentService struct {
	properties port.PropertyRepository
	villages   port.VillageRepository
	rates      RateRepos
	cfg        config.AssessmentConfig
	log        *logrus.Logger
	now        func() time.Time
}

// NewAssessmentService creates a new AssessmentService implementation.
func NewAssessmentService(
	properties port.PropertyRepository,
	villages port.VillageRepository,
	rates RateRepos,
	cfg config.AssessmentConfig,
	log *logrus.Logger,
) AssessmentService {
	return NewAssessmentServiceWithClock(properties, villages, rates, cfg, log, time.Now)
}

// NewAssessmentServiceWithClock is NewAssessmentService with an injectable clock.
func NewAssessmentServiceWithClock(
	properties port.PropertyRepository,
	villages port.VillageRepository,
	rates RateRepos,
	cfg config.AssessmentConfig,
	log *logrus.Logger,
	now func() time.Time,
) AssessmentService {
	return &assessmentService{
		properties: properties,
		villages:   villages,
		rates:      rates,
		cfg:        cfg,
		log:        log,
		now:        now,
	}
}

func (s *assessmentService) AssessProperty(ctx context.Context, villageID, propertyID uuid.UUID, asOf *time.Time) (*assessment.Assessment, error) {
	p, err := s.properties.GetByID(ctx, villageID, propertyID)
	if err != nil {
		return nil, err
	}

	snap, year, err := s.snapshot(ctx, asOf)
	if err != nil {
		return nil, err
	}

	a := assessment.AssessProperty(p, snap, year)
	s.logDefaults(&a)
	return &a, nil
}

func (s *assessmentService) AssessVillage(ctx context.Context, villageID uuid.UUID, asOf *time.Time) (*VillageAssessment, error) {
	village, err := s.villages.GetByID(ctx, villageID)
	if err != nil {
		return nil, err
	}
	props, err := s.properties.ListAllByVillage(ctx, villageID)
	if err != nil {
		return nil, err
	}

	snap, year, err := s.snapshot(ctx, asOf)
	if err != nil {
		return nil, err
	}

	out := &VillageAssessment{
		Village: *village,
		AsOf:    snap.AsOf(),
		Year:    year,
		Entries: make([]PropertyAssessment, 0, len(props)),
	}
	for i := range props {
		a := assessment.AssessProperty(&props[i], snap, year)
		s.logDefaults(&a)
		out.Entries = append(out.Entries, PropertyAssessment{Property: props[i], Assessment: a})
	}
	return out, nil
}

// snapshot reads every rate table and resolves it. An explicit asOf pins
// both the rate filter and the age year. Without one, the configured mode
// either pins to today or keeps the newest row per key unfiltered.
func (s *assessmentService) snapshot(ctx context.Context, asOf *time.Time) (*assessment.Snapshot, int, error) {
	pin := asOf
	if pin == nil && s.cfg.PinToNow() {
		today := s.now().UTC()
		pin = &today
	}
	year := s.now().Year()
	if pin != nil {
		year = pin.Year()
	}

	rates, err := s.loadRates(ctx)
	if err != nil {
		return nil, 0, err
	}
	return assessment.NewSnapshot(rates, pin), year, nil
}

func (s *assessmentService) loadRates(ctx context.Context) (assessment.Rates, error) {
	var (
		r   assessment.Rates
		err error
	)
	if r.Construction, err = s.rates.Construction.List(ctx); err != nil {
		return r, fmt.Errorf("assessment.loadRates construction: %w", err)
	}
	if r.Depreciation, err = s.rates.Depreciation.List(ctx); err != nil {
		return r, fmt.Errorf("assessment.loadRates depreciation: %w", err)
	}
	if r.Usage, err = s.rates.Usage.List(ctx); err != nil {
		return r, fmt.Errorf("assessment.loadRates usage: %w", err)
	}
	if r.Water, err = s.rates.Water.List(ctx); err != nil {
		return r, fmt.Errorf("assessment.loadRates water: %w", err)
	}
	r.Slabs = make(map[domain.SlabTaxKey][]domain.SlabTaxRate, len(domain.SlabTaxKeys))
	for _, key := range domain.SlabTaxKeys {
		rows, err := s.rates.Slab.List(ctx, key)
		if err != nil {
			return r, fmt.Errorf("assessment.loadRates slab %s: %w", key, err)
		}
		r.Slabs[key] = rows
	}
	return r, nil
}

func (s *assessmentService) logDefaults(a *assessment.Assessment) {
	if !s.cfg.LogDefaults || s.log == nil {
		return
	}
	for _, n := range a.Defaults {
		s.log.WithFields(logrus.Fields{
			"property_id": a.PropertyID,
			"line":        n.Line,
			"factor":      n.Factor,
			"key":         n.Key,
			"source":      n.Source,
		}).Debug("assessment default applied")
	}
}
