package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"grampanchayat/internal/domain"
	"grampanchayat/internal/port"
)

type slabTaxRateRepo struct {
	db *sqlx.DB
}

// NewSlabTaxRateRepo creates a new PostgreSQL-backed SlabTaxRateRepository.
func NewSlabTaxRateRepo(db *sqlx.DB) port.SlabTaxRateRepository {
	return &slabTaxRateRepo{db: db}
}

func (r *slabTaxRateRepo) Create(ctx context.Context, rate *domain.SlabTaxRate) error {
	rate.ID = uuid.New()
	rate.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO slab_tax_rates (id, tax_key, slab_from_sq_ft, slab_to_sq_ft, rate, effective_from, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rate.ID, rate.TaxKey, rate.SlabFromSqFt, rate.SlabToSqFt, rate.Rate, rate.EffectiveFrom, rate.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRate
		}
		return fmt.Errorf("slabTaxRateRepo.Create: %w", err)
	}
	return nil
}

func (r *slabTaxRateRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SlabTaxRate, error) {
	var rate domain.SlabTaxRate
	err := r.db.GetContext(ctx, &rate, "SELECT * FROM slab_tax_rates WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("slabTaxRateRepo.GetByID: %w", err)
	}
	return &rate, nil
}

func (r *slabTaxRateRepo) List(ctx context.Context, key domain.SlabTaxKey) ([]domain.SlabTaxRate, error) {
	rates := []domain.SlabTaxRate{}
	err := r.db.SelectContext(ctx, &rates,
		`SELECT * FROM slab_tax_rates WHERE tax_key = $1
		ORDER BY effective_from DESC, slab_from_sq_ft ASC, slab_to_sq_ft ASC NULLS LAST, created_at DESC`, key)
	if err != nil {
		return nil, fmt.Errorf("slabTaxRateRepo.List: %w", err)
	}
	return rates, nil
}

func (r *slabTaxRateRepo) Update(ctx context.Context, rate *domain.SlabTaxRate) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE slab_tax_rates SET slab_from_sq_ft = $1, slab_to_sq_ft = $2, rate = $3, effective_from = $4
		WHERE id = $5 AND tax_key = $6`,
		rate.SlabFromSqFt, rate.SlabToSqFt, rate.Rate, rate.EffectiveFrom, rate.ID, rate.TaxKey)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRate
		}
		return fmt.Errorf("slabTaxRateRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *slabTaxRateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM slab_tax_rates WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("slabTaxRateRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
