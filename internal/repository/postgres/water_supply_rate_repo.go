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

type waterSupplyRateRepo struct {
	db *sqlx.DB
}

// NewWaterSupplyRateRepo creates a new PostgreSQL-backed WaterSupplyTaxRateRepository.
func NewWaterSupplyRateRepo(db *sqlx.DB) port.WaterSupplyTaxRateRepository {
	return &waterSupplyRateRepo{db: db}
}

func (r *waterSupplyRateRepo) Create(ctx context.Context, rate *domain.WaterSupplyTaxRate) error {
	rate.ID = uuid.New()
	rate.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO water_supply_tax_rates (id, water_tax_type_mr, rate, effective_from, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		rate.ID, rate.WaterTaxTypeMr, rate.Rate, rate.EffectiveFrom, rate.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRate
		}
		return fmt.Errorf("waterSupplyRateRepo.Create: %w", err)
	}
	return nil
}

func (r *waterSupplyRateRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WaterSupplyTaxRate, error) {
	var rate domain.WaterSupplyTaxRate
	err := r.db.GetContext(ctx, &rate, "SELECT * FROM water_supply_tax_rates WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("waterSupplyRateRepo.GetByID: %w", err)
	}
	return &rate, nil
}

func (r *waterSupplyRateRepo) List(ctx context.Context) ([]domain.WaterSupplyTaxRate, error) {
	rates := []domain.WaterSupplyTaxRate{}
	err := r.db.SelectContext(ctx, &rates,
		"SELECT * FROM water_supply_tax_rates ORDER BY effective_from DESC, created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("waterSupplyRateRepo.List: %w", err)
	}
	return rates, nil
}

func (r *waterSupplyRateRepo) Update(ctx context.Context, rate *domain.WaterSupplyTaxRate) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE water_supply_tax_rates SET water_tax_type_mr = $1, rate = $2, effective_from = $3 WHERE id = $4",
		rate.WaterTaxTypeMr, rate.Rate, rate.EffectiveFrom, rate.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRate
		}
		return fmt.Errorf("waterSupplyRateRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *waterSupplyRateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM water_supply_tax_rates WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("waterSupplyRateRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
