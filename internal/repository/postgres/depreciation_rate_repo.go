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

type depreciationRateRepo struct {
	db *sqlx.DB
}

// NewDepreciationRateRepo creates a new PostgreSQL-backed DepreciationRateRepository.
func NewDepreciationRateRepo(db *sqlx.DB) port.DepreciationRateRepository {
	return &depreciationRateRepo{db: db}
}

func (r *depreciationRateRepo) Create(ctx context.Context, rate *domain.DepreciationRate) error {
	rate.ID = uuid.New()
	rate.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO depreciation_rates (id, age_from_year, age_to_year, depreciation_rate, effective_from, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rate.ID, rate.AgeFromYear, rate.AgeToYear, rate.DepreciationRate, rate.EffectiveFrom, rate.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRate
		}
		return fmt.Errorf("depreciationRateRepo.Create: %w", err)
	}
	return nil
}

func (r *depreciationRateRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DepreciationRate, error) {
	var rate domain.DepreciationRate
	err := r.db.GetContext(ctx, &rate, "SELECT * FROM depreciation_rates WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("depreciationRateRepo.GetByID: %w", err)
	}
	return &rate, nil
}

func (r *depreciationRateRepo) List(ctx context.Context) ([]domain.DepreciationRate, error) {
	rates := []domain.DepreciationRate{}
	err := r.db.SelectContext(ctx, &rates,
		"SELECT * FROM depreciation_rates ORDER BY effective_from DESC, age_from_year ASC, created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("depreciationRateRepo.List: %w", err)
	}
	return rates, nil
}

func (r *depreciationRateRepo) Update(ctx context.Context, rate *domain.DepreciationRate) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE depreciation_rates SET age_from_year = $1, age_to_year = $2, depreciation_rate = $3, effective_from = $4
		WHERE id = $5`,
		rate.AgeFromYear, rate.AgeToYear, rate.DepreciationRate, rate.EffectiveFrom, rate.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRate
		}
		return fmt.Errorf("depreciationRateRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *depreciationRateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM depreciation_rates WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("depreciationRateRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
