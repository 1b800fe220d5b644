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

type usageFactorRepo struct {
	db *sqlx.DB
}

// NewUsageFactorRepo creates a new PostgreSQL-backed UsageFactorRepository.
func NewUsageFactorRepo(db *sqlx.DB) port.UsageFactorRepository {
	return &usageFactorRepo{db: db}
}

func (r *usageFactorRepo) Create(ctx context.Context, rate *domain.UsageFactor) error {
	rate.ID = uuid.New()
	rate.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO usage_factors (id, usage_type_mr, weightage, effective_from, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		rate.ID, rate.UsageTypeMr, rate.Weightage, rate.EffectiveFrom, rate.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRate
		}
		return fmt.Errorf("usageFactorRepo.Create: %w", err)
	}
	return nil
}

func (r *usageFactorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.UsageFactor, error) {
	var rate domain.UsageFactor
	err := r.db.GetContext(ctx, &rate, "SELECT * FROM usage_factors WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("usageFactorRepo.GetByID: %w", err)
	}
	return &rate, nil
}

func (r *usageFactorRepo) List(ctx context.Context) ([]domain.UsageFactor, error) {
	rates := []domain.UsageFactor{}
	err := r.db.SelectContext(ctx, &rates,
		"SELECT * FROM usage_factors ORDER BY effective_from DESC, created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("usageFactorRepo.List: %w", err)
	}
	return rates, nil
}

func (r *usageFactorRepo) Update(ctx context.Context, rate *domain.UsageFactor) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE usage_factors SET usage_type_mr = $1, weightage = $2, effective_from = $3 WHERE id = $4",
		rate.UsageTypeMr, rate.Weightage, rate.EffectiveFrom, rate.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRate
		}
		return fmt.Errorf("usageFactorRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *usageFactorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM usage_factors WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("usageFactorRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
