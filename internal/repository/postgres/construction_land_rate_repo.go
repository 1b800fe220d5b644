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

type constructionLandRateRepo struct {
	db *sqlx.DB
}

// NewConstructionLandRateRepo creates a new PostgreSQL-backed ConstructionLandRateRepository.
func NewConstructionLandRateRepo(db *sqlx.DB) port.ConstructionLandRateRepository {
	return &constructionLandRateRepo{db: db}
}

func (r *constructionLandRateRepo) Create(ctx context.Context, rate *domain.ConstructionLandRate) error {
	rate.ID = uuid.New()
	rate.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO construction_land_rates (id, property_type_mr, construction_rate, construction_land_rate,
			land_rate, approved_rate, effective_from, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rate.ID, rate.PropertyTypeMr, rate.ConstructionRate, rate.ConstructionLandRate,
		rate.LandRate, rate.ApprovedRate, rate.EffectiveFrom, rate.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRate
		}
		return fmt.Errorf("constructionLandRateRepo.Create: %w", err)
	}
	return nil
}

func (r *constructionLandRateRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ConstructionLandRate, error) {
	var rate domain.ConstructionLandRate
	err := r.db.GetContext(ctx, &rate, "SELECT * FROM construction_land_rates WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("constructionLandRateRepo.GetByID: %w", err)
	}
	return &rate, nil
}

func (r *constructionLandRateRepo) List(ctx context.Context) ([]domain.ConstructionLandRate, error) {
	rates := []domain.ConstructionLandRate{}
	err := r.db.SelectContext(ctx, &rates,
		"SELECT * FROM construction_land_rates ORDER BY effective_from DESC, created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("constructionLandRateRepo.List: %w", err)
	}
	return rates, nil
}

func (r *constructionLandRateRepo) Update(ctx context.Context, rate *domain.ConstructionLandRate) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE construction_land_rates SET property_type_mr = $1, construction_rate = $2,
			construction_land_rate = $3, land_rate = $4, approved_rate = $5, effective_from = $6
		WHERE id = $7`,
		rate.PropertyTypeMr, rate.ConstructionRate, rate.ConstructionLandRate, rate.LandRate,
		rate.ApprovedRate, rate.EffectiveFrom, rate.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRate
		}
		return fmt.Errorf("constructionLandRateRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *constructionLandRateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM construction_land_rates WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("constructionLandRateRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
