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

type villageRepo struct {
	db *sqlx.DB
}

// NewVillageRepo creates a new PostgreSQL-backed VillageRepository.
func NewVillageRepo(db *sqlx.DB) port.VillageRepository {
	return &villageRepo{db: db}
}

func (r *villageRepo) Create(ctx context.Context, village *domain.Village) error {
	village.ID = uuid.New()
	now := time.Now().UTC()
	village.CreatedAt = now
	village.UpdatedAt = now

	query := `INSERT INTO villages (id, name, district, taluka, code, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query,
		village.ID, village.Name, village.District, village.Taluka, village.Code,
		village.Status, village.CreatedAt, village.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateVillageCode
		}
		return fmt.Errorf("villageRepo.Create: %w", err)
	}
	return nil
}

func (r *villageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Village, error) {
	var village domain.Village
	err := r.db.GetContext(ctx, &village, "SELECT * FROM villages WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("villageRepo.GetByID: %w", err)
	}
	return &village, nil
}

func (r *villageRepo) List(ctx context.Context, offset, limit int) ([]domain.Village, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM villages"); err != nil {
		return nil, 0, fmt.Errorf("villageRepo.List count: %w", err)
	}

	var villages []domain.Village
	err := r.db.SelectContext(ctx, &villages,
		"SELECT * FROM villages ORDER BY name ASC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("villageRepo.List: %w", err)
	}
	return villages, total, nil
}

func (r *villageRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Village, error) {
	if len(ids) == 0 {
		return []domain.Village{}, nil
	}
	query, args, err := sqlx.In("SELECT * FROM villages WHERE id IN (?) ORDER BY name ASC", ids)
	if err != nil {
		return nil, fmt.Errorf("villageRepo.ListByIDs build: %w", err)
	}
	var villages []domain.Village
	if err := r.db.SelectContext(ctx, &villages, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("villageRepo.ListByIDs: %w", err)
	}
	return villages, nil
}

func (r *villageRepo) Update(ctx context.Context, village *domain.Village) error {
	village.UpdatedAt = time.Now().UTC()
	query := `UPDATE villages SET name = $1, district = $2, taluka = $3, code = $4, status = $5, updated_at = $6
		WHERE id = $7`
	result, err := r.db.ExecContext(ctx, query,
		village.Name, village.District, village.Taluka, village.Code, village.Status,
		village.UpdatedAt, village.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateVillageCode
		}
		return fmt.Errorf("villageRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *villageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM villages WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("villageRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
