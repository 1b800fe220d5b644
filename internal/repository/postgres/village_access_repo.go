package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"grampanchayat/internal/domain"
	"grampanchayat/internal/port"
)

type villageAccessRepo struct {
	db *sqlx.DB
}

// NewVillageAccessRepo creates a new PostgreSQL-backed VillageAccessRepository.
func NewVillageAccessRepo(db *sqlx.DB) port.VillageAccessRepository {
	return &villageAccessRepo{db: db}
}

func (r *villageAccessRepo) Grant(ctx context.Context, access *domain.UserVillageAccess) error {
	access.ID = uuid.New()
	access.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_village_access (id, user_id, village_id, created_at) VALUES ($1, $2, $3, $4)`,
		access.ID, access.UserID, access.VillageID, access.CreatedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrAlreadyAssigned
		case isForeignKeyViolation(err):
			return domain.ErrNotFound
		}
		return fmt.Errorf("villageAccessRepo.Grant: %w", err)
	}
	return nil
}

func (r *villageAccessRepo) Revoke(ctx context.Context, userID, villageID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM user_village_access WHERE user_id = $1 AND village_id = $2", userID, villageID)
	if err != nil {
		return fmt.Errorf("villageAccessRepo.Revoke: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *villageAccessRepo) ListVillageIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids,
		"SELECT village_id FROM user_village_access WHERE user_id = $1 ORDER BY created_at ASC", userID)
	if err != nil {
		return nil, fmt.Errorf("villageAccessRepo.ListVillageIDs: %w", err)
	}
	return ids, nil
}
