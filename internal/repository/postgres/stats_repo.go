package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"grampanchayat/internal/domain"
	"grampanchayat/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

const portalStatsQuery = `SELECT
	(SELECT COUNT(*) FROM users WHERE role = 'USER') AS users,
	(SELECT COUNT(*) FROM users WHERE role = 'ADMIN') AS admins,
	(SELECT COUNT(*) FROM villages) AS villages`

const villageStatsQuery = `SELECT
	v.id AS village_id,
	v.name AS village_name,
	COUNT(p.id) AS properties,
	COUNT(CASE WHEN p.is_tax_exempt THEN 1 END) AS exempt_properties
FROM villages v
LEFT JOIN properties p ON p.village_id = v.id
WHERE v.id = $1
GROUP BY v.id, v.name`

func (r *statsRepo) GetPortalStats(ctx context.Context) (*domain.PortalStats, error) {
	var stats domain.PortalStats
	if err := r.db.GetContext(ctx, &stats, portalStatsQuery); err != nil {
		return nil, fmt.Errorf("statsRepo.GetPortalStats: %w", err)
	}
	return &stats, nil
}

func (r *statsRepo) GetVillageStats(ctx context.Context, villageID uuid.UUID) (*domain.VillageStats, error) {
	var stats domain.VillageStats
	if err := r.db.GetContext(ctx, &stats, villageStatsQuery, villageID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("statsRepo.GetVillageStats: %w", err)
	}
	return &stats, nil
}
