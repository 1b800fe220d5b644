package port

import (
	"context"

	"github.com/google/uuid"

	"grampanchayat/internal/domain"
)

// StatsRepository provides aggregate statistics queries.
type StatsRepository interface {
	GetPortalStats(ctx context.Context) (*domain.PortalStats, error)
	GetVillageStats(ctx context.Context, villageID uuid.UUID) (*domain.VillageStats, error)
}
