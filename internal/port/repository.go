package port

import (
	"context"

	"github.com/google/uuid"

	"grampanchayat/internal/domain"
)

// VillageRepository defines the contract for village persistence.
type VillageRepository interface {
	Create(ctx context.Context, village *domain.Village) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Village, error)
	List(ctx context.Context, offset, limit int) ([]domain.Village, int, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Village, error)
	Update(ctx context.Context, village *domain.Village) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	ListByVillage(ctx context.Context, villageID uuid.UUID) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VillageAccessRepository manages which villages a non-super-admin user may operate on.
type VillageAccessRepository interface {
	Grant(ctx context.Context, access *domain.UserVillageAccess) error
	Revoke(ctx context.Context, userID, villageID uuid.UUID) error
	ListVillageIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// PropertyRepository defines the contract for property persistence.
// Every query is scoped by villageID.
type PropertyRepository interface {
	Create(ctx context.Context, property *domain.Property) error
	GetByID(ctx context.Context, villageID, propertyID uuid.UUID) (*domain.Property, error)
	ListByVillage(ctx context.Context, villageID uuid.UUID, offset, limit int) ([]domain.Property, int, error)
	ListAllByVillage(ctx context.Context, villageID uuid.UUID) ([]domain.Property, error)
	Update(ctx context.Context, property *domain.Property) error
	Delete(ctx context.Context, villageID, propertyID uuid.UUID) error
}
