package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"grampanchayat/internal/domain"
	"grampanchayat/internal/port"
)

// CreateVillageInput is the DTO for creating a village.
type CreateVillageInput struct {
	Name     string        `json:"name" binding:"required"`
	District string        `json:"district"`
	Taluka   string        `json:"taluka"`
	Code     string        `json:"code" binding:"required"`
	Status   domain.Status `json:"status"`
}

// UpdateVillageInput is the DTO for updating a village.
type UpdateVillageInput struct {
	Name     *string        `json:"name"`
	District *string        `json:"district"`
	Taluka   *string        `json:"taluka"`
	Code     *string        `json:"code"`
	Status   *domain.Status `json:"status"`
}

// VillageService defines the village management contract.
type VillageService interface {
	Create(ctx context.Context, input CreateVillageInput) (*domain.Village, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Village, error)
	List(ctx context.Context, offset, limit int) ([]domain.Village, int, error)
	ListForSession(ctx context.Context, claims *Claims) ([]domain.Village, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateVillageInput) (*domain.Village, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type villageService struct {
	repo port.VillageRepository
}

// NewVillageService creates a new VillageService implementation.
func NewVillageService(repo port.VillageRepository) VillageService {
	return &villageService{repo: repo}
}

func (s *villageService) Create(ctx context.Context, input CreateVillageInput) (*domain.Village, error) {
	status, err := statusOrActive(input.Status)
	if err != nil {
		return nil, err
	}
	village := &domain.Village{
		Name:     strings.TrimSpace(input.Name),
		District: strings.TrimSpace(input.District),
		Taluka:   strings.TrimSpace(input.Taluka),
		Code:     strings.ToUpper(strings.TrimSpace(input.Code)),
		Status:   status,
	}
	if err := s.repo.Create(ctx, village); err != nil {
		return nil, err
	}
	return village, nil
}

func (s *villageService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Village, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *villageService) List(ctx context.Context, offset, limit int) ([]domain.Village, int, error) {
	return s.repo.List(ctx, offset, limit)
}

// ListForSession returns every village for a super admin and the assigned
// villages for everyone else.
func (s *villageService) ListForSession(ctx context.Context, claims *Claims) ([]domain.Village, error) {
	if claims.Role == domain.RoleSuperAdmin {
		villages, _, err := s.repo.List(ctx, 0, maxListAll)
		return villages, err
	}
	return s.repo.ListByIDs(ctx, claims.VillageIDs)
}

func (s *villageService) Update(ctx context.Context, id uuid.UUID, input UpdateVillageInput) (*domain.Village, error) {
	village, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		village.Name = strings.TrimSpace(*input.Name)
	}
	if input.District != nil {
		village.District = strings.TrimSpace(*input.District)
	}
	if input.Taluka != nil {
		village.Taluka = strings.TrimSpace(*input.Taluka)
	}
	if input.Code != nil {
		village.Code = strings.ToUpper(strings.TrimSpace(*input.Code))
	}
	if input.Status != nil {
		if !domain.ValidStatuses[*input.Status] {
			return nil, domain.ErrInvalidStatus
		}
		village.Status = *input.Status
	}

	if err := s.repo.Update(ctx, village); err != nil {
		return nil, err
	}
	return village, nil
}

func (s *villageService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
