package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"grampanchayat/internal/domain"
	"grampanchayat/internal/port"
)

const bcryptCost = 12

// CreateUserInput is the DTO for creating a user.
type CreateUserInput struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     domain.UserRole `json:"role" binding:"required"`
	Status   domain.Status   `json:"status"`
}

// UpdateUserInput is the DTO for updating a user. A non-nil Password resets it.
type UpdateUserInput struct {
	Name     *string          `json:"name"`
	Email    *string          `json:"email" binding:"omitempty,email"`
	Password *string          `json:"password" binding:"omitempty,min=8"`
	Role     *domain.UserRole `json:"role"`
	Status   *domain.Status   `json:"status"`
}

// UserService defines the user management contract.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
	AssignVillage(ctx context.Context, userID, villageID uuid.UUID) error
	RemoveVillage(ctx context.Context, userID, villageID uuid.UUID) error
	ListVillages(ctx context.Context, userID uuid.UUID) ([]domain.Village, error)
	ListByVillage(ctx context.Context, villageID uuid.UUID) ([]domain.User, error)
}

type userService struct {
	repo        port.UserRepository
	accessRepo  port.VillageAccessRepository
	villageRepo port.VillageRepository
}

// NewUserService creates a new UserService implementation.
func NewUserService(
	repo port.UserRepository,
	accessRepo port.VillageAccessRepository,
	villageRepo port.VillageRepository,
) UserService {
	return &userService{repo: repo, accessRepo: accessRepo, villageRepo: villageRepo}
}

func (s *userService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if !domain.ValidUserRoles[input.Role] {
		return nil, domain.ErrInvalidRole
	}
	status, err := statusOrActive(input.Status)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        normalizeEmail(input.Email),
		PasswordHash: string(hash),
		Role:         input.Role,
		Status:       status,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *userService) List(ctx context.Context, offset, limit int) ([]domain.User, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *userService) Update(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		user.Email = normalizeEmail(*input.Email)
	}
	if input.Role != nil {
		if !domain.ValidUserRoles[*input.Role] {
			return nil, domain.ErrInvalidRole
		}
		user.Role = *input.Role
	}
	if input.Status != nil {
		if !domain.ValidStatuses[*input.Status] {
			return nil, domain.ErrInvalidStatus
		}
		user.Status = *input.Status
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		if err := s.repo.UpdatePassword(ctx, userID, string(hash)); err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.repo.Delete(ctx, userID)
}

func (s *userService) AssignVillage(ctx context.Context, userID, villageID uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.villageRepo.GetByID(ctx, villageID); err != nil {
		return err
	}
	return s.accessRepo.Grant(ctx, &domain.UserVillageAccess{UserID: userID, VillageID: villageID})
}

func (s *userService) RemoveVillage(ctx context.Context, userID, villageID uuid.UUID) error {
	return s.accessRepo.Revoke(ctx, userID, villageID)
}

func (s *userService) ListVillages(ctx context.Context, userID uuid.UUID) ([]domain.Village, error) {
	ids, err := s.accessRepo.ListVillageIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.villageRepo.ListByIDs(ctx, ids)
}

func (s *userService) ListByVillage(ctx context.Context, villageID uuid.UUID) ([]domain.User, error) {
	if _, err := s.villageRepo.GetByID(ctx, villageID); err != nil {
		return nil, err
	}
	return s.repo.ListByVillage(ctx, villageID)
}

func statusOrActive(s domain.Status) (domain.Status, error) {
	if s == "" {
		return domain.StatusActive, nil
	}
	if !domain.ValidStatuses[s] {
		return "", domain.ErrInvalidStatus
	}
	return s, nil
}
