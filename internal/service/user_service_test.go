package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"grampanchayat/internal/domain"
	"grampanchayat/internal/service"
	"grampanchayat/mocks"
)

func newUserService() (service.UserService, *mocks.MockUserRepo, *mocks.MockVillageAccessRepo, *mocks.MockVillageRepo) {
	userRepo := new(mocks.MockUserRepo)
	accessRepo := new(mocks.MockVillageAccessRepo)
	villageRepo := new(mocks.MockVillageRepo)
	return service.NewUserService(userRepo, accessRepo, villageRepo), userRepo, accessRepo, villageRepo
}

func TestUserService_Create_Success(t *testing.T) {
	svc, userRepo, _, _ := newUserService()

	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "clerk@test.com" && u.Role == domain.RoleUser && u.Status == domain.StatusActive
	})).Return(nil)

	user, err := svc.Create(context.Background(), service.CreateUserInput{
		Name:     " Village Clerk ",
		Email:    "Clerk@Test.com",
		Password: "password123",
		Role:     domain.RoleUser,
	})

	require.NoError(t, err)
	assert.Equal(t, "Village Clerk", user.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
	userRepo.AssertExpectations(t)
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	svc, userRepo, _, _ := newUserService()

	_, err := svc.Create(context.Background(), service.CreateUserInput{
		Name: "x", Email: "x@test.com", Password: "password123", Role: "OWNER",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Create_InvalidStatus(t *testing.T) {
	svc, _, _, _ := newUserService()

	_, err := svc.Create(context.Background(), service.CreateUserInput{
		Name: "x", Email: "x@test.com", Password: "password123", Role: domain.RoleUser, Status: "ARCHIVED",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	svc, userRepo, _, _ := newUserService()
	userRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEmail)

	_, err := svc.Create(context.Background(), service.CreateUserInput{
		Name: "x", Email: "x@test.com", Password: "password123", Role: domain.RoleAdmin,
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestUserService_Update_ResetsPassword(t *testing.T) {
	svc, userRepo, _, _ := newUserService()
	userID := uuid.New()
	existing := &domain.User{ID: userID, Name: "Old", Email: "old@test.com", Role: domain.RoleUser, Status: domain.StatusActive}

	userRepo.On("GetByID", mock.Anything, userID).Return(existing, nil)
	userRepo.On("Update", mock.Anything, existing).Return(nil)
	userRepo.On("UpdatePassword", mock.Anything, userID, mock.AnythingOfType("string")).Return(nil)

	name := "New"
	pw := "new-password"
	role := domain.RoleAdmin
	user, err := svc.Update(context.Background(), userID, service.UpdateUserInput{Name: &name, Password: &pw, Role: &role})

	require.NoError(t, err)
	assert.Equal(t, "New", user.Name)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("new-password")))
	userRepo.AssertExpectations(t)
}

func TestUserService_Update_WithoutPasswordLeavesHash(t *testing.T) {
	svc, userRepo, _, _ := newUserService()
	userID := uuid.New()
	existing := &domain.User{ID: userID, Email: "a@test.com", Role: domain.RoleUser, Status: domain.StatusActive}

	userRepo.On("GetByID", mock.Anything, userID).Return(existing, nil)
	userRepo.On("Update", mock.Anything, existing).Return(nil)

	status := domain.StatusInactive
	user, err := svc.Update(context.Background(), userID, service.UpdateUserInput{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusInactive, user.Status)
	userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc, userRepo, _, _ := newUserService()
	userID := uuid.New()
	userRepo.On("GetByID", mock.Anything, userID).Return(nil, domain.ErrNotFound)

	_, err := svc.Update(context.Background(), userID, service.UpdateUserInput{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserService_AssignVillage(t *testing.T) {
	svc, userRepo, accessRepo, villageRepo := newUserService()
	userID, villageID := uuid.New(), uuid.New()

	userRepo.On("GetByID", mock.Anything, userID).Return(&domain.User{ID: userID}, nil)
	villageRepo.On("GetByID", mock.Anything, villageID).Return(&domain.Village{ID: villageID}, nil)
	accessRepo.On("Grant", mock.Anything, mock.MatchedBy(func(a *domain.UserVillageAccess) bool {
		return a.UserID == userID && a.VillageID == villageID
	})).Return(nil)

	err := svc.AssignVillage(context.Background(), userID, villageID)

	assert.NoError(t, err)
	accessRepo.AssertExpectations(t)
}

func TestUserService_AssignVillage_UnknownVillage(t *testing.T) {
	svc, userRepo, accessRepo, villageRepo := newUserService()
	userID, villageID := uuid.New(), uuid.New()

	userRepo.On("GetByID", mock.Anything, userID).Return(&domain.User{ID: userID}, nil)
	villageRepo.On("GetByID", mock.Anything, villageID).Return(nil, domain.ErrNotFound)

	err := svc.AssignVillage(context.Background(), userID, villageID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	accessRepo.AssertNotCalled(t, "Grant", mock.Anything, mock.Anything)
}

func TestUserService_AssignVillage_AlreadyAssigned(t *testing.T) {
	svc, userRepo, accessRepo, villageRepo := newUserService()
	userID, villageID := uuid.New(), uuid.New()

	userRepo.On("GetByID", mock.Anything, userID).Return(&domain.User{ID: userID}, nil)
	villageRepo.On("GetByID", mock.Anything, villageID).Return(&domain.Village{ID: villageID}, nil)
	accessRepo.On("Grant", mock.Anything, mock.Anything).Return(domain.ErrAlreadyAssigned)

	err := svc.AssignVillage(context.Background(), userID, villageID)

	assert.ErrorIs(t, err, domain.ErrAlreadyAssigned)
}

func TestUserService_ListVillages(t *testing.T) {
	svc, _, accessRepo, villageRepo := newUserService()
	userID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	villages := []domain.Village{{ID: ids[0], Name: "Ambegaon"}, {ID: ids[1], Name: "Khed"}}

	accessRepo.On("ListVillageIDs", mock.Anything, userID).Return(ids, nil)
	villageRepo.On("ListByIDs", mock.Anything, ids).Return(villages, nil)

	got, err := svc.ListVillages(context.Background(), userID)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestUserService_ListByVillage_ChecksVillage(t *testing.T) {
	svc, userRepo, _, villageRepo := newUserService()
	villageID := uuid.New()
	villageRepo.On("GetByID", mock.Anything, villageID).Return(nil, domain.ErrNotFound)

	_, err := svc.ListByVillage(context.Background(), villageID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	userRepo.AssertNotCalled(t, "ListByVillage", mock.Anything, mock.Anything)
}
