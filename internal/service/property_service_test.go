package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"grampanchayat/internal/domain"
	"grampanchayat/internal/service"
	"grampanchayat/mocks"
)

func TestBuildConstructions_DerivesArea(t *testing.T) {
	lines, err := service.BuildConstructions([]service.ConstructionInput{
		{UsageType: " Residential ", ConstructionType: "RCC", ConstructionYear: 2005, Floor: "Ground", Length: 20, Width: 15.5},
		{UsageType: "Residential", ConstructionType: "Open Land", ConstructionYear: 0, Length: 10, Width: 10},
	})

	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "Residential", lines[0].UsageType)
	assert.Equal(t, 310.0, lines[0].AreaSqFt)
	assert.True(t, lines[1].IsOpenLand())
	assert.Equal(t, 100.0, lines[1].AreaSqFt)
}

func TestBuildConstructions_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   service.ConstructionInput
	}{
		{"missing usage", service.ConstructionInput{ConstructionType: "RCC", ConstructionYear: 2000}},
		{"blank construction type", service.ConstructionInput{UsageType: "Residential", ConstructionType: "  ", ConstructionYear: 2000}},
		{"negative length", service.ConstructionInput{UsageType: "Residential", ConstructionType: "RCC", ConstructionYear: 2000, Length: -1}},
		{"implausible year", service.ConstructionInput{UsageType: "Residential", ConstructionType: "RCC", ConstructionYear: 95}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.BuildConstructions([]service.ConstructionInput{tc.in})
			assert.ErrorIs(t, err, domain.ErrInvalidConstruction)
		})
	}
}

func TestPropertyService_Create(t *testing.T) {
	repo := new(mocks.MockPropertyRepo)
	villageRepo := new(mocks.MockVillageRepo)
	svc := service.NewPropertyService(repo, villageRepo)
	villageID := uuid.New()

	villageRepo.On("GetByID", mock.Anything, villageID).Return(&domain.Village{ID: villageID}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Property) bool {
		return p.VillageID == villageID && p.PropertyNo == "12/A" && len(p.Constructions) == 1
	})).Return(nil)

	p, err := svc.Create(context.Background(), villageID, service.CreatePropertyInput{
		PropertyNo:   " 12/A ",
		OwnerName:    "Sakharam Patil",
		AadharNumber: "123412341234",
		Constructions: []service.ConstructionInput{
			{UsageType: "Residential", ConstructionType: "RCC", ConstructionYear: 2010, Length: 10, Width: 20},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, p.Status)
	assert.Equal(t, 200.0, p.TotalAreaSqFt())
	repo.AssertExpectations(t)
}

func TestPropertyService_Create_InvalidAadhar(t *testing.T) {
	repo := new(mocks.MockPropertyRepo)
	villageRepo := new(mocks.MockVillageRepo)
	svc := service.NewPropertyService(repo, villageRepo)
	villageID := uuid.New()
	villageRepo.On("GetByID", mock.Anything, villageID).Return(&domain.Village{ID: villageID}, nil)

	for _, aadhar := range []string{"1234", "12341234123A", "1234123412345"} {
		_, err := svc.Create(context.Background(), villageID, service.CreatePropertyInput{
			PropertyNo: "1", OwnerName: "x", AadharNumber: aadhar,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidAadhar, aadhar)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPropertyService_Create_UnknownVillage(t *testing.T) {
	repo := new(mocks.MockPropertyRepo)
	villageRepo := new(mocks.MockVillageRepo)
	svc := service.NewPropertyService(repo, villageRepo)
	villageID := uuid.New()
	villageRepo.On("GetByID", mock.Anything, villageID).Return(nil, domain.ErrNotFound)

	_, err := svc.Create(context.Background(), villageID, service.CreatePropertyInput{PropertyNo: "1", OwnerName: "x"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPropertyService_Update_ReplacesConstructions(t *testing.T) {
	repo := new(mocks.MockPropertyRepo)
	svc := service.NewPropertyService(repo, new(mocks.MockVillageRepo))
	villageID, propertyID := uuid.New(), uuid.New()
	existing := &domain.Property{
		ID: propertyID, VillageID: villageID, PropertyNo: "7", OwnerName: "Old Owner",
		Constructions: domain.Constructions{{UsageType: "Residential", ConstructionType: "RCC", AreaSqFt: 50}},
	}

	repo.On("GetByID", mock.Anything, villageID, propertyID).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	owner := "New Owner"
	exempt := true
	lines := []service.ConstructionInput{
		{UsageType: "Commercial", ConstructionType: "Load bearing", ConstructionYear: 1995, Length: 5, Width: 5},
		{UsageType: "Residential", ConstructionType: "Open Land", Length: 2, Width: 3},
	}
	p, err := svc.Update(context.Background(), villageID, propertyID, service.UpdatePropertyInput{
		OwnerName:     &owner,
		IsTaxExempt:   &exempt,
		Constructions: &lines,
	})

	require.NoError(t, err)
	assert.Equal(t, "New Owner", p.OwnerName)
	assert.True(t, p.IsTaxExempt)
	assert.Len(t, p.Constructions, 2)
	assert.Equal(t, 31.0, p.TotalAreaSqFt())
}

func TestPropertyService_Update_NilConstructionsKeepsLines(t *testing.T) {
	repo := new(mocks.MockPropertyRepo)
	svc := service.NewPropertyService(repo, new(mocks.MockVillageRepo))
	villageID, propertyID := uuid.New(), uuid.New()
	existing := &domain.Property{
		ID: propertyID, VillageID: villageID, PropertyNo: "7", OwnerName: "Owner",
		Constructions: domain.Constructions{{UsageType: "Residential", ConstructionType: "RCC", AreaSqFt: 50}},
	}
	repo.On("GetByID", mock.Anything, villageID, propertyID).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	ward := "3"
	p, err := svc.Update(context.Background(), villageID, propertyID, service.UpdatePropertyInput{WardNo: &ward})

	require.NoError(t, err)
	assert.Len(t, p.Constructions, 1)
	assert.Equal(t, "3", p.WardNo)
}

func TestPropertyService_Update_DuplicatePropertyNo(t *testing.T) {
	repo := new(mocks.MockPropertyRepo)
	svc := service.NewPropertyService(repo, new(mocks.MockVillageRepo))
	villageID, propertyID := uuid.New(), uuid.New()
	existing := &domain.Property{ID: propertyID, VillageID: villageID, PropertyNo: "7", OwnerName: "Owner"}
	repo.On("GetByID", mock.Anything, villageID, propertyID).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(domain.ErrDuplicatePropertyNo)

	no := "8"
	_, err := svc.Update(context.Background(), villageID, propertyID, service.UpdatePropertyInput{PropertyNo: &no})

	assert.ErrorIs(t, err, domain.ErrDuplicatePropertyNo)
}
