package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"grampanchayat/internal/assessment"
	"grampanchayat/internal/service"
)

// MockAssessmentService is a mock implementation of service.AssessmentService.
type MockAssessmentService struct {
	mock.Mock
}

func (m *MockAssessmentService) AssessProperty(ctx context.Context, villageID, propertyID uuid.UUID, asOf *time.Time) (*assessment.Assessment, error) {
	args := m.Called(ctx, villageID, propertyID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assessment.Assessment), args.Error(1)
}

func (m *MockAssessmentService) AssessVillage(ctx context.Context, villageID uuid.UUID, asOf *time.Time) (*service.VillageAssessment, error) {
	args := m.Called(ctx, villageID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.VillageAssessment), args.Error(1)
}
