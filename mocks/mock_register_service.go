package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"grampanchayat/internal/service"
)

// MockRegisterService is a mock implementation of service.RegisterService.
type MockRegisterService struct {
	mock.Mock
}

func (m *MockRegisterService) Render(ctx context.Context, villageID uuid.UUID, asOf *time.Time, format string) (*service.RenderedRegister, error) {
	args := m.Called(ctx, villageID, asOf, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RenderedRegister), args.Error(1)
}

func (m *MockRegisterService) Archive(ctx context.Context, villageID uuid.UUID, asOf *time.Time) (*service.ArchivedRegister, error) {
	args := m.Called(ctx, villageID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ArchivedRegister), args.Error(1)
}
