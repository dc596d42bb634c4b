package mocks

import (
	"context"

	"sampleapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Info(ctx context.Context) (*model.RootInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RootInfo), args.Error(1)
}

func (m *MockCatalogService) Health(ctx context.Context) (*model.HealthStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HealthStatus), args.Error(1)
}

func (m *MockCatalogService) Data(ctx context.Context) (*model.DataPayload, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DataPayload), args.Error(1)
}
