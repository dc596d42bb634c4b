package service

import (
	"context"
	"errors"
	"testing"

	"sampleapi/internal/model"
	"sampleapi/internal/repository/memory"
	repoMocks "sampleapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_Info(t *testing.T) {
	svc := NewCatalogService(new(repoMocks.MockItemRepository))

	info, err := svc.Info(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Flask API is running!", info.Message)
	assert.Equal(t, map[string]string{
		"/":         "This endpoint",
		"/health":   "Health check",
		"/api/data": "Get sample data",
	}, info.Endpoints)

	// Mutating a returned map must not leak into later calls.
	info.Endpoints["/extra"] = "nope"
	again, err := svc.Info(context.Background())
	require.NoError(t, err)
	assert.Len(t, again.Endpoints, 3)
}

func TestCatalogService_Health(t *testing.T) {
	mRepo := new(repoMocks.MockItemRepository)
	svc := NewCatalogService(mRepo)

	h, err := svc.Health(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &model.HealthStatus{Status: "healthy", Message: "API is running"}, h)
	// Liveness must not touch the repository.
	mRepo.AssertNotCalled(t, "List")
	mRepo.AssertNotCalled(t, "Snapshot")
}

func TestCatalogService_Data(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		setupMocks func(mRepo *repoMocks.MockItemRepository)
		want       *model.DataPayload
		wantErrMsg string
	}{
		{
			name: "happy path",
			setupMocks: func(mRepo *repoMocks.MockItemRepository) {
				mRepo.On("List", ctx).Return([]model.Item{{ID: 7, Name: "Seven", Value: 7}}, nil)
				mRepo.On("Snapshot", ctx).Return("2025-01-01T00:00:00Z", nil)
			},
			want: &model.DataPayload{
				Data:       []model.Item{{ID: 7, Name: "Seven", Value: 7}},
				TotalItems: 1,
				Timestamp:  "2025-01-01T00:00:00Z",
			},
		},
		{
			name: "nil items encode as empty list",
			setupMocks: func(mRepo *repoMocks.MockItemRepository) {
				mRepo.On("List", ctx).Return(nil, nil)
				mRepo.On("Snapshot", ctx).Return("2025-01-01T00:00:00Z", nil)
			},
			want: &model.DataPayload{
				Data:       []model.Item{},
				TotalItems: 0,
				Timestamp:  "2025-01-01T00:00:00Z",
			},
		},
		{
			name: "list error",
			setupMocks: func(mRepo *repoMocks.MockItemRepository) {
				mRepo.On("List", ctx).Return(nil, errors.New("boom"))
			},
			wantErrMsg: "list items: boom",
		},
		{
			name: "snapshot error",
			setupMocks: func(mRepo *repoMocks.MockItemRepository) {
				mRepo.On("List", ctx).Return([]model.Item{}, nil)
				mRepo.On("Snapshot", ctx).Return("", errors.New("clock"))
			},
			wantErrMsg: "snapshot timestamp: clock",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockItemRepository)
			tt.setupMocks(mRepo)

			svc := NewCatalogService(mRepo)
			got, err := svc.Data(ctx)

			if tt.wantErrMsg != "" {
				assert.EqualError(t, err, tt.wantErrMsg)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestCatalogService_DataWithFixture(t *testing.T) {
	svc := NewCatalogService(memory.NewItemMemory())

	got, err := svc.Data(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, got.TotalItems)
	assert.Len(t, got.Data, 3)
	assert.Equal(t, memory.SnapshotTimestamp, got.Timestamp)
}
