package service

import (
	"context"
	"fmt"

	"sampleapi/internal/model"
	"sampleapi/internal/repository"
)

const (
	// RootMessage is the greeting returned by the root descriptor.
	RootMessage = "Flask API is running!"
	// StatusHealthy is the liveness status reported while the process is up.
	StatusHealthy = "healthy"
	// HealthMessage accompanies StatusHealthy in the liveness body.
	HealthMessage = "API is running"
)

// endpoints lists the public routes advertised by the root descriptor.
var endpoints = map[string]string{
	"/":         "This endpoint",
	"/health":   "Health check",
	"/api/data": "Get sample data",
}

// CatalogService defines the use cases served by the public endpoints.
type CatalogService interface {
	// Info returns the root descriptor listing the available endpoints.
	Info(ctx context.Context) (*model.RootInfo, error)

	// Health reports liveness. It never checks downstream dependencies.
	Health(ctx context.Context) (*model.HealthStatus, error)

	// Data returns the sample item listing with its total and timestamp.
	Data(ctx context.Context) (*model.DataPayload, error)
}

// catalogService is a concrete implementation of CatalogService.
type catalogService struct {
	repo repository.ItemRepository
}

// NewCatalogService constructs a new CatalogService.
func NewCatalogService(repo repository.ItemRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) Info(_ context.Context) (*model.RootInfo, error) {
	eps := make(map[string]string, len(endpoints))
	for path, desc := range endpoints {
		eps[path] = desc
	}
	return &model.RootInfo{Message: RootMessage, Endpoints: eps}, nil
}

func (s *catalogService) Health(_ context.Context) (*model.HealthStatus, error) {
	return &model.HealthStatus{Status: StatusHealthy, Message: HealthMessage}, nil
}

func (s *catalogService) Data(ctx context.Context) (*model.DataPayload, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	ts, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot timestamp: %w", err)
	}
	if items == nil {
		items = []model.Item{}
	}
	return &model.DataPayload{
		Data:       items,
		TotalItems: len(items),
		Timestamp:  ts,
	}, nil
}
