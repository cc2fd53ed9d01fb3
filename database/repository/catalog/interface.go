package catalogRepo

import (
	"context"

	"quickmed/models"
)

// CatalogRepository defines data access for the service catalogue.
type CatalogRepository interface {
	// GetAll retrieves every service, in catalogue order.
	GetAll(ctx context.Context) ([]models.Service, error)
	// GetByName retrieves a single service; returns (nil, nil) when absent.
	GetByName(ctx context.Context, name string) (*models.Service, error)
	// Upsert creates or replaces a service definition by name.
	Upsert(ctx context.Context, svc *models.Service) error
}
