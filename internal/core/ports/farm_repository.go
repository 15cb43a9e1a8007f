package ports

import (
	"context"

	"github.com/betrybe/agrix/internal/core/domain"
)

// FarmRepository defines persistence operations for farms.
type FarmRepository interface {
	Create(ctx context.Context, farm *domain.Farm) (*domain.Farm, error)
	// FindByID returns domain.ErrFarmNotFound when the farm does not exist.
	FindByID(ctx context.Context, id string) (*domain.Farm, error)
	FindAll(ctx context.Context) ([]*domain.Farm, error)
}
