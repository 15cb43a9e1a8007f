package ports

import (
	"context"

	"github.com/betrybe/agrix/internal/core/domain"
)

// FertilizerRepository defines persistence operations for fertilizers.
type FertilizerRepository interface {
	Create(ctx context.Context, fertilizer *domain.Fertilizer) (*domain.Fertilizer, error)
	// FindByID returns domain.ErrFertilizerNotFound when the fertilizer does not exist.
	FindByID(ctx context.Context, id string) (*domain.Fertilizer, error)
	FindAll(ctx context.Context) ([]*domain.Fertilizer, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Fertilizer, error)
}
