package ports

import (
	"context"

	"github.com/betrybe/agrix/internal/core/domain"
)

// FertilizerService defines use-case operations for fertilizers.
type FertilizerService interface {
	CreateFertilizer(ctx context.Context, name, brand, composition string) (*domain.Fertilizer, error)
	GetFertilizers(ctx context.Context) ([]*domain.Fertilizer, error)
	GetFertilizerByID(ctx context.Context, id string) (*domain.Fertilizer, error)
}
