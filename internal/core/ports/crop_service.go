package ports

import (
	"context"
	"time"

	"github.com/betrybe/agrix/internal/core/domain"
)

// CropService defines use-case operations rooted at crops.
type CropService interface {
	GetCrops(ctx context.Context) ([]*domain.Crop, error)
	GetCropByID(ctx context.Context, id string) (*domain.Crop, error)
	// SearchByHarvestDate returns crops whose harvest date falls strictly
	// between start and end.
	SearchByHarvestDate(ctx context.Context, start, end time.Time) ([]*domain.Crop, error)
	// AddFertilizer associates an existing fertilizer with an existing crop.
	AddFertilizer(ctx context.Context, cropID, fertilizerID string) error
	GetFertilizersFromCrop(ctx context.Context, cropID string) ([]*domain.Fertilizer, error)
}
