package ports

import (
	"context"
	"time"

	"github.com/betrybe/agrix/internal/core/domain"
)

// CropRepository defines persistence operations for crops.
type CropRepository interface {
	Create(ctx context.Context, crop *domain.Crop) (*domain.Crop, error)
	// FindByID returns domain.ErrCropNotFound when the crop does not exist.
	FindByID(ctx context.Context, id string) (*domain.Crop, error)
	FindAll(ctx context.Context) ([]*domain.Crop, error)
	FindByFarmID(ctx context.Context, farmID string) ([]*domain.Crop, error)
	// FindByHarvestBetween returns crops whose harvest date lies strictly
	// between start and end (both bounds exclusive).
	FindByHarvestBetween(ctx context.Context, start, end time.Time) ([]*domain.Crop, error)
	// AddFertilizer appends fertilizerID to the crop's association list.
	AddFertilizer(ctx context.Context, cropID, fertilizerID string) error
}
