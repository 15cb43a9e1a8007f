package ports

import (
	"context"
	"time"

	"github.com/betrybe/agrix/internal/core/domain"
)

// FarmInput carries the data needed to register a new farm.
type FarmInput struct {
	Name string
	Size float64
}

// CropInput carries the data needed to plant a new crop on a farm.
type CropInput struct {
	Name        string
	PlantedArea float64
	PlantedDate time.Time
	HarvestDate time.Time
}

// FarmService defines use-case operations rooted at farms.
type FarmService interface {
	CreateFarm(ctx context.Context, input FarmInput) (*domain.Farm, error)
	GetFarms(ctx context.Context) ([]*domain.Farm, error)
	GetFarmByID(ctx context.Context, id string) (*domain.Farm, error)
	// CreateCrop plants a crop on the given farm; domain.ErrFarmNotFound
	// when the farm does not exist.
	CreateCrop(ctx context.Context, farmID string, input CropInput) (*domain.Crop, error)
	GetCropsFromFarm(ctx context.Context, farmID string) ([]*domain.Crop, error)
}
