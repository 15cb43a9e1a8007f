package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/betrybe/agrix/internal/core/domain"
	"github.com/betrybe/agrix/internal/core/ports"
)

// CropService implements use-cases rooted at crops, including the
// fertilizer association.
type CropService struct {
	crops       ports.CropRepository
	fertilizers ports.FertilizerRepository
	logger      zerolog.Logger
}

func NewCropService(crops ports.CropRepository, fertilizers ports.FertilizerRepository, logger zerolog.Logger) *CropService {
	return &CropService{crops: crops, fertilizers: fertilizers, logger: logger}
}

func (s *CropService) GetCrops(ctx context.Context) ([]*domain.Crop, error) {
	return s.crops.FindAll(ctx)
}

func (s *CropService) GetCropByID(ctx context.Context, id string) (*domain.Crop, error) {
	return s.crops.FindByID(ctx, id)
}

// SearchByHarvestDate returns crops whose harvest date lies strictly between
// start and end.
func (s *CropService) SearchByHarvestDate(ctx context.Context, start, end time.Time) ([]*domain.Crop, error) {
	return s.crops.FindByHarvestBetween(ctx, start, end)
}

// AddFertilizer associates an existing fertilizer with an existing crop.
// Both sides are checked before the association is written.
func (s *CropService) AddFertilizer(ctx context.Context, cropID, fertilizerID string) error {
	if _, err := s.fertilizers.FindByID(ctx, fertilizerID); err != nil {
		return err
	}
	if _, err := s.crops.FindByID(ctx, cropID); err != nil {
		return err
	}

	if err := s.crops.AddFertilizer(ctx, cropID, fertilizerID); err != nil {
		s.logger.Error().Err(err).Str("crop_id", cropID).Str("fertilizer_id", fertilizerID).Msg("failed to associate fertilizer")
		return err
	}

	s.logger.Info().Str("crop_id", cropID).Str("fertilizer_id", fertilizerID).Msg("fertilizer associated")
	return nil
}

// GetFertilizersFromCrop lists the fertilizers associated with the crop.
func (s *CropService) GetFertilizersFromCrop(ctx context.Context, cropID string) ([]*domain.Fertilizer, error) {
	crop, err := s.crops.FindByID(ctx, cropID)
	if err != nil {
		return nil, err
	}
	if len(crop.FertilizerIDs) == 0 {
		return []*domain.Fertilizer{}, nil
	}
	return s.fertilizers.FindByIDs(ctx, crop.FertilizerIDs)
}
