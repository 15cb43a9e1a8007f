package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/betrybe/agrix/internal/api/metrics"
	"github.com/betrybe/agrix/internal/core/domain"
	"github.com/betrybe/agrix/internal/core/ports"
)

// FarmService implements use-cases rooted at farms, including planting
// crops on a farm.
type FarmService struct {
	farms  ports.FarmRepository
	crops  ports.CropRepository
	logger zerolog.Logger
}

func NewFarmService(farms ports.FarmRepository, crops ports.CropRepository, logger zerolog.Logger) *FarmService {
	return &FarmService{farms: farms, crops: crops, logger: logger}
}

func (s *FarmService) CreateFarm(ctx context.Context, input ports.FarmInput) (*domain.Farm, error) {
	created, err := s.farms.Create(ctx, &domain.Farm{Name: input.Name, Size: input.Size})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create farm")
		return nil, err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("farm").Inc()
	s.logger.Info().Str("farm_id", created.ID).Str("name", created.Name).Msg("farm created")
	return created, nil
}

func (s *FarmService) GetFarms(ctx context.Context) ([]*domain.Farm, error) {
	return s.farms.FindAll(ctx)
}

func (s *FarmService) GetFarmByID(ctx context.Context, id string) (*domain.Farm, error) {
	return s.farms.FindByID(ctx, id)
}

// CreateCrop plants a crop on the given farm. The farm must exist.
func (s *FarmService) CreateCrop(ctx context.Context, farmID string, input ports.CropInput) (*domain.Crop, error) {
	farm, err := s.farms.FindByID(ctx, farmID)
	if err != nil {
		return nil, err
	}

	crop := &domain.Crop{
		FarmID:      farm.ID,
		Name:        input.Name,
		PlantedArea: input.PlantedArea,
		PlantedDate: input.PlantedDate,
		HarvestDate: input.HarvestDate,
	}

	created, err := s.crops.Create(ctx, crop)
	if err != nil {
		s.logger.Error().Err(err).Str("farm_id", farmID).Msg("failed to create crop")
		return nil, err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("crop").Inc()
	s.logger.Info().Str("crop_id", created.ID).Str("farm_id", farm.ID).Msg("crop created")
	return created, nil
}

// GetCropsFromFarm lists all crops planted on the given farm. The farm must
// exist even when it has no crops.
func (s *FarmService) GetCropsFromFarm(ctx context.Context, farmID string) ([]*domain.Crop, error) {
	if _, err := s.farms.FindByID(ctx, farmID); err != nil {
		return nil, err
	}
	return s.crops.FindByFarmID(ctx, farmID)
}
