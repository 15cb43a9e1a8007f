package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/betrybe/agrix/internal/api/metrics"
	"github.com/betrybe/agrix/internal/core/domain"
	"github.com/betrybe/agrix/internal/core/ports"
)

// FertilizerService implements fertilizer use-cases.
type FertilizerService struct {
	repo   ports.FertilizerRepository
	logger zerolog.Logger
}

func NewFertilizerService(repo ports.FertilizerRepository, logger zerolog.Logger) *FertilizerService {
	return &FertilizerService{repo: repo, logger: logger}
}

func (s *FertilizerService) CreateFertilizer(ctx context.Context, name, brand, composition string) (*domain.Fertilizer, error) {
	created, err := s.repo.Create(ctx, &domain.Fertilizer{
		Name:        name,
		Brand:       brand,
		Composition: composition,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create fertilizer")
		return nil, err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("fertilizer").Inc()
	s.logger.Info().Str("fertilizer_id", created.ID).Str("name", created.Name).Msg("fertilizer created")
	return created, nil
}

func (s *FertilizerService) GetFertilizers(ctx context.Context) ([]*domain.Fertilizer, error) {
	return s.repo.FindAll(ctx)
}

func (s *FertilizerService) GetFertilizerByID(ctx context.Context, id string) (*domain.Fertilizer, error) {
	return s.repo.FindByID(ctx, id)
}
