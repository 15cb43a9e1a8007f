package handler

import (
	"time"

	"github.com/betrybe/agrix/internal/core/domain"
)

// dateLayout is the wire format for planting and harvest dates.
const dateLayout = "2006-01-02"

type createCropRequest struct {
	Name        string  `json:"name"         validate:"required"`
	PlantedArea float64 `json:"planted_area" validate:"required,gt=0"`
	PlantedDate string  `json:"planted_date" validate:"required,datetime=2006-01-02"`
	HarvestDate string  `json:"harvest_date" validate:"required,datetime=2006-01-02"`
}

type cropResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	PlantedArea float64 `json:"planted_area"`
	FarmID      string  `json:"farm_id"`
	PlantedDate string  `json:"planted_date"`
	HarvestDate string  `json:"harvest_date"`
}

func newCropResponse(crop *domain.Crop) cropResponse {
	return cropResponse{
		ID:          crop.ID,
		Name:        crop.Name,
		PlantedArea: crop.PlantedArea,
		FarmID:      crop.FarmID,
		PlantedDate: crop.PlantedDate.Format(dateLayout),
		HarvestDate: crop.HarvestDate.Format(dateLayout),
	}
}

func newCropResponses(crops []*domain.Crop) []cropResponse {
	out := make([]cropResponse, 0, len(crops))
	for _, crop := range crops {
		out = append(out, newCropResponse(crop))
	}
	return out
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
