package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/betrybe/agrix/internal/core/ports"
)

// CropHandler handles HTTP requests for crop operations.
type CropHandler struct {
	cropService ports.CropService
}

func NewCropHandler(cropService ports.CropService) *CropHandler {
	return &CropHandler{cropService: cropService}
}

// List handles GET /crops.
//
// @Summary      List all crops
// @Tags         crops
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   cropResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /crops [get]
func (h *CropHandler) List(c echo.Context) error {
	crops, err := h.cropService.GetCrops(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCropResponses(crops))
}

// Search handles GET /crops/search?start=YYYY-MM-DD&end=YYYY-MM-DD, returning
// crops whose harvest date lies strictly between the two dates.
//
// @Summary      Search crops by harvest date range
// @Tags         crops
// @Produce      json
// @Security     BearerAuth
// @Param        start  query     string  true  "Start date (exclusive)"
// @Param        end    query     string  true  "End date (exclusive)"
// @Success      200    {array}   cropResponse
// @Failure      400    {object}  map[string]string
// @Router       /crops/search [get]
func (h *CropHandler) Search(c echo.Context) error {
	start, err := parseDate(c.QueryParam("start"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "start must be a valid date"})
	}
	end, err := parseDate(c.QueryParam("end"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "end must be a valid date"})
	}

	crops, err := h.cropService.SearchByHarvestDate(c.Request().Context(), start, end)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCropResponses(crops))
}

// Get handles GET /crops/:cropId.
//
// @Summary      Get a crop by id
// @Tags         crops
// @Produce      json
// @Security     BearerAuth
// @Param        cropId  path      string  true  "Crop id"
// @Success      200     {object}  cropResponse
// @Failure      404     {object}  map[string]string
// @Router       /crops/{cropId} [get]
func (h *CropHandler) Get(c echo.Context) error {
	crop, err := h.cropService.GetCropByID(c.Request().Context(), c.Param("cropId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCropResponse(crop))
}

// AddFertilizer handles POST /crops/:cropId/fertilizers/:fertilizerId.
//
// @Summary      Associate a fertilizer with a crop
// @Tags         crops
// @Produce      json
// @Security     BearerAuth
// @Param        cropId        path      string  true  "Crop id"
// @Param        fertilizerId  path      string  true  "Fertilizer id"
// @Success      201           {object}  map[string]string
// @Failure      404           {object}  map[string]string
// @Router       /crops/{cropId}/fertilizers/{fertilizerId} [post]
func (h *CropHandler) AddFertilizer(c echo.Context) error {
	err := h.cropService.AddFertilizer(c.Request().Context(), c.Param("cropId"), c.Param("fertilizerId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"message": "fertilizer and crop successfully associated",
	})
}

// ListFertilizers handles GET /crops/:cropId/fertilizers.
//
// @Summary      List the fertilizers of a crop
// @Tags         crops
// @Produce      json
// @Security     BearerAuth
// @Param        cropId  path      string  true  "Crop id"
// @Success      200     {array}   domain.Fertilizer
// @Failure      404     {object}  map[string]string
// @Router       /crops/{cropId}/fertilizers [get]
func (h *CropHandler) ListFertilizers(c echo.Context) error {
	fertilizers, err := h.cropService.GetFertilizersFromCrop(c.Request().Context(), c.Param("cropId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fertilizers)
}
