package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/betrybe/agrix/internal/core/ports"
)

// FarmHandler handles HTTP requests for farm operations, including the
// nested crop routes.
type FarmHandler struct {
	farmService ports.FarmService
}

func NewFarmHandler(farmService ports.FarmService) *FarmHandler {
	return &FarmHandler{farmService: farmService}
}

type createFarmRequest struct {
	Name string  `json:"name" validate:"required"`
	Size float64 `json:"size" validate:"required,gt=0"`
}

// Create handles POST /farms.
//
// @Summary      Register a new farm
// @Tags         farms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createFarmRequest  true  "Farm details"
// @Success      201   {object}  domain.Farm
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /farms [post]
func (h *FarmHandler) Create(c echo.Context) error {
	var req createFarmRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	farm, err := h.farmService.CreateFarm(c.Request().Context(), ports.FarmInput{
		Name: req.Name,
		Size: req.Size,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, farm)
}

// List handles GET /farms.
//
// @Summary      List all farms
// @Tags         farms
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Farm
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /farms [get]
func (h *FarmHandler) List(c echo.Context) error {
	farms, err := h.farmService.GetFarms(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, farms)
}

// Get handles GET /farms/:farmId.
//
// @Summary      Get a farm by id
// @Tags         farms
// @Produce      json
// @Security     BearerAuth
// @Param        farmId  path      string  true  "Farm id"
// @Success      200     {object}  domain.Farm
// @Failure      404     {object}  map[string]string
// @Router       /farms/{farmId} [get]
func (h *FarmHandler) Get(c echo.Context) error {
	farm, err := h.farmService.GetFarmByID(c.Request().Context(), c.Param("farmId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, farm)
}

// CreateCrop handles POST /farms/:farmId/crops.
//
// @Summary      Plant a crop on a farm
// @Tags         farms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        farmId  path      string             true  "Farm id"
// @Param        body    body      createCropRequest  true  "Crop details"
// @Success      201     {object}  cropResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /farms/{farmId}/crops [post]
func (h *FarmHandler) CreateCrop(c echo.Context) error {
	var req createCropRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	plantedDate, err := parseDate(req.PlantedDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "planted_date must be a valid date"})
	}
	harvestDate, err := parseDate(req.HarvestDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "harvest_date must be a valid date"})
	}

	crop, err := h.farmService.CreateCrop(c.Request().Context(), c.Param("farmId"), ports.CropInput{
		Name:        req.Name,
		PlantedArea: req.PlantedArea,
		PlantedDate: plantedDate,
		HarvestDate: harvestDate,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newCropResponse(crop))
}

// ListCrops handles GET /farms/:farmId/crops.
//
// @Summary      List the crops of a farm
// @Tags         farms
// @Produce      json
// @Security     BearerAuth
// @Param        farmId  path      string  true  "Farm id"
// @Success      200     {array}   cropResponse
// @Failure      404     {object}  map[string]string
// @Router       /farms/{farmId}/crops [get]
func (h *FarmHandler) ListCrops(c echo.Context) error {
	crops, err := h.farmService.GetCropsFromFarm(c.Request().Context(), c.Param("farmId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCropResponses(crops))
}
