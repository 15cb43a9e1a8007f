package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/betrybe/agrix/internal/core/ports"
)

// FertilizerHandler handles HTTP requests for fertilizer operations.
type FertilizerHandler struct {
	fertilizerService ports.FertilizerService
}

func NewFertilizerHandler(fertilizerService ports.FertilizerService) *FertilizerHandler {
	return &FertilizerHandler{fertilizerService: fertilizerService}
}

type createFertilizerRequest struct {
	Name        string `json:"name"        validate:"required"`
	Brand       string `json:"brand"       validate:"required"`
	Composition string `json:"composition" validate:"required"`
}

// Create handles POST /fertilizers.
//
// @Summary      Register a new fertilizer
// @Tags         fertilizers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createFertilizerRequest  true  "Fertilizer details"
// @Success      201   {object}  domain.Fertilizer
// @Failure      400   {object}  map[string]string
// @Router       /fertilizers [post]
func (h *FertilizerHandler) Create(c echo.Context) error {
	var req createFertilizerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	fertilizer, err := h.fertilizerService.CreateFertilizer(c.Request().Context(), req.Name, req.Brand, req.Composition)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, fertilizer)
}

// List handles GET /fertilizers.
//
// @Summary      List all fertilizers
// @Tags         fertilizers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Fertilizer
// @Failure      401  {object}  map[string]string
// @Router       /fertilizers [get]
func (h *FertilizerHandler) List(c echo.Context) error {
	fertilizers, err := h.fertilizerService.GetFertilizers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fertilizers)
}

// Get handles GET /fertilizers/:fertilizerId.
//
// @Summary      Get a fertilizer by id
// @Tags         fertilizers
// @Produce      json
// @Security     BearerAuth
// @Param        fertilizerId  path      string  true  "Fertilizer id"
// @Success      200           {object}  domain.Fertilizer
// @Failure      404           {object}  map[string]string
// @Router       /fertilizers/{fertilizerId} [get]
func (h *FertilizerHandler) Get(c echo.Context) error {
	fertilizer, err := h.fertilizerService.GetFertilizerByID(c.Request().Context(), c.Param("fertilizerId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fertilizer)
}
