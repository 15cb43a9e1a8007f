package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/betrybe/agrix/internal/core/ports"
)

// PersonHandler handles staff registration.
type PersonHandler struct {
	personService ports.PersonService
}

func NewPersonHandler(personService ports.PersonService) *PersonHandler {
	return &PersonHandler{personService: personService}
}

type createPersonRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=ADMIN MANAGER USER"`
}

type personResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Create registers a new staff member. This route is public: it is how the
// credential store gets populated in the first place.
//
// @Summary      Register a new staff member
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        body  body      createPersonRequest  true  "Person details"
// @Success      201   {object}  personResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /persons [post]
func (h *PersonHandler) Create(c echo.Context) error {
	var req createPersonRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	person, err := h.personService.Register(c.Request().Context(), req.Username, req.Password, req.Role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, personResponse{
		ID:       person.ID,
		Username: person.Username,
		Role:     person.Role,
	})
}
