package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"planetary/internal/errors"
	"planetary/internal/service"
)

// PlanetHandler handles planet endpoints.
type PlanetHandler struct {
	planetService service.PlanetService
}

// NewPlanetHandler creates a new planet handler.
func NewPlanetHandler(planetService service.PlanetService) *PlanetHandler {
	return &PlanetHandler{planetService: planetService}
}

// PlanetRequest represents a planet create or update request. The three
// measures arrive as strings (form fields or JSON strings) and are parsed
// explicitly so malformed numbers fail with a 400 before touching storage.
type PlanetRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Mass     string `json:"mass" form:"mass" validate:"required"`
	Radius   string `json:"radius" form:"radius" validate:"required"`
	Distance string `json:"distance" form:"distance" validate:"required"`
}

// parseMeasures coerces the string fields into floats.
func (r *PlanetRequest) parseMeasures() (mass, radius, distance float64, err error) {
	if mass, err = strconv.ParseFloat(r.Mass, 64); err != nil {
		return 0, 0, 0, err
	}
	if radius, err = strconv.ParseFloat(r.Radius, 64); err != nil {
		return 0, 0, 0, err
	}
	if distance, err = strconv.ParseFloat(r.Distance, 64); err != nil {
		return 0, 0, 0, err
	}
	return mass, radius, distance, nil
}

func planetID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid planet id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

// ListPlanets godoc
// @Summary List all planets
// @Tags planets
// @Produce json
// @Success 200 {array} model.Planet
// @Failure 500 {object} errors.ErrorResponse
// @Router /planets [get]
func (h *PlanetHandler) ListPlanets(c echo.Context) error {
	planets, err := h.planetService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, planets)
}

// GetPlanet godoc
// @Summary Get a planet by id
// @Tags planets
// @Produce json
// @Param id path int true "Planet ID"
// @Success 200 {object} model.Planet
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /planets/{id} [get]
func (h *PlanetHandler) GetPlanet(c echo.Context) error {
	id, err := planetID(c)
	if err != nil {
		return err
	}

	planet, err := h.planetService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, planet)
}

// AddPlanet godoc
// @Summary Add a new planet
// @Tags planets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PlanetRequest true "Planet data"
// @Success 201 {object} model.Planet
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /add_planet [post]
func (h *PlanetHandler) AddPlanet(c echo.Context) error {
	var req PlanetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	mass, radius, distance, err := req.parseMeasures()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "mass, radius and distance must be numeric",
			Code:  "INVALID_NUMBER",
		})
	}

	planet, err := h.planetService.Add(c.Request().Context(), req.Name, mass, radius, distance)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, planet)
}

// UpdatePlanet godoc
// @Summary Update an existing planet
// @Tags planets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Planet ID"
// @Param request body PlanetRequest true "Planet data"
// @Success 202 {object} model.Planet
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /update_planet/{id} [put]
func (h *PlanetHandler) UpdatePlanet(c echo.Context) error {
	id, err := planetID(c)
	if err != nil {
		return err
	}

	var req PlanetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	mass, radius, distance, err := req.parseMeasures()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "mass, radius and distance must be numeric",
			Code:  "INVALID_NUMBER",
		})
	}

	planet, err := h.planetService.Update(c.Request().Context(), id, req.Name, mass, radius, distance)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusAccepted, planet)
}

// RemovePlanet godoc
// @Summary Remove a planet
// @Tags planets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Planet ID"
// @Success 202 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /remove_planet/{id} [delete]
func (h *PlanetHandler) RemovePlanet(c echo.Context) error {
	id, err := planetID(c)
	if err != nil {
		return err
	}

	if err := h.planetService.Remove(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusAccepted, map[string]string{
		"message": "planet deleted",
	})
}
