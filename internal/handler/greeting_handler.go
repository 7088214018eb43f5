package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"planetary/internal/errors"
)

// GreetingHandler bundles the demo endpoints that predate the planet CRUD.
type GreetingHandler struct{}

// NewGreetingHandler creates a new greeting handler.
func NewGreetingHandler() *GreetingHandler {
	return &GreetingHandler{}
}

// Home godoc
// @Summary API greeting
// @Tags misc
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *GreetingHandler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Hello from the Planetary API!",
	})
}

// NotFound godoc
// @Summary Demo not-found response
// @Tags misc
// @Produce json
// @Success 404 {object} map[string]string
// @Router /not_found [get]
func (h *GreetingHandler) NotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, map[string]string{
		"message": "That resource was not found",
	})
}

// Parameters godoc
// @Summary Greet by query parameters
// @Tags misc
// @Produce json
// @Param name query string true "Name"
// @Param age query int true "Age"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} map[string]string
// @Router /parameters [get]
func (h *GreetingHandler) Parameters(c echo.Context) error {
	name := c.QueryParam("name")
	age, err := strconv.Atoi(c.QueryParam("age"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "age must be an integer",
			Code:  "INVALID_NUMBER",
		})
	}
	return greet(c, name, age)
}

// URLVariables godoc
// @Summary Greet by path parameters
// @Tags misc
// @Produce json
// @Param name path string true "Name"
// @Param age path int true "Age"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} map[string]string
// @Router /url_variables/{name}/{age} [get]
func (h *GreetingHandler) URLVariables(c echo.Context) error {
	name := c.Param("name")
	age, err := strconv.Atoi(c.Param("age"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "age must be an integer",
			Code:  "INVALID_NUMBER",
		})
	}
	return greet(c, name, age)
}

func greet(c echo.Context, name string, age int) error {
	if age < 18 {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"message": "Sorry " + name + ", you are not old enough",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome " + name,
	})
}
