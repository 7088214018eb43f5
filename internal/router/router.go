package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"planetary/internal/config"
	"planetary/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	greetingHandler *handler.GreetingHandler,
	authHandler *handler.AuthHandler,
	planetHandler *handler.PlanetHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.GET("/", greetingHandler.Home)
	e.GET("/not_found", greetingHandler.NotFound)
	e.GET("/parameters", greetingHandler.Parameters)
	e.GET("/url_variables/:name/:age", greetingHandler.URLVariables)

	e.GET("/planets", planetHandler.ListPlanets)
	e.GET("/planets/:id", planetHandler.GetPlanet)

	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// Secured routes (require JWT authentication). A missing token answers 401,
	// not echo-jwt's default 400, so all credential failures look the same.
	secured := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
		},
	}))

	secured.POST("/add_planet", planetHandler.AddPlanet)
	secured.PUT("/update_planet/:id", planetHandler.UpdatePlanet)
	secured.DELETE("/remove_planet/:id", planetHandler.RemovePlanet)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
