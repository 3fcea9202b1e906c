package cmd

import (
	"net/http"

	httpadapter "mailroom/internal/adapters/in/http"
	_ "mailroom/internal/generated/docs"
	"mailroom/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	apiBasePath = "/api/v1"
	// apiBodyLimit caps request bodies before they are buffered for validation.
	apiBodyLimit = "2M"
)

// CreateEcho builds the web server: the generated API under /api/v1 plus
// health, metrics and swagger UI.
func (c *CompositionRoot) CreateEcho() (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(httpadapter.Metrics())

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	apiMiddleware := []echo.MiddlewareFunc{middleware.BodyLimit(apiBodyLimit)}
	if c.configs.OpenAPIValidation {
		swagger, err := servers.GetSwagger()
		if err != nil {
			return nil, err
		}
		validator, err := httpadapter.OpenAPIValidator(swagger, apiBasePath)
		if err != nil {
			return nil, err
		}
		apiMiddleware = append(apiMiddleware, validator)
	}

	api := e.Group(apiBasePath, apiMiddleware...)
	servers.RegisterHandlers(api, c.CreateHTTPServer())
	return e, nil
}
