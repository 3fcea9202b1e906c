package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mailroom/internal/generated/servers"
	"mailroom/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mailroomPath = "/api/v1/mailrooms/8f5b0d7e-3d7f-4e44-9a55-2b8f2d1f6a10"

func newValidatedEcho(t *testing.T) *echo.Echo {
	t.Helper()
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)
	validator, err := OpenAPIValidator(swagger, "/api/v1")
	require.NoError(t, err)

	e := echo.New()
	api := e.Group("/api/v1", validator)
	ok := func(ctx echo.Context) error { return ctx.NoContent(http.StatusNoContent) }
	api.GET("/mailrooms/:mailroomId/packages", ok)
	api.POST("/mailrooms/:mailroomId/packages", ok)
	return e
}

func TestOpenAPIValidator_PassesValidRequest(t *testing.T) {
	e := newValidatedEcho(t)
	req := httptest.NewRequest(http.MethodGet, mailroomPath+"/packages?status=WAITING&limit=10", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestOpenAPIValidator_RejectsOutOfRangeQuery(t *testing.T) {
	e := newValidatedEcho(t)
	req := httptest.NewRequest(http.MethodGet, mailroomPath+"/packages?limit=9999", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "limit")
}

func TestOpenAPIValidator_RejectsBodyMissingRequiredField(t *testing.T) {
	e := newValidatedEcho(t)
	req := httptest.NewRequest(http.MethodPost, mailroomPath+"/packages", strings.NewReader(`{"provider":"UPS"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestOpenAPIValidator_KeepsBodyReadableForHandler(t *testing.T) {
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)
	validator, err := OpenAPIValidator(swagger, "/api/v1")
	require.NoError(t, err)

	var got servers.NewPackage
	e := echo.New()
	e.Group("/api/v1", validator).POST("/mailrooms/:mailroomId/packages", func(ctx echo.Context) error {
		if err := ctx.Bind(&got); err != nil {
			return err
		}
		return ctx.NoContent(http.StatusCreated)
	})

	body := `{"provider":"UPS","residentId":"0b6a3c5e-0d55-4c1c-9a7e-3f1b5b2f7e21","staffId":"5d1f7d0e-2f0a-4b8c-8f3e-6c0a9e4b1d22"}`
	req := httptest.NewRequest(http.MethodPost, mailroomPath+"/packages", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "UPS", got.Provider)
}

func TestOpenAPIValidator_OversizedStreamedBodyIsRejectedBeforeBuffering(t *testing.T) {
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)
	validator, err := OpenAPIValidator(swagger, "/api/v1")
	require.NoError(t, err)

	called := false
	e := echo.New()
	e.Group("/api/v1", middleware.BodyLimit("1K"), validator).
		POST("/mailrooms/:mailroomId/packages", func(ctx echo.Context) error {
			called = true
			return ctx.NoContent(http.StatusCreated)
		})

	body := `{"provider":"` + strings.Repeat("x", 4096) + `"}`
	req := httptest.NewRequest(http.MethodPost, mailroomPath+"/packages", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.ContentLength = -1
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.False(t, called)
}

func TestMetrics_CountsByRoutePattern(t *testing.T) {
	e := echo.New()
	e.Use(Metrics())
	e.GET("/things/:id", func(ctx echo.Context) error { return ctx.String(http.StatusTeapot, "") })

	counter := metrics.HTTPRequests.WithLabelValues("/things/:id", http.MethodGet, "418")
	before := testutil.ToFloat64(counter)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/things/1", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/things/2", nil))

	assert.InDelta(t, before+2, testutil.ToFloat64(counter), 0)
}
