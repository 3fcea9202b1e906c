package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"mailroom/internal/generated/servers"
	"mailroom/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// OpenAPIValidator rejects requests that do not match doc with 400.
// basePath is the prefix the group is mounted under; doc paths are matched
// without it.
func OpenAPIValidator(doc *openapi3.T, basePath string) (echo.MiddlewareFunc, error) {
	routed := *doc
	routed.Servers = nil
	router, err := legacy.NewRouter(&routed)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{AuthenticationFunc: openapi3filter.NoopAuthenticationFunc}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			var body []byte
			if req.Body != nil {
				var readErr error
				if body, readErr = io.ReadAll(req.Body); readErr != nil {
					var httpErr *echo.HTTPError
					if errors.As(readErr, &httpErr) {
						return httpErr
					}
					return badRequest(ctx, "Unreadable request body")
				}
				req.Body = io.NopCloser(bytes.NewReader(body))
			}

			routed := req.Clone(req.Context())
			routed.URL.Path = strings.TrimPrefix(routed.URL.Path, basePath)
			routed.URL.RawPath = ""
			routed.Body = io.NopCloser(bytes.NewReader(body))

			route, params, findErr := router.FindRoute(routed)
			if findErr != nil {
				if errors.Is(findErr, routers.ErrMethodNotAllowed) {
					return ctx.JSON(http.StatusMethodNotAllowed,
						servers.Error{Code: http.StatusMethodNotAllowed, Message: "Method not allowed"})
				}
				return ctx.JSON(http.StatusNotFound, servers.Error{Code: http.StatusNotFound, Message: "Not found"})
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    routed,
				PathParams: params,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return badRequest(ctx, validationMessage(err))
			}
			return next(ctx)
		}
	}, nil
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Parameter != nil {
			return "Invalid parameter " + reqErr.Parameter.Name
		}
		if reqErr.RequestBody != nil {
			return "Invalid request body"
		}
	}
	return "Invalid request"
}

// Metrics records request counts and latency per registered route.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			code := ctx.Response().Status
			if err != nil {
				var httpErr *echo.HTTPError
				if errors.As(err, &httpErr) {
					code = httpErr.Code
				} else {
					code = http.StatusInternalServerError
				}
			}

			route := ctx.Path()
			if route == "" {
				route = "unmatched"
			}
			method := ctx.Request().Method
			metrics.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
			metrics.HTTPDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
