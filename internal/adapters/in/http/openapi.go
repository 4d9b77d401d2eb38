package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"orderwizard/internal/adapters/in/http/docs"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// LoadOpenAPI converts the registered swagger document to OpenAPI 3 and
// validates it.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	var doc2 openapi2.T
	if err := json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc2); err != nil {
		return nil, fmt.Errorf("openapi: decode swagger document: %w", err)
	}

	doc3, err := openapi2conv.ToV3(&doc2)
	if err != nil {
		return nil, fmt.Errorf("openapi: convert to v3: %w", err)
	}
	// Requests are matched on path only, whatever host serves them.
	doc3.Servers = nil

	if err = doc3.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("openapi: validate: %w", err)
	}

	return doc3, nil
}

// RequestValidator checks request parameters and bodies against the API
// document before the handler runs.
type RequestValidator struct {
	router routers.Router
}

// NewRequestValidator builds a validator over doc.
func NewRequestValidator(doc *openapi3.T) (*RequestValidator, error) {
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("openapi: build router: %w", err)
	}
	return &RequestValidator{router: router}, nil
}

// Middleware rejects requests that do not match their documented operation
// with 400. Requests for undocumented routes pass through.
func (v *RequestValidator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := v.router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					MultiError: true,
				},
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return c.JSON(http.StatusBadRequest, Error{
					Code:    http.StatusBadRequest,
					Message: "Invalid request: " + err.Error(),
				})
			}

			return next(c)
		}
	}
}
