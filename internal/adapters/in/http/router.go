package http

import (
	"context"
	"log/slog"

	_ "orderwizard/internal/adapters/in/http/docs" // swagger document registration

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter wires the server routes into a new echo instance. Every /api
// request is checked against the API document first.
func NewRouter(ctx context.Context, s *Server, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}

	validator, err := NewRequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "Request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.DebugContext(c.Request().Context(), "Request served", attrs...)
			return nil
		},
	}))

	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", validator.Middleware())
	api.GET("/regions", s.ListRegions)
	api.POST("/wizards", s.StartWizard)
	api.GET("/wizards/:id", s.GetWizard)
	api.PUT("/wizards/:id/fields/:field", s.SetField)
	api.POST("/wizards/:id/advance", s.AdvanceStep)
	api.POST("/wizards/:id/retreat", s.RetreatStep)
	api.POST("/wizards/:id/submit", s.SubmitWizard)
	api.GET("/wizards/:id/export", s.ExportWizard)
	api.POST("/create-order", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)

	return e, nil
}
