package http

import (
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"

	"orderwizard/internal/core/application/usecases/commands"
	"orderwizard/internal/core/application/usecases/queries"
	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	StartWizard   commands.StartWizardCommandHandler
	SetField      commands.SetFieldCommandHandler
	AdvanceStep   commands.AdvanceStepCommandHandler
	RetreatStep   commands.RetreatStepCommandHandler
	SubmitWizard  commands.SubmitWizardCommandHandler
	CreateOrder   commands.CreateOrderCommandHandler
	GetWizard     queries.GetWizardQueryHandler
	ExportWizard  queries.ExportWizardQueryHandler
	ReceivedOrder queries.GetReceivedOrdersQueryHandler
	GetOrder      queries.GetOrderQueryHandler
}

// Server adapts HTTP requests to wizard commands and queries.
type Server struct {
	handlers      Handlers
	defaultLocale language.Tag
	logger        *slog.Logger
}

// NewServer creates a server. defaultLocale is used when a request names no
// supported language.
func NewServer(handlers Handlers, defaultLocale language.Tag, logger *slog.Logger) *Server {
	return &Server{
		handlers:      handlers,
		defaultLocale: defaultLocale,
		logger:        logger.With("component", "http"),
	}
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// ListRegions handles GET /api/regions.
func (s *Server) ListRegions(c echo.Context) error {
	return c.JSON(http.StatusOK, kernel.RegionOptions())
}

// StartWizard handles POST /api/wizards.
func (s *Server) StartWizard(c echo.Context) error {
	id, err := s.handlers.StartWizard.Handle(c.Request().Context(), commands.NewStartWizardCommand())
	if err != nil {
		return s.fail(c, err, "Failed to start wizard")
	}

	return s.respondWizard(c, http.StatusCreated, id)
}

// GetWizard handles GET /api/wizards/{id}.
func (s *Server) GetWizard(c echo.Context) error {
	id, err := wizardID(c)
	if err != nil {
		return s.fail(c, err, "")
	}

	return s.respondWizard(c, http.StatusOK, id)
}

// SetField handles PUT /api/wizards/{id}/fields/{field}.
func (s *Server) SetField(c echo.Context) error {
	id, err := wizardID(c)
	if err != nil {
		return s.fail(c, err, "")
	}

	var body FieldValue
	if err = c.Bind(&body); err != nil || body.Value == nil {
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSetFieldCommand(id, c.Param("field"), *body.Value)
	if err != nil {
		return s.fail(c, err, "")
	}

	if err = s.handlers.SetField.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err, "Failed to update field")
	}

	return s.respondWizard(c, http.StatusOK, id)
}

// AdvanceStep handles POST /api/wizards/{id}/advance. A step that fails
// validation is not an HTTP error; the violations are part of the body.
// The pickup step answers 409: it is left through submit.
func (s *Server) AdvanceStep(c echo.Context) error {
	id, err := wizardID(c)
	if err != nil {
		return s.fail(c, err, "")
	}

	cmd, err := commands.NewAdvanceStepCommand(id)
	if err != nil {
		return s.fail(c, err, "")
	}

	if _, err = s.handlers.AdvanceStep.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err, "Failed to advance wizard")
	}

	return s.respondWizard(c, http.StatusOK, id)
}

// RetreatStep handles POST /api/wizards/{id}/retreat.
func (s *Server) RetreatStep(c echo.Context) error {
	id, err := wizardID(c)
	if err != nil {
		return s.fail(c, err, "")
	}

	cmd, err := commands.NewRetreatStepCommand(id)
	if err != nil {
		return s.fail(c, err, "")
	}

	if _, err = s.handlers.RetreatStep.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err, "Failed to move wizard back")
	}

	return s.respondWizard(c, http.StatusOK, id)
}

// SubmitWizard handles POST /api/wizards/{id}/submit. The response does not
// wait for, or report on, the order-creation call.
func (s *Server) SubmitWizard(c echo.Context) error {
	id, err := wizardID(c)
	if err != nil {
		return s.fail(c, err, "")
	}

	cmd, err := commands.NewSubmitWizardCommand(id)
	if err != nil {
		return s.fail(c, err, "")
	}

	if _, err = s.handlers.SubmitWizard.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err, "Failed to submit wizard")
	}

	return s.respondWizard(c, http.StatusOK, id)
}

// ExportWizard handles GET /api/wizards/{id}/export.
func (s *Server) ExportWizard(c echo.Context) error {
	id, err := wizardID(c)
	if err != nil {
		return s.fail(c, err, "")
	}

	query, err := queries.NewExportWizardQuery(id)
	if err != nil {
		return s.fail(c, err, "")
	}

	doc, err := s.handlers.ExportWizard.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, "Failed to export wizard")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName}))
	return c.Blob(http.StatusOK, doc.ContentType, doc.Content)
}

// CreateOrder handles POST /api/create-order, the endpoint submitted
// wizards are sent to. The form is stored as received.
func (s *Server) CreateOrder(c echo.Context) error {
	var state form.State
	if err := json.NewDecoder(c.Request().Body).Decode(&state); err != nil {
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, state)
	if err != nil {
		return s.fail(c, err, "")
	}

	if err = s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err, "Failed to create order")
	}

	s.logger.InfoContext(c.Request().Context(), "Order received", "order_id", orderID.String())
	return c.JSON(http.StatusCreated, CreatedOrder{ID: orderID.String()})
}

// ListOrders handles GET /api/orders.
func (s *Server) ListOrders(c echo.Context) error {
	orders, err := s.handlers.ReceivedOrder.Handle(c.Request().Context(), queries.NewGetReceivedOrdersQuery())
	if err != nil {
		return s.fail(c, err, "Failed to retrieve orders")
	}

	response := make([]ReceivedOrder, len(orders))
	for i, o := range orders {
		response[i] = ReceivedOrder{
			ID:         o.ID.String(),
			ReceivedAt: o.ReceivedAt,
			Form:       o.Form,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/{id}.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := orderID(c)
	if err != nil {
		return s.fail(c, err, "")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(c, err, "")
	}

	o, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, "Failed to retrieve order")
	}

	return c.JSON(http.StatusOK, ReceivedOrder{
		ID:         o.ID.String(),
		ReceivedAt: o.ReceivedAt,
		Form:       o.Form,
	})
}

func (s *Server) respondWizard(c echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetWizardQuery(id, s.locale(c))
	if err != nil {
		return s.fail(c, err, "")
	}

	view, err := s.handlers.GetWizard.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, "Failed to read wizard")
	}

	return c.JSON(status, toWizard(view))
}
