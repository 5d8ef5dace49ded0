// Package http is the inbound HTTP adapter: a thin echo layer translating
// requests into commands and queries and domain results into JSON views.
package http

import (
	"errors"
	"net/http"

	"invoicing/internal/core/application/usecases/commands"
	"invoicing/internal/core/application/usecases/listeners"
	"invoicing/internal/core/application/usecases/queries"
	"invoicing/internal/core/domain/model/invoice"
	"invoicing/internal/core/domain/model/kernel"
	"invoicing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createInvoiceHandler commands.CreateInvoiceCommandHandler
	sendInvoiceHandler   commands.SendInvoiceCommandHandler

	// Query handlers
	getInvoiceHandler     queries.GetInvoiceQueryHandler
	getAllInvoicesHandler queries.GetAllInvoicesQueryHandler

	// Inbound delivery-confirmation seam
	deliveredListener listeners.MarkInvoiceDeliveredListener
}

// NewServer creates an HTTP server with the required handlers.
func NewServer(
	createInvoiceHandler commands.CreateInvoiceCommandHandler,
	sendInvoiceHandler commands.SendInvoiceCommandHandler,
	getInvoiceHandler queries.GetInvoiceQueryHandler,
	getAllInvoicesHandler queries.GetAllInvoicesQueryHandler,
	deliveredListener listeners.MarkInvoiceDeliveredListener,
) *Server {
	return &Server{
		createInvoiceHandler:  createInvoiceHandler,
		sendInvoiceHandler:    sendInvoiceHandler,
		getInvoiceHandler:     getInvoiceHandler,
		getAllInvoicesHandler: getAllInvoicesHandler,
		deliveredListener:     deliveredListener,
	}
}

// RegisterRoutes binds all invoice routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/invoices", s.CreateInvoice)
	e.GET("/invoices", s.GetInvoices)
	e.GET("/invoices/:id", s.GetInvoice)
	e.POST("/invoices/:id/send", s.SendInvoice)
	e.POST("/deliveries/:id/confirm", s.ConfirmDelivery)
	e.GET("/health", s.Health)
}

// NewInvoiceRequest is the POST /invoices body.
type NewInvoiceRequest struct {
	CustomerName  string               `json:"customer_name"`
	CustomerEmail string               `json:"customer_email"`
	ProductLines  []NewInvoiceLineItem `json:"product_lines"`
}

// NewInvoiceLineItem is one requested billed position.
type NewInvoiceLineItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
}

// CreateInvoice handles POST /invoices - creates a new draft invoice.
func (s *Server) CreateInvoice(ctx echo.Context) error {
	var request NewInvoiceRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	email, err := invoice.NewEmail(request.CustomerEmail)
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}

	customer, err := invoice.NewCustomer(request.CustomerName, email)
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}

	lines := make([]invoice.InvoiceLine, 0, len(request.ProductLines))
	for _, item := range request.ProductLines {
		line, lineErr := invoice.NewInvoiceLine(kernel.NewUUID(), item.Name, item.Quantity, item.UnitPrice)
		if lineErr != nil {
			return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: lineErr.Error()})
		}
		lines = append(lines, line)
	}

	cmd, err := commands.NewCreateInvoiceCommand(kernel.NewUUID(), customer, lines)
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}

	created, err := s.createInvoiceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create invoice"})
	}

	return ctx.JSON(http.StatusCreated, invoiceViewFromDomain(created))
}

// GetInvoices handles GET /invoices - retrieves all invoices.
func (s *Server) GetInvoices(ctx echo.Context) error {
	query := queries.NewGetAllInvoicesQuery()

	invoices, err := s.getAllInvoicesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve invoices"})
	}

	response := make([]InvoiceView, 0, len(invoices))
	for _, inv := range invoices {
		response = append(response, invoiceViewFromQuery(inv))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetInvoice handles GET /invoices/:id - retrieves one invoice view.
func (s *Server) GetInvoice(ctx echo.Context) error {
	invoiceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
	}

	query, err := queries.NewGetInvoiceQuery(invoiceID)
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
	}

	response, err := s.getInvoiceHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
	}
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve invoice"})
	}

	return ctx.JSON(http.StatusOK, invoiceViewFromQuery(response))
}

// SendInvoice handles POST /invoices/:id/send - sends the invoice to its
// customer. Domain rejections map to 422, a missing id to 404.
func (s *Server) SendInvoice(ctx echo.Context) error {
	invoiceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
	}

	cmd, err := commands.NewSendInvoiceCommand(invoiceID)
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
	}

	sent, err := s.sendInvoiceHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
	case errors.Is(err, invoice.ErrCannotSendInvoice):
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case err != nil:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to send invoice"})
	}

	return ctx.JSON(http.StatusOK, invoiceViewFromDomain(sent))
}

// ConfirmDelivery handles POST /deliveries/:id/confirm - the inbound
// delivery-confirmation signal. Replays and confirmations for unknown or
// non-transitionable resources are absorbed; the caller always gets success
// unless the id is malformed or the infrastructure fails.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	resourceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid resource id"})
	}

	event := listeners.ResourceDeliveredEvent{ResourceID: resourceID}
	if err = s.deliveredListener.Handle(ctx.Request().Context(), event); err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to process delivery confirmation"})
	}

	return ctx.NoContent(http.StatusOK)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
