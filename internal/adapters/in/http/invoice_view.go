package http

import (
	"invoicing/internal/core/application/usecases/queries"
	"invoicing/internal/core/domain/model/invoice"
)

// InvoiceView is the JSON representation of an invoice served by the API.
type InvoiceView struct {
	InvoiceID     string            `json:"invoice_id"`
	Status        string            `json:"status"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	ProductLines  []ProductLineView `json:"product_lines"`
	TotalPrice    int               `json:"total_price"`
}

// ProductLineView is one billed position within an InvoiceView.
type ProductLineView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPrice      int    `json:"unit_price"`
	TotalUnitPrice int    `json:"total_unit_price"`
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// invoiceViewFromDomain renders an aggregate returned by a command handler.
func invoiceViewFromDomain(inv *invoice.Invoice) InvoiceView {
	domainLines := inv.Lines()
	lines := make([]ProductLineView, 0, len(domainLines))
	for _, line := range domainLines {
		lines = append(lines, ProductLineView{
			ID:             line.ID().String(),
			Name:           line.Name(),
			Quantity:       line.Quantity(),
			UnitPrice:      line.UnitPrice(),
			TotalUnitPrice: line.TotalPrice(),
		})
	}

	return InvoiceView{
		InvoiceID:     inv.ID().String(),
		Status:        inv.Status().String(),
		CustomerName:  inv.Customer().Name(),
		CustomerEmail: inv.Customer().Email().String(),
		ProductLines:  lines,
		TotalPrice:    inv.TotalPrice(),
	}
}

// invoiceViewFromQuery renders a read model returned by a query handler.
func invoiceViewFromQuery(response queries.InvoiceResponse) InvoiceView {
	lines := make([]ProductLineView, 0, len(response.Lines))
	for _, line := range response.Lines {
		lines = append(lines, ProductLineView{
			ID:             line.ID.String(),
			Name:           line.Name,
			Quantity:       line.Quantity,
			UnitPrice:      line.UnitPrice,
			TotalUnitPrice: line.TotalPrice,
		})
	}

	return InvoiceView{
		InvoiceID:     response.ID.String(),
		Status:        response.Status,
		CustomerName:  response.CustomerName,
		CustomerEmail: response.CustomerEmail,
		ProductLines:  lines,
		TotalPrice:    response.TotalPrice,
	}
}
