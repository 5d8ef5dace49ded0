package invoice

import (
	"errors"

	"invoicing/internal/core/domain/model/kernel"
)

// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
// created through NewInvoice or RestoreInvoice. This ensures all invoices
// are properly validated.
var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice or RestoreInvoice constructor")

// Invoice is the aggregate root of the invoicing lifecycle.
//
// Invoice follows these invariants:
//   - Must have a valid unique identifier and a constructed customer
//   - Every line passed in was validated at construction
//   - Status transitions are monotonic: draft -> sending -> sent-to-client
//
// Transitions are copy-on-write: MarkAsSending and MarkAsSentToClient return
// a new, fully populated aggregate and never mutate the receiver. The caller
// keeps the old value; the new value is what gets persisted.
type Invoice struct {
	id       kernel.UUID
	customer Customer
	lines    []InvoiceLine
	status   Status

	isConstructed bool
}

// NewInvoice creates a new Invoice in draft status.
// An empty line list is legal at creation time; line validity was already
// guaranteed by NewInvoiceLine, so no further line validation happens here.
func NewInvoice(id kernel.UUID, customer Customer, lines []InvoiceLine) (*Invoice, error) {
	inv := &Invoice{
		status:        Draft,
		isConstructed: true,
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setCustomer(customer),
		inv.setLines(lines),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

// RestoreInvoice reconstructs an Invoice from persistence with an explicit
// status. Used only by repository implementations.
func RestoreInvoice(id kernel.UUID, customer Customer, lines []InvoiceLine, status Status) (*Invoice, error) {
	inv := &Invoice{
		isConstructed: true,
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setCustomer(customer),
		inv.setLines(lines),
		inv.setStatus(status),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

// Validate ensures the Invoice instance was properly constructed.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// IsEqual compares two invoices by their unique identifiers.
func (i *Invoice) IsEqual(other *Invoice) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the invoice's unique identifier.
func (i *Invoice) ID() kernel.UUID {
	return i.id
}

// Customer returns the invoice recipient.
func (i *Invoice) Customer() Customer {
	return i.customer
}

// Lines returns a copy of the invoice lines in order.
// The copy keeps callers from aliasing the aggregate's internal state.
func (i *Invoice) Lines() []InvoiceLine {
	lines := make([]InvoiceLine, len(i.lines))
	copy(lines, i.lines)
	return lines
}

// Status returns the current lifecycle status.
func (i *Invoice) Status() Status {
	return i.status
}

// TotalPrice returns the sum of quantity × unit price over all lines.
// Returns 0 for an invoice without lines. Pure, no failure mode.
func (i *Invoice) TotalPrice() int {
	total := 0
	for _, line := range i.lines {
		total += line.TotalPrice()
	}
	return total
}

// MarkAsSending transitions the invoice from draft to sending and returns
// the transitioned aggregate as a new value. The receiver is not modified.
//
// The transition is gated by CanSendPolicy. On rejection the two failure
// reasons are distinguished:
//   - not in draft: error names the actual current status
//   - in draft without valid lines: error reports the missing-lines rule
//
// Lines cannot be invalid post-construction, so the second branch is only
// reachable through an empty line list.
func (i *Invoice) MarkAsSending() (*Invoice, error) {
	if !NewCanSendPolicy().CanSend(i) {
		if i.status != Draft {
			return nil, NewCannotSendInvoiceFromStatusError(i.status)
		}
		return nil, NewCannotSendInvoiceWithoutValidLinesError()
	}

	return i.withStatus(Sending), nil
}

// MarkAsSentToClient transitions the invoice from sending to sent-to-client
// and returns the transitioned aggregate as a new value. The receiver is not
// modified. Fails for any status other than sending, naming the actual
// status; replayed delivery confirmations land here.
func (i *Invoice) MarkAsSentToClient() (*Invoice, error) {
	if i.status != Sending {
		return nil, NewCannotMarkAsDeliveredError(i.status)
	}

	return i.withStatus(SentToClient), nil
}

// withStatus returns a fully populated copy of the aggregate with the given
// status. The line slice is copied so the two values never alias.
func (i *Invoice) withStatus(status Status) *Invoice {
	lines := make([]InvoiceLine, len(i.lines))
	copy(lines, i.lines)

	return &Invoice{
		id:            i.id,
		customer:      i.customer,
		lines:         lines,
		status:        status,
		isConstructed: true,
	}
}

func (i *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Invoice) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	i.customer = customer
	return nil
}

func (i *Invoice) setLines(lines []InvoiceLine) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	i.lines = make([]InvoiceLine, len(lines))
	copy(i.lines, lines)
	return nil
}

func (i *Invoice) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	i.status = status
	return nil
}
