package invoice

import (
	"errors"
	"fmt"
)

// Domain rule sentinels. Handlers classify transition failures with
// errors.Is against these to decide whether to propagate the error to the
// caller (Send) or absorb it as an idempotent no-op (MarkDelivered).
var (
	// ErrCannotSendInvoice is wrapped by every MarkAsSending rejection.
	ErrCannotSendInvoice = errors.New("cannot send invoice")

	// ErrCannotMarkAsDelivered is wrapped by every MarkAsSentToClient
	// rejection, including replays of an already-confirmed delivery.
	ErrCannotMarkAsDelivered = errors.New("cannot mark invoice as sent-to-client")
)

// NewCannotSendInvoiceFromStatusError reports a send attempt from a status
// other than draft, naming the actual current status.
func NewCannotSendInvoiceFromStatusError(current Status) error {
	return fmt.Errorf("%w: invoice must be in draft status, but is currently %s", ErrCannotSendInvoice, current)
}

// NewCannotSendInvoiceWithoutValidLinesError reports a send attempt on a
// draft invoice that has no lines, or lines failing the positive
// quantity/price check.
func NewCannotSendInvoiceWithoutValidLinesError() error {
	return fmt.Errorf(
		"%w: invoice must have at least one line with quantity and unit price greater than zero",
		ErrCannotSendInvoice,
	)
}

// NewCannotMarkAsDeliveredError reports a delivery confirmation for an
// invoice that is not in sending status, naming the actual current status.
func NewCannotMarkAsDeliveredError(current Status) error {
	return fmt.Errorf("%w: invoice must be in sending status, but is currently %s", ErrCannotMarkAsDelivered, current)
}
