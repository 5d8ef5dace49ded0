// Package invoice provides domain entities and business logic for invoice
// lifecycle management. It implements the Invoice aggregate root together
// with its value objects and the policy that gates sending.
//
// The package includes:
//   - Invoice: The aggregate root holding identity, customer, lines and status
//   - Status: A state machine enforcing the one-directional invoice lifecycle
//   - InvoiceLine, Customer, Email: validated value objects
//   - CanSendPolicy: the pure send-eligibility predicate
//
// Key business rules:
//   - Invoices are created in draft status; an empty line list is legal at creation
//   - An invoice can only be sent from draft, and only with at least one valid line
//   - An invoice can only be marked as sent-to-client from sending
//   - Transitions never regress: once sent-to-client, no operation moves back
//
// Every transition returns a new aggregate value instead of mutating the
// receiver, so handlers get a clear old-versus-new boundary and aggregates
// can cross goroutine boundaries without aliasing hazards.
package invoice
