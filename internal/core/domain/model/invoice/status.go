package invoice

import (
	"fmt"

	"invoicing/internal/pkg/errs"
)

// Status represents the lifecycle state of an invoice.
// It implements a state machine with one-directional transitions:
//
//	Draft ──> Sending ──> SentToClient
//
// No transition ever regresses or skips a state. SentToClient is final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status of every invoice. Draft invoices can be
	// edited and are the only invoices eligible for sending.
	Draft

	// Sending indicates the invoice notification has been dispatched and
	// the delivery confirmation is still outstanding.
	Sending

	// SentToClient indicates the delivery of the invoice was confirmed.
	// This is a final state with no further transitions allowed.
	SentToClient
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "unknown",
		Draft:        "draft",
		Sending:      "sending",
		SentToClient: "sent-to-client",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:        "draft",
		Sending:      "sending",
		SentToClient: "sent-to-client",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Draft, Sending, SentToClient.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status: "draft", "sending" or
// "sent-to-client". Invalid values yield "unknown".
//
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones. The same representation is used
// in the HTTP view and in domain error messages.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire status name back into a Status.
// Returns an error for anything outside the closed valid set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}
