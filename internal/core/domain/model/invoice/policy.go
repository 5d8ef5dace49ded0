package invoice

// CanSendPolicy is the send-eligibility rule, kept separate from the
// MarkAsSending transition so callers (e.g. a UI "can send" affordance) can
// evaluate eligibility without invoking the transition's failure path.
//
// The predicate must stay consistent with MarkAsSending's two failure
// reasons: a change to either must be mirrored in the other, or the failure
// messages drift from the actual rule.
type CanSendPolicy struct{}

// NewCanSendPolicy creates a CanSendPolicy instance.
func NewCanSendPolicy() CanSendPolicy {
	return CanSendPolicy{}
}

// CanSend reports whether the invoice is eligible for sending:
// draft status, at least one line, and every line with positive quantity
// and unit price. Pure, no side effects.
func (CanSendPolicy) CanSend(inv *Invoice) bool {
	if inv == nil || inv.status != Draft {
		return false
	}

	if len(inv.lines) == 0 {
		return false
	}

	for _, line := range inv.lines {
		if line.quantity <= 0 || line.unitPrice <= 0 {
			return false
		}
	}

	return true
}
