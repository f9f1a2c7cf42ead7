// Package lifecycle owns the status state machines for quotes and customers.
// Valid transitions live in explicit tables; anything not listed is rejected.
package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"github.com/bhekani17/Eargleevents2/internal/model"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnknownStatus     = errors.New("unknown status")
)

type QuoteStatus string

const (
	QuotePending  QuoteStatus = "pending"
	QuoteApproved QuoteStatus = "approved"
	QuoteRejected QuoteStatus = "rejected"
)

type CustomerStatus string

const (
	CustomerQuotation CustomerStatus = "quotation"
	CustomerConfirmed CustomerStatus = "confirmed"
	CustomerCancelled CustomerStatus = "cancelled"
)

// approved and rejected are terminal.
var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuotePending:  {QuoteApproved, QuoteRejected},
	QuoteApproved: {},
	QuoteRejected: {},
}

// cancelled is terminal; a confirmed customer can still be cancelled.
var customerTransitions = map[CustomerStatus][]CustomerStatus{
	CustomerQuotation: {CustomerConfirmed, CustomerCancelled},
	CustomerConfirmed: {CustomerCancelled},
	CustomerCancelled: {},
}

func ParseQuoteStatus(s string) (QuoteStatus, error) {
	switch QuoteStatus(s) {
	case QuotePending, QuoteApproved, QuoteRejected:
		return QuoteStatus(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

func ParseCustomerStatus(s string) (CustomerStatus, error) {
	switch CustomerStatus(s) {
	case CustomerQuotation, CustomerConfirmed, CustomerCancelled:
		return CustomerStatus(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// TransitionQuote applies target to q. Re-applying the current status is a
// no-op. A transition missing from the table fails with ErrInvalidTransition
// and leaves q untouched.
func TransitionQuote(q *model.Quote, target QuoteStatus, now time.Time) error {
	current, err := ParseQuoteStatus(q.Status)
	if err != nil {
		return err
	}
	if _, err := ParseQuoteStatus(string(target)); err != nil {
		return err
	}
	if current == target {
		return nil
	}
	if !contains(quoteTransitions[current], target) {
		return fmt.Errorf("%w: quote %s -> %s", ErrInvalidTransition, current, target)
	}
	q.Status = string(target)
	q.UpdatedAt = now
	return nil
}

// TransitionCustomer is the customer-side counterpart of TransitionQuote.
func TransitionCustomer(c *model.Customer, target CustomerStatus, now time.Time) error {
	current, err := ParseCustomerStatus(c.Status)
	if err != nil {
		return err
	}
	if _, err := ParseCustomerStatus(string(target)); err != nil {
		return err
	}
	if current == target {
		return nil
	}
	if !contains(customerTransitions[current], target) {
		return fmt.Errorf("%w: customer %s -> %s", ErrInvalidTransition, current, target)
	}
	c.Status = string(target)
	c.UpdatedAt = now
	return nil
}

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
