package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhekani17/Eargleevents2/internal/model"
)

func TestTransitionQuotePendingToApproved(t *testing.T) {
	now := time.Now()
	q := &model.Quote{Status: string(QuotePending)}

	err := TransitionQuote(q, QuoteApproved, now)
	require.NoError(t, err)
	assert.Equal(t, string(QuoteApproved), q.Status)
	assert.Equal(t, now, q.UpdatedAt)
}

func TestTransitionQuoteTerminalStatesAreFinal(t *testing.T) {
	now := time.Now()

	for _, terminal := range []QuoteStatus{QuoteApproved, QuoteRejected} {
		for _, target := range []QuoteStatus{QuotePending, QuoteApproved, QuoteRejected} {
			if target == terminal {
				continue
			}
			q := &model.Quote{Status: string(terminal), UpdatedAt: now}
			err := TransitionQuote(q, target, now.Add(time.Hour))
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", terminal, target)
			assert.Equal(t, string(terminal), q.Status, "status must not change on rejection")
			assert.Equal(t, now, q.UpdatedAt, "timestamp must not change on rejection")
		}
	}
}

func TestTransitionQuoteApproveThenReject(t *testing.T) {
	now := time.Now()
	q := &model.Quote{Status: string(QuotePending)}

	require.NoError(t, TransitionQuote(q, QuoteApproved, now))
	assert.Equal(t, string(QuoteApproved), q.Status)

	err := TransitionQuote(q, QuoteRejected, now.Add(time.Minute))
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, string(QuoteApproved), q.Status)
}

func TestTransitionQuoteSameStatusIsNoop(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	for _, status := range []QuoteStatus{QuotePending, QuoteApproved, QuoteRejected} {
		q := &model.Quote{Status: string(status), UpdatedAt: created}
		err := TransitionQuote(q, status, time.Now())
		assert.NoError(t, err)
		assert.Equal(t, string(status), q.Status)
		assert.Equal(t, created, q.UpdatedAt, "no-op must not touch updated_at")
	}
}

func TestTransitionQuoteUnknownStatus(t *testing.T) {
	q := &model.Quote{Status: string(QuotePending)}
	err := TransitionQuote(q, QuoteStatus("completed"), time.Now())
	assert.ErrorIs(t, err, ErrUnknownStatus)
	assert.Equal(t, string(QuotePending), q.Status)

	q = &model.Quote{Status: "draft"}
	err = TransitionQuote(q, QuoteApproved, time.Now())
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestTransitionCustomerQuotationToConfirmed(t *testing.T) {
	now := time.Now()
	c := &model.Customer{Status: string(CustomerQuotation)}

	require.NoError(t, TransitionCustomer(c, CustomerConfirmed, now))
	assert.Equal(t, string(CustomerConfirmed), c.Status)
	assert.Equal(t, now, c.UpdatedAt)
}

func TestTransitionCustomerConfirmedCanCancel(t *testing.T) {
	c := &model.Customer{Status: string(CustomerConfirmed)}
	require.NoError(t, TransitionCustomer(c, CustomerCancelled, time.Now()))
	assert.Equal(t, string(CustomerCancelled), c.Status)
}

func TestTransitionCustomerCancelledIsTerminal(t *testing.T) {
	for _, target := range []CustomerStatus{CustomerQuotation, CustomerConfirmed} {
		c := &model.Customer{Status: string(CustomerCancelled)}
		err := TransitionCustomer(c, target, time.Now())
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, string(CustomerCancelled), c.Status)
	}
}

func TestTransitionCustomerSameStatusIsNoop(t *testing.T) {
	c := &model.Customer{Status: string(CustomerQuotation)}
	assert.NoError(t, TransitionCustomer(c, CustomerQuotation, time.Now()))
}

func TestParseStatuses(t *testing.T) {
	_, err := ParseQuoteStatus("approved")
	assert.NoError(t, err)
	_, err = ParseQuoteStatus("cancelled")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	_, err = ParseCustomerStatus("quotation")
	assert.NoError(t, err)
	_, err = ParseCustomerStatus("pending")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}
