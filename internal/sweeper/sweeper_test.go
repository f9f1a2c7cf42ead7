package sweeper

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCustomer struct {
	status    string
	createdAt time.Time
}

// fakeStore applies the same eligibility rule as the SQL delete: quotation
// status and created_at strictly before the cutoff.
type fakeStore struct {
	mu        sync.Mutex
	customers map[int]fakeCustomer
	cutoffs   []time.Time
	failWith  error
}

func (f *fakeStore) DeleteStaleQuotationCustomers(_ context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.cutoffs = append(f.cutoffs, cutoff)
	if f.failWith != nil {
		return 0, f.failWith
	}

	var deleted int64
	for id, c := range f.customers {
		if c.status == "quotation" && c.createdAt.Before(cutoff) {
			delete(f.customers, id)
			deleted++
		}
	}
	return deleted, nil
}

func (f *fakeStore) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cutoffs)
}

func (f *fakeStore) has(id int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.customers[id]
	return ok
}

func newSweeper(store Store, cfg Config) *Sweeper {
	log := zerolog.Nop()
	return New(store, &log, cfg)
}

func TestRunOnceDeletesOnlyExpiredQuotationCustomers(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	store := &fakeStore{customers: map[int]fakeCustomer{
		1: {status: "quotation", createdAt: now.Add(-31 * 24 * time.Hour)},
		2: {status: "quotation", createdAt: now.Add(-29 * 24 * time.Hour)},
		3: {status: "confirmed", createdAt: now.Add(-90 * 24 * time.Hour)},
	}}

	s := newSweeper(store, Config{Retention: 30 * 24 * time.Hour})
	s.now = func() time.Time { return now }

	s.runOnce(context.Background())

	assert.False(t, store.has(1), "31-day-old quotation customer must be deleted")
	assert.True(t, store.has(2), "29-day-old quotation customer must be retained")
	assert.True(t, store.has(3), "confirmed customers are never swept")

	require.Equal(t, 1, store.calls())
	assert.Equal(t, now.Add(-30*24*time.Hour), store.cutoffs[0])
}

func TestRunOnceBoundaryJustPastRetention(t *testing.T) {
	created := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	store := &fakeStore{customers: map[int]fakeCustomer{
		1: {status: "quotation", createdAt: created},
	}}

	s := newSweeper(store, Config{Retention: 30 * 24 * time.Hour})

	// One millisecond past the retention window: eligible.
	s.now = func() time.Time { return created.Add(30*24*time.Hour + time.Millisecond) }
	s.runOnce(context.Background())
	assert.False(t, store.has(1))
}

func TestRunOnceNoEligibleCustomers(t *testing.T) {
	store := &fakeStore{customers: map[int]fakeCustomer{}}
	s := newSweeper(store, Config{})

	s.runOnce(context.Background())

	assert.Equal(t, 1, store.calls())
}

func TestRunOnceStoreFailureIsNotFatal(t *testing.T) {
	store := &fakeStore{failWith: errors.New("store unavailable")}
	s := newSweeper(store, Config{})

	s.runOnce(context.Background())
	s.runOnce(context.Background())

	assert.Equal(t, 2, store.calls(), "a failed sweep is retried on the next run")
}

func TestStartRunsAfterInitialDelayThenOnInterval(t *testing.T) {
	store := &fakeStore{customers: map[int]fakeCustomer{}}
	s := newSweeper(store, Config{
		InitialDelay: 5 * time.Millisecond,
		Interval:     10 * time.Millisecond,
		Retention:    30 * 24 * time.Hour,
	})

	s.Start(context.Background())
	defer s.Stop()

	require.Eventually(t, func() bool { return store.calls() >= 2 },
		time.Second, time.Millisecond)
}

func TestStopBeforeInitialDelay(t *testing.T) {
	store := &fakeStore{customers: map[int]fakeCustomer{}}
	s := newSweeper(store, Config{InitialDelay: time.Hour, Interval: time.Hour})

	s.Start(context.Background())
	s.Stop()

	assert.Equal(t, 0, store.calls())
}
