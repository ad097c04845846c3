package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/tablebook/internal/reservation"
)

func candidate() reservation.Reservation {
	return reservation.Reservation{
		RestaurantID:   "rest_001",
		RestaurantName: "Trattoria di Mare",
		DateTime:       time.Date(2025, 12, 25, 19, 0, 0, 0, time.UTC),
		PartySize:      4,
		GuestName:      "Jane Doe",
		GuestPhone:     "(555) 010-0001",
		GuestEmail:     "jane@example.com",
	}
}

func TestCreateAssignsIdentityAndState(t *testing.T) {
	m := NewMemory()

	r, err := m.Create(context.Background(), candidate())
	require.NoError(t, err)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "RES001000", r.ConfirmationCode)
	assert.Equal(t, reservation.StatusConfirmed, r.Status)
	assert.False(t, r.CreatedAt.IsZero())
	assert.Nil(t, r.CancelledAt)
}

func TestCreateIdempotentOnDuplicateKey(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	first, err := m.Create(ctx, candidate())
	require.NoError(t, err)
	second, err := m.Create(ctx, candidate())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.ConfirmationCode, second.ConfirmationCode)

	all, err := m.ListByGuest(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateDifferentKeyIsNewRecord(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	first, err := m.Create(ctx, candidate())
	require.NoError(t, err)

	other := candidate()
	other.PartySize = 2
	second, err := m.Create(ctx, other)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "RES001001", second.ConfirmationCode)
}

func TestCreateAfterCancelRebooksSameKey(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	first, err := m.Create(ctx, candidate())
	require.NoError(t, err)
	_, err = m.Cancel(ctx, first.ID, "plans changed")
	require.NoError(t, err)

	// The cancelled record is terminal, so the key is free again.
	second, err := m.Create(ctx, candidate())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, reservation.StatusConfirmed, second.Status)
}

func TestCreateConcurrentDuplicatesAdmitOneRecord(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	const callers = 32
	results := make([]reservation.Reservation, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = m.Create(ctx, candidate())
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	for _, r := range results {
		assert.Equal(t, results[0].ID, r.ID)
		assert.Equal(t, results[0].ConfirmationCode, r.ConfirmationCode)
	}

	all, err := m.ListByGuest(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCancelUnknownID(t *testing.T) {
	m := NewMemory()

	_, err := m.Cancel(context.Background(), "res_missing", "whatever")
	require.Error(t, err)
	assert.ErrorIs(t, err, reservation.ErrNotFound)
	assert.Contains(t, err.Error(), "res_missing")
}

func TestCancelIdempotent(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	created, err := m.Create(ctx, candidate())
	require.NoError(t, err)

	first, err := m.Cancel(ctx, created.ID, "plans changed")
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusCancelled, first.Status)
	require.NotNil(t, first.CancelledAt)
	assert.Equal(t, "plans changed", first.CancelReason)

	second, err := m.Cancel(ctx, created.ID, "a different reason")
	require.NoError(t, err)
	require.NotNil(t, second.CancelledAt)
	assert.True(t, first.CancelledAt.Equal(*second.CancelledAt), "repeat cancel must not restamp cancelled_at")
	assert.Equal(t, "plans changed", second.CancelReason, "repeat cancel must not overwrite the reason")
}

func TestListByGuestOrderAndIdentifiers(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	first, err := m.Create(ctx, candidate())
	require.NoError(t, err)

	later := candidate()
	later.DateTime = later.DateTime.Add(24 * time.Hour)
	second, err := m.Create(ctx, later)
	require.NoError(t, err)

	byEmail, err := m.ListByGuest(ctx, "jane@example.com")
	require.NoError(t, err)
	require.Len(t, byEmail, 2)
	assert.Equal(t, first.ID, byEmail[0].ID)
	assert.Equal(t, second.ID, byEmail[1].ID)

	byPhone, err := m.ListByGuest(ctx, "(555) 010-0001")
	require.NoError(t, err)
	assert.Equal(t, byEmail, byPhone)
}

func TestListByGuestIncludesCancelled(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	created, err := m.Create(ctx, candidate())
	require.NoError(t, err)
	_, err = m.Cancel(ctx, created.ID, "plans changed")
	require.NoError(t, err)

	all, err := m.ListByGuest(ctx, "jane@example.com")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, reservation.StatusCancelled, all[0].Status)
}

func TestListByGuestEmpty(t *testing.T) {
	m := NewMemory()

	all, err := m.ListByGuest(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}
