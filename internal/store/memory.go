// Package store provides reservation.Store implementations. Memory is
// the process-lifetime reference store; Postgres backs the same
// contract with durable storage.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/tablebook/internal/reservation"
)

// Memory keeps reservations in two maps kept consistent under one
// coarse mutex: id -> record, and guest identifier (email, phone) ->
// ids in creation order. The lock covers the whole duplicate-check-then
// -insert sequence, so a create race on the same duplicate key admits
// exactly one record.
type Memory struct {
	mu      sync.Mutex
	byID    map[string]reservation.Reservation
	byGuest map[string][]string
	confSeq int
}

var _ reservation.Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		byID:    make(map[string]reservation.Reservation),
		byGuest: make(map[string][]string),
		confSeq: 1000,
	}
}

func (m *Memory) Create(ctx context.Context, candidate reservation.Reservation) (reservation.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.findLiveDuplicate(candidate); ok {
		return existing, nil
	}

	candidate.ID = "res_" + uuid.NewString()
	candidate.ConfirmationCode = fmt.Sprintf("RES%06d", m.confSeq)
	m.confSeq++
	candidate.Status = reservation.StatusConfirmed
	candidate.CreatedAt = time.Now().UTC()
	candidate.CancelledAt = nil
	candidate.CancelReason = ""

	m.byID[candidate.ID] = candidate
	m.index(candidate.GuestEmail, candidate.ID)
	m.index(candidate.GuestPhone, candidate.ID)
	return candidate, nil
}

func (m *Memory) Cancel(ctx context.Context, id, reason string) (reservation.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.byID[id]
	if !ok {
		return reservation.Reservation{}, fmt.Errorf("%w: reservation %q", reservation.ErrNotFound, id)
	}
	if r.Cancelled() {
		// Terminal state: repeat cancels are no-ops.
		return r, nil
	}

	now := time.Now().UTC()
	r.Status = reservation.StatusCancelled
	r.CancelledAt = &now
	r.CancelReason = reason
	m.byID[id] = r
	return r, nil
}

func (m *Memory) ListByGuest(ctx context.Context, identifier string) ([]reservation.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := m.byGuest[identifier]
	out := make([]reservation.Reservation, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	// Index slices are appended under the create lock, so iteration
	// order is created_at ascending.
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if r, ok := m.byID[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

// findLiveDuplicate applies the duplicate-key rule: a non-cancelled
// reservation matching (restaurant_id, date_time, party_size, email).
func (m *Memory) findLiveDuplicate(candidate reservation.Reservation) (reservation.Reservation, bool) {
	for _, r := range m.byID {
		if r.Cancelled() {
			continue
		}
		if r.RestaurantID == candidate.RestaurantID &&
			r.DateTime.Equal(candidate.DateTime) &&
			r.PartySize == candidate.PartySize &&
			r.GuestEmail == candidate.GuestEmail {
			return r, true
		}
	}
	return reservation.Reservation{}, false
}

func (m *Memory) index(identifier, id string) {
	if identifier == "" {
		return
	}
	m.byGuest[identifier] = append(m.byGuest[identifier], id)
}
