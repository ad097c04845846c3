package reservation

import "context"

// Store owns the reservation lifecycle. Create is idempotent on the
// duplicate key (restaurant_id, date_time, party_size, guest email) over
// live reservations; Cancel is a terminal, idempotent transition.
type Store interface {
	// Create returns the existing reservation unchanged when the
	// candidate matches a live one on the duplicate key; otherwise it
	// assigns id, confirmation code, created_at and stores the record
	// as confirmed.
	Create(ctx context.Context, candidate Reservation) (Reservation, error)

	// Cancel transitions a reservation to cancelled. Unknown ids fail
	// with ErrNotFound; repeat cancels return the stored record without
	// touching cancelled_at or the reason.
	Cancel(ctx context.Context, id, reason string) (Reservation, error)

	// ListByGuest matches the identifier against guest email and phone,
	// ordered by created_at ascending. Empty results are not an error.
	ListByGuest(ctx context.Context, identifier string) ([]Reservation, error)
}
