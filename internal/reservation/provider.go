package reservation

import "context"

type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type SearchRequest struct {
	City    string
	Cuisine string

	// Accepted for providers that filter by live availability; the
	// deterministic engine ignores both.
	DateTime  string
	PartySize int

	PriceTier int

	// DistanceKM applies only when Near is set.
	Near       *Point
	DistanceKM float64
}

type PlaceRequest struct {
	RestaurantID string
	DateTime     string
	PartySize    int

	Name  string
	Phone string
	Email string
	Notes string
}

// Provider is the single capability interface for reservation backends.
// The deterministic engine is one implementation; adapters for real
// booking platforms are others, bound by the same error taxonomy and
// idempotency contract.
type Provider interface {
	Name() string
	SearchRestaurants(ctx context.Context, req SearchRequest) ([]Restaurant, error)
	CheckAvailability(ctx context.Context, restaurantID, dateTime string, partySize int) ([]AvailabilitySlot, error)
	PlaceReservation(ctx context.Context, req PlaceRequest) (Reservation, error)
	CancelReservation(ctx context.Context, reservationID, reason string) (Reservation, error)
	ListReservations(ctx context.Context, userID string) ([]Reservation, error)
}
