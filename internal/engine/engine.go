// Package engine is the deterministic reservation backend: the seeded
// catalog, the pure availability generator and a reservation store
// composed behind the reservation.Provider interface. It performs all
// input validation before delegating, so the three error kinds of the
// contract originate here.
package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/tablebook/internal/availability"
	"github.com/example/tablebook/internal/catalog"
	"github.com/example/tablebook/internal/reservation"
)

type Engine struct {
	catalog *catalog.Catalog
	store   reservation.Store
}

var _ reservation.Provider = (*Engine)(nil)

func New(c *catalog.Catalog, s reservation.Store) *Engine {
	return &Engine{catalog: c, store: s}
}

func (e *Engine) Name() string { return "deterministic" }

// SearchRestaurants filters the catalog. date_time and party_size are
// accepted for providers that filter by live availability and ignored
// here; distance_km applies only when req.Near is set.
func (e *Engine) SearchRestaurants(ctx context.Context, req reservation.SearchRequest) ([]reservation.Restaurant, error) {
	if req.PriceTier < 0 || req.PriceTier > 4 {
		return nil, fmt.Errorf("%w: price_tier must be 1-4, got %d", reservation.ErrInvalidArgument, req.PriceTier)
	}
	if req.PartySize < 0 {
		return nil, fmt.Errorf("%w: party_size must not be negative, got %d", reservation.ErrInvalidArgument, req.PartySize)
	}
	if req.DistanceKM < 0 {
		return nil, fmt.Errorf("%w: distance_km must not be negative, got %v", reservation.ErrInvalidArgument, req.DistanceKM)
	}
	return e.catalog.List(catalog.Filter{
		City:       req.City,
		Cuisine:    req.Cuisine,
		PriceTier:  req.PriceTier,
		Near:       req.Near,
		DistanceKM: req.DistanceKM,
	}), nil
}

func (e *Engine) CheckAvailability(ctx context.Context, restaurantID, dateTime string, partySize int) ([]reservation.AvailabilitySlot, error) {
	if _, err := e.catalog.Get(restaurantID); err != nil {
		return nil, err
	}
	return availability.Generate(restaurantID, dateTime, partySize)
}

func (e *Engine) PlaceReservation(ctx context.Context, req reservation.PlaceRequest) (reservation.Reservation, error) {
	r, err := e.catalog.Get(req.RestaurantID)
	if err != nil {
		return reservation.Reservation{}, err
	}
	if req.PartySize <= 0 {
		return reservation.Reservation{}, fmt.Errorf("%w: party_size must be positive, got %d", reservation.ErrInvalidArgument, req.PartySize)
	}
	for _, f := range []struct{ name, value string }{
		{"name", req.Name},
		{"phone", req.Phone},
		{"email", req.Email},
	} {
		if strings.TrimSpace(f.value) == "" {
			return reservation.Reservation{}, fmt.Errorf("%w: %s is required", reservation.ErrInvalidArgument, f.name)
		}
	}
	at, err := reservation.ParseDateTime(req.DateTime)
	if err != nil {
		return reservation.Reservation{}, err
	}

	return e.store.Create(ctx, reservation.Reservation{
		RestaurantID:   r.ID,
		RestaurantName: r.Name,
		DateTime:       at,
		PartySize:      req.PartySize,
		GuestName:      req.Name,
		GuestPhone:     req.Phone,
		GuestEmail:     req.Email,
		Notes:          req.Notes,
	})
}

func (e *Engine) CancelReservation(ctx context.Context, reservationID, reason string) (reservation.Reservation, error) {
	return e.store.Cancel(ctx, reservationID, reason)
}

func (e *Engine) ListReservations(ctx context.Context, userID string) ([]reservation.Reservation, error) {
	return e.store.ListByGuest(ctx, userID)
}
