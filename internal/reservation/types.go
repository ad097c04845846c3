package reservation

import (
	"fmt"
	"time"
)

type Location struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
	Country    string  `json:"country"`
}

type Restaurant struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Cuisine     string   `json:"cuisine"`
	PriceTier   int      `json:"price_tier"` // 1=$ .. 4=$$$$
	Rating      float64  `json:"rating"`
	Phone       string   `json:"phone"`
	Description string   `json:"description,omitempty"`
	Location    Location `json:"location"`
}

// AvailabilitySlot is computed per request, never persisted.
type AvailabilitySlot struct {
	RestaurantID string    `json:"restaurant_id"`
	Time         time.Time `json:"time"`
	MaxPartySize int       `json:"max_party_size"`
	Available    bool      `json:"available"`
}

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

type Reservation struct {
	ID               string     `json:"id"`
	RestaurantID     string     `json:"restaurant_id"`
	RestaurantName   string     `json:"restaurant_name"`
	DateTime         time.Time  `json:"date_time"`
	PartySize        int        `json:"party_size"`
	GuestName        string     `json:"guest_name"`
	GuestPhone       string     `json:"guest_phone"`
	GuestEmail       string     `json:"guest_email"`
	Notes            string     `json:"notes,omitempty"`
	ConfirmationCode string     `json:"confirmation_code"`
	Status           Status     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`
	CancelReason     string     `json:"cancellation_reason,omitempty"`
}

func (r Reservation) Cancelled() bool { return r.Status == StatusCancelled }

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDateTime accepts RFC 3339, zone-less date-times and bare dates.
// The result is normalized to UTC. Failures wrap ErrInvalidArgument.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date_time %q is not a valid date", ErrInvalidArgument, s)
}
