// Package availability computes time-slot availability as a pure
// function of its inputs. Nothing here is persisted or randomized;
// identical inputs yield byte-identical slot sequences across calls and
// process restarts.
package availability

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/example/tablebook/internal/reservation"
)

// Service window: first seating 11:00, last seating 21:30, every 30
// minutes. 22 slots per day.
const (
	openHour    = 11
	closeHour   = 22
	granularity = 30 * time.Minute
)

// Roughly 70% of slots come back available before the party-size cap is
// applied.
const availableMod = 10
const availableUnder = 7

// Generate returns the slot sequence for one restaurant and calendar
// date, ordered by time ascending. The date portion of dateTime selects
// the day; any time-of-day component is ignored.
func Generate(restaurantID, dateTime string, partySize int) ([]reservation.AvailabilitySlot, error) {
	if partySize <= 0 {
		return nil, fmt.Errorf("%w: party_size must be positive, got %d", reservation.ErrInvalidArgument, partySize)
	}
	day, err := reservation.ParseDateTime(dateTime)
	if err != nil {
		return nil, err
	}
	day = day.Truncate(24 * time.Hour)

	open := day.Add(openHour * time.Hour)
	end := day.Add(closeHour * time.Hour)

	slots := make([]reservation.AvailabilitySlot, 0, int(end.Sub(open)/granularity))
	for t := open; t.Before(end); t = t.Add(granularity) {
		h := slotHash(restaurantID, t, partySize)
		maxParty := 6 + int(h%3)
		slots = append(slots, reservation.AvailabilitySlot{
			RestaurantID: restaurantID,
			Time:         t,
			MaxPartySize: maxParty,
			Available:    h%availableMod < availableUnder && partySize <= maxParty,
		})
	}
	return slots, nil
}

// slotHash is the stable seed for one slot. SHA-256 keeps the pattern
// identical across platforms and process restarts; Go's map/hash
// randomization must never leak in here.
func slotHash(restaurantID string, slot time.Time, partySize int) uint64 {
	seed := fmt.Sprintf("%s|%s|%d", restaurantID, slot.UTC().Format(time.RFC3339), partySize)
	sum := sha256.Sum256([]byte(seed))
	return binary.BigEndian.Uint64(sum[:8])
}
