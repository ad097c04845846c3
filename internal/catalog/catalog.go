// Package catalog holds the static restaurant records the engine serves
// from. Records are loaded once at construction and never mutated.
package catalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/example/tablebook/internal/reservation"
)

type Filter struct {
	City      string
	Cuisine   string
	PriceTier int

	// Distance filtering is applied only when Near is set.
	Near       *reservation.Point
	DistanceKM float64
}

type Catalog struct {
	restaurants []reservation.Restaurant
	byID        map[string]reservation.Restaurant
}

// New builds a catalog over the given records. Insertion order is the
// order List results come back in.
func New(restaurants []reservation.Restaurant) *Catalog {
	byID := make(map[string]reservation.Restaurant, len(restaurants))
	for _, r := range restaurants {
		byID[r.ID] = r
	}
	return &Catalog{restaurants: restaurants, byID: byID}
}

// NewSeeded builds a catalog over the built-in demo data set.
func NewSeeded() *Catalog { return New(seedRestaurants()) }

// Get resolves a single restaurant id.
func (c *Catalog) Get(id string) (reservation.Restaurant, error) {
	r, ok := c.byID[id]
	if !ok {
		return reservation.Restaurant{}, fmt.Errorf("%w: restaurant %q", reservation.ErrNotFound, id)
	}
	return r, nil
}

// List returns restaurants matching the filter in catalog order. No
// matches is an empty slice, never an error.
func (c *Catalog) List(f Filter) []reservation.Restaurant {
	out := make([]reservation.Restaurant, 0, len(c.restaurants))
	for _, r := range c.restaurants {
		if f.City != "" && !strings.EqualFold(r.Location.City, f.City) {
			continue
		}
		if f.Cuisine != "" && !strings.EqualFold(r.Cuisine, f.Cuisine) {
			continue
		}
		if f.PriceTier != 0 && r.PriceTier != f.PriceTier {
			continue
		}
		if f.Near != nil && f.DistanceKM > 0 {
			d := haversineKM(f.Near.Latitude, f.Near.Longitude, r.Location.Latitude, r.Location.Longitude)
			if d > f.DistanceKM {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

const earthRadiusKM = 6371.0

func haversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKM * math.Asin(math.Sqrt(a))
}
