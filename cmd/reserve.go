package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/tablebook/internal/catalog"
	"github.com/example/tablebook/internal/config"
	"github.com/example/tablebook/internal/db"
	"github.com/example/tablebook/internal/engine"
	"github.com/example/tablebook/internal/migrate"
	"github.com/example/tablebook/internal/reservation"
	"github.com/example/tablebook/internal/store"
)

// openEngine builds the engine the way the server does: postgres when
// DATABASE_URL is set, in-memory otherwise. Cancel and list are only
// useful across invocations with postgres; the in-memory store lives
// for a single command.
func openEngine(ctx context.Context) (*engine.Engine, func(), error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {}
	var st reservation.Store = store.NewMemory()
	if cfg.DatabaseURL != "" {
		d, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := migrate.Up(ctx, d); err != nil {
			d.Close()
			return nil, nil, err
		}
		st = store.NewPostgres(d)
		cleanup = d.Close
	}

	return engine.New(catalog.NewSeeded(), st), cleanup, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newSearchCmd() *cobra.Command {
	var req reservation.SearchRequest
	var lat, lng float64

	c := &cobra.Command{
		Use:   "search",
		Short: "Search the restaurant catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng") {
				req.Near = &reservation.Point{Latitude: lat, Longitude: lng}
			}
			out, err := eng.SearchRestaurants(ctx, req)
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}

	c.Flags().StringVar(&req.City, "city", "", "city (exact, case-insensitive)")
	c.Flags().StringVar(&req.Cuisine, "cuisine", "", "cuisine")
	c.Flags().IntVar(&req.PriceTier, "price-tier", 0, "price tier 1-4")
	c.Flags().Float64Var(&lat, "lat", 0, "reference latitude for distance filter")
	c.Flags().Float64Var(&lng, "lng", 0, "reference longitude for distance filter")
	c.Flags().Float64Var(&req.DistanceKM, "distance-km", 0, "max distance from reference point")
	return c
}

func newAvailabilityCmd() *cobra.Command {
	var restaurantID, date string
	var partySize int

	c := &cobra.Command{
		Use:   "availability",
		Short: "Show the deterministic slot sequence for a restaurant/date/party size",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := eng.CheckAvailability(ctx, restaurantID, date, partySize)
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}

	c.Flags().StringVar(&restaurantID, "restaurant-id", "", "restaurant id")
	c.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD or RFC 3339)")
	c.Flags().IntVar(&partySize, "party-size", 2, "party size")
	_ = c.MarkFlagRequired("restaurant-id")
	_ = c.MarkFlagRequired("date")
	return c
}

func newBookCmd() *cobra.Command {
	var req reservation.PlaceRequest

	c := &cobra.Command{
		Use:   "book",
		Short: "Place a reservation (idempotent on restaurant/date/party/email)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := eng.PlaceReservation(ctx, req)
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}

	c.Flags().StringVar(&req.RestaurantID, "restaurant-id", "", "restaurant id")
	c.Flags().StringVar(&req.DateTime, "date-time", "", "reservation date-time")
	c.Flags().IntVar(&req.PartySize, "party-size", 0, "party size")
	c.Flags().StringVar(&req.Name, "name", "", "guest name")
	c.Flags().StringVar(&req.Phone, "phone", "", "guest phone")
	c.Flags().StringVar(&req.Email, "email", "", "guest email")
	c.Flags().StringVar(&req.Notes, "notes", "", "special requests")
	_ = c.MarkFlagRequired("restaurant-id")
	_ = c.MarkFlagRequired("date-time")
	return c
}

func newCancelCmd() *cobra.Command {
	var id, reason string

	c := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel a reservation (idempotent; repeat cancels are no-ops)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := eng.CancelReservation(ctx, id, reason)
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}

	c.Flags().StringVar(&id, "id", "", "reservation id")
	c.Flags().StringVar(&reason, "reason", "", "cancellation reason")
	_ = c.MarkFlagRequired("id")
	return c
}

func newListCmd() *cobra.Command {
	var userID string

	c := &cobra.Command{
		Use:   "list",
		Short: "List reservations for a guest (email or phone)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := eng.ListReservations(ctx, userID)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "%d reservation(s)\n", len(out))
			return printJSON(out)
		},
	}

	c.Flags().StringVar(&userID, "user-id", "", "guest email or phone")
	_ = c.MarkFlagRequired("user-id")
	return c
}
