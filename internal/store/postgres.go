package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/example/tablebook/internal/db"
	"github.com/example/tablebook/internal/reservation"
)

// Postgres implements reservation.Store over the reservations table.
// The duplicate-key rule is enforced by a partial unique index over
// live rows, so a concurrent create race admits exactly one record and
// the loser reads the winner back.
type Postgres struct {
	db *db.DB
}

var _ reservation.Store = (*Postgres)(nil)

func NewPostgres(d *db.DB) *Postgres { return &Postgres{db: d} }

const reservationColumns = `id, restaurant_id, restaurant_name, date_time, party_size,
guest_name, guest_phone, guest_email, notes, confirmation_code, status,
created_at, cancelled_at, cancellation_reason`

func (p *Postgres) Create(ctx context.Context, candidate reservation.Reservation) (reservation.Reservation, error) {
	id := "res_" + uuid.NewString()
	row := p.db.QueryRow(ctx, `
INSERT INTO reservations (id, restaurant_id, restaurant_name, date_time, party_size,
	guest_name, guest_phone, guest_email, notes, confirmation_code, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,
	'RES' || lpad(nextval('confirmation_code_seq')::text, 6, '0'), 'confirmed', now())
ON CONFLICT (restaurant_id, date_time, party_size, guest_email) WHERE status = 'confirmed'
	DO NOTHING
RETURNING `+reservationColumns,
		id, candidate.RestaurantID, candidate.RestaurantName, candidate.DateTime, candidate.PartySize,
		candidate.GuestName, candidate.GuestPhone, candidate.GuestEmail, candidate.Notes,
	)

	r, err := scanReservation(row)
	if err == nil {
		return r, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return reservation.Reservation{}, fmt.Errorf("db: %w", err)
	}

	// Insert hit the live duplicate; return the existing record.
	row = p.db.QueryRow(ctx, `
SELECT `+reservationColumns+`
FROM reservations
WHERE restaurant_id=$1 AND date_time=$2 AND party_size=$3 AND guest_email=$4 AND status='confirmed'`,
		candidate.RestaurantID, candidate.DateTime, candidate.PartySize, candidate.GuestEmail,
	)
	r, err = scanReservation(row)
	if err != nil {
		return reservation.Reservation{}, fmt.Errorf("db: %w", err)
	}
	return r, nil
}

func (p *Postgres) Cancel(ctx context.Context, id, reason string) (reservation.Reservation, error) {
	row := p.db.QueryRow(ctx, `
UPDATE reservations
SET status='cancelled', cancelled_at=now(), cancellation_reason=$2
WHERE id=$1 AND status='confirmed'
RETURNING `+reservationColumns, id, reason)

	r, err := scanReservation(row)
	if err == nil {
		return r, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return reservation.Reservation{}, fmt.Errorf("db: %w", err)
	}

	// Either already cancelled (idempotent no-op) or unknown.
	row = p.db.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id=$1`, id)
	r, err = scanReservation(row)
	if err != nil {
		return reservation.Reservation{}, db.WrapNotFound(err, "reservation", id)
	}
	return r, nil
}

func (p *Postgres) ListByGuest(ctx context.Context, identifier string) ([]reservation.Reservation, error) {
	rows, err := p.db.Query(ctx, `
SELECT `+reservationColumns+`
FROM reservations
WHERE guest_email=$1 OR guest_phone=$1
ORDER BY created_at ASC`, identifier)
	if err != nil {
		return nil, fmt.Errorf("db: %w", err)
	}
	defer rows.Close()

	out := make([]reservation.Reservation, 0, 8)
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("db: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func scanReservation(row pgx.Row) (reservation.Reservation, error) {
	var r reservation.Reservation
	var cancelReason *string
	if err := row.Scan(
		&r.ID, &r.RestaurantID, &r.RestaurantName, &r.DateTime, &r.PartySize,
		&r.GuestName, &r.GuestPhone, &r.GuestEmail, &r.Notes, &r.ConfirmationCode, &r.Status,
		&r.CreatedAt, &r.CancelledAt, &cancelReason,
	); err != nil {
		return reservation.Reservation{}, err
	}
	if cancelReason != nil {
		r.CancelReason = *cancelReason
	}
	r.DateTime = r.DateTime.UTC()
	r.CreatedAt = r.CreatedAt.UTC()
	return r, nil
}
