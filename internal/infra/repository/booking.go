package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"space-booking-api/internal/domain/booking"
	"space-booking-api/internal/infra"
	"space-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

const createBookingQuery = `
INSERT INTO bookings (id, space_id, guest_id, slot, status, guests, coupon_id, price, note)
VALUES ($1, $2, $3, tstzrange($4, $5, '[)'), $6, $7, $8, $9, NULLIF($10, ''))
RETURNING id
`

func (r *BookingRepository) Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) (*readmodel.BookingRM, error) {
	priceJSON, err := json.Marshal(b.Price())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode price breakdown", err)
	}

	var id uuid.UUID
	err = tx.QueryRow(ctx, createBookingQuery,
		b.ID(), b.SpaceID(), b.GuestID(),
		b.Interval().Start(), b.Interval().End(),
		string(b.Status()), b.Guests(), b.CouponID(), priceJSON, b.Note(),
	).Scan(&id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return r.findByIDWith(ctx, tx, id)
}

const findBookingByIDQuery = `
SELECT
    b.id, b.space_id, s.name, b.guest_id, u.display_name,
    lower(b.slot), upper(b.slot), b.status, b.guests,
    b.coupon_id, b.price, b.note, b.created_at, b.updated_at
FROM bookings b
JOIN spaces s ON s.id = b.space_id
JOIN users u ON u.id = b.guest_id
WHERE b.id = $1
`

// querier is the subset of pgx shared by pools and transactions.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	return r.findByIDWith(ctx, r.db, id)
}

func (r *BookingRepository) findByIDWith(ctx context.Context, q querier, id uuid.UUID) (*readmodel.BookingRM, error) {
	var rm readmodel.BookingRM
	var priceJSON []byte

	err := q.QueryRow(ctx, findBookingByIDQuery, id).Scan(
		&rm.ID, &rm.SpaceID, &rm.SpaceName, &rm.GuestID, &rm.GuestName,
		&rm.Start, &rm.End, &rm.Status, &rm.Guests,
		&rm.CouponID, &priceJSON, &rm.Note, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	if err := json.Unmarshal(priceJSON, &rm.Price); err != nil {
		return nil, infra.WrapRepoErr("failed to decode price breakdown", err)
	}

	return &rm, nil
}

const findBookingsByGuestQuery = `
SELECT
    b.id, b.space_id, s.name, lower(b.slot), upper(b.slot),
    b.status, (b.price->>'payableAmount')::bigint, b.created_at
FROM bookings b
JOIN spaces s ON s.id = b.space_id
WHERE b.guest_id = $1
ORDER BY lower(b.slot) DESC
`

func (r *BookingRepository) FindByGuestID(ctx context.Context, guestID uuid.UUID) ([]*readmodel.BookingListRM, error) {
	rows, err := r.db.Query(ctx, findBookingsByGuestQuery, guestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by guest ID", err)
	}
	defer rows.Close()

	var result []*readmodel.BookingListRM
	for rows.Next() {
		var rm readmodel.BookingListRM
		if err := rows.Scan(
			&rm.ID, &rm.SpaceID, &rm.SpaceName, &rm.Start, &rm.End,
			&rm.Status, &rm.Payable, &rm.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return result, nil
}

const findWindowsBySpaceQuery = `
SELECT id, lower(slot), upper(slot), status
FROM bookings
WHERE space_id = $1
  AND status NOT IN ('draft', 'cancelled')
`

func (r *BookingRepository) FindWindowsBySpace(ctx context.Context, spaceID uuid.UUID) ([]booking.ReservationWindow, error) {
	return r.findWindowsWith(ctx, r.db, spaceID)
}

func (r *BookingRepository) FindWindowsBySpaceTx(ctx context.Context, tx pgx.Tx, spaceID uuid.UUID) ([]booking.ReservationWindow, error) {
	return r.findWindowsWith(ctx, tx, spaceID)
}

func (r *BookingRepository) findWindowsWith(ctx context.Context, q querier, spaceID uuid.UUID) ([]booking.ReservationWindow, error) {
	rows, err := q.Query(ctx, findWindowsBySpaceQuery, spaceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking windows", err)
	}
	defer rows.Close()

	var windows []booking.ReservationWindow
	for rows.Next() {
		var (
			id         uuid.UUID
			start, end time.Time
			status     string
		)
		if err := rows.Scan(&id, &start, &end, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking window", err)
		}

		interval, err := booking.NewInterval(start, end)
		if err != nil {
			return nil, infra.WrapRepoErr("stored booking has invalid slot", err)
		}
		windows = append(windows, booking.ReservationWindow{
			ID:       id,
			Interval: interval,
			Status:   booking.ReservationStatus(status),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking windows", err)
	}

	return windows, nil
}

const updateBookingStatusQuery = `
UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1
`

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status booking.ReservationStatus) error {
	tag, err := tx.Exec(ctx, updateBookingStatusQuery, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

const lockSpaceQuery = `
SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))
`

// LockSpace takes a transaction-scoped advisory lock keyed on the space ID,
// serializing concurrent booking attempts for the same space.
func (r *BookingRepository) LockSpace(ctx context.Context, tx pgx.Tx, spaceID uuid.UUID) error {
	if _, err := tx.Exec(ctx, lockSpaceQuery, spaceID.String()); err != nil {
		return infra.WrapRepoErr("failed to lock space", err)
	}
	return nil
}
