package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrBookingInPast        = errors.New("booking cannot start in the past")
	ErrBookingNotCancelable = errors.New("booking can no longer be canceled")
	ErrBookingNotMovable    = errors.New("only upcoming bookings can be rescheduled")
	ErrTooManyGuests        = errors.New("guest count exceeds space capacity")
	ErrInvalidStatus        = errors.New("invalid booking status")
)

// Booking is a confirmed (or in-progress) rental of a space. The price
// breakdown is frozen at creation time so later rate changes never affect
// an existing booking.
type Booking struct {
	id        uuid.UUID
	spaceID   uuid.UUID
	guestID   uuid.UUID
	interval  Interval
	status    ReservationStatus
	guests    int
	couponID  *uuid.UUID
	price     PriceBreakdown
	note      string
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(
	spaceID, guestID uuid.UUID,
	interval Interval,
	guests int,
	couponID *uuid.UUID,
	price PriceBreakdown,
	note string,
) *Booking {
	return &Booking{
		id:       uuid.New(),
		spaceID:  spaceID,
		guestID:  guestID,
		interval: interval,
		status:   StatusBooked,
		guests:   guests,
		couponID: couponID,
		price:    price,
		note:     note,
	}
}

func ReconstructBooking(
	id, spaceID, guestID uuid.UUID,
	interval Interval,
	status ReservationStatus,
	guests int,
	couponID *uuid.UUID,
	price PriceBreakdown,
	note string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		spaceID:   spaceID,
		guestID:   guestID,
		interval:  interval,
		status:    status,
		guests:    guests,
		couponID:  couponID,
		price:     price,
		note:      note,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Cancel releases the slot. Only bookings that have not started yet can be
// canceled.
func (b *Booking) Cancel(now time.Time) error {
	if b.status != StatusBooked {
		return ErrBookingNotCancelable
	}
	if !now.Before(b.interval.Start()) {
		return ErrBookingNotCancelable
	}
	b.status = StatusCancelled
	return nil
}

// Reschedule moves an upcoming booking to a new interval with a freshly
// computed price. Conflict checking against other bookings is the caller's
// responsibility.
func (b *Booking) Reschedule(interval Interval, price PriceBreakdown) error {
	if b.status != StatusBooked {
		return ErrBookingNotMovable
	}
	b.interval = interval
	b.price = price
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status.Blocking()
}

func (b *Booking) HasEnded(now time.Time) bool {
	return now.After(b.interval.End())
}

// Window projects the booking into the shape the availability checker
// consumes.
func (b *Booking) Window() ReservationWindow {
	return ReservationWindow{ID: b.id, Interval: b.interval, Status: b.status}
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) SpaceID() uuid.UUID        { return b.spaceID }
func (b *Booking) GuestID() uuid.UUID        { return b.guestID }
func (b *Booking) Interval() Interval        { return b.interval }
func (b *Booking) Status() ReservationStatus { return b.status }
func (b *Booking) Guests() int               { return b.guests }
func (b *Booking) CouponID() *uuid.UUID      { return b.couponID }
func (b *Booking) Price() PriceBreakdown     { return b.price }
func (b *Booking) Note() string              { return b.note }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
