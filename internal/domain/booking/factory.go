package booking

import (
	"space-booking-api/internal/pkg/clock"

	"github.com/google/uuid"
)

// SpaceSpec is the slice of a space listing the factory needs: identity,
// capacity, rate card, availability policy and configured extras.
type SpaceSpec struct {
	ID           uuid.UUID
	MaxGuests    int
	Rates        RateSheet
	Policy       Policy
	ExtraCharges []ExtraCharge
}

type Factory struct {
	clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{clock: clock}
}

// CreateBooking validates the requested interval against the space's policy
// and current occupancy, prices it and returns the new booking. Existing
// reservations and blocks must cover everything that could conflict with
// the candidate interval; fetching them consistently is the caller's job.
func (f *Factory) CreateBooking(
	spec SpaceSpec,
	guestID uuid.UUID,
	interval Interval,
	guests int,
	existing []ReservationWindow,
	blocks []Block,
	couponID *uuid.UUID,
	qctx QuoteContext,
	note string,
) (*Booking, error) {
	if interval.Start().Before(f.clock.Now()) {
		return nil, ErrBookingInPast
	}
	if spec.MaxGuests > 0 && guests > spec.MaxGuests {
		return nil, ErrTooManyGuests
	}

	if rejection := CheckAvailability(AvailabilityQuery{
		SpaceID:      spec.ID,
		Candidate:    interval,
		Policy:       spec.Policy,
		Reservations: existing,
		Blocks:       blocks,
	}); rejection != nil {
		return nil, rejection
	}

	qctx.ExtraCharges = spec.ExtraCharges
	qctx.Guests = guests

	price, err := ComputePrice(spec.Rates, interval, qctx)
	if err != nil {
		return nil, err
	}

	return NewBooking(spec.ID, guestID, interval, guests, couponID, price, note), nil
}
