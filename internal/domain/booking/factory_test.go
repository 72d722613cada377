//go:build unit

package booking_test

import (
	"testing"
	"time"

	"space-booking-api/internal/domain/booking"
	"space-booking-api/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpec() booking.SpaceSpec {
	return booking.SpaceSpec{
		ID:        uuid.New(),
		MaxGuests: 4,
		Rates: booking.RateSheet{
			Hourly:  1500,
			Daily:   10000,
			Weekly:  60000,
			Monthly: 200000,
		},
	}
}

func TestFactoryCreateBooking(t *testing.T) {
	now := at(t, "2025-06-01T09:00:00Z")
	factory := booking.NewFactory(clock.NewMockClock(now))
	guestID := uuid.New()
	slot := func(t *testing.T) booking.Interval {
		return mustInterval(t, now.Add(time.Hour), now.Add(4*time.Hour))
	}

	t.Run("books a free slot with frozen price", func(t *testing.T) {
		spec := testSpec()
		b, err := factory.CreateBooking(spec, guestID, slot(t), 2, nil, nil, nil, booking.QuoteContext{}, "door code 4711")
		require.NoError(t, err)

		assert.Equal(t, spec.ID, b.SpaceID())
		assert.Equal(t, guestID, b.GuestID())
		assert.Equal(t, booking.StatusBooked, b.Status())
		assert.Equal(t, 2, b.Guests())
		assert.Equal(t, "door code 4711", b.Note())
		// 3 hours at the hourly tier
		assert.Equal(t, int64(4500), b.Price().Price)
	})

	t.Run("start in the past refused", func(t *testing.T) {
		iv := mustInterval(t, now.Add(-time.Hour), now.Add(2*time.Hour))
		_, err := factory.CreateBooking(testSpec(), guestID, iv, 2, nil, nil, nil, booking.QuoteContext{}, "")
		require.ErrorIs(t, err, booking.ErrBookingInPast)
	})

	t.Run("guest count above capacity refused", func(t *testing.T) {
		_, err := factory.CreateBooking(testSpec(), guestID, slot(t), 5, nil, nil, nil, booking.QuoteContext{}, "")
		require.ErrorIs(t, err, booking.ErrTooManyGuests)
	})

	t.Run("zero capacity means unlimited", func(t *testing.T) {
		spec := testSpec()
		spec.MaxGuests = 0
		_, err := factory.CreateBooking(spec, guestID, slot(t), 50, nil, nil, nil, booking.QuoteContext{}, "")
		require.NoError(t, err)
	})

	t.Run("overlapping reservation rejected with reason", func(t *testing.T) {
		existing := []booking.ReservationWindow{
			{ID: uuid.New(), Interval: mustInterval(t, now.Add(2*time.Hour), now.Add(5*time.Hour)), Status: booking.StatusBooked},
		}
		_, err := factory.CreateBooking(testSpec(), guestID, slot(t), 2, existing, nil, nil, booking.QuoteContext{}, "")

		var rejection *booking.Rejection
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, booking.ReasonReservationConflict, rejection.Reason)
	})

	t.Run("cancelled reservation does not block", func(t *testing.T) {
		existing := []booking.ReservationWindow{
			{ID: uuid.New(), Interval: mustInterval(t, now.Add(2*time.Hour), now.Add(5*time.Hour)), Status: booking.StatusCancelled},
		}
		_, err := factory.CreateBooking(testSpec(), guestID, slot(t), 2, existing, nil, nil, booking.QuoteContext{}, "")
		require.NoError(t, err)
	})

	t.Run("blocked period rejected with reason", func(t *testing.T) {
		blocks := []booking.Block{
			{Interval: mustInterval(t, now, now.Add(48*time.Hour))},
		}
		_, err := factory.CreateBooking(testSpec(), guestID, slot(t), 2, nil, blocks, nil, booking.QuoteContext{}, "")

		var rejection *booking.Rejection
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, booking.ReasonBlockConflict, rejection.Reason)
	})

	t.Run("min stay violation rejected with reason", func(t *testing.T) {
		spec := testSpec()
		spec.Policy.MinStayHours = 5
		_, err := factory.CreateBooking(spec, guestID, slot(t), 2, nil, nil, nil, booking.QuoteContext{}, "")

		var rejection *booking.Rejection
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, booking.ReasonMinStay, rejection.Reason)
	})

	t.Run("coupon and fees flow into the frozen price", func(t *testing.T) {
		couponID := uuid.New()
		qctx := booking.QuoteContext{
			TaxPercent: 13,
			BuyerFees:  []booking.FeeRule{{Name: "Service fee", Unit: booking.FeeUnitPercent, Price: 10}},
			Coupons:    []booking.CouponSnapshot{{Code: "SAVE10", DiscountType: booking.DiscountFixed, Amount: 1000, Scope: booking.ScopeGlobal}},
		}
		b, err := factory.CreateBooking(testSpec(), guestID, slot(t), 2, nil, nil, &couponID, qctx, "")
		require.NoError(t, err)

		price := b.Price()
		assert.Equal(t, int64(1000), price.Discount)
		assert.Positive(t, price.GuestFee)
		assert.Positive(t, price.Tax)
		require.NotNil(t, b.CouponID())
		assert.Equal(t, couponID, *b.CouponID())
	})
}
