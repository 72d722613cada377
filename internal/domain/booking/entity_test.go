//go:build unit

package booking_test

import (
	"testing"
	"time"

	"space-booking-api/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBooking(t *testing.T, start, end time.Time) *booking.Booking {
	t.Helper()
	return booking.NewBooking(
		uuid.New(), uuid.New(),
		mustInterval(t, start, end),
		2, nil, booking.PriceBreakdown{PayableAmount: 4500}, "",
	)
}

func TestBookingCancel(t *testing.T) {
	start := at(t, "2025-06-01T10:00:00Z")
	end := start.Add(3 * time.Hour)

	t.Run("upcoming booking cancels", func(t *testing.T) {
		b := newBooking(t, start, end)
		require.NoError(t, b.Cancel(start.Add(-time.Hour)))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.False(t, b.IsActive())
	})

	t.Run("cancel at start time refused", func(t *testing.T) {
		b := newBooking(t, start, end)
		err := b.Cancel(start)
		require.ErrorIs(t, err, booking.ErrBookingNotCancelable)
		assert.Equal(t, booking.StatusBooked, b.Status())
	})

	t.Run("cancel after start refused", func(t *testing.T) {
		b := newBooking(t, start, end)
		err := b.Cancel(start.Add(time.Hour))
		require.ErrorIs(t, err, booking.ErrBookingNotCancelable)
	})

	t.Run("double cancel refused", func(t *testing.T) {
		b := newBooking(t, start, end)
		require.NoError(t, b.Cancel(start.Add(-time.Hour)))
		err := b.Cancel(start.Add(-time.Hour))
		require.ErrorIs(t, err, booking.ErrBookingNotCancelable)
	})
}

func TestBookingReschedule(t *testing.T) {
	start := at(t, "2025-06-01T10:00:00Z")
	end := start.Add(3 * time.Hour)

	t.Run("booked slot moves and reprices", func(t *testing.T) {
		b := newBooking(t, start, end)
		moved := mustInterval(t, start.Add(24*time.Hour), end.Add(24*time.Hour))
		newPrice := booking.PriceBreakdown{PayableAmount: 9000}

		require.NoError(t, b.Reschedule(moved, newPrice))
		assert.Equal(t, moved, b.Interval())
		assert.Equal(t, int64(9000), b.Price().PayableAmount)
	})

	t.Run("cancelled booking cannot move", func(t *testing.T) {
		b := newBooking(t, start, end)
		require.NoError(t, b.Cancel(start.Add(-time.Hour)))

		moved := mustInterval(t, start.Add(24*time.Hour), end.Add(24*time.Hour))
		err := b.Reschedule(moved, booking.PriceBreakdown{})
		require.ErrorIs(t, err, booking.ErrBookingNotMovable)
	})
}

func TestBookingWindow(t *testing.T) {
	start := at(t, "2025-06-01T10:00:00Z")
	b := newBooking(t, start, start.Add(3*time.Hour))

	w := b.Window()
	assert.Equal(t, b.ID(), w.ID)
	assert.Equal(t, b.Interval(), w.Interval)
	assert.Equal(t, booking.StatusBooked, w.Status)
	assert.True(t, w.Status.Blocking())
}

func TestBookingHasEnded(t *testing.T) {
	start := at(t, "2025-06-01T10:00:00Z")
	end := start.Add(3 * time.Hour)
	b := newBooking(t, start, end)

	assert.False(t, b.HasEnded(end))
	assert.True(t, b.HasEnded(end.Add(time.Second)))
}
