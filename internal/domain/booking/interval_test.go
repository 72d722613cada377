//go:build unit

package booking_test

import (
	"testing"
	"time"

	"space-booking-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, start, end time.Time) booking.Interval {
	t.Helper()
	iv, err := booking.NewInterval(start, end)
	require.NoError(t, err)
	return iv
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func TestNewInterval(t *testing.T) {
	base := at(t, "2025-06-01T10:00:00Z")

	t.Run("valid interval", func(t *testing.T) {
		iv, err := booking.NewInterval(base, base.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, base, iv.Start())
		assert.Equal(t, base.Add(time.Hour), iv.End())
	})

	t.Run("zero-length interval rejected", func(t *testing.T) {
		_, err := booking.NewInterval(base, base)
		assert.ErrorIs(t, err, booking.ErrInvalidInterval)
	})

	t.Run("inverted interval rejected", func(t *testing.T) {
		_, err := booking.NewInterval(base, base.Add(-time.Minute))
		assert.ErrorIs(t, err, booking.ErrInvalidInterval)
	})
}

func TestIntervalOverlaps(t *testing.T) {
	base := at(t, "2025-06-01T00:00:00Z")
	span := func(fromHour, toHour int) booking.Interval {
		return mustInterval(t, base.Add(time.Duration(fromHour)*time.Hour), base.Add(time.Duration(toHour)*time.Hour))
	}

	cases := []struct {
		name string
		a, b booking.Interval
		want bool
	}{
		{"identical", span(0, 2), span(0, 2), true},
		{"partial overlap", span(0, 3), span(2, 5), true},
		{"containment", span(0, 10), span(3, 4), true},
		{"touching endpoints do not overlap", span(0, 2), span(2, 4), false},
		{"disjoint", span(0, 1), span(5, 6), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			// overlap is symmetric
			assert.Equal(t, tc.a.Overlaps(tc.b), tc.b.Overlaps(tc.a))
		})
	}
}

func TestIntervalDurationHours(t *testing.T) {
	base := at(t, "2025-06-01T10:00:00Z")

	cases := []struct {
		name string
		d    time.Duration
		want int
	}{
		{"exact hour", time.Hour, 1},
		{"one minute rounds up", time.Minute, 1},
		{"61 minutes rounds up", 61 * time.Minute, 2},
		{"exact day", 24 * time.Hour, 24},
		{"one second past the hour", time.Hour + time.Second, 2},
		{"25 hours", 25 * time.Hour, 25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			iv := mustInterval(t, base, base.Add(tc.d))
			assert.Equal(t, tc.want, iv.DurationHours())
		})
	}
}

func TestIntervalToTstzrange(t *testing.T) {
	iv := mustInterval(t, at(t, "2025-06-01T10:00:00Z"), at(t, "2025-06-01T12:00:00Z"))
	assert.Equal(t, "[2025-06-01T10:00:00Z,2025-06-01T12:00:00Z)", iv.ToTstzrange())
}
