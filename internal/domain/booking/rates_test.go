//go:build unit

package booking_test

import (
	"testing"

	"space-booking-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestRateSheetResolve(t *testing.T) {
	t.Run("discounted rates win when positive", func(t *testing.T) {
		sheet := booking.RateSheet{
			Hourly: 1000, DiscountedHourly: 800,
			Daily: 8000, DiscountedDaily: 7000,
			Weekly:  40000,
			Monthly: 120000, DiscountedMonthly: 0,
		}
		rates := sheet.Resolve()
		assert.Equal(t, int64(800), rates.Hourly)
		assert.Equal(t, int64(7000), rates.Daily)
		assert.Equal(t, int64(40000), rates.Weekly)
		assert.Equal(t, int64(120000), rates.Monthly)
	})

	t.Run("tiered requires all four tiers", func(t *testing.T) {
		full := booking.RateSheet{Hourly: 1, Daily: 1, Weekly: 1, Monthly: 1}
		assert.True(t, full.Resolve().Tiered())

		missingWeek := booking.RateSheet{Hourly: 1, Daily: 1, Monthly: 1}
		assert.False(t, missingWeek.Resolve().Tiered())
	})
}

func TestRateSheetFlatListingPrice(t *testing.T) {
	cases := []struct {
		name  string
		sheet booking.RateSheet
		want  int64
	}{
		{"sale price preferred", booking.RateSheet{ListingPrice: 5000, SalePrice: 4500}, 4500},
		{"listing price when no sale", booking.RateSheet{ListingPrice: 5000}, 5000},
		{"zero when neither set", booking.RateSheet{}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.sheet.FlatListingPrice())
		})
	}
}

func TestRateSheetFallbackDayRate(t *testing.T) {
	cases := []struct {
		name  string
		sheet booking.RateSheet
		want  int64
	}{
		{"daily rate first", booking.RateSheet{Daily: 8000, ListingPrice: 5000}, 8000},
		{"listing price when no daily", booking.RateSheet{ListingPrice: 5000, Weekly: 40000}, 5000},
		{"weekly as last-resort day rate", booking.RateSheet{Weekly: 40000}, 40000},
		{"hourly only", booking.RateSheet{Hourly: 1000}, 1000},
		{"nothing set", booking.RateSheet{}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.sheet.FallbackDayRate())
		})
	}
}

func TestRateSheetHasAnyRate(t *testing.T) {
	assert.False(t, booking.RateSheet{}.HasAnyRate())
	assert.True(t, booking.RateSheet{ListingPrice: 100}.HasAnyRate())
	assert.True(t, booking.RateSheet{Hourly: 1, Daily: 1, Weekly: 1, Monthly: 1}.HasAnyRate())
}
