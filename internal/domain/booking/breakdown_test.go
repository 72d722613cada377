//go:build unit

package booking_test

import (
	"testing"
	"time"

	"space-booking-api/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Rates used across the pricing scenarios: $10/h, $80/day, $400/week,
// $1200/month, all in cents.
func fullSheet() booking.RateSheet {
	return booking.RateSheet{
		Hourly:             1000,
		Daily:              8000,
		Weekly:             40000,
		Monthly:            120000,
		HoursPerBillingDay: 24,
	}
}

func compute(t *testing.T, sheet booking.RateSheet, d time.Duration, qctx booking.QuoteContext) booking.PriceBreakdown {
	t.Helper()
	base := at(t, "2025-06-02T09:00:00Z")
	bd, err := booking.ComputePrice(sheet, mustInterval(t, base, base.Add(d)), qctx)
	require.NoError(t, err)
	return bd
}

func TestComputePriceTiered(t *testing.T) {
	t.Run("25 hours decomposes to one day one hour", func(t *testing.T) {
		bd := compute(t, fullSheet(), 25*time.Hour, booking.QuoteContext{})

		assert.Equal(t, booking.DurationBreakdown{Days: 1, Hours: 1}, bd.TimeInfo)
		require.Len(t, bd.Items, 2)
		assert.Equal(t, booking.LineItem{Type: booking.TierDays, Quantity: 1, Rate: 8000, Total: 8000}, bd.Items[0])
		assert.Equal(t, booking.LineItem{Type: booking.TierHours, Quantity: 1, Rate: 1000, Total: 1000}, bd.Items[1])
		assert.Equal(t, int64(9000), bd.Price)
		assert.Equal(t, int64(9000), bd.GrandTotal)
	})

	t.Run("line items are emitted per non-zero component", func(t *testing.T) {
		bd := compute(t, fullSheet(), (28*24+7*24+24+1)*time.Hour, booking.QuoteContext{})

		require.Len(t, bd.Items, 4)
		assert.Equal(t, booking.TierMonths, bd.Items[0].Type)
		assert.Equal(t, booking.TierWeeks, bd.Items[1].Type)
		assert.Equal(t, booking.TierDays, bd.Items[2].Type)
		assert.Equal(t, booking.TierHours, bd.Items[3].Type)
		assert.Equal(t, int64(120000+40000+8000+1000), bd.Price)
	})
}

func TestComputePriceCapping(t *testing.T) {
	t.Run("hours never price above one day", func(t *testing.T) {
		sheet := fullSheet()
		sheet.Hourly = 9000 // 9 hours would cost more than a day

		bd := compute(t, sheet, 2*time.Hour, booking.QuoteContext{})
		assert.Equal(t, int64(8000), bd.Price)

		// The line item keeps the raw hourly math; only Price is capped.
		require.Len(t, bd.Items, 1)
		assert.Equal(t, booking.LineItem{Type: booking.TierHours, Quantity: 2, Rate: 9000, Total: 18000}, bd.Items[0])
	})

	t.Run("days never price above one week", func(t *testing.T) {
		bd := compute(t, fullSheet(), 6*24*time.Hour, booking.QuoteContext{})
		// 6 days x $80 = $480 > $400 week rate
		assert.Equal(t, int64(40000), bd.Price)
	})

	t.Run("weeks never price above one month", func(t *testing.T) {
		sheet := fullSheet()
		sheet.Monthly = 110000

		bd := compute(t, sheet, 3*7*24*time.Hour, booking.QuoteContext{})
		// 3 weeks x $400 = $1200 > $1100 month rate
		assert.Equal(t, int64(110000), bd.Price)
	})

	t.Run("no capping once a higher tier is present", func(t *testing.T) {
		bd := compute(t, fullSheet(), 25*time.Hour, booking.QuoteContext{})
		assert.Equal(t, int64(9000), bd.Price)
	})
}

func TestComputePriceFlatFallback(t *testing.T) {
	t.Run("listing price bills whole days", func(t *testing.T) {
		sheet := booking.RateSheet{ListingPrice: 5000}

		bd := compute(t, sheet, 30*time.Hour, booking.QuoteContext{})
		require.Len(t, bd.Items, 1)
		assert.Equal(t, booking.LineItem{Type: booking.TierDays, Quantity: 2, Rate: 5000, Total: 10000}, bd.Items[0])
		assert.Equal(t, int64(10000), bd.Price)
		assert.Equal(t, booking.DurationBreakdown{Days: 2}, bd.TimeInfo)
	})

	t.Run("incomplete tiers fall back to the daily rate", func(t *testing.T) {
		sheet := booking.RateSheet{Daily: 8000, Hourly: 1000} // no weekly/monthly

		bd := compute(t, sheet, 25*time.Hour, booking.QuoteContext{})
		require.Len(t, bd.Items, 1)
		assert.Equal(t, booking.LineItem{Type: booking.TierDays, Quantity: 2, Rate: 8000, Total: 16000}, bd.Items[0])
	})

	t.Run("no rate data yields the all-zero breakdown", func(t *testing.T) {
		bd := compute(t, booking.RateSheet{}, 30*time.Hour, booking.QuoteContext{})
		assert.Equal(t, booking.EmptyBreakdown(), bd)
	})
}

func TestComputePriceFees(t *testing.T) {
	t.Run("extra charges accrue per kind", func(t *testing.T) {
		sheet := booking.RateSheet{ListingPrice: 5000}
		qctx := booking.QuoteContext{
			ExtraCharges: []booking.ExtraCharge{
				{Name: "Cleaning", Type: booking.ExtraOneTime, Price: 1500},
				{Name: "Projector", Type: booking.ExtraPerHour, Price: 100},
				{Name: "Parking", Type: booking.ExtraPerDay, Price: 500},
			},
		}

		bd := compute(t, sheet, 30*time.Hour, qctx)
		require.Len(t, bd.ExtraFeeList, 3)
		assert.Equal(t, int64(1500), bd.ExtraFeeList[0].Total)
		assert.Equal(t, int64(100*30), bd.ExtraFeeList[1].Total)
		assert.Equal(t, int64(500*2), bd.ExtraFeeList[2].Total)
		assert.Equal(t, int64(1500+3000+1000), bd.ExtraFee)
		assert.Equal(t, bd.Price+bd.ExtraFee, bd.PriceAfterExtraFee)
	})

	t.Run("per-day extras charge at least one day", func(t *testing.T) {
		sheet := fullSheet()
		qctx := booking.QuoteContext{
			ExtraCharges: []booking.ExtraCharge{{Name: "Parking", Type: booking.ExtraPerDay, Price: 500}},
		}

		bd := compute(t, sheet, 2*time.Hour, qctx)
		assert.Equal(t, int64(500), bd.ExtraFee)
	})

	t.Run("percent buyer fee of 10 on 100 dollars", func(t *testing.T) {
		sheet := booking.RateSheet{ListingPrice: 5000}
		qctx := booking.QuoteContext{
			BuyerFees: []booking.FeeRule{{Name: "Service Fee", Unit: booking.FeeUnitPercent, Price: 10}},
		}

		bd := compute(t, sheet, 30*time.Hour, qctx)
		assert.Equal(t, int64(10000), bd.PriceAfterExtraFee)
		assert.Equal(t, int64(1000), bd.GuestFee)
		assert.Equal(t, int64(11000), bd.PriceAfterGuestFee)
	})

	t.Run("seller fee computed on priceAfterExtraFee not priceAfterGuestFee", func(t *testing.T) {
		sheet := booking.RateSheet{ListingPrice: 5000}
		qctx := booking.QuoteContext{
			BuyerFees:  []booking.FeeRule{{Name: "Service Fee", Unit: booking.FeeUnitPercent, Price: 10}},
			SellerFees: []booking.FeeRule{{Name: "Platform Fee", Unit: booking.FeeUnitPercent, Price: 3}},
		}

		bd := compute(t, sheet, 30*time.Hour, qctx)
		// 3% of 10000, not of 11000
		assert.Equal(t, int64(300), bd.HostFee)
	})

	t.Run("per-person fee multiplies by guest count", func(t *testing.T) {
		sheet := booking.RateSheet{ListingPrice: 5000}
		qctx := booking.QuoteContext{
			BuyerFees: []booking.FeeRule{{Name: "Guest Fee", Unit: booking.FeeUnitFixed, Price: 200, PerPerson: true}},
			Guests:    3,
		}

		bd := compute(t, sheet, 30*time.Hour, qctx)
		assert.Equal(t, int64(600), bd.GuestFee)
	})

	t.Run("tax applies after guest fees", func(t *testing.T) {
		sheet := booking.RateSheet{ListingPrice: 5000}
		qctx := booking.QuoteContext{
			BuyerFees:  []booking.FeeRule{{Name: "Service Fee", Unit: booking.FeeUnitPercent, Price: 10}},
			TaxPercent: 13,
		}

		bd := compute(t, sheet, 30*time.Hour, qctx)
		assert.Equal(t, int64(1430), bd.Tax) // 13% of 11000
		assert.Equal(t, int64(12430), bd.PriceAfterTax)
		assert.Equal(t, bd.PriceAfterTax, bd.Total)
	})
}

func TestComputePriceCoupons(t *testing.T) {
	// price 10000 + 10% guest fee -> priceAfterTax 11000 with no tax
	sheet := booking.RateSheet{ListingPrice: 5000}
	baseCtx := booking.QuoteContext{
		BuyerFees: []booking.FeeRule{{Name: "Service Fee", Unit: booking.FeeUnitPercent, Price: 10}},
	}

	t.Run("global fixed coupon reduces admin amount", func(t *testing.T) {
		qctx := baseCtx
		qctx.Coupons = []booking.CouponSnapshot{
			{Code: "SAVE20", DiscountType: booking.DiscountFixed, Amount: 2000, Scope: booking.ScopeGlobal},
		}

		bd := compute(t, sheet, 30*time.Hour, qctx)
		assert.Equal(t, int64(2000), bd.Discount)
		assert.Equal(t, int64(9000), bd.PayableAmount)
		assert.Equal(t, booking.ScopeGlobal, bd.CouponType)
		// admin was guestFee(1000), global discount clips it at zero
		assert.Equal(t, int64(0), bd.AdminAmount)
		assert.Equal(t, int64(10000), bd.HostAmount)
	})

	t.Run("space coupon reduces host amount", func(t *testing.T) {
		qctx := baseCtx
		qctx.Coupons = []booking.CouponSnapshot{
			{Code: "HOST10", DiscountType: booking.DiscountPercent, Amount: 10, Scope: booking.ScopeSpace},
		}

		bd := compute(t, sheet, 30*time.Hour, qctx)
		// 10% of priceAfterExtraFee (10000)
		assert.Equal(t, int64(1000), bd.Discount)
		assert.Equal(t, booking.ScopeSpace, bd.CouponType)
		assert.Equal(t, int64(1000), bd.AdminAmount)
		assert.Equal(t, int64(9000), bd.HostAmount)
	})

	t.Run("discount never exceeds payable amount", func(t *testing.T) {
		qctx := baseCtx
		qctx.Coupons = []booking.CouponSnapshot{
			{Code: "HUGE", DiscountType: booking.DiscountFixed, Amount: 999999, Scope: booking.ScopeGlobal},
		}

		bd := compute(t, sheet, 30*time.Hour, qctx)
		assert.Equal(t, int64(11000), bd.Discount)
		assert.Equal(t, int64(0), bd.PayableAmount)
		assert.Equal(t, int64(0), bd.GrandTotal)
	})

	t.Run("multiple coupons clip cumulatively", func(t *testing.T) {
		qctx := baseCtx
		qctx.Coupons = []booking.CouponSnapshot{
			{Code: "A", DiscountType: booking.DiscountFixed, Amount: 10000, Scope: booking.ScopeGlobal},
			{Code: "B", DiscountType: booking.DiscountFixed, Amount: 10000, Scope: booking.ScopeSpace},
		}

		bd := compute(t, sheet, 30*time.Hour, qctx)
		assert.Equal(t, int64(11000), bd.Discount)
		assert.Equal(t, int64(0), bd.PayableAmount)
	})
}

func TestComputePriceInvariants(t *testing.T) {
	sheet := fullSheet()
	qctx := booking.QuoteContext{
		ExtraCharges: []booking.ExtraCharge{{Name: "Cleaning", Type: booking.ExtraOneTime, Price: 1500}},
		BuyerFees:    []booking.FeeRule{{Name: "Service Fee", Unit: booking.FeeUnitPercent, Price: 10}},
		SellerFees:   []booking.FeeRule{{Name: "Platform Fee", Unit: booking.FeeUnitPercent, Price: 3}},
		TaxPercent:   13,
		Coupons: []booking.CouponSnapshot{
			{Code: "SAVE20", DiscountType: booking.DiscountFixed, Amount: 2000, Scope: booking.ScopeGlobal},
		},
	}

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		first := compute(t, sheet, 25*time.Hour, qctx)
		second := compute(t, sheet, 25*time.Hour, qctx)
		assert.Empty(t, cmp.Diff(first, second))
	})

	t.Run("summary identities hold", func(t *testing.T) {
		bd := compute(t, sheet, 25*time.Hour, qctx)

		assert.Equal(t, bd.Price+bd.ExtraFee, bd.RentalTotal)
		assert.Equal(t, bd.RentalTotal+bd.GuestFee, bd.SubTotal)
		assert.Equal(t, bd.SubTotal+bd.Tax, bd.Total)
		assert.LessOrEqual(t, bd.GrandTotal, bd.Total)
		assert.GreaterOrEqual(t, bd.PayableAmount, int64(0))
		assert.GreaterOrEqual(t, bd.GrandTotal, int64(0))
		assert.Equal(t, bd.Total-bd.Discount, bd.GrandTotal)
	})
}

func TestComputePriceInvalidInterval(t *testing.T) {
	_, err := booking.ComputePrice(fullSheet(), booking.Interval{}, booking.QuoteContext{})
	assert.ErrorIs(t, err, booking.ErrInvalidInterval)
}
