//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"space-booking-api/internal/domain/booking"
	"space-booking-api/internal/domain/coupon"
	"space-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.CouponBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewCouponBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestNewCoupon(t *testing.T) {
	t.Run("code validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "uppercase alphanumeric OK", mutate: func(b *builder.CouponBuilder) { b.WithCode("SUMMER2026") }},
			{name: "lowercase normalized OK", mutate: func(b *builder.CouponBuilder) { b.WithCode("save10") }},
			{name: "too short NG", mutate: func(b *builder.CouponBuilder) { b.WithCode("AB") }, errIs: coupon.ErrInvalidCouponCode},
			{name: "too long NG", mutate: func(b *builder.CouponBuilder) { b.WithCode("ABCDEFGHIJKLMNOPQRSTU") }, errIs: coupon.ErrInvalidCouponCode},
			{name: "special characters NG", mutate: func(b *builder.CouponBuilder) { b.WithCode("SAVE-10") }, errIs: coupon.ErrInvalidCouponCode},
			{name: "empty NG", mutate: func(b *builder.CouponBuilder) { b.WithCode("") }, errIs: coupon.ErrInvalidCouponCode},
		})
	})

	t.Run("discount validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "fixed OK", mutate: func(b *builder.CouponBuilder) { b.WithDiscount("fixed", 500) }},
			{name: "percent OK", mutate: func(b *builder.CouponBuilder) { b.WithDiscount("percent", 15) }},
			{name: "unknown type NG", mutate: func(b *builder.CouponBuilder) { b.WithDiscount("bogus", 500) }, errIs: coupon.ErrInvalidDiscountType},
			{name: "negative amount NG", mutate: func(b *builder.CouponBuilder) { b.WithDiscount("fixed", -1) }, errIs: coupon.ErrInvalidDiscountAmount},
		})
	})

	t.Run("code is normalized to uppercase", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithCode(" save10 ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", c.Code().String())
	})
}

func TestCouponValidateUsage(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	spaceID := uuid.New()

	t.Run("no validity window always usable", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)
		assert.NoError(t, c.ValidateUsage(now, spaceID))
		assert.True(t, c.IsValidAt(now))
	})

	t.Run("before validity window", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().
			WithValidity(now.Add(time.Hour), now.Add(48*time.Hour)).
			BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, c.ValidateUsage(now, spaceID), coupon.ErrCouponNotYetValid)
		assert.False(t, c.IsValidAt(now))
	})

	t.Run("after validity window", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().
			WithValidity(now.Add(-48*time.Hour), now.Add(-time.Hour)).
			BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, c.ValidateUsage(now, spaceID), coupon.ErrCouponExpired)
	})

	t.Run("bound to another space", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().ForSpace(uuid.New()).BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, c.ValidateUsage(now, spaceID), coupon.ErrWrongSpace)
	})

	t.Run("bound to the booked space", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().ForSpace(spaceID).BuildDomain()
		require.NoError(t, err)
		assert.NoError(t, c.ValidateUsage(now, spaceID))
	})
}

func TestCouponSnapshot(t *testing.T) {
	t.Run("platform coupon has global scope", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)

		snap := c.Snapshot()
		assert.Equal(t, booking.ScopeGlobal, snap.Scope)
		assert.Equal(t, booking.DiscountFixed, snap.DiscountType)
		assert.Equal(t, "SAVE10", snap.Code)
		assert.Equal(t, float64(1000), snap.Amount)
	})

	t.Run("space-bound coupon has space scope", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().ForSpace(uuid.New()).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, booking.ScopeSpace, c.Snapshot().Scope)
	})
}
