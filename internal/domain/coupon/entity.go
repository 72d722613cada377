package coupon

import (
	"errors"
	"time"

	"space-booking-api/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrCouponExpired     = errors.New("coupon has expired")
	ErrCouponNotYetValid = errors.New("coupon is not yet valid")
	ErrWrongSpace        = errors.New("coupon does not apply to this space")
)

// Coupon is a discount voucher. A coupon bound to a space is funded by
// that space's host; an unbound coupon is funded by the platform.
type Coupon struct {
	id           uuid.UUID
	code         Code
	discountType booking.DiscountType
	amount       float64
	spaceID      *uuid.UUID
	validFrom    *time.Time
	validTo      *time.Time
}

func NewCoupon(
	id uuid.UUID,
	code string,
	discountType string,
	amount float64,
	spaceID *uuid.UUID,
	validFrom, validTo *time.Time,
) (*Coupon, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	dt := booking.DiscountType(discountType)
	if dt != booking.DiscountFixed && dt != booking.DiscountPercent {
		return nil, ErrInvalidDiscountType
	}
	if amount < 0 {
		return nil, ErrInvalidDiscountAmount
	}

	return &Coupon{
		id:           id,
		code:         couponCode,
		discountType: dt,
		amount:       amount,
		spaceID:      spaceID,
		validFrom:    validFrom,
		validTo:      validTo,
	}, nil
}

func (c *Coupon) IsValidAt(t time.Time) bool {
	if c.validFrom != nil && t.Before(*c.validFrom) {
		return false
	}
	if c.validTo != nil && t.After(*c.validTo) {
		return false
	}
	return true
}

func (c *Coupon) ValidateUsage(t time.Time, spaceID uuid.UUID) error {
	if c.validFrom != nil && t.Before(*c.validFrom) {
		return ErrCouponNotYetValid
	}
	if c.validTo != nil && t.After(*c.validTo) {
		return ErrCouponExpired
	}
	if c.spaceID != nil && *c.spaceID != spaceID {
		return ErrWrongSpace
	}
	return nil
}

func (c *Coupon) Scope() booking.CouponScope {
	if c.spaceID != nil {
		return booking.ScopeSpace
	}
	return booking.ScopeGlobal
}

// Snapshot freezes the coupon into the read-only form the pricing engine
// consumes and bookings persist.
func (c *Coupon) Snapshot() booking.CouponSnapshot {
	return booking.CouponSnapshot{
		Code:         c.code.String(),
		DiscountType: c.discountType,
		Amount:       c.amount,
		Scope:        c.Scope(),
	}
}

func (c *Coupon) ID() uuid.UUID                      { return c.id }
func (c *Coupon) Code() Code                         { return c.code }
func (c *Coupon) DiscountType() booking.DiscountType { return c.discountType }
func (c *Coupon) Amount() float64                    { return c.amount }
func (c *Coupon) SpaceID() *uuid.UUID                { return c.spaceID }
func (c *Coupon) ValidFrom() *time.Time              { return c.validFrom }
func (c *Coupon) ValidTo() *time.Time                { return c.validTo }
