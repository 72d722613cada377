//go:build unit

package builder

import (
	"time"

	"space-booking-api/internal/domain/coupon"
	"space-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	ID           uuid.UUID
	Code         string
	DiscountType string
	Amount       float64
	SpaceID      *uuid.UUID
	ValidFrom    *time.Time
	ValidTo      *time.Time
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		ID:           uuid.New(),
		Code:         "SAVE10",
		DiscountType: "fixed",
		Amount:       1000,
	}
}

func (c *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(c)
	return c
}

func (c *CouponBuilder) BuildDomain() (*coupon.Coupon, error) {
	return coupon.NewCoupon(c.ID, c.Code, c.DiscountType, c.Amount, c.SpaceID, c.ValidFrom, c.ValidTo)
}

func (c *CouponBuilder) BuildReadModel() *readmodel.CouponRM {
	return &readmodel.CouponRM{
		ID:           c.ID,
		Code:         c.Code,
		DiscountType: c.DiscountType,
		Amount:       c.Amount,
		SpaceID:      c.SpaceID,
		ValidFrom:    c.ValidFrom,
		ValidTo:      c.ValidTo,
	}
}

// Fluent builder methods
func (c *CouponBuilder) WithCode(code string) *CouponBuilder {
	c.Code = code
	return c
}

func (c *CouponBuilder) WithDiscount(discountType string, amount float64) *CouponBuilder {
	c.DiscountType = discountType
	c.Amount = amount
	return c
}

func (c *CouponBuilder) ForSpace(spaceID uuid.UUID) *CouponBuilder {
	c.SpaceID = &spaceID
	return c
}

func (c *CouponBuilder) WithValidity(from, to time.Time) *CouponBuilder {
	c.ValidFrom = &from
	c.ValidTo = &to
	return c
}
