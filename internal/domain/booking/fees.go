package booking

import "math"

// FeeUnit distinguishes flat-amount fees from percentage fees.
type FeeUnit string

const (
	FeeUnitFixed   FeeUnit = "fixed"
	FeeUnitPercent FeeUnit = "percent"
)

// FeeRule is a buyer- or seller-side fee configured per deployment.
// Fixed amounts are cents; percent amounts are whole percentage points.
type FeeRule struct {
	Name      string  `json:"name"`
	Unit      FeeUnit `json:"unit"`
	Price     float64 `json:"price"`
	PerPerson bool    `json:"per_person,omitempty"`
}

// AppliedFee is a fee rule with its computed amount for one booking.
type AppliedFee struct {
	FeeRule
	Total int64 `json:"total"`
}

// apply computes the fee amount in cents against the given base. Per-person
// rules are multiplied by the guest count.
func (f FeeRule) apply(base int64, guests int) int64 {
	var row int64
	switch f.Unit {
	case FeeUnitPercent:
		row = percentOf(base, f.Price)
	default:
		row = int64(math.Round(f.Price))
	}
	if f.PerPerson && guests > 1 {
		row *= int64(guests)
	}
	return row
}

// ExtraChargeKind selects how a space-level extra charge accrues.
type ExtraChargeKind string

const (
	ExtraOneTime ExtraChargeKind = "one_time"
	ExtraPerHour ExtraChargeKind = "per_hour"
	ExtraPerDay  ExtraChargeKind = "per_day"
)

// ExtraCharge is an extra configured on the space itself (cleaning,
// equipment and the like). Price is cents.
type ExtraCharge struct {
	Name  string          `json:"name"`
	Type  ExtraChargeKind `json:"type"`
	Price int64           `json:"price"`
}

// AppliedExtraCharge is an extra charge with its computed amount.
type AppliedExtraCharge struct {
	ExtraCharge
	Total int64 `json:"total"`
}

func (e ExtraCharge) apply(totalHours, totalDays int) int64 {
	switch e.Type {
	case ExtraOneTime:
		return e.Price
	case ExtraPerHour:
		return e.Price * int64(totalHours)
	case ExtraPerDay:
		days := totalDays
		if days < 1 {
			days = 1
		}
		return e.Price * int64(days)
	default:
		return 0
	}
}

// CouponScope decides which side of the marketplace funds a discount.
type CouponScope string

const (
	// ScopeGlobal discounts are funded by the platform.
	ScopeGlobal CouponScope = "global"
	// ScopeSpace discounts are funded by the host of the booked space.
	ScopeSpace CouponScope = "space"
)

// DiscountType mirrors FeeUnit for coupons.
type DiscountType string

const (
	DiscountFixed   DiscountType = "fixed"
	DiscountPercent DiscountType = "percent"
)

// CouponSnapshot is the read-only coupon data the engine consumes. The
// amount is cents for fixed coupons and percentage points otherwise.
type CouponSnapshot struct {
	Code         string       `json:"code"`
	DiscountType DiscountType `json:"discount_type"`
	Amount       float64      `json:"amount"`
	Scope        CouponScope  `json:"scope"`
}

// resolveAmount computes the coupon's discount against the post-extra-fee
// base price.
func (c CouponSnapshot) resolveAmount(priceAfterExtraFee int64) int64 {
	switch c.DiscountType {
	case DiscountPercent:
		return percentOf(priceAfterExtraFee, c.Amount)
	default:
		return int64(math.Round(c.Amount))
	}
}

func percentOf(base int64, pct float64) int64 {
	return int64(math.Round(float64(base) * pct / 100))
}
