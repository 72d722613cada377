package booking

// TierType labels a price line item.
type TierType string

const (
	TierMonths TierType = "months"
	TierWeeks  TierType = "weeks"
	TierDays   TierType = "days"
	TierHours  TierType = "hours"
)

// LineItem is one billed tier of the rental price.
type LineItem struct {
	Type     TierType `json:"type"`
	Quantity int      `json:"quantity"`
	Rate     int64    `json:"rate"`
	Total    int64    `json:"total"`
}

// QuoteContext carries everything besides the rate sheet and the interval
// that influences a price: deployment fee rules, tax, coupon snapshots and
// the guest count for per-person fees. It is plain data supplied by the
// caller, so identical inputs always produce identical breakdowns.
type QuoteContext struct {
	ExtraCharges []ExtraCharge
	BuyerFees    []FeeRule
	SellerFees   []FeeRule
	TaxPercent   float64
	Coupons      []CouponSnapshot
	Guests       int
}

// PriceBreakdown is the full auditable result of pricing one interval.
// All money fields are cents.
type PriceBreakdown struct {
	// Items keep the raw per-tier math. When cross-tier capping fires,
	// Price is the capped amount and the item totals sum above it.
	Items []LineItem `json:"items"`

	ExtraFeeList []AppliedExtraCharge `json:"extraFeeList"`
	GuestFeeList []AppliedFee         `json:"guestFeeList"`
	HostFeeList  []AppliedFee         `json:"hostFeeList"`

	TimeInfo DurationBreakdown `json:"timeInfo"`

	Price              int64 `json:"price"`
	ExtraFee           int64 `json:"extraFee"`
	PriceAfterExtraFee int64 `json:"priceAfterExtraFee"`
	GuestFee           int64 `json:"guestFee"`
	PriceAfterGuestFee int64 `json:"priceAfterGuestFee"`
	Tax                int64 `json:"tax"`
	PriceAfterTax      int64 `json:"priceAfterTax"`

	CouponType    CouponScope `json:"couponType"`
	Discount      int64       `json:"discount"`
	PayableAmount int64       `json:"payableAmount"`

	HostFee     int64 `json:"hostFee"`
	AdminAmount int64 `json:"adminAmount"`
	HostAmount  int64 `json:"hostAmount"`

	RentalTotal int64 `json:"rentalTotal"`
	SubTotal    int64 `json:"subTotal"`
	Total       int64 `json:"total"`
	GrandTotal  int64 `json:"grandTotal"`
}

// EmptyBreakdown is the defined all-zero result returned when a space has
// no resolvable rate data. Callers render it as an empty quote.
func EmptyBreakdown() PriceBreakdown {
	return PriceBreakdown{
		Items:        []LineItem{},
		ExtraFeeList: []AppliedExtraCharge{},
		GuestFeeList: []AppliedFee{},
		HostFeeList:  []AppliedFee{},
		CouponType:   ScopeGlobal,
	}
}

// ComputePrice prices an interval against a rate sheet and quote context.
//
// Tiered mode requires all four tiers; anything less bills whole days at
// the sheet's fallback day rate. A sheet with no usable rate at all yields
// the all-zero breakdown rather than an error; an invalid interval is a
// caller bug and fails with ErrInvalidInterval.
func ComputePrice(sheet RateSheet, iv Interval, qctx QuoteContext) (PriceBreakdown, error) {
	if !iv.end.After(iv.start) {
		return PriceBreakdown{}, ErrInvalidInterval
	}
	if !sheet.HasAnyRate() {
		return EmptyBreakdown(), nil
	}

	totalHours := iv.DurationHours()
	rates := sheet.Resolve()

	bd := EmptyBreakdown()

	if rates.Tiered() {
		timeInfo, err := Decompose(iv, sheet.billingDay())
		if err != nil {
			return PriceBreakdown{}, err
		}
		bd.TimeInfo = timeInfo
		bd.Items = tieredItems(timeInfo, rates)
		for _, item := range bd.Items {
			bd.Price += item.Total
		}
		bd.Price = capAcrossTiers(bd.Price, timeInfo, rates)
	} else {
		days := ceilDiv(totalHours, HoursPerDay)
		rate := sheet.FallbackDayRate()
		bd.TimeInfo = DurationBreakdown{Days: days}
		bd.Items = []LineItem{{Type: TierDays, Quantity: days, Rate: rate, Total: int64(days) * rate}}
		bd.Price = int64(days) * rate
	}

	guests := qctx.Guests
	if guests < 1 {
		guests = 1
	}

	// Extras configured on the space.
	dayEquivalent := bd.TimeInfo.DayEquivalent()
	for _, extra := range qctx.ExtraCharges {
		row := extra.apply(totalHours, dayEquivalent)
		bd.ExtraFee += row
		bd.ExtraFeeList = append(bd.ExtraFeeList, AppliedExtraCharge{ExtraCharge: extra, Total: row})
	}
	bd.PriceAfterExtraFee = bd.Price + bd.ExtraFee

	// Buyer fees compound on top of the extras.
	for _, fee := range qctx.BuyerFees {
		row := fee.apply(bd.PriceAfterExtraFee, guests)
		bd.GuestFee += row
		bd.GuestFeeList = append(bd.GuestFeeList, AppliedFee{FeeRule: fee, Total: row})
	}
	bd.PriceAfterGuestFee = bd.PriceAfterExtraFee + bd.GuestFee

	bd.Tax = percentOf(bd.PriceAfterGuestFee, qctx.TaxPercent)
	bd.PriceAfterTax = bd.PriceAfterGuestFee + bd.Tax

	// Seller fees are carved from base+extras, before buyer markup.
	for _, fee := range qctx.SellerFees {
		row := fee.apply(bd.PriceAfterExtraFee, guests)
		bd.HostFee += row
		bd.HostFeeList = append(bd.HostFeeList, AppliedFee{FeeRule: fee, Total: row})
	}

	bd.AdminAmount = bd.HostFee + bd.Tax + bd.GuestFee
	bd.HostAmount = bd.PriceAfterTax - bd.AdminAmount

	// Coupons discount against priceAfterExtraFee, cumulatively clipped so
	// the total discount never exceeds the pre-discount payable amount.
	var globalDiscount, spaceDiscount int64
	remaining := bd.PriceAfterTax
	for _, c := range qctx.Coupons {
		off := c.resolveAmount(bd.PriceAfterExtraFee)
		if off > remaining {
			off = remaining
		}
		if off <= 0 {
			continue
		}
		remaining -= off
		if c.Scope == ScopeSpace {
			spaceDiscount += off
		} else {
			globalDiscount += off
		}
	}
	bd.Discount = globalDiscount + spaceDiscount
	if spaceDiscount > 0 {
		bd.CouponType = ScopeSpace
	}

	bd.PayableAmount = bd.PriceAfterTax - bd.Discount
	if bd.PayableAmount < 0 {
		bd.PayableAmount = 0
	}

	bd.AdminAmount -= globalDiscount
	if bd.AdminAmount < 0 {
		bd.AdminAmount = 0
	}
	bd.HostAmount -= spaceDiscount
	if bd.HostAmount < 0 {
		bd.HostAmount = 0
	}

	bd.RentalTotal = bd.Price + bd.ExtraFee
	bd.SubTotal = bd.RentalTotal + bd.GuestFee
	bd.Total = bd.SubTotal + bd.Tax
	bd.GrandTotal = bd.Total - bd.Discount
	if bd.GrandTotal < 0 {
		bd.GrandTotal = 0
	}

	return bd, nil
}

func tieredItems(timeInfo DurationBreakdown, rates ResolvedRates) []LineItem {
	items := make([]LineItem, 0, 4)
	if timeInfo.Months > 0 {
		items = append(items, lineItem(TierMonths, timeInfo.Months, rates.Monthly))
	}
	if timeInfo.Weeks > 0 {
		items = append(items, lineItem(TierWeeks, timeInfo.Weeks, rates.Weekly))
	}
	if timeInfo.Days > 0 {
		items = append(items, lineItem(TierDays, timeInfo.Days, rates.Daily))
	}
	if timeInfo.Hours > 0 {
		items = append(items, lineItem(TierHours, timeInfo.Hours, rates.Hourly))
	}
	return items
}

func lineItem(t TierType, qty int, rate int64) LineItem {
	return LineItem{Type: t, Quantity: qty, Rate: rate, Total: int64(qty) * rate}
}

// capAcrossTiers keeps a fragment of a tier from costing more than one unit
// of the next tier up: a few hours never exceed a day, a few days never
// exceed a week, a few weeks never exceed a month.
func capAcrossTiers(price int64, ti DurationBreakdown, rates ResolvedRates) int64 {
	switch {
	case ti.Months == 0 && ti.Weeks == 0 && ti.Days == 0 && ti.Hours > 0 && rates.Daily > 0:
		if price > rates.Daily {
			return rates.Daily
		}
	case ti.Months == 0 && ti.Weeks == 0 && ti.Days > 0 && rates.Weekly > 0:
		if price > rates.Weekly {
			return rates.Weekly
		}
	case ti.Months == 0 && ti.Weeks > 0 && rates.Monthly > 0:
		if price > rates.Monthly {
			return rates.Monthly
		}
	}
	return price
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
