package booking

// RateSheet is the pricing snapshot extracted from a bookable space.
// All amounts are integer cents; zero means the rate is not set.
type RateSheet struct {
	Hourly  int64
	Daily   int64
	Weekly  int64
	Monthly int64

	DiscountedHourly  int64
	DiscountedDaily   int64
	DiscountedWeekly  int64
	DiscountedMonthly int64

	// Flat listing price, used only when tiered rates are incomplete.
	// SalePrice takes precedence over ListingPrice when positive.
	ListingPrice int64
	SalePrice    int64

	// Hours that count as one billable day. Values < 1 mean 24.
	HoursPerBillingDay int
}

// ResolvedRates are the effective per-tier rates after preferring the
// discounted variant of each tier.
type ResolvedRates struct {
	Hourly  int64
	Daily   int64
	Weekly  int64
	Monthly int64
}

// Tiered reports whether all four tiers carry a positive rate. Anything
// less falls back to flat day-rate billing.
func (r ResolvedRates) Tiered() bool {
	return r.Hourly > 0 && r.Daily > 0 && r.Weekly > 0 && r.Monthly > 0
}

func (s RateSheet) Resolve() ResolvedRates {
	return ResolvedRates{
		Hourly:  pickRate(s.DiscountedHourly, s.Hourly),
		Daily:   pickRate(s.DiscountedDaily, s.Daily),
		Weekly:  pickRate(s.DiscountedWeekly, s.Weekly),
		Monthly: pickRate(s.DiscountedMonthly, s.Monthly),
	}
}

// FlatListingPrice resolves the flat price of the listing, preferring the
// sale price when set.
func (s RateSheet) FlatListingPrice() int64 {
	return pickRate(s.SalePrice, s.ListingPrice)
}

// FallbackDayRate is the rate charged per day when tiered billing is not
// possible: the daily rate if set, else the flat listing price, else the
// best remaining tier treated as a day rate.
func (s RateSheet) FallbackDayRate() int64 {
	rates := s.Resolve()
	for _, candidate := range []int64{rates.Daily, s.FlatListingPrice(), rates.Weekly, rates.Monthly, rates.Hourly} {
		if candidate > 0 {
			return candidate
		}
	}
	return 0
}

// HasAnyRate reports whether the sheet can price anything at all. A sheet
// without any positive rate yields the all-zero breakdown.
func (s RateSheet) HasAnyRate() bool {
	rates := s.Resolve()
	return rates.Tiered() || s.FallbackDayRate() > 0
}

func (s RateSheet) billingDay() int {
	if s.HoursPerBillingDay < 1 {
		return HoursPerDay
	}
	return s.HoursPerBillingDay
}

func pickRate(discounted, base int64) int64 {
	if discounted > 0 {
		return discounted
	}
	if base > 0 {
		return base
	}
	return 0
}
