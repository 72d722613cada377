package booking

// Billing calendar conventions. A month is always 28 days and a week 7 days
// regardless of the calendar dates an interval spans.
const (
	DaysPerMonth = 28
	DaysPerWeek  = 7
	HoursPerDay  = 24
)

// DurationBreakdown is a booking interval decomposed into billable units.
type DurationBreakdown struct {
	Months int `json:"months"`
	Weeks  int `json:"weeks"`
	Days   int `json:"days"`
	Hours  int `json:"hours"`
}

func (d DurationBreakdown) IsZero() bool {
	return d == DurationBreakdown{}
}

// DayEquivalent is the whole-day count represented by the breakdown,
// ignoring the leftover hours.
func (d DurationBreakdown) DayEquivalent() int {
	return d.Months*DaysPerMonth + d.Weeks*DaysPerWeek + d.Days
}

// TotalHours reconstructs the hour count from the breakdown at 24 raw
// hours per day. Because the billing-day carry only ever adds whole days,
// this never under-counts the source interval's ceiling-rounded hours.
func (d DurationBreakdown) TotalHours() int {
	return d.DayEquivalent()*HoursPerDay + d.Hours
}

// Decompose splits an interval into months, weeks, days and leftover hours.
//
// hoursPerDay is the billing-day threshold: once the leftover hours of a
// partial day reach it, they roll into additional whole days. A value < 1
// falls back to 24.
func Decompose(iv Interval, hoursPerDay int) (DurationBreakdown, error) {
	if !iv.end.After(iv.start) {
		return DurationBreakdown{}, ErrInvalidInterval
	}
	if hoursPerDay < 1 {
		hoursPerDay = HoursPerDay
	}

	totalHours := iv.DurationHours()
	totalDays := totalHours / HoursPerDay
	remHours := totalHours % HoursPerDay

	if remHours >= hoursPerDay {
		totalDays += remHours / hoursPerDay
		remHours = remHours % hoursPerDay
	}

	months := totalDays / DaysPerMonth
	rem := totalDays % DaysPerMonth
	weeks := rem / DaysPerWeek
	days := rem % DaysPerWeek

	if days >= DaysPerWeek {
		weeks += days / DaysPerWeek
		days = days % DaysPerWeek
	}
	if weeks >= DaysPerMonth/DaysPerWeek {
		months += weeks / (DaysPerMonth / DaysPerWeek)
		weeks = weeks % (DaysPerMonth / DaysPerWeek)
	}

	return DurationBreakdown{
		Months: months,
		Weeks:  weeks,
		Days:   days,
		Hours:  remHours,
	}, nil
}
