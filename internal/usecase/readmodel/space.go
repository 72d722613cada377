package readmodel

import (
	"time"

	"space-booking-api/internal/domain/booking"

	"github.com/google/uuid"
)

type SpaceRM struct {
	ID                uuid.UUID             `json:"id"`
	HostID            uuid.UUID             `json:"host_id"`
	Name              string                `json:"name"`
	MaxGuests         int                   `json:"max_guests"`
	HourlyRate        int64                 `json:"hourly_rate"`
	DailyRate         int64                 `json:"daily_rate"`
	WeeklyRate        int64                 `json:"weekly_rate"`
	MonthlyRate       int64                 `json:"monthly_rate"`
	DiscountedHourly  int64                 `json:"discounted_hourly"`
	DiscountedDaily   int64                 `json:"discounted_daily"`
	DiscountedWeekly  int64                 `json:"discounted_weekly"`
	DiscountedMonthly int64                 `json:"discounted_monthly"`
	ListingPrice      int64                 `json:"listing_price"`
	SalePrice         int64                 `json:"sale_price"`
	HoursPerDay       int                   `json:"hours_per_day"`
	MinStayHours      int                   `json:"min_stay_hours"`
	AvailableFromHour *int                  `json:"available_from_hour,omitempty"`
	AvailableToHour   *int                  `json:"available_to_hour,omitempty"`
	ExtraCharges      []booking.ExtraCharge `json:"extra_charges"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

// RateSheet projects the read model into the pricing engine's input.
func (s *SpaceRM) RateSheet() booking.RateSheet {
	return booking.RateSheet{
		Hourly:             s.HourlyRate,
		Daily:              s.DailyRate,
		Weekly:             s.WeeklyRate,
		Monthly:            s.MonthlyRate,
		DiscountedHourly:   s.DiscountedHourly,
		DiscountedDaily:    s.DiscountedDaily,
		DiscountedWeekly:   s.DiscountedWeekly,
		DiscountedMonthly:  s.DiscountedMonthly,
		ListingPrice:       s.ListingPrice,
		SalePrice:          s.SalePrice,
		HoursPerBillingDay: s.HoursPerDay,
	}
}

func (s *SpaceRM) Policy() booking.Policy {
	return booking.Policy{
		MinStayHours:      s.MinStayHours,
		AvailableFromHour: s.AvailableFromHour,
		AvailableToHour:   s.AvailableToHour,
	}
}

// CalendarEntryRM is one occupied interval on a space's calendar, either a
// booking or a host block.
type CalendarEntryRM struct {
	Kind  string    `json:"kind"` // "booking" or "block"
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
