//go:build unit

package builder

import (
	"time"

	"space-booking-api/internal/domain/booking"
	"space-booking-api/internal/domain/space"
	"space-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type SpaceBuilder struct {
	ID                uuid.UUID
	HostID            uuid.UUID
	Name              string
	MaxGuests         int
	Rates             booking.RateSheet
	MinStayHours      int
	AvailableFromHour *int
	AvailableToHour   *int
	ExtraCharges      []booking.ExtraCharge
}

func NewSpaceBuilder() *SpaceBuilder {
	return &SpaceBuilder{
		ID:        uuid.New(),
		HostID:    uuid.New(),
		Name:      "Downtown Studio",
		MaxGuests: 10,
		Rates: booking.RateSheet{
			Hourly:  1500,
			Daily:   10000,
			Weekly:  60000,
			Monthly: 200000,
		},
	}
}

func (s *SpaceBuilder) With(mutate func(*SpaceBuilder)) *SpaceBuilder {
	mutate(s)
	return s
}

// Build methods
func (s *SpaceBuilder) BuildDomain() (*space.Space, error) {
	return space.NewSpace(
		s.ID,
		s.HostID,
		s.Name,
		s.MaxGuests,
		s.Rates,
		s.MinStayHours,
		s.AvailableFromHour,
		s.AvailableToHour,
		s.ExtraCharges,
	)
}

func (s *SpaceBuilder) BuildReadModel() *readmodel.SpaceRM {
	now := time.Now()
	return &readmodel.SpaceRM{
		ID:                s.ID,
		HostID:            s.HostID,
		Name:              s.Name,
		MaxGuests:         s.MaxGuests,
		HourlyRate:        s.Rates.Hourly,
		DailyRate:         s.Rates.Daily,
		WeeklyRate:        s.Rates.Weekly,
		MonthlyRate:       s.Rates.Monthly,
		DiscountedHourly:  s.Rates.DiscountedHourly,
		DiscountedDaily:   s.Rates.DiscountedDaily,
		DiscountedWeekly:  s.Rates.DiscountedWeekly,
		DiscountedMonthly: s.Rates.DiscountedMonthly,
		ListingPrice:      s.Rates.ListingPrice,
		SalePrice:         s.Rates.SalePrice,
		HoursPerDay:       s.Rates.HoursPerBillingDay,
		MinStayHours:      s.MinStayHours,
		AvailableFromHour: s.AvailableFromHour,
		AvailableToHour:   s.AvailableToHour,
		ExtraCharges:      s.ExtraCharges,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (s *SpaceBuilder) BuildSpec() booking.SpaceSpec {
	return booking.SpaceSpec{
		ID:        s.ID,
		MaxGuests: s.MaxGuests,
		Rates:     s.Rates,
		Policy: booking.Policy{
			MinStayHours:      s.MinStayHours,
			AvailableFromHour: s.AvailableFromHour,
			AvailableToHour:   s.AvailableToHour,
		},
		ExtraCharges: s.ExtraCharges,
	}
}

// Fluent builder methods
func (s *SpaceBuilder) WithName(name string) *SpaceBuilder {
	s.Name = name
	return s
}

func (s *SpaceBuilder) WithMaxGuests(n int) *SpaceBuilder {
	s.MaxGuests = n
	return s
}

func (s *SpaceBuilder) WithRates(rates booking.RateSheet) *SpaceBuilder {
	s.Rates = rates
	return s
}

func (s *SpaceBuilder) WithMinStay(hours int) *SpaceBuilder {
	s.MinStayHours = hours
	return s
}

func (s *SpaceBuilder) WithDailyWindow(from, to int) *SpaceBuilder {
	s.AvailableFromHour = &from
	s.AvailableToHour = &to
	return s
}

func (s *SpaceBuilder) WithExtraCharge(charge booking.ExtraCharge) *SpaceBuilder {
	s.ExtraCharges = append(s.ExtraCharges, charge)
	return s
}
