package space

import (
	"errors"
	"strings"
	"time"

	"space-booking-api/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrEmptySpaceName      = errors.New("space name cannot be empty")
	ErrSpaceNameTooLong    = errors.New("space name is too long (max 255 characters)")
	ErrNegativeMinStay     = errors.New("minimum stay cannot be negative")
	ErrInvalidBillingDay   = errors.New("hours per billing day must be between 1 and 24")
	ErrInvalidWindowHour   = errors.New("availability window hours must be between 0 and 24")
	ErrInvertedDailyWindow = errors.New("availability window must open before it closes")
	ErrNegativeGuestLimit  = errors.New("guest limit cannot be negative")
	ErrNegativeChargePrice = errors.New("extra charge price cannot be negative")
	ErrInvalidChargeKind   = errors.New("extra charge type must be one_time, per_hour or per_day")
	ErrEmptyChargeName     = errors.New("extra charge name cannot be empty")
)

const MaxSpaceNameLength = 255

// Space is a bookable listing. It owns the rate card, the booking policy
// and the host-defined extra charges the pricing engine consumes.
type Space struct {
	id                uuid.UUID
	hostID            uuid.UUID
	name              string
	maxGuests         int
	rates             booking.RateSheet
	minStayHours      int
	availableFromHour *int
	availableToHour   *int
	extraCharges      []booking.ExtraCharge
	createdAt         time.Time
	updatedAt         time.Time
}

func NewSpace(
	id uuid.UUID,
	hostID uuid.UUID,
	name string,
	maxGuests int,
	rates booking.RateSheet,
	minStayHours int,
	availableFromHour, availableToHour *int,
	extraCharges []booking.ExtraCharge,
) (*Space, error) {
	if err := validateSpaceName(name); err != nil {
		return nil, err
	}
	if maxGuests < 0 {
		return nil, ErrNegativeGuestLimit
	}
	if minStayHours < 0 {
		return nil, ErrNegativeMinStay
	}
	if rates.HoursPerBillingDay != 0 && (rates.HoursPerBillingDay < 1 || rates.HoursPerBillingDay > booking.HoursPerDay) {
		return nil, ErrInvalidBillingDay
	}
	if err := validateDailyWindow(availableFromHour, availableToHour); err != nil {
		return nil, err
	}
	for _, charge := range extraCharges {
		if err := validateExtraCharge(charge); err != nil {
			return nil, err
		}
	}

	return &Space{
		id:                id,
		hostID:            hostID,
		name:              strings.TrimSpace(name),
		maxGuests:         maxGuests,
		rates:             rates,
		minStayHours:      minStayHours,
		availableFromHour: availableFromHour,
		availableToHour:   availableToHour,
		extraCharges:      extraCharges,
	}, nil
}

// Policy returns the availability constraints the checker evaluates.
func (s *Space) Policy() booking.Policy {
	return booking.Policy{
		MinStayHours:      s.minStayHours,
		AvailableFromHour: s.availableFromHour,
		AvailableToHour:   s.availableToHour,
	}
}

func (s *Space) CanHost(guests int) bool {
	return s.maxGuests == 0 || guests <= s.maxGuests
}

func validateSpaceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptySpaceName
	}
	if len(name) > MaxSpaceNameLength {
		return ErrSpaceNameTooLong
	}
	return nil
}

func validateDailyWindow(from, to *int) error {
	for _, h := range []*int{from, to} {
		if h != nil && (*h < 0 || *h > booking.HoursPerDay) {
			return ErrInvalidWindowHour
		}
	}
	if from != nil && to != nil && *from >= *to {
		return ErrInvertedDailyWindow
	}
	return nil
}

func validateExtraCharge(charge booking.ExtraCharge) error {
	if strings.TrimSpace(charge.Name) == "" {
		return ErrEmptyChargeName
	}
	switch charge.Type {
	case booking.ExtraOneTime, booking.ExtraPerHour, booking.ExtraPerDay:
	default:
		return ErrInvalidChargeKind
	}
	if charge.Price < 0 {
		return ErrNegativeChargePrice
	}
	return nil
}

func (s *Space) ID() uuid.UUID                       { return s.id }
func (s *Space) HostID() uuid.UUID                   { return s.hostID }
func (s *Space) Name() string                        { return s.name }
func (s *Space) MaxGuests() int                      { return s.maxGuests }
func (s *Space) Rates() booking.RateSheet            { return s.rates }
func (s *Space) MinStayHours() int                   { return s.minStayHours }
func (s *Space) AvailableFromHour() *int             { return s.availableFromHour }
func (s *Space) AvailableToHour() *int               { return s.availableToHour }
func (s *Space) ExtraCharges() []booking.ExtraCharge { return s.extraCharges }
func (s *Space) CreatedAt() time.Time                { return s.createdAt }
func (s *Space) UpdatedAt() time.Time                { return s.updatedAt }
