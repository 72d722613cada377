package response

import (
	"time"

	"space-booking-api/internal/domain/booking"
	"space-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SpaceResponse struct {
	ID                uuid.UUID             `json:"id"`
	HostID            uuid.UUID             `json:"hostId"`
	Name              string                `json:"name"`
	MaxGuests         int                   `json:"maxGuests"`
	HourlyRate        int64                 `json:"hourlyRate"`
	DailyRate         int64                 `json:"dailyRate"`
	WeeklyRate        int64                 `json:"weeklyRate"`
	MonthlyRate       int64                 `json:"monthlyRate"`
	ListingPrice      int64                 `json:"listingPrice"`
	SalePrice         int64                 `json:"salePrice"`
	MinStayHours      int                   `json:"minStayHours"`
	AvailableFromHour *int                  `json:"availableFromHour,omitempty"`
	AvailableToHour   *int                  `json:"availableToHour,omitempty"`
	ExtraCharges      []booking.ExtraCharge `json:"extraCharges"`
	CreatedAt         time.Time             `json:"createdAt"`
}

type CalendarEntryResponse struct {
	Kind  string    `json:"kind"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// VerifyTimesResponse reports whether the probed slot is bookable and, when
// it is, the full price breakdown the guest would pay.
type VerifyTimesResponse struct {
	Available bool                    `json:"available"`
	Reason    *string                 `json:"reason,omitempty"`
	Message   *string                 `json:"message,omitempty"`
	Price     *booking.PriceBreakdown `json:"price,omitempty"`
}

func FromSpaceRM(rm *readmodel.SpaceRM) *SpaceResponse {
	var resp SpaceResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromCalendarEntryRM(rm readmodel.CalendarEntryRM) CalendarEntryResponse {
	return CalendarEntryResponse(rm)
}
