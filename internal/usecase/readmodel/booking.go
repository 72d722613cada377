package readmodel

import (
	"time"

	"space-booking-api/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingRM struct {
	ID        uuid.UUID              `json:"id"`
	SpaceID   uuid.UUID              `json:"space_id"`
	SpaceName string                 `json:"space_name"`
	GuestID   uuid.UUID              `json:"guest_id"`
	GuestName string                 `json:"guest_name"`
	Start     time.Time              `json:"start"`
	End       time.Time              `json:"end"`
	Status    string                 `json:"status"`
	Guests    int                    `json:"guests"`
	CouponID  *uuid.UUID             `json:"coupon_id,omitempty"`
	Price     booking.PriceBreakdown `json:"price"`
	Note      *string                `json:"note,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

type BookingListRM struct {
	ID        uuid.UUID `json:"id"`
	SpaceID   uuid.UUID `json:"space_id"`
	SpaceName string    `json:"space_name"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    string    `json:"status"`
	Payable   int64     `json:"payable"`
	CreatedAt time.Time `json:"created_at"`
}
