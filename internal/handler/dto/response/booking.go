package response

import (
	"time"

	"space-booking-api/internal/domain/booking"
	"space-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID        uuid.UUID              `json:"id"`
	SpaceID   uuid.UUID              `json:"spaceId"`
	SpaceName string                 `json:"spaceName"`
	GuestID   uuid.UUID              `json:"guestId"`
	GuestName string                 `json:"guestName"`
	Start     time.Time              `json:"start"`
	End       time.Time              `json:"end"`
	Status    string                 `json:"status"`
	Guests    int                    `json:"guests"`
	CouponID  *uuid.UUID             `json:"couponId,omitempty"`
	Price     booking.PriceBreakdown `json:"price"`
	Note      *string                `json:"note,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

type BookingListResponse struct {
	ID        uuid.UUID `json:"id"`
	SpaceID   uuid.UUID `json:"spaceId"`
	SpaceName string    `json:"spaceName"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    string    `json:"status"`
	Payable   int64     `json:"payable"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromBookingRM(rm *readmodel.BookingRM) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromBookingListRM(rm *readmodel.BookingListRM) *BookingListResponse {
	var resp BookingListResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
