package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	SpaceID    uuid.UUID `json:"space_id" binding:"required"`
	Start      time.Time `json:"start" binding:"required"`
	End        time.Time `json:"end" binding:"required"`
	Guests     int       `json:"guests" binding:"omitempty,min=1"`
	CouponCode *string   `json:"coupon_code,omitempty"`
	Note       *string   `json:"note,omitempty"`
}

func (r CreateBookingRequest) GetCouponCode() *string {
	if r.CouponCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CouponCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
