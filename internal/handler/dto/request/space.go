package request

import (
	"strings"
	"time"
)

type VerifyTimesRequest struct {
	Start      time.Time `json:"start" binding:"required"`
	End        time.Time `json:"end" binding:"required"`
	Guests     int       `json:"guests" binding:"omitempty,min=1"`
	CouponCode *string   `json:"coupon_code,omitempty"`
}

func (r VerifyTimesRequest) GetCouponCode() *string {
	if r.CouponCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CouponCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type CalendarQuery struct {
	From time.Time `form:"from" time_format:"2006-01-02" binding:"required"`
	To   time.Time `form:"to" time_format:"2006-01-02" binding:"required"`
}
