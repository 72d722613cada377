package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type CouponRM struct {
	ID           uuid.UUID  `json:"id"`
	Code         string     `json:"code"`
	DiscountType string     `json:"discount_type"`
	Amount       float64    `json:"amount"`
	SpaceID      *uuid.UUID `json:"space_id,omitempty"`
	ValidFrom    *time.Time `json:"valid_from,omitempty"`
	ValidTo      *time.Time `json:"valid_to,omitempty"`
}
