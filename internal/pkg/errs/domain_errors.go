package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Space errors
	ErrSpaceNotFound = errors.New("space not found")

	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingConflict  = errors.New("booking conflict")
	ErrSpaceUnavailable = errors.New("space unavailable")
	ErrInvalidInterval  = errors.New("invalid time interval")
	ErrBookingInPast    = errors.New("booking starts in the past")
	ErrTooManyGuests    = errors.New("guest count exceeds space capacity")

	// Coupon errors
	ErrCouponNotFound = errors.New("coupon not found")
	ErrInvalidCoupon  = errors.New("invalid coupon")

	// Validation errors
	ErrDomainValidation       = errors.New("domain validation error")
	ErrDomainValidationFailed = errors.New("domain validation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
