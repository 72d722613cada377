package api

import (
	"errors"
	"net/http"

	"space-booking-api/internal/domain/booking"
	reqdto "space-booking-api/internal/handler/dto/request"
	resdto "space-booking-api/internal/handler/dto/response"
	"space-booking-api/internal/handler/middleware"
	"space-booking-api/internal/pkg/errs"
	"space-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Create booking
// @Description Book a space for the requested slot
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	guestID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	bookingRM, err := h.bookingUseCase.CreateBooking(c.Request.Context(), usecase.CreateBookingParams{
		SpaceID:    req.SpaceID,
		GuestID:    guestID,
		Start:      req.Start,
		End:        req.End,
		Guests:     req.Guests,
		CouponCode: req.GetCouponCode(),
		Note:       req.Note,
	})
	if err != nil {
		h.respondCreateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingRM(bookingRM))
}

func (h *BookingHandler) respondCreateError(c *gin.Context, err error) {
	var rejection *booking.Rejection
	if errors.As(err, &rejection) {
		c.JSON(http.StatusConflict, gin.H{
			"error":  rejection.Message,
			"reason": rejection.Reason,
		})
		return
	}

	switch {
	case errs.Is(err, usecase.ErrSpaceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Space not found",
		})
	case errs.Is(err, usecase.ErrCouponNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Coupon not found",
		})
	case errs.Is(err, usecase.ErrInvalidCoupon):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Coupon cannot be applied to this booking",
		})
	case errs.Is(err, usecase.ErrInvalidInterval):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "End time must be after start time",
		})
	case errs.Is(err, booking.ErrBookingInPast):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cannot book a slot in the past",
		})
	case errs.Is(err, booking.ErrTooManyGuests):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Guest count exceeds space capacity",
		})
	case errs.Is(err, usecase.ErrBookingConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Time slot is already booked",
		})
	case errs.Is(err, usecase.ErrDomainValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Booking request violates space rules",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// @Summary Get booking
// @Description Get one of the caller's bookings by ID
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	guestID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	bookingRM, err := h.bookingUseCase.GetBooking(c.Request.Context(), bookingID, guestID)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errs.Is(err, usecase.ErrBookingForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Booking belongs to another user",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRM(bookingRM))
}

// @Summary List bookings
// @Description List the caller's bookings, newest slot first
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.BookingListResponse
// @Router /bookings [get]
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	guestID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	bookings, err := h.bookingUseCase.GetUserBookings(c.Request.Context(), guestID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]*resdto.BookingListResponse, 0, len(bookings))
	for _, rm := range bookings {
		responses = append(responses, resdto.FromBookingListRM(rm))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Cancel booking
// @Description Cancel one of the caller's bookings before it starts
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	guestID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	if err := h.bookingUseCase.CancelBooking(c.Request.Context(), bookingID, guestID); err != nil {
		switch {
		case errs.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errs.Is(err, usecase.ErrBookingForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Booking belongs to another user",
			})
		case errs.Is(err, booking.ErrBookingNotCancelable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Booking can no longer be cancelled",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
