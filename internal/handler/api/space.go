package api

import (
	"errors"
	"net/http"

	reqdto "space-booking-api/internal/handler/dto/request"
	resdto "space-booking-api/internal/handler/dto/response"
	"space-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SpaceHandler struct {
	spaceUseCase usecase.SpaceUseCase
}

func NewSpaceHandler(spaceUseCase usecase.SpaceUseCase) *SpaceHandler {
	return &SpaceHandler{
		spaceUseCase: spaceUseCase,
	}
}

// @Summary Get space
// @Description Get a space with its rates and booking policy
// @Tags spaces
// @Produce json
// @Param id path string true "Space ID"
// @Success 200 {object} resdto.SpaceResponse
// @Failure 404 {object} map[string]string
// @Router /spaces/{id} [get]
func (h *SpaceHandler) GetSpace(c *gin.Context) {
	spaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid space ID",
		})
		return
	}

	spaceRM, err := h.spaceUseCase.GetSpace(c.Request.Context(), spaceID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSpaceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Space not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSpaceRM(spaceRM))
}

// @Summary Verify selected times
// @Description Check availability for a slot and quote its price without booking
// @Tags spaces
// @Accept json
// @Produce json
// @Param id path string true "Space ID"
// @Param request body reqdto.VerifyTimesRequest true "Slot to verify"
// @Success 200 {object} resdto.VerifyTimesResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /spaces/{id}/verify [post]
func (h *SpaceHandler) VerifySelectedTimes(c *gin.Context) {
	spaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid space ID",
		})
		return
	}

	var req reqdto.VerifyTimesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.spaceUseCase.VerifySelectedTimes(c.Request.Context(), spaceID, usecase.VerifyParams{
		Start:      req.Start,
		End:        req.End,
		Guests:     req.Guests,
		CouponCode: req.GetCouponCode(),
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSpaceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Space not found",
			})
		case errors.Is(err, usecase.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon not found",
			})
		case errors.Is(err, usecase.ErrInvalidCoupon):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Coupon cannot be applied to this booking",
			})
		case errors.Is(err, usecase.ErrInvalidInterval):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "End time must be after start time",
			})
		case errors.Is(err, usecase.ErrBookingInPast):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cannot book a slot in the past",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.VerifyTimesResponse{
		Available: result.Available,
		Reason:    result.Reason,
		Message:   result.Message,
		Price:     result.Price,
	})
}

// @Summary Get space calendar
// @Description List bookings and blocks for a space within a date range
// @Tags spaces
// @Produce json
// @Param id path string true "Space ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} resdto.CalendarEntryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /spaces/{id}/calendar [get]
func (h *SpaceHandler) GetCalendar(c *gin.Context) {
	spaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid space ID",
		})
		return
	}

	var query reqdto.CalendarQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date range",
		})
		return
	}

	entries, err := h.spaceUseCase.GetCalendar(c.Request.Context(), spaceID, query.From, query.To)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSpaceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Space not found",
			})
		case errors.Is(err, usecase.ErrInvalidInterval):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Range end must be after range start",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	responses := make([]resdto.CalendarEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, resdto.FromCalendarEntryRM(entry))
	}
	c.JSON(http.StatusOK, responses)
}
