package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
	"go.uber.org/zap"

	"homefix/models"
	"homefix/services/booking"
	"homefix/utils"
)

// BookingHandler serves the public booking endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{BookingSvc: svc}
}

// CreateBooking handles POST /api/book.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	logger := getLogger(c)

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Debug("CreateBooking: invalid request body", zap.Error(err))
		utils.JSONError(c, logger, errors.NewNotValid(nil, "Invalid request body"))
		return
	}

	receipt, err := h.BookingSvc.CreateBooking(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":          true,
		"id":          receipt.ID,
		"wa_link":     receipt.WALink,
		"twilio_sent": receipt.NotificationSent,
	})
}
