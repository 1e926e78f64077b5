package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
	"go.uber.org/zap"

	"homefix/models"
	"homefix/services/booking"
	"homefix/services/technician"
	"homefix/utils"
)

// AdminHandler encapsulates the token-protected admin operations.
type AdminHandler struct {
	BookingSvc    booking.BookingService
	TechnicianSvc technician.TechnicianService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(bs booking.BookingService, ts technician.TechnicianService) *AdminHandler {
	return &AdminHandler{
		BookingSvc:    bs,
		TechnicianSvc: ts,
	}
}

// ListBookingsHandler handles GET /admin/bookings.
func (ah *AdminHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := ah.BookingSvc.ListBookings(c.Request.Context())
	if err != nil {
		utils.JSONError(c, getLogger(c), errors.Annotate(err, "listing bookings"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "bookings": bookings})
}

// ListTechniciansHandler handles GET /admin/technicians.
func (ah *AdminHandler) ListTechniciansHandler(c *gin.Context) {
	techs, err := ah.TechnicianSvc.ListTechnicians(c.Request.Context())
	if err != nil {
		utils.JSONError(c, getLogger(c), errors.Annotate(err, "listing technicians"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "techs": techs})
}

// CreateTechnicianHandler handles POST /admin/technicians.
func (ah *AdminHandler) CreateTechnicianHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.TechnicianInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Debug("CreateTechnician: invalid request body", zap.Error(err))
		utils.JSONError(c, logger, errors.NewNotValid(nil, "Invalid request body"))
		return
	}

	id, err := ah.TechnicianSvc.RegisterTechnician(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id})
}

// AssignHandler handles POST /admin/assign.
func (ah *AdminHandler) AssignHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.AssignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Debug("Assign: invalid request body", zap.Error(err))
		utils.JSONError(c, logger, errors.NewNotValid(nil, "Invalid request body"))
		return
	}

	receipt, err := ah.BookingSvc.AssignBooking(c.Request.Context(), input.BookingID, input.Technician())
	if err != nil {
		utils.JSONError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "wa_link": receipt.WALink})
}
