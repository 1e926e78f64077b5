package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"

	"homefix/utils"
)

// GetServices handles GET /api/services.
func (h *BookingHandler) GetServices(c *gin.Context) {
	services, err := h.BookingSvc.ListServices(c.Request.Context())
	if err != nil {
		utils.JSONError(c, getLogger(c), errors.Annotate(err, "listing services"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "services": services})
}
