package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"homefix/middleware"
)

// getLogger retrieves the request-scoped Zap logger.
func getLogger(c *gin.Context) *zap.Logger {
	return middleware.GetLogger(c)
}
