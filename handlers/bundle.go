package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers and the settings routes need.
type HandlerBundle struct {
	AdminToken        string
	StaticDir         string
	AllowedOrigins    []string
	MaxRequestsPerMin int

	// Public endpoints
	GetServices   gin.HandlerFunc
	CreateBooking gin.HandlerFunc

	// Admin endpoints
	AdminHandler *AdminHandler
}
