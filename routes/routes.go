package routes

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"homefix/handlers"
	"homefix/middleware"
	"homefix/utils"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "status": "ok"})
	})
}

// RegisterMetricsRoute exposes Prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterPublicRoutes registers the customer-facing API.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.GetServices)
		api.POST("/book", middleware.RateLimitMiddleware(hb.MaxRequestsPerMin), hb.CreateBooking)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/admin")
	{
		adminGroup.Use(middleware.AdminTokenMiddleware(hb.AdminToken))
		adminGroup.GET("/bookings", hb.AdminHandler.ListBookingsHandler)
		adminGroup.GET("/technicians", hb.AdminHandler.ListTechniciansHandler)
		adminGroup.POST("/technicians", hb.AdminHandler.CreateTechnicianHandler)
		adminGroup.POST("/assign", hb.AdminHandler.AssignHandler)
	}
}

// RegisterFrontend serves the single-page frontend from staticDir. Unknown
// GET paths outside /api and /admin fall back to index.html.
func RegisterFrontend(r *gin.Engine, staticDir string) {
	index := filepath.Join(staticDir, "index.html")

	r.GET("/", func(c *gin.Context) {
		serveFile(c, index)
	})

	r.NoRoute(func(c *gin.Context) {
		p := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/admin/") {
			c.JSON(http.StatusNotFound, utils.ErrorResponse{OK: false, Error: "Not found"})
			return
		}

		file := filepath.Join(staticDir, filepath.FromSlash(path.Clean("/"+p)))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		serveFile(c, index)
	})
}

func serveFile(c *gin.Context, file string) {
	if _, err := os.Stat(file); err != nil {
		c.JSON(http.StatusNotFound, utils.ErrorResponse{OK: false, Error: "Not found"})
		return
	}
	c.File(file)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", middleware.AdminTokenHeader},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(corsConfig(hb.AllowedOrigins)))

	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterFrontend(r, hb.StaticDir)
}
