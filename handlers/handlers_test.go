package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"

	"homefix/models"
)

type stubBookingService struct {
	err     error
	receipt *models.BookingReceipt
}

func (s stubBookingService) ListServices(context.Context) ([]models.Service, error) {
	return []models.Service{}, s.err
}

func (s stubBookingService) CreateBooking(context.Context, models.BookingInput) (*models.BookingReceipt, error) {
	return s.receipt, s.err
}

func (s stubBookingService) ListBookings(context.Context) ([]models.Booking, error) {
	return []models.Booking{}, s.err
}

func (s stubBookingService) AssignBooking(context.Context, string, string) (*models.AssignmentReceipt, error) {
	return &models.AssignmentReceipt{WALink: "https://wa.me/1?text=x"}, s.err
}

type stubTechnicianService struct {
	err error
}

func (s stubTechnicianService) RegisterTechnician(context.Context, models.TechnicianInput) (string, error) {
	return "T-1", s.err
}

func (s stubTechnicianService) ListTechnicians(context.Context) ([]models.Technician, error) {
	return []models.Technician{}, s.err
}

func newRouter(bs stubBookingService, ts stubTechnicianService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	bh := NewBookingHandler(bs)
	ah := NewAdminHandler(bs, ts)

	r := gin.New()
	r.GET("/api/services", bh.GetServices)
	r.POST("/api/book", bh.CreateBooking)
	r.GET("/admin/bookings", ah.ListBookingsHandler)
	r.GET("/admin/technicians", ah.ListTechniciansHandler)
	r.POST("/admin/technicians", ah.CreateTechnicianHandler)
	r.POST("/admin/assign", ah.AssignHandler)
	return r
}

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestStoreFailuresBecomeGenericServerErrors(t *testing.T) {
	r := newRouter(
		stubBookingService{err: errors.New("sqlite: database disk image is malformed")},
		stubTechnicianService{err: errors.New("sqlite: locked")},
	)

	requests := []struct{ method, target, body string }{
		{http.MethodGet, "/api/services", ""},
		{http.MethodPost, "/api/book", `{}`},
		{http.MethodGet, "/admin/bookings", ""},
		{http.MethodGet, "/admin/technicians", ""},
		{http.MethodPost, "/admin/technicians", `{}`},
		{http.MethodPost, "/admin/assign", `{}`},
	}
	for _, tc := range requests {
		rec := serve(r, tc.method, tc.target, tc.body)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, tc.target)
		assert.JSONEq(t, `{"ok":false,"error":"internal server error"}`, rec.Body.String(), tc.target)
	}
}

func TestSuccessEnvelopes(t *testing.T) {
	r := newRouter(
		stubBookingService{receipt: &models.BookingReceipt{ID: "HF-1", WALink: "https://wa.me/9?text=x", NotificationSent: true}},
		stubTechnicianService{},
	)

	rec := serve(r, http.MethodPost, "/api/book", `{"name":"A"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"id":"HF-1","wa_link":"https://wa.me/9?text=x","twilio_sent":true}`, rec.Body.String())

	rec = serve(r, http.MethodGet, "/api/services", "")
	assert.JSONEq(t, `{"ok":true,"services":[]}`, rec.Body.String())

	rec = serve(r, http.MethodGet, "/admin/bookings", "")
	assert.JSONEq(t, `{"ok":true,"bookings":[]}`, rec.Body.String())

	rec = serve(r, http.MethodGet, "/admin/technicians", "")
	assert.JSONEq(t, `{"ok":true,"techs":[]}`, rec.Body.String())

	rec = serve(r, http.MethodPost, "/admin/technicians", `{"name":"R","phone":"1"}`)
	assert.JSONEq(t, `{"ok":true,"id":"T-1"}`, rec.Body.String())

	rec = serve(r, http.MethodPost, "/admin/assign", `{"booking_id":"HF-1","technician_id":"T-1"}`)
	assert.JSONEq(t, `{"ok":true,"wa_link":"https://wa.me/1?text=x"}`, rec.Body.String())
}

func TestInvalidBodies(t *testing.T) {
	r := newRouter(stubBookingService{}, stubTechnicianService{})

	for _, target := range []string{"/api/book", "/admin/technicians", "/admin/assign"} {
		rec := serve(r, http.MethodPost, target, `[1,2`)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.JSONEq(t, `{"ok":false,"error":"Invalid request body"}`, rec.Body.String(), target)
	}

	rec := serve(r, http.MethodPost, "/api/book", `{"service_id":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
