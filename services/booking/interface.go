package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"homefix/database/repository"
	"homefix/models"
	"homefix/services/notification"
	"homefix/utils"
)

// BookingService is the customer and admin booking workflow.
type BookingService interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	CreateBooking(ctx context.Context, input models.BookingInput) (*models.BookingReceipt, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	AssignBooking(ctx context.Context, bookingID, technicianID string) (*models.AssignmentReceipt, error)
}

// Options carries the business settings the workflow needs.
type Options struct {
	AdminWhatsApp      string // Admin number for deep-links; empty disables the admin link
	DefaultCountryCode string // Used by notification.NormalizePhone
	IDPrefix           string // Booking id prefix, e.g., "HF"
	BrandImageURL      string // Attached to the customer confirmation when set
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Services    repository.ServiceRepository
	Bookings    repository.BookingRepository
	Technicians repository.TechnicianRepository
	Notifier    notification.Gateway
	Options     Options
	Logger      *zap.Logger

	// Overridable in tests.
	Now   func() time.Time
	NewID func(prefix string) string
}

// NewDefaultBookingService wires the workflow to its store and gateway.
func NewDefaultBookingService(
	store *repository.Store,
	notifier notification.Gateway,
	opts Options,
	logger *zap.Logger,
) *DefaultBookingService {
	return &DefaultBookingService{
		Services:    store,
		Bookings:    store,
		Technicians: store,
		Notifier:    notifier,
		Options:     opts,
		Logger:      logger.Named("booking"),
		Now:         time.Now,
		NewID:       utils.NewID,
	}
}
