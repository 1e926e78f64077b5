package booking

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/juju/errors"
	"go.uber.org/zap"

	"homefix/metrics"
	"homefix/models"
	"homefix/services/notification"
)

// insertAttempts bounds id regeneration when a fresh id already exists.
const insertAttempts = 3

// ListServices returns the catalog in id order.
func (s *DefaultBookingService) ListServices(ctx context.Context) ([]models.Service, error) {
	services, err := s.Services.ListServices(ctx)
	return services, errors.Trace(err)
}

// ListBookings returns all bookings, newest first, with service titles.
func (s *DefaultBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Bookings.ListBookings(ctx)
	return bookings, errors.Trace(err)
}

// CreateBooking validates the form, stores a "received" booking and builds
// the admin deep-link. The automated customer message is best-effort and
// only reported through NotificationSent.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input models.BookingInput) (*models.BookingReceipt, error) {
	b := models.Booking{
		Name:      strings.TrimSpace(input.Name),
		Phone:     strings.TrimSpace(input.Phone),
		Address:   strings.TrimSpace(input.Address),
		Pincode:   strings.TrimSpace(input.Pincode),
		ServiceID: input.ServiceID.Int64(),
		Status:    models.BookingReceived,
	}

	serviceID := ""
	if b.ServiceID > 0 {
		serviceID = strconv.FormatInt(b.ServiceID, 10)
	}
	if err := missingFields(
		[2]string{"name", b.Name},
		[2]string{"phone", b.Phone},
		[2]string{"address", b.Address},
		[2]string{"pincode", b.Pincode},
		[2]string{"service_id", serviceID},
	); err != nil {
		return nil, err
	}

	svc, err := s.Services.GetService(ctx, b.ServiceID)
	if errors.Is(err, errors.NotFound) {
		return nil, errors.NewNotValid(nil, fmt.Sprintf("Unknown service_id %d", b.ServiceID))
	} else if err != nil {
		return nil, errors.Annotate(err, "looking up service")
	}
	b.ServiceTitle = svc.Title

	for attempt := 1; ; attempt++ {
		b.ID = s.NewID(s.Options.IDPrefix)
		b.CreatedAt = s.Now().UTC()
		err = s.Bookings.InsertBooking(ctx, b)
		if err == nil {
			break
		}
		if !errors.Is(err, errors.AlreadyExists) || attempt == insertAttempts {
			return nil, errors.Annotate(err, "creating booking")
		}
		s.Logger.Warn("booking id collision, regenerating", zap.String("id", b.ID))
	}
	metrics.IncBookingCreated()
	s.Logger.Info("booking created",
		zap.String("id", b.ID),
		zap.Int64("serviceID", b.ServiceID),
		zap.String("pincode", b.Pincode),
	)

	receipt := &models.BookingReceipt{ID: b.ID}
	if s.Options.AdminWhatsApp != "" {
		receipt.WALink = notification.DeepLink(s.Options.AdminWhatsApp, notification.AdminBookingMessage(b, svc.Title))
	}
	if s.Notifier.Enabled() {
		to := notification.NormalizePhone(b.Phone, s.Options.DefaultCountryCode)
		receipt.NotificationSent = s.Notifier.Send(ctx, to,
			notification.CustomerConfirmationMessage(b, svc.Title),
			s.Options.BrandImageURL,
		)
	}
	return receipt, nil
}
