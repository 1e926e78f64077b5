package booking

import (
	"context"
	"strings"

	"github.com/juju/errors"
	"go.uber.org/zap"

	"homefix/metrics"
	"homefix/models"
	"homefix/services/notification"
)

// AssignBooking attaches a technician to a booking and returns a deep-link
// with the job sheet for that technician.
//
// Both the booking and the technician must exist; nothing is written
// otherwise. Assigning an already assigned booking overwrites the assignee.
func (s *DefaultBookingService) AssignBooking(ctx context.Context, bookingID, technicianID string) (*models.AssignmentReceipt, error) {
	bookingID = strings.TrimSpace(bookingID)
	technicianID = strings.TrimSpace(technicianID)
	if err := missingFields(
		[2]string{"booking_id", bookingID},
		[2]string{"technician_id", technicianID},
	); err != nil {
		return nil, err
	}

	b, err := s.Bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, errors.Trace(err)
	}
	tech, err := s.Technicians.GetTechnician(ctx, technicianID)
	if err != nil {
		return nil, errors.Trace(err)
	}

	if b.AssignedTo != nil && *b.AssignedTo != technicianID {
		s.Logger.Info("reassigning booking",
			zap.String("id", b.ID),
			zap.String("from", *b.AssignedTo),
			zap.String("to", technicianID),
		)
	}
	if err := s.Bookings.UpdateBookingAssignment(ctx, bookingID, technicianID); err != nil {
		return nil, errors.Trace(err)
	}
	metrics.IncBookingAssigned()
	s.Logger.Info("booking assigned", zap.String("id", b.ID), zap.String("technician", tech.ID))

	techPhone := notification.NormalizePhone(tech.Phone, s.Options.DefaultCountryCode)
	receipt := &models.AssignmentReceipt{
		BookingID:    b.ID,
		TechnicianID: tech.ID,
		WALink:       notification.DeepLink(techPhone, notification.TechnicianJobMessage(*b)),
	}

	if s.Notifier.Enabled() {
		to := notification.NormalizePhone(b.Phone, s.Options.DefaultCountryCode)
		if !s.Notifier.Send(ctx, to, notification.CustomerAssignedMessage(*b, *tech), "") {
			s.Logger.Warn("customer assignment message not sent", zap.String("id", b.ID))
		}
	}
	return receipt, nil
}
