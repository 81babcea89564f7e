package availability_service

import (
	"context"

	"github.com/google/uuid"
	"github.com/suchimauz/common-availability-slots-generator/internal/core/domain"
	"github.com/suchimauz/common-availability-slots-generator/internal/core/ports/out"
)

func (s *AvailabilityService) RegisterBusyEvent(ctx context.Context, event domain.BusyEvent) error {
	id, err := s.storagePort.StoreBusyEvent(ctx, event)
	if err != nil {
		s.logger.Error("busy_event.register.failed", out.LogFields{
			"userId":    event.UserID,
			"bookingId": event.BookingID,
			"error":     err.Error(),
		})
		return &domain.DataAccessError{Op: "storing busy event", Err: err}
	}

	s.logger.Info("busy_event.registered", out.LogFields{
		"id":        id,
		"userId":    event.UserID,
		"bookingId": event.BookingID,
	})
	return nil
}

func (s *AvailabilityService) CancelBusyEvent(ctx context.Context, bookingID uuid.UUID) error {
	if err := s.storagePort.DeleteBusyEventByBookingID(ctx, bookingID); err != nil {
		s.logger.Error("busy_event.cancel.failed", out.LogFields{
			"bookingId": bookingID,
			"error":     err.Error(),
		})
		return &domain.DataAccessError{Op: "deleting busy event", Err: err}
	}

	s.logger.Info("busy_event.cancelled", out.LogFields{
		"bookingId": bookingID,
	})
	return nil
}
