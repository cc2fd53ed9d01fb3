package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "quickmed/database/repository/booking"
	"quickmed/models"
	"quickmed/services/availability"
	"quickmed/utils"
)

// Admit validates a booking request and persists it with status pending.
// The duplicate pre-check gives the user-facing message; the unique
// compound indexes on the bookings collection are the actual guard, so a
// concurrent identical request loses with the same AlreadyBooked error
// instead of slipping past the check.
func (s *DefaultBookingService) Admit(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	if req.Service == "" || req.Email == "" || req.Slot == "" {
		return nil, utils.Errorf(utils.KindInvalidArgument, "service, email and slot are required")
	}
	if err := availability.ValidateDate(req.AppointmentDate); err != nil {
		return nil, err
	}

	svc, err := s.Catalog.GetByName(ctx, req.Service)
	if err != nil {
		return nil, utils.InfraError("catalog read", err)
	}
	if svc == nil {
		return nil, utils.Errorf(utils.KindInvalidArgument, "unknown service %s", req.Service)
	}
	if !slotInCatalogue(svc.Slots, req.Slot) {
		return nil, utils.Errorf(utils.KindInvalidArgument, "slot %s is not offered by %s", req.Slot, req.Service)
	}

	exists, err := s.Repo.ExistsForRequester(ctx, req.Service, req.Email, req.AppointmentDate)
	if err != nil {
		return nil, utils.InfraError("booking lookup", err)
	}
	if exists {
		return nil, utils.AlreadyBookedError(req.AppointmentDate)
	}

	b := &models.Booking{
		ID:              uuid.New().String(),
		Service:         req.Service,
		Email:           req.Email,
		AppointmentDate: req.AppointmentDate,
		Slot:            req.Slot,
		PatientName:     req.PatientName,
		Phone:           req.Phone,
		Status:          models.StatusPending,
		CreatedAt:       time.Now(),
	}

	if err := s.Repo.Insert(ctx, b); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicate) {
			return nil, utils.AlreadyBookedError(req.AppointmentDate)
		}
		return nil, utils.InfraError("booking insert", err)
	}

	if s.Logger != nil {
		s.Logger.Info("booking admitted",
			zap.String("id", b.ID),
			zap.String("service", b.Service),
			zap.String("date", b.AppointmentDate),
			zap.String("slot", b.Slot))
	}

	s.invalidateAvailability(ctx, b.AppointmentDate)
	return b, nil
}

func slotInCatalogue(catalogue []string, slot string) bool {
	for _, s := range catalogue {
		if s == slot {
			return true
		}
	}
	return false
}
