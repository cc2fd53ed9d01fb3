package booking

import (
	"context"
	"errors"

	bookingRepo "quickmed/database/repository/booking"
	"quickmed/models"
	"quickmed/utils"
)

func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.InfraError("booking lookup", err)
	}
	if b == nil {
		return nil, utils.Errorf(utils.KindNotFound, "booking %s not found", id)
	}
	return b, nil
}

func (s *DefaultBookingService) ListForRequester(ctx context.Context, email string) ([]models.Booking, error) {
	bookings, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.InfraError("booking lookup", err)
	}
	return bookings, nil
}

func (s *DefaultBookingService) ListAll(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, utils.InfraError("booking lookup", err)
	}
	return bookings, nil
}

func (s *DefaultBookingService) ListForService(ctx context.Context, service string) ([]models.Booking, error) {
	if service == "" {
		return nil, utils.Errorf(utils.KindInvalidArgument, "service is required")
	}
	bookings, err := s.Repo.FindByService(ctx, service)
	if err != nil {
		return nil, utils.InfraError("booking lookup", err)
	}
	return bookings, nil
}

// Delete removes one booking and frees its slot for the date.
func (s *DefaultBookingService) Delete(ctx context.Context, id string) error {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return utils.InfraError("booking lookup", err)
	}
	if b == nil {
		return utils.Errorf(utils.KindNotFound, "booking %s not found", id)
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return utils.Errorf(utils.KindNotFound, "booking %s not found", id)
		}
		return utils.InfraError("booking delete", err)
	}

	s.invalidateAvailability(ctx, b.AppointmentDate)
	return nil
}

// DeleteAllForEmail removes every booking of one requester and drops the
// cached availability of each affected date.
func (s *DefaultBookingService) DeleteAllForEmail(ctx context.Context, email string) (int64, error) {
	if email == "" {
		return 0, utils.Errorf(utils.KindInvalidArgument, "email is required")
	}

	bookings, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		return 0, utils.InfraError("booking lookup", err)
	}

	deleted, err := s.Repo.DeleteAllForEmail(ctx, email)
	if err != nil {
		return 0, utils.InfraError("booking delete", err)
	}

	seen := make(map[string]struct{})
	for _, b := range bookings {
		if _, ok := seen[b.AppointmentDate]; ok {
			continue
		}
		seen[b.AppointmentDate] = struct{}{}
		s.invalidateAvailability(ctx, b.AppointmentDate)
	}
	return deleted, nil
}
