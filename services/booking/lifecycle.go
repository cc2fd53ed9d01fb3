package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "quickmed/database/repository/booking"
	"quickmed/models"
	"quickmed/utils"
)

// allowedTransitions encodes the forward-only status state machine.
var allowedTransitions = map[string][]string{
	models.StatusPending:   {models.StatusAccepted, models.StatusOngoing},
	models.StatusAccepted:  {models.StatusOngoing, models.StatusCompleted},
	models.StatusOngoing:   {models.StatusCompleted},
	models.StatusCompleted: {},
}

// MarkAccepted records that a doctor accepted the appointment.
func (s *DefaultBookingService) MarkAccepted(ctx context.Context, id string) error {
	return s.transition(ctx, id, models.StatusAccepted)
}

// MarkOngoing records the call-start action.
func (s *DefaultBookingService) MarkOngoing(ctx context.Context, id string) error {
	return s.transition(ctx, id, models.StatusOngoing)
}

// MarkCompleted records the call-end action.
func (s *DefaultBookingService) MarkCompleted(ctx context.Context, id string) error {
	return s.transition(ctx, id, models.StatusCompleted)
}

// transition applies a strict status update. A missing booking is
// NotFound (no status-only documents are ever created), a repeat of the
// current status is a no-op, and a backward move is rejected.
func (s *DefaultBookingService) transition(ctx context.Context, id, target string) error {
	if id == "" {
		return utils.Errorf(utils.KindInvalidArgument, "booking id is required")
	}

	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return utils.InfraError("booking lookup", err)
	}
	if b == nil {
		return utils.Errorf(utils.KindNotFound, "booking %s not found", id)
	}
	if b.Status == target {
		return nil
	}
	if !transitionAllowed(b.Status, target) {
		return utils.Errorf(utils.KindInvalidArgument,
			"booking %s cannot move from %s to %s", id, b.Status, target)
	}

	if err := s.Repo.UpdateStatus(ctx, id, target); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return utils.Errorf(utils.KindNotFound, "booking %s not found", id)
		}
		return utils.InfraError("status update", err)
	}

	if s.Logger != nil {
		s.Logger.Info("booking status changed",
			zap.String("id", id),
			zap.String("from", b.Status),
			zap.String("to", target))
	}
	return nil
}

func transitionAllowed(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// RecordPayment upserts the payment record keyed by booking id, then
// marks the booking pending with the transaction id. The upsert makes a
// retried confirmation overwrite rather than duplicate, so a failure
// between the two writes is safe to retry.
func (s *DefaultBookingService) RecordPayment(ctx context.Context, id, method string, conf models.PaymentConfirmation) (*models.Booking, error) {
	if id == "" {
		return nil, utils.Errorf(utils.KindInvalidArgument, "booking id is required")
	}
	if conf.TransactionID == "" {
		return nil, utils.Errorf(utils.KindInvalidArgument, "transaction id is required")
	}

	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.InfraError("booking lookup", err)
	}
	if b == nil {
		return nil, utils.Errorf(utils.KindNotFound, "booking %s not found", id)
	}

	p := &models.Payment{
		ID:            uuid.New().String(),
		BookingID:     id,
		Email:         conf.Email,
		TransactionID: conf.TransactionID,
		Amount:        conf.Amount,
		Method:        method,
		CreatedAt:     time.Now(),
	}
	if err := s.Payments.UpsertByBooking(ctx, p); err != nil {
		return nil, utils.InfraError("payment record", err)
	}

	if err := s.Repo.SetPaymentSettled(ctx, id, conf.TransactionID); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, utils.Errorf(utils.KindNotFound, "booking %s not found", id)
		}
		return nil, utils.InfraError("booking update", err)
	}

	if s.Logger != nil {
		s.Logger.Info("payment recorded",
			zap.String("booking", id),
			zap.String("method", method),
			zap.String("transaction", conf.TransactionID))
	}

	b.Status = models.StatusPending
	b.TransactionID = conf.TransactionID
	return b, nil
}
