package bookingRepo

import (
	"context"
	"errors"

	"quickmed/models"
)

// Sentinel errors surfaced by booking writes.
var (
	// ErrDuplicate reports a write rejected by one of the booking
	// uniqueness indexes (per-requester duplicate or slot collision).
	ErrDuplicate = errors.New("booking violates a uniqueness constraint")
	// ErrNotFound reports a strict update or delete on a missing booking.
	ErrNotFound = errors.New("booking not found")
)

// BookingRepository defines data access for booking records.
type BookingRepository interface {
	// Insert persists a new booking. Returns ErrDuplicate when the write
	// collides with an existing booking on either uniqueness index.
	Insert(ctx context.Context, b *models.Booking) error
	// GetByID retrieves one booking; returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// FindByDate retrieves all bookings on a date, across services.
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	// FindByEmail retrieves all bookings made by one requester.
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	// FindByService retrieves all bookings for one service.
	FindByService(ctx context.Context, service string) ([]models.Booking, error)
	// FindAll retrieves every booking.
	FindAll(ctx context.Context) ([]models.Booking, error)
	// ExistsForRequester reports whether the requester already holds a
	// booking for the service on the date.
	ExistsForRequester(ctx context.Context, service, email, date string) (bool, error)
	// UpdateStatus sets the status of an existing booking. Strict update:
	// returns ErrNotFound when the booking is absent.
	UpdateStatus(ctx context.Context, id, status string) error
	// SetPaymentSettled marks a booking pending with its transaction id.
	// Strict update, same contract as UpdateStatus.
	SetPaymentSettled(ctx context.Context, id, transactionID string) error
	// Delete removes one booking; returns ErrNotFound when absent.
	Delete(ctx context.Context, id string) error
	// DeleteAllForEmail removes every booking of one requester and
	// returns the number removed.
	DeleteAllForEmail(ctx context.Context, email string) (int64, error)
}
