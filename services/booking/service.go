package booking

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	bookingRepo "quickmed/database/repository/booking"
	catalogRepo "quickmed/database/repository/catalog"
	paymentRepo "quickmed/database/repository/payment"
	"quickmed/models"
	"quickmed/utils"
)

// Service is the booking admission controller, status lifecycle manager,
// and booking record access rolled into one surface.
type Service interface {
	// Admit validates and persists a new booking with status pending.
	Admit(ctx context.Context, req models.BookingRequest) (*models.Booking, error)

	// Get retrieves one booking.
	Get(ctx context.Context, id string) (*models.Booking, error)
	// ListForRequester retrieves all bookings made by one requester.
	ListForRequester(ctx context.Context, email string) ([]models.Booking, error)
	// ListAll retrieves every booking.
	ListAll(ctx context.Context) ([]models.Booking, error)
	// ListForService retrieves all bookings for one service.
	ListForService(ctx context.Context, service string) ([]models.Booking, error)
	// Delete removes one booking.
	Delete(ctx context.Context, id string) error
	// DeleteAllForEmail removes every booking of one requester.
	DeleteAllForEmail(ctx context.Context, email string) (int64, error)

	// MarkAccepted, MarkOngoing and MarkCompleted advance the booking
	// status state machine. Transitions only move forward.
	MarkAccepted(ctx context.Context, id string) error
	MarkOngoing(ctx context.Context, id string) error
	MarkCompleted(ctx context.Context, id string) error
	// RecordPayment persists a payment record for the booking and marks
	// the booking pending with the supplied transaction id.
	RecordPayment(ctx context.Context, id, method string, conf models.PaymentConfirmation) (*models.Booking, error)
}

// DefaultBookingService implements Service against the Mongo-backed
// repositories. Cache is optional and only used to drop stale
// availability entries after mutations.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Catalog  catalogRepo.CatalogRepository
	Payments paymentRepo.PaymentRepository
	Cache    *redis.Client
	Logger   *zap.Logger
}

// invalidateAvailability drops the cached availability for a date after a
// booking mutation. Best effort; the short TTL bounds staleness anyway.
func (s *DefaultBookingService) invalidateAvailability(ctx context.Context, date string) {
	if s.Cache == nil || date == "" {
		return
	}
	if err := s.Cache.Del(ctx, utils.AvailabilityCacheKey(date)).Err(); err != nil && s.Logger != nil {
		s.Logger.Warn("availability cache invalidation failed",
			zap.String("date", date), zap.Error(err))
	}
}
