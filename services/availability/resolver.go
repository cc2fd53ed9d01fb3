package availability

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	bookingRepo "quickmed/database/repository/booking"
	catalogRepo "quickmed/database/repository/catalog"
	"quickmed/models"
	"quickmed/utils"
)

// DateLayout is the calendar-date format used across the booking surface.
const DateLayout = "2006-01-02"

// Resolver computes which catalogue slots remain free on a date.
type Resolver interface {
	// Resolve returns availability for every service in the catalogue.
	Resolve(ctx context.Context, date string) ([]models.ServiceAvailability, error)
	// ResolveService returns availability for one named service.
	ResolveService(ctx context.Context, name, date string) (*models.ServiceAvailability, error)
}

// DefaultResolver resolves availability against the catalogue and booking
// stores. Cache is optional; when set, whole-catalogue results are cached
// per date for a short TTL and dropped by booking mutations.
type DefaultResolver struct {
	Catalog  catalogRepo.CatalogRepository
	Bookings bookingRepo.BookingRepository
	Cache    *redis.Client
	Logger   *zap.Logger
}

// ValidateDate rejects absent or malformed dates before any store read.
func ValidateDate(date string) error {
	if date == "" {
		return utils.Errorf(utils.KindInvalidArgument, "date is required")
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return utils.Errorf(utils.KindInvalidArgument, "date must be in YYYY-MM-DD format")
	}
	return nil
}

func (r *DefaultResolver) Resolve(ctx context.Context, date string) ([]models.ServiceAvailability, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}

	if cached := r.fromCache(ctx, date); cached != nil {
		return cached, nil
	}

	services, err := r.Catalog.GetAll(ctx)
	if err != nil {
		return nil, utils.InfraError("catalog read", err)
	}

	// One query for the whole date keeps the response consistent across
	// services; bookings of any status occupy their slot.
	bookings, err := r.Bookings.FindByDate(ctx, date)
	if err != nil {
		return nil, utils.InfraError("booking read", err)
	}

	booked := bookedSlotsByService(bookings)
	options := make([]models.ServiceAvailability, 0, len(services))
	for _, svc := range services {
		options = append(options, models.ServiceAvailability{
			Name:  svc.Name,
			Price: svc.Price,
			Slots: freeSlots(svc.Slots, booked[svc.Name]),
		})
	}

	r.toCache(ctx, date, options)
	return options, nil
}

func (r *DefaultResolver) ResolveService(ctx context.Context, name, date string) (*models.ServiceAvailability, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}

	svc, err := r.Catalog.GetByName(ctx, name)
	if err != nil {
		return nil, utils.InfraError("catalog read", err)
	}
	if svc == nil {
		return nil, utils.Errorf(utils.KindNotFound, "service %s not found", name)
	}

	bookings, err := r.Bookings.FindByDate(ctx, date)
	if err != nil {
		return nil, utils.InfraError("booking read", err)
	}

	booked := bookedSlotsByService(bookings)
	return &models.ServiceAvailability{
		Name:  svc.Name,
		Price: svc.Price,
		Slots: freeSlots(svc.Slots, booked[svc.Name]),
	}, nil
}

// bookedSlotsByService projects bookings to the slot sets they consume.
// Duplicate slots collapse naturally in the set.
func bookedSlotsByService(bookings []models.Booking) map[string]map[string]struct{} {
	booked := make(map[string]map[string]struct{})
	for _, b := range bookings {
		set, ok := booked[b.Service]
		if !ok {
			set = make(map[string]struct{})
			booked[b.Service] = set
		}
		set[b.Slot] = struct{}{}
	}
	return booked
}

// freeSlots is the ordered set difference of the catalogue slots against
// the booked set. With no bookings the full catalogue comes back.
func freeSlots(catalogue []string, booked map[string]struct{}) []string {
	free := make([]string, 0, len(catalogue))
	for _, slot := range catalogue {
		if _, taken := booked[slot]; !taken {
			free = append(free, slot)
		}
	}
	return free
}

func (r *DefaultResolver) fromCache(ctx context.Context, date string) []models.ServiceAvailability {
	if r.Cache == nil {
		return nil
	}
	raw, err := r.Cache.Get(ctx, utils.AvailabilityCacheKey(date)).Result()
	if err != nil {
		if err != redis.Nil && r.Logger != nil {
			r.Logger.Warn("availability cache read failed", zap.Error(err))
		}
		return nil
	}
	var options []models.ServiceAvailability
	if err := json.Unmarshal([]byte(raw), &options); err != nil {
		return nil
	}
	return options
}

func (r *DefaultResolver) toCache(ctx context.Context, date string, options []models.ServiceAvailability) {
	if r.Cache == nil {
		return
	}
	raw, err := json.Marshal(options)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, utils.AvailabilityCacheKey(date), raw, utils.AvailabilityCacheTTL).Err(); err != nil && r.Logger != nil {
		r.Logger.Warn("availability cache write failed", zap.Error(err))
	}
}
