package booking

import (
	"context"

	bookingRepo "quickmed/database/repository/booking"
	"quickmed/models"
)

// memBookings is an in-memory BookingRepository that enforces the same
// uniqueness rules as the mongo indexes.
type memBookings struct {
	bookings []models.Booking
}

func (m *memBookings) Insert(ctx context.Context, b *models.Booking) error {
	for _, existing := range m.bookings {
		if existing.ID == b.ID {
			return bookingRepo.ErrDuplicate
		}
		if existing.Service == b.Service && existing.AppointmentDate == b.AppointmentDate {
			if existing.Email == b.Email || existing.Slot == b.Slot {
				return bookingRepo.ErrDuplicate
			}
		}
	}
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *memBookings) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			b := m.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (m *memBookings) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.AppointmentDate == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookings) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookings) FindByService(ctx context.Context, service string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.Service == service {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookings) FindAll(ctx context.Context) ([]models.Booking, error) {
	return append([]models.Booking(nil), m.bookings...), nil
}

func (m *memBookings) ExistsForRequester(ctx context.Context, service, email, date string) (bool, error) {
	for _, b := range m.bookings {
		if b.Service == service && b.Email == email && b.AppointmentDate == date {
			return true, nil
		}
	}
	return false, nil
}

func (m *memBookings) UpdateStatus(ctx context.Context, id, status string) error {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings[i].Status = status
			return nil
		}
	}
	return bookingRepo.ErrNotFound
}

func (m *memBookings) SetPaymentSettled(ctx context.Context, id, transactionID string) error {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings[i].Status = models.StatusPending
			m.bookings[i].TransactionID = transactionID
			return nil
		}
	}
	return bookingRepo.ErrNotFound
}

func (m *memBookings) Delete(ctx context.Context, id string) error {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return nil
		}
	}
	return bookingRepo.ErrNotFound
}

func (m *memBookings) DeleteAllForEmail(ctx context.Context, email string) (int64, error) {
	var kept []models.Booking
	var removed int64
	for _, b := range m.bookings {
		if b.Email == email {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	m.bookings = kept
	return removed, nil
}

// memCatalog is a fixed in-memory catalogue.
type memCatalog struct {
	services []models.Service
}

func (m *memCatalog) GetAll(ctx context.Context) ([]models.Service, error) {
	return m.services, nil
}

func (m *memCatalog) GetByName(ctx context.Context, name string) (*models.Service, error) {
	for i := range m.services {
		if m.services[i].Name == name {
			return &m.services[i], nil
		}
	}
	return nil, nil
}

func (m *memCatalog) Upsert(ctx context.Context, svc *models.Service) error {
	m.services = append(m.services, *svc)
	return nil
}

// memPayments is an in-memory PaymentRepository keyed by booking id.
type memPayments struct {
	byBooking map[string]models.Payment
}

func (m *memPayments) UpsertByBooking(ctx context.Context, p *models.Payment) error {
	if m.byBooking == nil {
		m.byBooking = make(map[string]models.Payment)
	}
	m.byBooking[p.BookingID] = *p
	return nil
}

func (m *memPayments) GetByBooking(ctx context.Context, bookingID string) (*models.Payment, error) {
	if p, ok := m.byBooking[bookingID]; ok {
		return &p, nil
	}
	return nil, nil
}

func newTestService() (*DefaultBookingService, *memBookings, *memPayments) {
	store := &memBookings{}
	payments := &memPayments{}
	svc := &DefaultBookingService{
		Repo: store,
		Catalog: &memCatalog{services: []models.Service{
			{Name: "Dental", Price: 50, Slots: []string{"9am", "10am", "11am"}},
			{Name: "Cardiology", Price: 120, Slots: []string{"1pm", "2pm"}},
		}},
		Payments: payments,
	}
	return svc, store, payments
}
