package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickmed/models"
	"quickmed/utils"
)

type stubCatalog struct {
	services []models.Service
}

func (s *stubCatalog) GetAll(ctx context.Context) ([]models.Service, error) {
	return s.services, nil
}

func (s *stubCatalog) GetByName(ctx context.Context, name string) (*models.Service, error) {
	for i := range s.services {
		if s.services[i].Name == name {
			return &s.services[i], nil
		}
	}
	return nil, nil
}

func (s *stubCatalog) Upsert(ctx context.Context, svc *models.Service) error {
	s.services = append(s.services, *svc)
	return nil
}

type stubBookings struct {
	bookings []models.Booking
}

func (s *stubBookings) Insert(ctx context.Context, b *models.Booking) error {
	s.bookings = append(s.bookings, *b)
	return nil
}

func (s *stubBookings) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return &s.bookings[i], nil
		}
	}
	return nil, nil
}

func (s *stubBookings) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.AppointmentDate == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubBookings) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubBookings) FindByService(ctx context.Context, service string) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubBookings) FindAll(ctx context.Context) ([]models.Booking, error) {
	return s.bookings, nil
}

func (s *stubBookings) ExistsForRequester(ctx context.Context, service, email, date string) (bool, error) {
	return false, nil
}

func (s *stubBookings) UpdateStatus(ctx context.Context, id, status string) error { return nil }

func (s *stubBookings) SetPaymentSettled(ctx context.Context, id, txID string) error { return nil }

func (s *stubBookings) Delete(ctx context.Context, id string) error { return nil }

func (s *stubBookings) DeleteAllForEmail(ctx context.Context, email string) (int64, error) {
	return 0, nil
}

func testCatalog() *stubCatalog {
	return &stubCatalog{services: []models.Service{
		{Name: "Dental", Price: 50, Slots: []string{"9am", "10am", "11am"}},
		{Name: "Cardiology", Price: 120, Slots: []string{"1pm", "2pm"}},
	}}
}

func TestResolveEmptyDateReturnsFullCatalogue(t *testing.T) {
	r := &DefaultResolver{Catalog: testCatalog(), Bookings: &stubBookings{}}

	options, err := r.Resolve(context.Background(), "2026-09-10")
	require.NoError(t, err)
	require.Len(t, options, 2)

	assert.Equal(t, "Dental", options[0].Name)
	assert.Equal(t, []string{"9am", "10am", "11am"}, options[0].Slots)
	assert.Equal(t, []string{"1pm", "2pm"}, options[1].Slots)
}

func TestResolveSubtractsBookedSlots(t *testing.T) {
	bookings := &stubBookings{bookings: []models.Booking{
		{ID: "b1", Service: "Dental", Email: "a@x.com", AppointmentDate: "2026-09-10", Slot: "10am", Status: models.StatusPending},
		{ID: "b2", Service: "Cardiology", Email: "b@x.com", AppointmentDate: "2026-09-10", Slot: "1pm", Status: models.StatusCompleted},
		{ID: "b3", Service: "Dental", Email: "c@x.com", AppointmentDate: "2026-09-11", Slot: "9am", Status: models.StatusPending},
	}}
	r := &DefaultResolver{Catalog: testCatalog(), Bookings: bookings}

	options, err := r.Resolve(context.Background(), "2026-09-10")
	require.NoError(t, err)
	require.Len(t, options, 2)

	// 10am is taken for Dental; any status occupies its slot, so the
	// completed 1pm Cardiology booking counts too. The 9am booking on
	// another date does not.
	assert.Equal(t, []string{"9am", "11am"}, options[0].Slots)
	assert.Equal(t, []string{"2pm"}, options[1].Slots)
}

func TestResolveIsReadOnly(t *testing.T) {
	catalog := testCatalog()
	r := &DefaultResolver{Catalog: catalog, Bookings: &stubBookings{}}

	first, err := r.Resolve(context.Background(), "2026-09-10")
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), "2026-09-10")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"9am", "10am", "11am"}, catalog.services[0].Slots)
}

func TestResolveRejectsBadDates(t *testing.T) {
	r := &DefaultResolver{Catalog: testCatalog(), Bookings: &stubBookings{}}

	for _, date := range []string{"", "10-09-2026", "2026/09/10", "not-a-date"} {
		_, err := r.Resolve(context.Background(), date)
		require.Error(t, err, "date %q", date)

		var serr *utils.ServiceError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, utils.KindInvalidArgument, serr.Kind)
	}
}

func TestResolveServiceUnknownName(t *testing.T) {
	r := &DefaultResolver{Catalog: testCatalog(), Bookings: &stubBookings{}}

	_, err := r.ResolveService(context.Background(), "Radiology", "2026-09-10")
	require.Error(t, err)

	var serr *utils.ServiceError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, utils.KindNotFound, serr.Kind)
}

func TestResolveServiceSubtractsOnlyThatService(t *testing.T) {
	bookings := &stubBookings{bookings: []models.Booking{
		{ID: "b1", Service: "Dental", Email: "a@x.com", AppointmentDate: "2026-09-10", Slot: "9am", Status: models.StatusPending},
	}}
	r := &DefaultResolver{Catalog: testCatalog(), Bookings: bookings}

	avail, err := r.ResolveService(context.Background(), "Dental", "2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, []string{"10am", "11am"}, avail.Slots)
	assert.Equal(t, 50.0, avail.Price)
}
