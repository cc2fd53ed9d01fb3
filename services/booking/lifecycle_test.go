package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickmed/models"
	"quickmed/utils"
)

func admit(t *testing.T, svc *DefaultBookingService) *models.Booking {
	t.Helper()
	b, err := svc.Admit(context.Background(), validRequest())
	require.NoError(t, err)
	return b
}

func requireKind(t *testing.T, err error, kind utils.ErrorKind) {
	t.Helper()
	var serr *utils.ServiceError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, kind, serr.Kind)
}

func TestLifecycleForwardPath(t *testing.T) {
	svc, store, _ := newTestService()
	b := admit(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.MarkAccepted(ctx, b.ID))
	require.NoError(t, svc.MarkOngoing(ctx, b.ID))
	require.NoError(t, svc.MarkCompleted(ctx, b.ID))

	stored, _ := store.GetByID(ctx, b.ID)
	assert.Equal(t, models.StatusCompleted, stored.Status)
}

func TestLifecycleSkipsAcceptedOnDirectCallStart(t *testing.T) {
	svc, store, _ := newTestService()
	b := admit(t, svc)
	ctx := context.Background()

	// pending -> ongoing is legal: a call can start without an explicit
	// doctor acceptance step.
	require.NoError(t, svc.MarkOngoing(ctx, b.ID))

	stored, _ := store.GetByID(ctx, b.ID)
	assert.Equal(t, models.StatusOngoing, stored.Status)
}

func TestLifecycleRepeatIsNoOp(t *testing.T) {
	svc, store, _ := newTestService()
	b := admit(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.MarkAccepted(ctx, b.ID))
	require.NoError(t, svc.MarkAccepted(ctx, b.ID))

	stored, _ := store.GetByID(ctx, b.ID)
	assert.Equal(t, models.StatusAccepted, stored.Status)
}

func TestLifecycleRejectsBackwardMove(t *testing.T) {
	svc, store, _ := newTestService()
	b := admit(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.MarkOngoing(ctx, b.ID))
	require.NoError(t, svc.MarkCompleted(ctx, b.ID))

	err := svc.MarkAccepted(ctx, b.ID)
	requireKind(t, err, utils.KindInvalidArgument)

	stored, _ := store.GetByID(ctx, b.ID)
	assert.Equal(t, models.StatusCompleted, stored.Status)
}

func TestLifecycleMissingBookingIsNotFound(t *testing.T) {
	svc, store, _ := newTestService()
	ctx := context.Background()

	err := svc.MarkAccepted(ctx, "no-such-id")
	requireKind(t, err, utils.KindNotFound)

	// No status-only document may appear.
	all, _ := store.FindAll(ctx)
	assert.Empty(t, all)
}

func TestRecordPaymentWritesRecordAndBooking(t *testing.T) {
	svc, store, payments := newTestService()
	b := admit(t, svc)
	ctx := context.Background()

	conf := models.PaymentConfirmation{
		TransactionID: "pi_123",
		Email:         "pat@example.com",
		Amount:        50,
	}
	updated, err := svc.RecordPayment(ctx, b.ID, models.PaymentMethodCard, conf)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)
	assert.Equal(t, "pi_123", updated.TransactionID)

	stored, _ := store.GetByID(ctx, b.ID)
	assert.Equal(t, "pi_123", stored.TransactionID)

	p, err := payments.GetByBooking(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, models.PaymentMethodCard, p.Method)
	assert.Equal(t, 50.0, p.Amount)
}

func TestRecordPaymentRetryOverwrites(t *testing.T) {
	svc, _, payments := newTestService()
	b := admit(t, svc)
	ctx := context.Background()

	_, err := svc.RecordPayment(ctx, b.ID, models.PaymentMethodCrypto,
		models.PaymentConfirmation{TransactionID: "0xabc"})
	require.NoError(t, err)
	_, err = svc.RecordPayment(ctx, b.ID, models.PaymentMethodCrypto,
		models.PaymentConfirmation{TransactionID: "0xdef"})
	require.NoError(t, err)

	p, _ := payments.GetByBooking(ctx, b.ID)
	require.NotNil(t, p)
	assert.Equal(t, "0xdef", p.TransactionID)
	assert.Len(t, payments.byBooking, 1)
}

func TestRecordPaymentValidation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.RecordPayment(ctx, "", models.PaymentMethodCard,
		models.PaymentConfirmation{TransactionID: "pi_1"})
	requireKind(t, err, utils.KindInvalidArgument)

	_, err = svc.RecordPayment(ctx, "some-id", models.PaymentMethodCard,
		models.PaymentConfirmation{})
	requireKind(t, err, utils.KindInvalidArgument)

	_, err = svc.RecordPayment(ctx, "no-such-id", models.PaymentMethodCard,
		models.PaymentConfirmation{TransactionID: "pi_1"})
	requireKind(t, err, utils.KindNotFound)
}
