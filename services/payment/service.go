package payment

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"quickmed/utils"
)

// Service creates client-usable payment handles for bookings.
type Service interface {
	// CreateIntent returns a client secret for the given amount in the
	// smallest currency unit.
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
}

// StripePaymentService implements Service against the Stripe API. The API
// key is set globally at startup from configuration.
type StripePaymentService struct {
	Logger *zap.Logger
}

func (s *StripePaymentService) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	if amountCents <= 0 {
		return "", utils.Errorf(utils.KindInvalidArgument, "amount must be positive")
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", utils.InfraError("payment intent creation", err)
	}

	if s.Logger != nil {
		s.Logger.Info("payment intent created", zap.String("intent", pi.ID))
	}
	return pi.ClientSecret, nil
}
