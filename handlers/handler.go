package handlers

import (
	"github.com/go-redis/redis/v8"

	"quickmed/services/account"
)

// HandlerBundle groups the handlers and the shared collaborators the
// router needs: the role store for capability gates and the optional
// cache for the auth middleware.
type HandlerBundle struct {
	Booking *BookingHandler
	Catalog *CatalogHandler
	Account *AccountHandler
	Review  *ReviewHandler
	Payment *PaymentHandler

	Roles account.RoleStore
	Cache *redis.Client
}
