package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quickmed/middleware"
	"quickmed/models"
	"quickmed/services/availability"
	"quickmed/services/booking"
	"quickmed/utils"
)

// BookingHandler serves the booking and availability surface.
type BookingHandler struct {
	Svc      booking.Service
	Resolver availability.Resolver
	Logger   *zap.Logger
}

// NewBookingHandler wires the booking handler.
func NewBookingHandler(svc booking.Service, resolver availability.Resolver, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Resolver: resolver, Logger: logger}
}

// Create is the admission controller entry point (POST /bookings).
func (h *BookingHandler) Create(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.Errorf(utils.KindInvalidArgument, "invalid booking payload"))
		return
	}

	b, err := h.Svc.Admit(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"acknowledged": true, "booking": b})
}

// AppointmentOptions resolves free slots for every service on a date
// (GET /v2/appointmentOptions?date=).
func (h *BookingHandler) AppointmentOptions(c *gin.Context) {
	options, err := h.Resolver.Resolve(c.Request.Context(), c.Query("date"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}

// ListOwn returns the requester's bookings. The email query parameter
// must match the token subject.
func (h *BookingHandler) ListOwn(c *gin.Context) {
	email := c.Query("email")
	if email != c.GetString(middleware.ContextEmailKey) {
		utils.RespondError(c, utils.Errorf(utils.KindForbidden, "forbidden access"))
		return
	}

	bookings, err := h.Svc.ListForRequester(c.Request.Context(), email)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetByID returns one booking (GET /bookings/:id).
func (h *BookingHandler) GetByID(c *gin.Context) {
	b, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Delete removes one booking (DELETE /bookings/:id).
func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": 1})
}

// DeleteAllForEmail bulk-deletes a user's bookings (admin).
func (h *BookingHandler) DeleteAllForEmail(c *gin.Context) {
	deleted, err := h.Svc.DeleteAllForEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": deleted})
}

// ListAll returns every booking (admin).
func (h *BookingHandler) ListAll(c *gin.Context) {
	bookings, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListForDoctor returns the bookings of one service (doctor).
func (h *BookingHandler) ListForDoctor(c *gin.Context) {
	bookings, err := h.Svc.ListForService(c.Request.Context(), c.Query("service"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CallStarted marks a booking ongoing (PUT /bookings/calls/started/:id).
func (h *BookingHandler) CallStarted(c *gin.Context) {
	h.transition(c, h.Svc.MarkOngoing)
}

// CallEnded marks a booking completed (PUT /bookings/calls/ended/:id).
func (h *BookingHandler) CallEnded(c *gin.Context) {
	h.transition(c, h.Svc.MarkCompleted)
}

// Accept marks a booking accepted (PATCH /bookings_accepted/:id, doctor).
func (h *BookingHandler) Accept(c *gin.Context) {
	h.transition(c, h.Svc.MarkAccepted)
}

func (h *BookingHandler) transition(c *gin.Context, apply func(ctx context.Context, id string) error) {
	if err := apply(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// ConfirmCardPayment records a card settlement (PATCH /bookings/:id).
func (h *BookingHandler) ConfirmCardPayment(c *gin.Context) {
	h.confirmPayment(c, models.PaymentMethodCard)
}

// ConfirmCryptoPayment records a crypto settlement
// (PATCH /bookings/crypto/:id).
func (h *BookingHandler) ConfirmCryptoPayment(c *gin.Context) {
	h.confirmPayment(c, models.PaymentMethodCrypto)
}

func (h *BookingHandler) confirmPayment(c *gin.Context, method string) {
	var conf models.PaymentConfirmation
	if err := c.ShouldBindJSON(&conf); err != nil {
		utils.RespondError(c, utils.Errorf(utils.KindInvalidArgument, "invalid payment payload"))
		return
	}

	b, err := h.Svc.RecordPayment(c.Request.Context(), c.Param("id"), method, conf)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "booking": b})
}
