package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"quickmed/handlers"
	"quickmed/middleware"
	"quickmed/models"
	"quickmed/utils"
)

// RegisterCatalogRoutes registers the service catalogue endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/service", hb.Catalog.List)
	r.POST("/service",
		middleware.JWTAuth(hb.Cache),
		middleware.RequireRole(hb.Roles, models.RoleAdmin),
		hb.Catalog.Create)
}

// RegisterBookingRoutes registers availability, admission, lifecycle and
// booking CRUD endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/v2/appointmentOptions", hb.Booking.AppointmentOptions)
	r.POST("/bookings", hb.Booking.Create)

	// Call lifecycle endpoints are unauthenticated, matching the portal
	// surface this replaces.
	r.PUT("/bookings/calls/started/:id", hb.Booking.CallStarted)
	r.PUT("/bookings/calls/ended/:id", hb.Booking.CallEnded)

	authed := r.Group("", middleware.JWTAuth(hb.Cache))
	{
		authed.GET("/bookings", hb.Booking.ListOwn)
		authed.GET("/bookings/:id", hb.Booking.GetByID)
		authed.DELETE("/bookings/:id", hb.Booking.Delete)
		authed.PATCH("/bookings/:id", hb.Booking.ConfirmCardPayment)
		authed.PATCH("/bookings/crypto/:id", hb.Booking.ConfirmCryptoPayment)

		authed.DELETE("/bookings/admin/:email",
			middleware.RequireRole(hb.Roles, models.RoleAdmin),
			hb.Booking.DeleteAllForEmail)
		authed.GET("/all_bookings",
			middleware.RequireRole(hb.Roles, models.RoleAdmin),
			hb.Booking.ListAll)
		authed.GET("/all_bookings_for_doctor",
			middleware.RequireRole(hb.Roles, models.RoleDoctor),
			hb.Booking.ListForDoctor)
		authed.PATCH("/bookings_accepted/:id",
			middleware.RequireRole(hb.Roles, models.RoleDoctor),
			hb.Booking.Accept)
	}
}

// RegisterAccountRoutes registers user, doctor, role and wallet endpoints.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.JWTAuth(hb.Cache)

	r.PUT("/user/:email", hb.Account.UpsertUser)
	r.GET("/users/admin/:email", hb.Account.IsAdmin)
	r.GET("/users/doctor/:email", hb.Account.IsDoctor)
	r.GET("/users/id/:id", hb.Account.GetUserByID)
	r.GET("/users/wallet/:email",
		auth,
		middleware.RequireRole(hb.Roles, models.RoleDoctor),
		hb.Account.GetWallet)
	r.PUT("/users/wallet/:email", hb.Account.PutWallet)
	r.GET("/users/:email", hb.Account.GetUserByEmail)

	r.GET("/users", auth, hb.Account.ListUsers)
	r.PUT("/users/admin/:email",
		auth,
		middleware.RequireRole(hb.Roles, models.RoleAdmin),
		hb.Account.PromoteAdmin)
	r.DELETE("/users/:email",
		auth,
		middleware.RequireRole(hb.Roles, models.RoleAdmin),
		hb.Account.DeleteUser)

	r.PUT("/doctor/admin/:email",
		auth,
		middleware.RequireRole(hb.Roles, models.RoleAdmin),
		hb.Account.ApproveDoctor)
	r.PUT("/doctor/:email", hb.Account.ApplyDoctor)
	r.DELETE("/doctor/:email",
		auth,
		middleware.RequireRole(hb.Roles, models.RoleAdmin),
		hb.Account.DeleteDoctor)
	r.GET("/doctors", hb.Account.ListDoctors)
	r.GET("/doctors_info",
		auth,
		middleware.RequireRole(hb.Roles, models.RoleDoctor),
		hb.Account.DoctorInfo)
}

// RegisterReviewRoutes registers testimonial endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.PUT("/reviews/:email", hb.Review.Upsert)
	r.GET("/reviews", hb.Review.ListAll)
	r.GET("/reviews_3", hb.Review.ListLatest)
}

// RegisterPaymentRoutes registers the payment-intent endpoint.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/create-payment-intent", middleware.JWTAuth(hb.Cache), hb.Payment.CreateIntent)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and CORS.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAccountRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterHealthRoute(r)
}
