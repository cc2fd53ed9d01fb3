package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"

	"quickmed/config"
	"quickmed/database"
	bookingRepo "quickmed/database/repository/booking"
	catalogRepo "quickmed/database/repository/catalog"
	doctorRepo "quickmed/database/repository/doctor"
	paymentRepo "quickmed/database/repository/payment"
	reviewRepo "quickmed/database/repository/review"
	userRepo "quickmed/database/repository/user"
	"quickmed/handlers"
	"quickmed/middleware"
	"quickmed/routes"
	"quickmed/services/account"
	"quickmed/services/availability"
	"quickmed/services/booking"
	"quickmed/services/payment"
	"quickmed/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger(config.IsProduction())
	logger := utils.GetLogger()
	defer logger.Sync()

	utils.InitJWT(config.AppConfig.JWTSecret)
	stripe.Key = config.AppConfig.StripeKey

	mongoClient, err := database.Connect(config.AppConfig.MongoURI)
	if err != nil {
		logger.Fatal("MongoDB connection failed", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			logger.Error("MongoDB disconnect failed", zap.Error(err))
		}
	}()
	db := mongoClient.Database(config.AppConfig.MongoDatabase)

	// The cache is optional: services run without it, just slower.
	redisClient, err := utils.NewRedisClient(
		config.AppConfig.RedisAddr,
		config.AppConfig.RedisPassword,
		config.AppConfig.RedisCacheDB)
	if err != nil {
		logger.Warn("Redis unavailable, caching disabled", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	catalogs, err := catalogRepo.NewMongoCatalogRepo(db)
	if err != nil {
		logger.Fatal("catalog repository init failed", zap.Error(err))
	}
	bookings, err := bookingRepo.NewMongoBookingRepo(db)
	if err != nil {
		logger.Fatal("booking repository init failed", zap.Error(err))
	}
	users, err := userRepo.NewMongoUserRepo(db)
	if err != nil {
		logger.Fatal("user repository init failed", zap.Error(err))
	}
	doctors, err := doctorRepo.NewMongoDoctorRepo(db)
	if err != nil {
		logger.Fatal("doctor repository init failed", zap.Error(err))
	}
	payments, err := paymentRepo.NewMongoPaymentRepo(db)
	if err != nil {
		logger.Fatal("payment repository init failed", zap.Error(err))
	}
	reviews := reviewRepo.NewMongoReviewRepo(db)

	resolver := &availability.DefaultResolver{
		Catalog:  catalogs,
		Bookings: bookings,
		Cache:    redisClient,
		Logger:   logger,
	}
	bookingSvc := &booking.DefaultBookingService{
		Repo:     bookings,
		Catalog:  catalogs,
		Payments: payments,
		Cache:    redisClient,
		Logger:   logger,
	}
	accountSvc := &account.DefaultAccountService{
		Users:   users,
		Doctors: doctors,
		Cache:   redisClient,
		Logger:  logger,
	}
	paymentSvc := &payment.StripePaymentService{Logger: logger}

	hb := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingSvc, resolver, logger),
		Catalog: handlers.NewCatalogHandler(catalogs),
		Account: handlers.NewAccountHandler(accountSvc),
		Review:  handlers.NewReviewHandler(reviews),
		Payment: handlers.NewPaymentHandler(paymentSvc),
		Roles:   accountSvc,
		Cache:   redisClient,
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimit(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, hb)
	utils.StartHealthMonitor(mongoClient, redisClient)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Forced shutdown", zap.Error(err))
	}
	logger.Info("Server exited cleanly")
}
