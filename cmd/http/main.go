package main

import (
	"context"
	"halo-optom-service/internal/app/config"
	"halo-optom-service/internal/app/delivery/http/controllers"
	"halo-optom-service/internal/app/delivery/http/middlewares"
	"halo-optom-service/internal/app/delivery/http/routers"
	"halo-optom-service/internal/app/drivers/database"
	"halo-optom-service/internal/app/drivers/logger"
	"halo-optom-service/internal/app/drivers/messaging"
	"halo-optom-service/internal/app/drivers/storage"
	"halo-optom-service/internal/app/services/core/payments"
	"halo-optom-service/internal/app/services/core/session"
	withdrawRequests "halo-optom-service/internal/app/services/core/withdraw_requests"
	"halo-optom-service/internal/app/services/shared/auditlog"
	"halo-optom-service/internal/app/services/shared/locker"
	"halo-optom-service/internal/app/services/shared/publisher"
	"halo-optom-service/internal/app/services/shared/redis"
	"halo-optom-service/internal/app/services/shared/transition"
	sharedStorage "halo-optom-service/internal/app/services/shared/storage"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger.Info("Starting halo optom service",
		zap.String("version", Version),
		zap.String("tag", Tag),
		zap.String("env", internalConfig.App.Env),
	)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Postgres:       database.NewPostgresDB(driverConfig),
		MongoDB:        database.NewMongoDB(driverConfig),
		Redis:          database.NewRedisClient(driverConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Minio:          storage.NewMinio(driverConfig, internalConfig.Minio.PaymentProofBucketName),
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Fatalf("Error bootstraping the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Address + ":" + internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Error closing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
	auditLogRepository := auditlog.NewAuditLogMongoRepository(bootstrap.MongoDB, bootstrap.InternalConfig.MongoDB.AuditLogCollection)
	eventPublisher, err := publisher.NewStatusEventPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.StatusEventQueue)
	if err != nil {
		return err
	}
	transitionRecorder := transition.NewTransitionRecorder(auditLogRepository, eventPublisher, bootstrap.Logger)
	proofStorage := sharedStorage.NewMinioStorage(bootstrap.Minio, bootstrap.InternalConfig.Minio.PublicBaseUrl)

	// Session
	sessionService := session.NewSessionService(redisRepository)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Payment
	paymentRepository := payments.NewPaymentPostgresRepository(bootstrap.Postgres, bootstrap.Logger)
	paymentUsecase := payments.NewPaymentUsecase(paymentRepository, auditLogRepository, transitionRecorder, proofStorage, bootstrap.InternalConfig, bootstrap.Logger)
	paymentController := controllers.NewPaymentController(bootstrap.Logger, paymentUsecase, bootstrap.InternalConfig)

	// Withdraw request
	withdrawRequestRepository := withdrawRequests.NewWithdrawRequestPostgresRepository(bootstrap.Postgres, bootstrap.Logger)
	withdrawRequestUsecase := withdrawRequests.NewWithdrawRequestUsecase(withdrawRequestRepository, transitionRecorder, bootstrap.InternalConfig, bootstrap.Logger)
	withdrawRequestController := controllers.NewWithdrawRequestController(bootstrap.Logger, withdrawRequestUsecase, bootstrap.InternalConfig)

	// Expiry sweep, opt-in
	if bootstrap.InternalConfig.Payment.ExpirySweepCronSpec != "" {
		expiryWorker := payments.NewExpiryWorker(bootstrap.Logger, bootstrap.InternalConfig, lockService, paymentUsecase)
		if err := expiryWorker.Start(context.Background()); err != nil {
			return err
		}
		bootstrap.ExpiryWorkerStop = expiryWorker.Stop
	}

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, paymentController, withdrawRequestController)
	return nil
}
