package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"railpay-service/internal/app/config"
	"railpay-service/internal/app/contracts"
	"railpay-service/internal/app/delivery/http/controllers"
	"railpay-service/internal/app/delivery/http/middlewares"
	"railpay-service/internal/app/delivery/http/routers"
	"railpay-service/internal/app/drivers/database"
	"railpay-service/internal/app/drivers/logger"
	"railpay-service/internal/app/drivers/messaging"
	"railpay-service/internal/app/drivers/storage"
	"railpay-service/internal/app/services/core/merchants"
	"railpay-service/internal/app/services/core/payments"
	"railpay-service/internal/app/services/core/risk"
	"railpay-service/internal/app/services/core/subscriptions"
	"railpay-service/internal/app/services/core/transactions"
	"railpay-service/internal/app/services/core/webhook"
	"railpay-service/internal/app/services/shared/audit"
	"railpay-service/internal/app/services/shared/rails"
	redisrepo "railpay-service/internal/app/services/shared/redis"
	miniostorage "railpay-service/internal/app/services/shared/storage"
	"railpay-service/internal/app/services/shared/webhookqueue"
	"railpay-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	queueService, err := webhookqueue.NewService(rabbitConn, zapLogger, internalConfig.App.WebhookWorkerPrefetch)
	if err != nil {
		logrus.Fatalf("Failed to initialize webhook queue: %s", err.Error())
	}

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Mongo:          mongoClient,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitConn,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	// Shared infrastructure
	redisRepository := redisrepo.NewRedisRepository(redisClient)
	minioStorage := miniostorage.NewMinioStorage(minioClient)
	auditLogRepository := audit.NewAuditLogMongoRepository(mongoClient, driverConfig.MongoDB.DbName)
	auditSink := audit.NewAuditService(auditLogRepository, zapLogger)

	// Payment rails: live adapters need credentials, everything else runs on
	// the mock rails.
	var (
		cardRail   contracts.CardRailService
		cryptoRail contracts.CryptoRailService
	)
	if internalConfig.Rails.Mode == constvars.RailsModeLive {
		cardRail = rails.NewPrimerService(internalConfig, zapLogger)
		cryptoRail = rails.NewCoinbaseService(internalConfig, zapLogger)
	} else {
		cardRail = rails.NewMockPrimerService(zapLogger)
		cryptoRail = rails.NewMockCoinbaseService(zapLogger)
	}

	// Repositories
	transactionRepository := transactions.NewTransactionMongoRepository(mongoClient, driverConfig.MongoDB.DbName)
	subscriptionRepository := subscriptions.NewSubscriptionMongoRepository(mongoClient, driverConfig.MongoDB.DbName)
	merchantRepository := merchants.NewMerchantMongoRepository(mongoClient, driverConfig.MongoDB.DbName)

	// Decision engine
	complianceService := risk.NewComplianceService(risk.NewEntropySource())
	providerRouter := risk.NewProviderRouter()

	// Usecases
	subscriptionUsecase := subscriptions.NewSubscriptionUsecase(subscriptionRepository, auditSink, zapLogger)
	paymentUsecase := payments.NewPaymentUsecase(
		complianceService,
		providerRouter,
		cardRail,
		cryptoRail,
		auditSink,
		transactionRepository,
		subscriptionUsecase,
		zapLogger,
	)
	merchantUsecase := merchants.NewMerchantUsecase(
		merchantRepository,
		minioStorage,
		auditSink,
		driverConfig.Minio.BucketName,
		zapLogger,
	)
	webhookUsecase := webhook.NewWebhookUsecase(transactionRepository, subscriptionUsecase, zapLogger)

	// Background worker draining the webhook queue
	worker := webhook.NewWorker(zapLogger, internalConfig, queueService, webhookUsecase)
	bootstrap.WorkerStop = worker.Start(context.Background())

	// HTTP surface
	httpMiddlewares := middlewares.NewMiddlewares(zapLogger, internalConfig)
	paymentController := controllers.NewPaymentController(zapLogger, paymentUsecase, redisRepository)
	webhookController := controllers.NewWebhookController(zapLogger, queueService, internalConfig)
	merchantController := controllers.NewMerchantController(zapLogger, merchantUsecase, auditSink)
	subscriptionController := controllers.NewSubscriptionController(zapLogger, subscriptionUsecase)

	routers.SetupRoutes(
		chiRouter,
		internalConfig,
		httpMiddlewares,
		paymentController,
		webhookController,
		merchantController,
		subscriptionController,
	)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		logrus.Printf("Server listening on %s", internalConfig.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logrus.Println("Waiting for pending requests to finish..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Printf("Error during shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}
