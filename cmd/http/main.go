package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auditflow-service/internal/app/config"
	"auditflow-service/internal/app/delivery/http/middlewares"
	"auditflow-service/internal/app/delivery/http/routers"
	"auditflow-service/internal/app/drivers/database"
	"auditflow-service/internal/app/drivers/logger"
	"auditflow-service/internal/app/drivers/messaging"
	"auditflow-service/internal/app/drivers/storage"
	"auditflow-service/internal/app/services/responses"
	"auditflow-service/internal/app/services/sessions"
	sharedpublisher "auditflow-service/internal/app/services/shared/publisher"
	"auditflow-service/internal/app/services/shared/ratelimiter"
	sharedredis "auditflow-service/internal/app/services/shared/redis"
	sharedstorage "auditflow-service/internal/app/services/shared/storage"
	"auditflow-service/internal/app/services/templates"
	"auditflow-service/internal/app/services/uploads"
	"auditflow-service/internal/pkg/metrics"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	logrusLogger := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitConnection,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	appMetrics := metrics.NewMetrics()

	// Shared services
	redisRepository := sharedredis.NewRedisRepository(redisClient)
	minioStorage := sharedstorage.NewMinioStorage(minioClient)
	limiter := ratelimiter.NewResourceLimiter(redisRepository, zapLogger)
	eventPublisher, err := sharedpublisher.NewRabbitMQPublisher(
		rabbitConnection,
		internalConfig.RabbitMQ.SubmissionExchange,
		internalConfig.RabbitMQ.SubmissionQueue,
	)
	if err != nil {
		log.Fatalf("Failed to set up RabbitMQ publisher: %v", err)
	}

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(zapLogger, internalConfig, appMetrics)
	chiRouter.Use(appMiddlewares.RequestLogger(internalConfig.App, logrusLogger))

	// Templates
	templateRepository := templates.NewTemplateMongoRepository(mongoClient, driverConfig.MongoDB.DbName)

	// Responses
	responseRepository := responses.NewResponseMongoRepository(mongoClient, driverConfig.MongoDB.DbName)
	responseUsecase := responses.NewResponseUsecase(
		responseRepository,
		templateRepository,
		eventPublisher,
		limiter,
		appMetrics,
		internalConfig,
		zapLogger,
	)
	responseController := responses.NewResponseController(zapLogger, responseUsecase)

	templateUsecase := templates.NewTemplateUsecase(templateRepository, responseRepository, zapLogger)
	templateController := templates.NewTemplateController(zapLogger, templateUsecase)

	// Sessions
	sessionRepository := sessions.NewSessionRedisRepository(redisRepository)
	sessionUsecase := sessions.NewSessionUsecase(
		sessionRepository,
		templateRepository,
		responseUsecase,
		appMetrics,
		internalConfig,
		zapLogger,
	)
	sessionController := sessions.NewSessionController(zapLogger, sessionUsecase)

	// Uploads
	uploadUsecase := uploads.NewUploadUsecase(minioStorage, appMetrics, internalConfig, zapLogger)
	uploadController := uploads.NewUploadController(zapLogger, uploadUsecase)

	routers.SetupRoutes(
		chiRouter,
		internalConfig,
		appMiddlewares,
		appMetrics,
		templateController,
		responseController,
		sessionController,
		uploadController,
	)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
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
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Failed to close infrastructure connections: %v", err)
	}

	log.Println("Server exiting")
}
