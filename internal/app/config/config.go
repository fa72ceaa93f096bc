package config

import (
	"auditflow-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "auditflow"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api/v1"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			SubmissionRateLimit:        utils.GetEnvInt("APP_SUBMISSION_RATE_LIMIT", 30),
			SubmissionRateWindowInSecs: utils.GetEnvInt("APP_SUBMISSION_RATE_WINDOW_IN_SECONDS", 60),
		},
		Minio: AppMinio{
			BucketName:                  utils.GetEnvString("APP_MINIO_BUCKET_NAME", "audit-attachments"),
			AttachmentMaxUploadSizeInMB: utils.GetEnvInt64("APP_MINIO_ATTACHMENT_UPLOAD_MAX_SIZE_IN_MB", 8),
		},
		RabbitMQ: AppRabbitMQ{
			SubmissionExchange: utils.GetEnvString("APP_RABBITMQ_SUBMISSION_EXCHANGE", ""),
			SubmissionQueue:    utils.GetEnvString("APP_RABBITMQ_SUBMISSION_QUEUE", "audit.submission.completed"),
		},
		Session: AppSession{
			ExpiredTimeInHours: utils.GetEnvInt("APP_SESSION_EXPIRED_TIME_IN_HOURS", 24),
		},
	}
}
