package config

import (
	"halo-optom-service/internal/pkg/utils"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Postgres: Postgres{
			Host:                   utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:                   utils.GetEnvString("POSTGRES_PORT", "5432"),
			Username:               utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password:               utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			DbName:                 utils.GetEnvString("POSTGRES_DB_NAME", "halo_optom"),
			SslMode:                utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
			MaxOpenConnections:     utils.GetEnvInt("POSTGRES_MAX_OPEN_CONNECTIONS", 25),
			MaxIdleConnections:     utils.GetEnvInt("POSTGRES_MAX_IDLE_CONNECTIONS", 5),
			ConnMaxLifetimeMinutes: utils.GetEnvInt("POSTGRES_CONN_MAX_LIFETIME_IN_MINUTES", 30),
		},
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "halo_optom"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
			PoolSize: utils.GetEnvInt("REDIS_POOL_SIZE", 10),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:        utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:        utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username:    utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password:    utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
			VirtualHost: utils.GetEnvString("RABBITMQ_VHOST", "/"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			CorsAllowedOrigins:         splitCSV(utils.GetEnvString("APP_CORS_ALLOWED_ORIGINS", "*")),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			SuperadminAPIKeyHash:       utils.GetEnvString("APP_SUPERADMIN_API_KEY_HASH", ""),
			SuperadminAPIKeyRateLimit:  utils.GetEnvInt("APP_SUPERADMIN_API_KEY_RATE_LIMIT", 100),
		},
		JWT: AppJWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
		Payment: AppPayment{
			ManualTransferDeadlineInHours: utils.GetEnvInt("APP_PAYMENT_MANUAL_TRANSFER_DEADLINE_IN_HOURS", 24),
			ProofMaxUploadSizeInMB:        utils.GetEnvInt64("APP_PAYMENT_PROOF_MAX_UPLOAD_SIZE_IN_MB", 5),
			ExpirySweepCronSpec:           utils.GetEnvString("APP_PAYMENT_EXPIRY_SWEEP_CRON_SPEC", ""),
			ExpirySweepBatchSize:          utils.GetEnvInt("APP_PAYMENT_EXPIRY_SWEEP_BATCH_SIZE", 100),
			ExpirySweepRatePerSecond:      utils.GetEnvInt("APP_PAYMENT_EXPIRY_SWEEP_RATE_PER_SECOND", 20),
			ExpirySweepLockTTL:            utils.GetEnvInt("APP_PAYMENT_EXPIRY_SWEEP_LOCK_TTL_IN_SECONDS", 60),
		},
		Withdraw: AppWithdraw{
			DefaultListPageSize: utils.GetEnvInt("APP_WITHDRAW_DEFAULT_LIST_PAGE_SIZE", 20),
		},
		Minio: AppMinio{
			PaymentProofBucketName: utils.GetEnvString("APP_MINIO_PAYMENT_PROOF_BUCKET_NAME", "payment-proofs"),
			PublicBaseUrl:          utils.GetEnvString("APP_MINIO_PUBLIC_BASE_URL", "http://localhost:9000"),
		},
		RabbitMQ: AppRabbitMQ{
			StatusEventQueue: utils.GetEnvString("APP_RABBITMQ_STATUS_EVENT_QUEUE", "halo_optom_status_events"),
		},
		MongoDB: AppMongoDB{
			AuditLogCollection: utils.GetEnvString("APP_MONGODB_AUDIT_LOG_COLLECTION", "transition_audit_logs"),
		},
	}
}

func splitCSV(value string) []string {
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
