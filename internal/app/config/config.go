package config

import (
	"clinic-booking-service/internal/pkg/utils"

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
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "clinic_booking"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
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
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
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
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			CorsAllowedOrigins:         utils.GetEnvCSV("APP_CORS_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
		},
		ClinicAPI: AppClinicAPI{
			BaseUrl:            utils.GetEnvString("CLINIC_API_BASE_URL", "http://localhost:9090/api"),
			APIKey:             utils.GetEnvString("CLINIC_API_KEY", ""),
			TimeoutInSeconds:   utils.GetEnvInt("CLINIC_API_TIMEOUT_IN_SECONDS", 10),
			RateLimitPerSecond: utils.GetEnvFloat("CLINIC_API_RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     utils.GetEnvInt("CLINIC_API_RATE_LIMIT_BURST", 10),
		},
		JWT: AppJWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
		Slot: AppSlot{
			CacheTTLInSeconds: utils.GetEnvInt("SLOT_CACHE_TTL_IN_SECONDS", 300),
			WarmUpDays:        utils.GetEnvInt("SLOT_WARMUP_DAYS", 7),
			WorkerCronSpec:    utils.GetEnvString("SLOT_WORKER_CRON_SPEC", "@every 15m"),
			WorkerEnabled:     utils.GetEnvBool("SLOT_WORKER_ENABLED", true),
		},
		Booking: AppBooking{
			LockTTLInSeconds: utils.GetEnvInt("BOOKING_LOCK_TTL_IN_SECONDS", 30),
		},
		RabbitMQ: AppRabbitMQ{
			AppointmentEventsQueue: utils.GetEnvString("APP_RABBITMQ_APPOINTMENT_EVENTS_QUEUE", "appointment_events"),
		},
		Minio: AppMinio{
			DiagnosisBucketName: utils.GetEnvString("APP_MINIO_DIAGNOSIS_BUCKET_NAME", "clinic-diagnoses"),
		},
	}
}
