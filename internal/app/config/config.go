package config

import (
	"neuroshield-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		PostgresDB: PostgresDB{
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			DBName:   utils.GetEnvString("POSTGRES_DB_NAME", "neuroshield"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
		},
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "neuroshield_identity"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: MinioDriver{
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			FrontendOrigin:            utils.GetEnvString("APP_FRONTEND_ORIGIN", "http://localhost:5173"),
			BackendOrigin:             utils.GetEnvString("APP_BACKEND_ORIGIN", "http://localhost:8080"),
			SessionCookieName:         utils.GetEnvString("APP_SESSION_COOKIE_NAME", "neuroShieldToken"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			LoginMaxAttempts:          utils.GetEnvInt("APP_LOGIN_MAX_ATTEMPTS", 10),
			LoginBlockTimeInMinutes:   utils.GetEnvInt("APP_LOGIN_BLOCK_TIME_IN_MINUTES", 15),
			RequestTimeoutInSeconds:   utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
			RunMigrations:             utils.GetEnvBool("APP_RUN_MIGRATIONS", true),
		},
		JWT: JWT{
			Secret:            utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour:     utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
			RevocationEnabled: utils.GetEnvBool("TOKEN_REVOCATION_ENABLED", false),
		},
		Mailer: Mailer{
			EmailSender:   utils.GetEnvString("APP_MAILER_EMAIL_SENDER", "help@neuro-shield.io"),
			WelcomeQueue:  utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "neuroshield.mailer"),
			PublishEmails: utils.GetEnvBool("APP_MAILER_ENABLED", true),
		},
		Minio: Minio{
			BucketName:             utils.GetEnvString("MINIO_BUCKET_NAME", "medical-records"),
			PresignedExpiryInHours: utils.GetEnvInt("MINIO_PRESIGNED_EXPIRY_IN_HOURS", 1),
		},
	}
}
