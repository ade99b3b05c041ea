package config

type (
	InternalConfig struct {
		App    App
		JWT    JWT
		Mailer Mailer
		Minio  Minio
	}

	DriverConfig struct {
		PostgresDB PostgresDB
		MongoDB    MongoDB
		Redis      Redis
		RabbitMQ   RabbitMQ
		Minio      MinioDriver
		Logger     Logger
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Address                   string
		Timezone                  string
		EndpointPrefix            string
		FrontendOrigin            string
		BackendOrigin             string
		SessionCookieName         string
		MaxRequests               int
		ShutdownTimeout           int
		LoginMaxAttempts          int
		LoginBlockTimeInMinutes   int
		RequestTimeoutInSeconds   int
		MaxTimeRequestsPerSeconds int
		RunMigrations             bool
	}

	JWT struct {
		Secret            string
		ExpTimeInHour     int
		RevocationEnabled bool
	}

	Mailer struct {
		EmailSender   string
		WelcomeQueue  string
		PublishEmails bool
	}

	Minio struct {
		BucketName             string
		PresignedExpiryInHours int
	}

	PostgresDB struct {
		Host     string
		Port     string
		DBName   string
		Username string
		Password string
	}

	MongoDB struct {
		Host     string
		Port     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	MinioDriver struct {
		Host     string
		Port     string
		Username string
		Password string
		UseSSL   bool
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
