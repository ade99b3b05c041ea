package main

import (
	"context"
	"net/http"
	"neuroshield-service/cmd/migration"
	"neuroshield-service/internal/app/config"
	"neuroshield-service/internal/app/delivery/http/middlewares"
	"neuroshield-service/internal/app/delivery/http/routers"
	"neuroshield-service/internal/app/drivers/database"
	"neuroshield-service/internal/app/drivers/logger"
	"neuroshield-service/internal/app/drivers/messaging"
	"neuroshield-service/internal/app/drivers/storage"
	"neuroshield-service/internal/app/services/accessgate"
	"neuroshield-service/internal/app/services/auth"
	"neuroshield-service/internal/app/services/doctors"
	"neuroshield-service/internal/app/services/patients"
	"neuroshield-service/internal/app/services/profiles"
	"neuroshield-service/internal/app/services/recommendations"
	"neuroshield-service/internal/app/services/records"
	"neuroshield-service/internal/app/services/relationships"
	"neuroshield-service/internal/app/services/session"
	sharedIdentity "neuroshield-service/internal/app/services/shared/identity"
	sharedMailer "neuroshield-service/internal/app/services/shared/mailer"
	sharedRedis "neuroshield-service/internal/app/services/shared/redis"
	sharedStorage "neuroshield-service/internal/app/services/shared/storage"
	"neuroshield-service/internal/app/services/shared/tokens"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	postgresDB := database.NewPostgresDB(driverConfig)
	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)

	if internalConfig.App.RunMigrations {
		migration.Run(postgresDB)
	}

	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		PostgresDB:     postgresDB,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Minio:          minioClient,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	if err := bootstrapTheApp(bootstrap); err != nil {
		log.Fatalf("Failed to bootstrap application: %v", err)
	}

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

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while closing application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) error {
	// Shared services
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	tokenService := tokens.NewTokenService(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)
	identityProvider := sharedIdentity.NewIdentityMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	mailQueue, err := sharedMailer.NewMailQueue(bootstrap.RabbitMQ, bootstrap.InternalConfig.Mailer.WelcomeQueue)
	if err != nil {
		return err
	}
	objectStorage := sharedStorage.NewMinioStorage(bootstrap.Minio, bootstrap.InternalConfig.Minio.BucketName)

	// Stores
	profileStore := profiles.NewProfilePostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	relationshipStore := relationships.NewRelationshipPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	recordStore := records.NewRecordPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	recommendationStore := recommendations.NewRecommendationPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)

	// Core access control
	sessionResolver := session.NewSessionResolver(profileStore, bootstrap.Logger)
	accessGate := accessgate.NewAccessGate(relationshipStore, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, tokenService, sessionResolver, bootstrap.InternalConfig)

	// Auth
	authUsecase := auth.NewAuthUsecase(identityProvider, profileStore, tokenService, sessionResolver, mailQueue, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(authUsecase, bootstrap.InternalConfig, bootstrap.Logger)

	// Patients
	patientUsecase := patients.NewPatientUsecase(profileStore, relationshipStore, accessGate, bootstrap.Logger)
	patientController := patients.NewPatientController(patientUsecase, bootstrap.InternalConfig, bootstrap.Logger)

	// Doctors
	doctorUsecase := doctors.NewDoctorUsecase(profileStore, relationshipStore, bootstrap.Logger)
	doctorController := doctors.NewDoctorController(doctorUsecase, bootstrap.InternalConfig, bootstrap.Logger)

	// Medical records
	recordUsecase := records.NewRecordUsecase(recordStore, objectStorage, accessGate, bootstrap.InternalConfig, bootstrap.Logger)
	recordController := records.NewRecordController(recordUsecase, bootstrap.InternalConfig, bootstrap.Logger)

	// Recommendations
	recommendationUsecase := recommendations.NewRecommendationUsecase(recommendationStore, profileStore, accessGate, bootstrap.Logger)
	recommendationController := recommendations.NewRecommendationController(recommendationUsecase, bootstrap.InternalConfig, bootstrap.Logger)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		patientController,
		doctorController,
		recordController,
		recommendationController,
	)

	return nil
}
