package main

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/delivery/http/routers"
	"hospital-service/internal/app/drivers/database"
	"hospital-service/internal/app/drivers/logger"
	smtpdriver "hospital-service/internal/app/drivers/mailer"
	"hospital-service/internal/app/drivers/messaging"
	"hospital-service/internal/app/drivers/storage"
	"hospital-service/internal/app/services/core/appointments"
	"hospital-service/internal/app/services/core/assignments"
	"hospital-service/internal/app/services/core/auth"
	"hospital-service/internal/app/services/core/charges"
	"hospital-service/internal/app/services/core/dashboard"
	"hospital-service/internal/app/services/core/departments"
	"hospital-service/internal/app/services/core/diagnoses"
	"hospital-service/internal/app/services/core/labtests"
	"hospital-service/internal/app/services/core/mailer"
	"hospital-service/internal/app/services/core/session"
	"hospital-service/internal/app/services/core/users"
	sharedredis "hospital-service/internal/app/services/shared/redis"
	sharedstorage "hospital-service/internal/app/services/shared/storage"
	"log"
	"net/http"
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

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

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
		RabbitMQ:       rabbitConnection,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	stopWorker := bootstrapTheApp(bootstrap)

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
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	stopWorker()
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		zapLogger.Sugar().Errorf("Error disconnecting mongo client: %v", err)
	}
	if err := rabbitConnection.Close(); err != nil {
		zapLogger.Sugar().Errorf("Error closing rabbitMQ connection: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) (stopWorker func()) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared infrastructure
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	mailerService := mailer.NewMailerService(bootstrap.RabbitMQ, bootstrap.InternalConfig)

	// Mailer worker
	smtpClient := smtpdriver.NewSMTPClient(bootstrap.DriverConfig)
	worker := mailer.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, bootstrap.RabbitMQ, smtpClient)
	stopWorker, err := worker.Start(context.Background())
	if err != nil {
		log.Fatalf("Failed to start mailer worker: %v", err)
	}

	// Middlewares
	middlewares := middlewares.New(bootstrap.Logger, bootstrap.InternalConfig, sessionService)

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoClient, dbName)
	departmentMongoRepository := departments.NewDepartmentMongoRepository(bootstrap.MongoClient, dbName)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoClient, dbName)
	assignmentMongoRepository := assignments.NewAssignmentMongoRepository(bootstrap.MongoClient, dbName)
	diagnosisMongoRepository := diagnoses.NewDiagnosisMongoRepository(bootstrap.MongoClient, dbName)
	labTestMongoRepository := labtests.NewLabTestMongoRepository(bootstrap.MongoClient, dbName)
	chargeMongoRepository := charges.NewChargeMongoRepository(bootstrap.MongoClient, dbName)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, redisRepository, mailerService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Users
	userUsecase := users.NewUserUsecase(userMongoRepository, bootstrap.Logger)
	userController := users.NewUserController(bootstrap.Logger, userUsecase)

	// Departments
	departmentUsecase := departments.NewDepartmentUsecase(departmentMongoRepository, bootstrap.Logger)
	departmentController := departments.NewDepartmentController(bootstrap.Logger, departmentUsecase)

	// Appointments
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentMongoRepository, userMongoRepository, departmentMongoRepository, bootstrap.Logger)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Assignments
	assignmentUsecase := assignments.NewAssignmentUsecase(assignmentMongoRepository, userMongoRepository, bootstrap.Logger)
	assignmentController := assignments.NewAssignmentController(bootstrap.Logger, assignmentUsecase)

	// Diagnoses
	diagnosisUsecase := diagnoses.NewDiagnosisUsecase(diagnosisMongoRepository, userMongoRepository, bootstrap.Logger)
	diagnosisController := diagnoses.NewDiagnosisController(bootstrap.Logger, diagnosisUsecase)

	// Lab tests
	labTestUsecase := labtests.NewLabTestUsecase(labTestMongoRepository, userMongoRepository, minioStorage, bootstrap.InternalConfig, bootstrap.Logger)
	labTestController := labtests.NewLabTestController(bootstrap.Logger, labTestUsecase)

	// Charges
	chargeUsecase := charges.NewChargeUsecase(chargeMongoRepository, userMongoRepository, bootstrap.Logger)
	chargeController := charges.NewChargeController(bootstrap.Logger, chargeUsecase)

	// Dashboard
	dashboardUsecase := dashboard.NewDashboardUsecase(userMongoRepository, departmentMongoRepository, appointmentMongoRepository, chargeMongoRepository, bootstrap.Logger)
	dashboardController := dashboard.NewDashboardController(bootstrap.Logger, dashboardUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		userController,
		departmentController,
		appointmentController,
		assignmentController,
		diagnosisController,
		labTestController,
		chargeController,
		dashboardController,
	)
	return stopWorker
}
