package main

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/delivery/http/controllers"
	"clinic-booking-service/internal/app/delivery/http/middlewares"
	"clinic-booking-service/internal/app/delivery/http/routers"
	"clinic-booking-service/internal/app/drivers/database"
	"clinic-booking-service/internal/app/drivers/logger"
	"clinic-booking-service/internal/app/drivers/messaging"
	"clinic-booking-service/internal/app/drivers/storage"
	"clinic-booking-service/internal/app/services/clinic_api/appointments"
	"clinic-booking-service/internal/app/services/clinic_api/schedules"
	"clinic-booking-service/internal/app/services/clinic_api/transport"
	coreAppointments "clinic-booking-service/internal/app/services/core/appointments"
	bookingAttempts "clinic-booking-service/internal/app/services/core/booking_attempts"
	"clinic-booking-service/internal/app/services/core/slot"
	"clinic-booking-service/internal/app/services/shared/events"
	"clinic-booking-service/internal/app/services/shared/locker"
	"clinic-booking-service/internal/app/services/shared/metrics"
	"clinic-booking-service/internal/app/services/shared/redis"
	diagnosisStorage "clinic-booking-service/internal/app/services/shared/storage"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig.App.Env, driverConfig.Logger.Level, os.Stdout)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig.Minio.DiagnosisBucketName)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	err := bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error while bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		log.WithField("addr", server.Addr).Info("Server is listening")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Errorf("Error while closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	bookingMetrics := metrics.NewBookingMetrics(registry)

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)

	eventPublisher, err := events.NewPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.RabbitMQ.AppointmentEventsQueue,
		bootstrap.Logger,
		bookingMetrics,
	)
	if err != nil {
		return err
	}

	diagnosisArchive := diagnosisStorage.NewMinioDiagnosisArchive(
		bootstrap.Minio,
		bootstrap.InternalConfig.Minio.DiagnosisBucketName,
		bootstrap.Logger,
	)

	// Clinic API
	clinicAPIClient := transport.NewClient(transport.Options{
		BaseURL:            bootstrap.InternalConfig.ClinicAPI.BaseUrl,
		APIKey:             bootstrap.InternalConfig.ClinicAPI.APIKey,
		Timeout:            time.Duration(bootstrap.InternalConfig.ClinicAPI.TimeoutInSeconds) * time.Second,
		RateLimitPerSecond: bootstrap.InternalConfig.ClinicAPI.RateLimitPerSecond,
		RateLimitBurst:     bootstrap.InternalConfig.ClinicAPI.RateLimitBurst,
	}, bootstrap.Logger, bookingMetrics)
	scheduleClient := schedules.NewScheduleClient(clinicAPIClient)
	appointmentClient := appointments.NewAppointmentClient(clinicAPIClient)

	// Slot
	slotUsecase := slot.NewSlotUsecase(
		scheduleClient,
		appointmentClient,
		redisRepository,
		bookingMetrics,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)

	// Booking attempt
	bookingAttemptRepository := bookingAttempts.NewBookingAttemptMongoRepository(bootstrap.MongoDB)
	bookingAttemptUsecase := bookingAttempts.NewBookingAttemptUsecase(bookingAttemptRepository, bootstrap.Logger)

	// Appointment
	appointmentUsecase := coreAppointments.NewAppointmentUsecase(
		slotUsecase,
		appointmentClient,
		lockService,
		bookingAttemptRepository,
		eventPublisher,
		diagnosisArchive,
		bookingMetrics,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)

	// Cache warm-up worker
	if bootstrap.InternalConfig.Slot.WorkerEnabled {
		worker := slot.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, lockService, scheduleClient, slotUsecase)
		worker.Start(context.Background())
		bootstrap.SlotWorkerStop = worker.Stop
	}

	// HTTP
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)
	slotController := controllers.NewSlotController(bootstrap.Logger, slotUsecase, bookingAttemptUsecase)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		slotController,
		appointmentController,
	)

	return nil
}
