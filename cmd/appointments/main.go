package main

import (
	"medibook/internal/appointments/handler"
	"medibook/internal/appointments/notifier"
	"medibook/internal/appointments/repository"
	"medibook/internal/appointments/service"
	"medibook/internal/appointments/validator"
	"medibook/pkg/app"
	"medibook/pkg/config"
	"medibook/pkg/kafka"
)

const ServiceName = "appointments"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Appointments service")
	appointmentService := initServices(cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewAppointmentHandler(appointmentService, cfg.Log),
		handler.NewHealthHandler(cfg.Client.Mongo, cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config) service.AppointmentService {
	appointmentValidator := validator.NewAppointmentValidator(cfg.Log)
	appointmentRepo := repository.NewMongoAppointmentRepository(cfg)

	appointmentService := service.NewAppointmentService(
		appointmentRepo,
		appointmentValidator,
		initNotifier(cfg),
		cfg,
	)

	cfg.Log.Info("Appointment service initialized", "database", cfg.MongoDatabaseName)
	return appointmentService
}

func initNotifier(cfg *config.Config) notifier.Notifier {
	logNotifier := notifier.NewLogNotifier(cfg.Log)
	if !cfg.KafkaEnabled() {
		return logNotifier
	}

	producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, ServiceName)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	cfg.Log.Info("Kafka booking-event publisher enabled", "topic", cfg.KafkaTopic)
	return notifier.Multi(logNotifier, notifier.NewKafkaNotifier(producer))
}
