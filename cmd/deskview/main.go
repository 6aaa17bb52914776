package main

import (
	"deskview/internal/events"
	"deskview/internal/webapp"
	"deskview/pkg/app"
	"deskview/pkg/config"
	"deskview/pkg/kafka"
	kafka_config "deskview/pkg/kafka/config"
	kafka_middleware "deskview/pkg/kafka/middleware"

	"github.com/joho/godotenv"
)

const (
	ServiceName        = "deskview"
	bookingEventsTopic = "booking-activity"
)

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.SetBackend()

	cfg.Log.Info("Starting deskview service")

	serverApp := app.NewApplication()

	publisher := initPublisher(cfg, serverApp)
	handler := webapp.NewHandler(cfg.Client, publisher, cfg.BookingListLimit, cfg.Log)

	serverApp.SetApp(cfg, handler)
	serverApp.Run()
}

func initPublisher(cfg *config.Config, serverApp *app.Application) *events.Publisher {
	kafkaCfg := kafka_config.Load()
	if !kafkaCfg.Enabled() {
		cfg.Log.Info("Booking event stream disabled (no Kafka brokers configured)")
		return nil
	}

	producer, err := kafka.NewProducer(kafkaCfg, bookingEventsTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize event producer", "error", err)
	}
	producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
	serverApp.SetProducer(producer)

	cfg.Log.Info("Booking event stream enabled",
		"topic", bookingEventsTopic,
		"brokers", kafkaCfg.Brokers,
	)
	return events.NewPublisher(producer, cfg.Log)
}
