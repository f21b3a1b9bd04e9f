package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Mongo          *mongo.Client
	Redis          *redis.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// WorkerStop if set will be called during Shutdown to gracefully stop background workers
	WorkerStop func()
}

// Shutdown stops the webhook worker before closing connections so an event
// pulled off the queue is never dropped mid-handling.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.WorkerStop != nil {
		b.WorkerStop()
		log.Println("Successfully stopped background workers")
	}

	if err := b.RabbitMQ.Close(); err != nil {
		return err
	}
	log.Println("Successfully closed RabbitMQ")

	if err := b.Redis.Close(); err != nil {
		return err
	}
	log.Println("Successfully closed Redis")

	if err := b.Mongo.Disconnect(ctx); err != nil {
		return err
	}
	log.Println("Successfully closed MongoDB")

	// Sync can fail on stdout sinks; nothing actionable at this point.
	_ = b.Logger.Sync()

	return nil
}
