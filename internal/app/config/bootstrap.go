package config

import (
	"context"
	"database/sql"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Postgres       *sql.DB
	MongoDB        *mongo.Database
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// ExpiryWorkerStop is set only when the expiry sweep is enabled.
	ExpiryWorkerStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.ExpiryWorkerStop != nil {
		b.ExpiryWorkerStop()
		log.Println("Successfully stopped payment expiry worker")
	}

	if err := b.Postgres.Close(); err != nil {
		return err
	}
	log.Println("Successfully closing Postgres")

	if err := b.MongoDB.Client().Disconnect(ctx); err != nil {
		return err
	}
	log.Println("Successfully closing MongoDB")

	if err := b.Redis.Close(); err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	if err := b.RabbitMQ.Close(); err != nil {
		return err
	}
	log.Println("Successfully closing RabbitMQ")

	// Sync fails on stdout/stderr sinks on some platforms; nothing to recover.
	_ = b.Logger.Sync()
	log.Println("Successfully closing Logger")

	return nil
}
