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
	MongoClient    *mongo.Client
	Redis          *redis.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.MongoClient != nil {
		if err := b.MongoClient.Disconnect(ctx); err != nil {
			return err
		}
		log.Println("Successfully closing MongoDB")
	}

	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.RabbitMQ != nil {
		if err := b.RabbitMQ.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	if b.Logger != nil {
		if err := b.Logger.Sync(); err != nil {
			log.Printf("Logger sync: %v", err)
		}
	}

	return nil
}
