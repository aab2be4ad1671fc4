package main

import (
	"context"
	"fmt"

	"github.com/quickbasket/quickbasket-api/config"
	"github.com/quickbasket/quickbasket-api/internal/app"
	"github.com/quickbasket/quickbasket-api/internal/infrastructure/database/mongodb"
	"github.com/quickbasket/quickbasket-api/internal/infrastructure/message-queue/kafka"
	"github.com/rs/zerolog/log"
)

func main() {
	conf := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(fmt.Sprintf("mongodb://%s:%s", conf.MongoDBConfig.DBHost, conf.MongoDBConfig.DBPort), conf.MongoDBConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	defer db.Client().Disconnect(context.Background())

	if err := mongodb.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	application := app.App{
		DB:     db,
		Config: conf,
	}

	if conf.KafkaConfig.BrokerAddress != "" {
		kafkaProducer, err := kafka.CreateKafkaProducer(conf)
		if err != nil {
			log.Error().Err(err).Msg("Failed to connect to Kafka, order events disabled")
		} else {
			application.KafkaProducer = kafkaProducer
			defer kafkaProducer.Close()
		}
	}

	if err := application.Start(); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
