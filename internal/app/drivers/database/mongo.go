package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"railpay-service/internal/app/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoConnectTimeout = 10 * time.Second

// NewMongoDB connects the client backing the transaction, subscription,
// merchant and audit repositories. Startup is fail-fast: a gateway without
// its ledger store should not accept traffic.
func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Client {
	uri := fmt.Sprintf(
		"mongodb://%s:%s@%s:%s",
		driverConfig.MongoDB.Username,
		driverConfig.MongoDB.Password,
		driverConfig.MongoDB.Host,
		driverConfig.MongoDB.Port,
	)

	ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping mongo database: %s", err.Error())
	}

	log.Printf("Successfully connected to mongo database %q", driverConfig.MongoDB.DbName)
	return client
}
