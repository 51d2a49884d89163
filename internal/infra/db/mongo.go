package db

import (
	"context"
	"fmt"
	"time"

	"restaurant-reservations/internal/pkg/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoConnectTimeout = 10 * time.Second

// ConnectMongo returns the collection holding the slots together with a
// cleanup that disconnects the client.
func ConnectMongo(ctx context.Context, cfg config.MongoConfig) (*mongo.Collection, func(), error) {
	clientOptions := options.Client().ApplyURI(cfg.URI)
	if cfg.Username != "" && cfg.Password != "" {
		clientOptions.SetAuth(options.Credential{
			Username: cfg.Username,
			Password: cfg.Password,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			fmt.Printf("Error closing mongo: %v\n", err)
		}
	}

	return client.Database(cfg.Database).Collection(cfg.Collection), cleanup, nil
}
