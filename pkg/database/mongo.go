package database

import (
	"context"
	"time"

	"github.com/capsule-admin/campaign-governance-service/pkg/errors"
	"github.com/capsule-admin/campaign-governance-service/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var instance *MongoDB

// Init connects to the document store and sets the shared instance.
func Init(uri string, dbName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return errors.NewServerError(errors.ErrWhileConnectingDatabase, err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return errors.NewServerError(errors.ErrWhileConnectingDatabase, err)
	}

	instance = &MongoDB{
		Client:   client,
		Database: client.Database(dbName),
	}
	logger.Info("Connected to document store: " + dbName)
	return nil
}

func GetMongoDBInstance() *MongoDB {
	return instance
}

// Disconnect tears down the connection held by the shared instance.
func Disconnect() error {
	if instance == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return instance.Client.Disconnect(ctx)
}
