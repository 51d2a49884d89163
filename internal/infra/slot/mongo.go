package slot

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"restaurant-reservations/internal/infra"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type slotDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type MongoSlot struct {
	logger     *slog.Logger
	collection *mongo.Collection
}

func NewMongoSlot(logger *slog.Logger, collection *mongo.Collection) *MongoSlot {
	return &MongoSlot{logger: logger, collection: collection}
}

func (s *MongoSlot) Load(ctx context.Context, key string) ([]byte, error) {
	var doc slotDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, infra.WrapSlotErr(s.logger, infra.KindNotFound, "slot "+key+" is empty", nil)
	}
	if err != nil {
		return nil, infra.WrapSlotErr(s.logger, infra.KindBackendFailure, "mongo find slot", err)
	}
	return []byte(doc.Value), nil
}

func (s *MongoSlot) Save(ctx context.Context, key string, blob []byte) error {
	doc := slotDocument{Key: key, Value: string(blob), UpdatedAt: time.Now().UTC()}
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return infra.WrapSlotErr(s.logger, infra.KindBackendFailure, "mongo replace slot", err)
	}
	return nil
}
