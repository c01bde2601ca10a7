package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	apperrors "saasland/internal/errors"
)

// MongoStore is the MongoDB-backed Store. The database handle is established
// once at startup and held for the process lifetime; there is no reconnect
// logic. A MongoStore with a nil handle is valid and reports every data
// operation as ErrStoreUnavailable, so the process can come up and serve the
// diagnostic endpoint even when the database is unreachable.
type MongoStore struct {
	db *mongo.Database
}

// NewMongo connects to the given MongoDB URI and returns a store bound to
// dbName. On connection failure it returns a disconnected store along with
// the error, leaving the caller to decide whether that is fatal.
func NewMongo(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	if uri == "" {
		return &MongoStore{}, fmt.Errorf("connect mongo: no connection string configured")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return &MongoStore{}, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return &MongoStore{}, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoStore{db: client.Database(dbName)}, nil
}

func (s *MongoStore) Create(ctx context.Context, collection string, doc any) (string, error) {
	if s.db == nil {
		return "", apperrors.ErrStoreUnavailable
	}
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", collection, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprint(res.InsertedID), nil
	}
	return oid.Hex(), nil
}

func (s *MongoStore) Find(ctx context.Context, collection string, filter Filter, results any) error {
	if s.db == nil {
		return apperrors.ErrStoreUnavailable
	}
	cur, err := s.db.Collection(collection).Find(ctx, filter.toBSON())
	if err != nil {
		return fmt.Errorf("find %s: %w", collection, err)
	}
	defer cur.Close(ctx)
	if err := cur.All(ctx, results); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

func (s *MongoStore) Status(ctx context.Context) Status {
	if s.db == nil {
		return Status{Connected: false}
	}
	st := Status{Connected: true, Database: s.db.Name()}
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		st.Err = err.Error()
		return st
	}
	if len(names) > 10 {
		names = names[:10]
	}
	st.Collections = names
	return st
}
