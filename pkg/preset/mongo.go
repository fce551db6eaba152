package preset

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/colgrid/colgrid/pkg/errors"
)

const (
	defaultDatabase   = "colgrid"
	defaultCollection = "presets"
)

// MongoStore is a document-backed preset store for server deployments.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB at the given URI and ensures the
// unique name index exists.
func NewMongoStore(ctx context.Context, uri string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "ping mongodb")
	}

	coll := client.Database(defaultDatabase).Collection(defaultCollection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create name index")
	}

	return &MongoStore{client: client, coll: coll}, nil
}

// Put stores a preset, replacing any preset with the same ID.
func (s *MongoStore) Put(ctx context.Context, p *Preset) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": p.ID}, p,
		options.Replace().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		// Same name under a different ID: replace by name instead, so
		// Put keeps upsert-by-name semantics across backends.
		_, err = s.coll.ReplaceOne(ctx, bson.M{"name": p.Name}, p)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "store preset %q", p.Name)
	}
	return nil
}

// Get retrieves a preset by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (*Preset, error) {
	return s.findOne(ctx, bson.M{"_id": id}, id)
}

// GetByName retrieves a preset by its unique name.
func (s *MongoStore) GetByName(ctx context.Context, name string) (*Preset, error) {
	return s.findOne(ctx, bson.M{"name": name}, name)
}

func (s *MongoStore) findOne(ctx context.Context, filter bson.M, key string) (*Preset, error) {
	var p Preset
	err := s.coll.FindOne(ctx, filter).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, notFound(key)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load preset %q", key)
	}
	return &p, nil
}

// List returns all presets sorted by name.
func (s *MongoStore) List(ctx context.Context) ([]*Preset, error) {
	cur, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list presets")
	}
	defer cur.Close(ctx)

	var out []*Preset
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode presets")
	}
	return out, nil
}

// Delete removes a preset by ID.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "delete preset %q", id)
	}
	if res.DeletedCount == 0 {
		return notFound(id)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
