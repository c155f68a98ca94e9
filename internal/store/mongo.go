package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// mongoDocuments maps collections to MongoDB collections and document keys
// to _id.
type mongoDocuments struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoDocuments(client *mongo.Client, database string) *mongoDocuments {
	return &mongoDocuments{client: client, db: client.Database(database)}
}

// DialMongo connects and pings before returning.
func DialMongo(ctx context.Context, uri, database string) (*mongoDocuments, error) {
	client, err := mongo.Connect(ctx,
		options.Client().ApplyURI(uri),
		options.Client().SetConnectTimeout(10*time.Second),
		options.Client().SetServerSelectionTimeout(10*time.Second),
	)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return NewMongoDocuments(client, database), nil
}

func byKey(key string) bson.M {
	return bson.M{"_id": key}
}

func (d *mongoDocuments) Get(ctx context.Context, collection, key string) (Fields, bool, error) {
	var raw bson.M
	err := d.db.Collection(collection).FindOne(ctx, byKey(key)).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return fromBSON(raw), true, nil
}

func (d *mongoDocuments) Set(ctx context.Context, collection, key string, fields Fields, opts SetOptions) error {
	coll := d.db.Collection(collection)

	var (
		res *mongo.UpdateResult
		err error
	)
	if opts.Merge {
		res, err = coll.UpdateOne(ctx, byKey(key), bson.M{"$set": fields}, options.Update().SetUpsert(!opts.MustExist))
	} else {
		res, err = coll.ReplaceOne(ctx, byKey(key), fields, options.Replace().SetUpsert(!opts.MustExist))
	}
	if err != nil {
		return err
	}
	if opts.MustExist && res.MatchedCount == 0 {
		return errNotExist
	}
	return nil
}

func (d *mongoDocuments) Add(ctx context.Context, collection string, fields Fields) (string, error) {
	key := uuid.NewString()
	doc := make(bson.M, len(fields)+1)
	for k, v := range fields {
		doc[k] = v
	}
	doc["_id"] = key
	if _, err := d.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return "", err
	}
	return key, nil
}

func (d *mongoDocuments) Delete(ctx context.Context, collection, key string) error {
	_, err := d.db.Collection(collection).DeleteOne(ctx, byKey(key))
	return err
}

func (d *mongoDocuments) List(ctx context.Context, collection string) ([]Document, error) {
	cur, err := d.db.Collection(collection).Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var raws []bson.M
	if err := cur.All(ctx, &raws); err != nil {
		return nil, err
	}
	out := make([]Document, 0, len(raws))
	for _, raw := range raws {
		key, _ := raw["_id"].(string)
		out = append(out, Document{Key: key, Fields: fromBSON(raw)})
	}
	return out, nil
}

// EnableNetwork pings the primary; the driver reconnects on its own.
func (d *mongoDocuments) EnableNetwork(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// CommitBatch needs a replica set; standalone servers reject transactions.
func (d *mongoDocuments) CommitBatch(ctx context.Context, writes []BatchWrite) error {
	if len(writes) == 0 {
		return nil
	}
	session, err := d.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		for _, w := range writes {
			if err := d.Set(sc, w.Collection, w.Key, w.Fields, w.Options); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	return err
}

func (d *mongoDocuments) Close() error {
	return d.client.Disconnect(context.Background())
}

// fromBSON drops _id and converts driver container types to plain maps and
// slices so the codecs see the same shapes as from Firestore.
func fromBSON(raw bson.M) Fields {
	out := make(Fields, len(raw))
	for k, v := range raw {
		if k == "_id" {
			continue
		}
		out[k] = plainValue(v)
	}
	return out
}

func plainValue(v any) any {
	switch t := v.(type) {
	case primitive.M:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = plainValue(val)
		}
		return m
	case primitive.D:
		m := make(map[string]any, len(t))
		for _, e := range t {
			m[e.Key] = plainValue(e.Value)
		}
		return m
	case primitive.A:
		s := make([]any, len(t))
		for i, val := range t {
			s[i] = plainValue(val)
		}
		return s
	case primitive.DateTime:
		return t.Time().UTC()
	default:
		return v
	}
}
