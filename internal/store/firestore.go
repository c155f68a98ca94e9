package store

import (
	"context"
	"sync"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// firestoreDocuments owns the Firestore client. Close leaves it with the
// network disabled; EnableNetwork dials a fresh client when needed.
type firestoreDocuments struct {
	projectID string
	dial      func(ctx context.Context, projectID string) (*firestore.Client, error)

	mu     sync.RWMutex
	client *firestore.Client
}

func NewFirestoreDocuments(client *firestore.Client, projectID string) *firestoreDocuments {
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}
	return &firestoreDocuments{
		projectID: projectID,
		client:    client,
		dial: func(ctx context.Context, projectID string) (*firestore.Client, error) {
			return firestore.NewClient(ctx, projectID)
		},
	}
}

func (d *firestoreDocuments) conn() (*firestore.Client, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.client == nil {
		return nil, errOffline
	}
	return d.client, nil
}

func (d *firestoreDocuments) EnableNetwork(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.client != nil {
		return nil
	}
	client, err := d.dial(ctx, d.projectID)
	if err != nil {
		return err
	}
	d.client = client
	return nil
}

func (d *firestoreDocuments) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.client == nil {
		return nil
	}
	err := d.client.Close()
	d.client = nil
	return err
}

func (d *firestoreDocuments) Get(ctx context.Context, collection, key string) (Fields, bool, error) {
	client, err := d.conn()
	if err != nil {
		return nil, false, err
	}
	snap, err := client.Collection(collection).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, false, nil
		}
		return nil, false, err
	}
	return snap.Data(), true, nil
}

func (d *firestoreDocuments) Set(ctx context.Context, collection, key string, fields Fields, opts SetOptions) error {
	client, err := d.conn()
	if err != nil {
		return err
	}
	ref := client.Collection(collection).Doc(key)

	if !opts.MustExist {
		_, err = ref.Set(ctx, fields, setOptions(opts)...)
		return err
	}

	return client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(ref); err != nil {
			if status.Code(err) == codes.NotFound {
				return errNotExist
			}
			return err
		}
		return tx.Set(ref, fields, setOptions(opts)...)
	})
}

func (d *firestoreDocuments) Add(ctx context.Context, collection string, fields Fields) (string, error) {
	client, err := d.conn()
	if err != nil {
		return "", err
	}
	ref, _, err := client.Collection(collection).Add(ctx, fields)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (d *firestoreDocuments) Delete(ctx context.Context, collection, key string) error {
	client, err := d.conn()
	if err != nil {
		return err
	}
	_, err = client.Collection(collection).Doc(key).Delete(ctx)
	return err
}

func (d *firestoreDocuments) List(ctx context.Context, collection string) ([]Document, error) {
	client, err := d.conn()
	if err != nil {
		return nil, err
	}
	iter := client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	var out []Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, Document{Key: snap.Ref.ID, Fields: snap.Data()})
	}
	return out, nil
}

// CommitBatch runs the writes in one transaction so they land together.
func (d *firestoreDocuments) CommitBatch(ctx context.Context, writes []BatchWrite) error {
	if len(writes) == 0 {
		return nil
	}
	client, err := d.conn()
	if err != nil {
		return err
	}
	return client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		for _, w := range writes {
			if err := tx.Set(client.Collection(w.Collection).Doc(w.Key), w.Fields, setOptions(w.Options)...); err != nil {
				return err
			}
		}
		return nil
	})
}

func setOptions(opts SetOptions) []firestore.SetOption {
	if opts.Merge {
		return []firestore.SetOption{firestore.MergeAll}
	}
	return nil
}
