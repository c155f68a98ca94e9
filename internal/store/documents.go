package store

import (
	"context"
	"errors"
)

// Collections consumed by the admin API.
const (
	PackagesCollection     = "packages"
	TestimonialsCollection = "testimonials"
	HighlightsCollection   = "destination-highlights"
	SettingsCollection     = "settings"
)

// Fields is a document's field map.
type Fields = map[string]any

// Document is a keyed field map as read from a collection.
type Document struct {
	Key    string
	Fields Fields
}

type SetOptions struct {
	// Merge only overwrites the fields present in the write. The default is a
	// whole-document replace.
	Merge bool
	// MustExist fails the write with errNotExist when the document is absent
	// instead of creating it.
	MustExist bool
}

// BatchWrite is one set operation inside CommitBatch.
type BatchWrite struct {
	Collection string
	Key        string
	Fields     Fields
	Options    SetOptions
}

// Documents is the content store: named collections of keyed documents.
// Implementations exist for Firestore, MongoDB and memory.
type Documents interface {
	// Get reports found=false, not an error, when the document is absent.
	Get(ctx context.Context, collection, key string) (fields Fields, found bool, err error)
	Set(ctx context.Context, collection, key string, fields Fields, opts SetOptions) error
	Add(ctx context.Context, collection string, fields Fields) (string, error)
	// Delete succeeds when the document is already absent.
	Delete(ctx context.Context, collection, key string) error
	List(ctx context.Context, collection string) ([]Document, error)
	// EnableNetwork is idempotent and safe to call before every write.
	EnableNetwork(ctx context.Context) error
	// CommitBatch applies every write or none.
	CommitBatch(ctx context.Context, writes []BatchWrite) error
	Close() error
}

var (
	errNotExist = errors.New("document does not exist")
	// errOffline mirrors the message Firebase clients use for a disabled
	// network so the classifier treats every backend alike.
	errOffline = errors.New("failed to reach the content store because the client is offline")
)

// IsNotExist reports whether err came from a MustExist write on an absent
// document.
func IsNotExist(err error) bool {
	return errors.Is(err, errNotExist)
}
