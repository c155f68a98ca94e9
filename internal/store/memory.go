package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryDocuments keeps collections in process. It backs local development
// (STORE_BACKEND=memory) and tests. The *Err fields inject failures.
type MemoryDocuments struct {
	mu          sync.Mutex
	collections map[string]map[string]Fields
	offline     bool

	GetErr    error
	ListErr   error
	SetErr    error
	BatchErr  error
	EnableErr error

	Sets      int // successful Set calls
	Batches   int // successful CommitBatch calls
	Enables   int // EnableNetwork calls
	batchHook func(ctx context.Context) error
	setHook   func(ctx context.Context) error
}

func NewMemoryDocuments() *MemoryDocuments {
	return &MemoryDocuments{collections: make(map[string]map[string]Fields)}
}

// SetOffline simulates a client with its network disabled. EnableNetwork
// brings it back unless EnableErr is set.
func (m *MemoryDocuments) SetOffline(offline bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.offline = offline
}

func (m *MemoryDocuments) coll(name string) map[string]Fields {
	c, ok := m.collections[name]
	if !ok {
		c = make(map[string]Fields)
		m.collections[name] = c
	}
	return c
}

func (m *MemoryDocuments) Get(_ context.Context, collection, key string) (Fields, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.offline {
		return nil, false, errOffline
	}
	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	doc, ok := m.coll(collection)[key]
	if !ok {
		return nil, false, nil
	}
	return copyFields(doc), true, nil
}

func (m *MemoryDocuments) Set(ctx context.Context, collection, key string, fields Fields, opts SetOptions) error {
	if m.setHook != nil {
		if err := m.setHook(ctx); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.offline {
		return errOffline
	}
	if m.SetErr != nil {
		return m.SetErr
	}
	if err := m.set(collection, key, fields, opts); err != nil {
		return err
	}
	m.Sets++
	return nil
}

func (m *MemoryDocuments) set(collection, key string, fields Fields, opts SetOptions) error {
	c := m.coll(collection)
	existing, ok := c[key]
	if opts.MustExist && !ok {
		return errNotExist
	}
	if opts.Merge && ok {
		merged := copyFields(existing)
		for k, v := range copyFields(fields) {
			merged[k] = v
		}
		c[key] = merged
		return nil
	}
	c[key] = copyFields(fields)
	return nil
}

func (m *MemoryDocuments) Add(_ context.Context, collection string, fields Fields) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.offline {
		return "", errOffline
	}
	if m.SetErr != nil {
		return "", m.SetErr
	}
	key := uuid.NewString()
	m.coll(collection)[key] = copyFields(fields)
	m.Sets++
	return key, nil
}

func (m *MemoryDocuments) Delete(_ context.Context, collection, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.offline {
		return errOffline
	}
	if m.SetErr != nil {
		return m.SetErr
	}
	delete(m.coll(collection), key)
	return nil
}

func (m *MemoryDocuments) List(_ context.Context, collection string) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.offline {
		return nil, errOffline
	}
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	c := m.coll(collection)
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Document, 0, len(keys))
	for _, k := range keys {
		out = append(out, Document{Key: k, Fields: copyFields(c[k])})
	}
	return out, nil
}

func (m *MemoryDocuments) EnableNetwork(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Enables++
	if m.EnableErr != nil {
		return m.EnableErr
	}
	m.offline = false
	return nil
}

func (m *MemoryDocuments) CommitBatch(ctx context.Context, writes []BatchWrite) error {
	if m.batchHook != nil {
		if err := m.batchHook(ctx); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.offline {
		return errOffline
	}
	if m.BatchErr != nil {
		return m.BatchErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, w := range writes {
		if w.Options.MustExist {
			if _, ok := m.coll(w.Collection)[w.Key]; !ok {
				return errNotExist
			}
		}
	}
	for _, w := range writes {
		if err := m.set(w.Collection, w.Key, w.Fields, w.Options); err != nil {
			return err
		}
	}
	m.Batches++
	return nil
}

func (m *MemoryDocuments) Close() error {
	m.SetOffline(true)
	return nil
}

func copyFields(f Fields) Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return copyFields(t)
	case []any:
		s := make([]any, len(t))
		for i, val := range t {
			s[i] = copyValue(val)
		}
		return s
	case []string:
		s := make([]any, len(t))
		for i, val := range t {
			s[i] = val
		}
		return s
	default:
		return v
	}
}
