package dto

import "time"

type StoreBackend string

const (
	StoreFirestore StoreBackend = "firestore"
	StoreMongo     StoreBackend = "mongo"
	StoreMemory    StoreBackend = "memory"
)

// InitTimeouts bound the category initialization writes.
type InitTimeouts struct {
	Batch time.Duration
	Write time.Duration
}

// InitResult reports which category documents were created.
type InitResult struct {
	Created  []string `json:"created"`
	Existing []string `json:"existing"`
	Fallback bool     `json:"fallback"` // batch failed, individual writes were used
}
