package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"firebase.google.com/go/v4/auth"

	identityclient "github.com/GregMSThompson/travel-admin/internal/client/identity"
	"github.com/GregMSThompson/travel-admin/internal/config"
	"github.com/GregMSThompson/travel-admin/internal/dto"
	"github.com/GregMSThompson/travel-admin/internal/store"
	"github.com/GregMSThompson/travel-admin/pkg/logger"
)

type Bootstrap struct {
	Log       *slog.Logger
	Documents store.Documents
	Firebase  *auth.Client
	Identity  *identityclient.Adapter
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewCloudRunHandler)
	if _, ok := logger.ParseLevel(cfg.LogLevel); !ok {
		bs.Log.Warn("unknown LOGLEVEL, using info", "level", cfg.LogLevel)
	}
	bs.Documents, err = InitDocuments(applicationCtx, cfg)
	if err != nil {
		return bs, err
	}
	bs.Log.Info("document store ready", "backend", cfg.StoreBackend)

	bs.Firebase, err = InitFirebase(applicationCtx)
	if err != nil {
		return bs, err
	}

	apiKey := cfg.WebAPIKey
	if apiKey == "" && cfg.WebAPIKeyName != "" {
		apiKey, err = AccessSecret(applicationCtx, cfg.ProjectID, cfg.WebAPIKeyName)
		if err != nil {
			return bs, fmt.Errorf("read web API key: %w", err)
		}
	}
	bs.Identity, err = identityclient.NewAdapter(applicationCtx, bs.Firebase, apiKey)
	if err != nil {
		return bs, err
	}

	return bs, nil
}

// InitDocuments opens the configured document store backend.
func InitDocuments(ctx context.Context, cfg *config.Config) (store.Documents, error) {
	switch cfg.StoreBackend {
	case dto.StoreMemory:
		return store.NewMemoryDocuments(), nil
	case dto.StoreMongo:
		if cfg.MongoURI == "" {
			return nil, errors.New("MONGO_URI is required for the mongo backend")
		}
		return store.DialMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		client, err := InitFirestore(ctx, cfg.ProjectID)
		if err != nil {
			return nil, err
		}
		return store.NewFirestoreDocuments(client, cfg.ProjectID), nil
	}
}

func (bs *Bootstrap) Close() {
	if bs.Documents == nil {
		return
	}
	if err := bs.Documents.Close(); err != nil && bs.Log != nil {
		bs.Log.Warn("closing document store", "error", err)
	}
}
