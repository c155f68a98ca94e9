package config

import (
	"testing"
	"time"

	"github.com/GregMSThompson/travel-admin/internal/dto"
)

func TestNewDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_BACKEND", "CORS_ORIGINS", "LOGIN_RATE", "LOGIN_BURST", "TRUSTED_PROXY_HOPS", "INIT_CATEGORIES", "INIT_BATCH_TIMEOUT", "INIT_WRITE_TIMEOUT", "MONGO_DATABASE"} {
		t.Setenv(k, "")
	}

	cfg := New()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.StoreBackend != dto.StoreFirestore {
		t.Errorf("StoreBackend = %q, want firestore", cfg.StoreBackend)
	}
	if cfg.MongoDatabase != "travel" {
		t.Errorf("MongoDatabase = %q", cfg.MongoDatabase)
	}
	if len(cfg.CORSOrigins) != 0 {
		t.Errorf("CORSOrigins = %v, want empty", cfg.CORSOrigins)
	}
	if cfg.LoginBurst != 5 || cfg.LoginRate != 0.2 {
		t.Errorf("login limits = %v/%d", cfg.LoginRate, cfg.LoginBurst)
	}
	if cfg.TrustedProxies != 0 {
		t.Errorf("TrustedProxies = %d, want 0", cfg.TrustedProxies)
	}
	if cfg.InitCategories {
		t.Error("InitCategories should default to false")
	}
	if cfg.Init.Batch != 20*time.Second || cfg.Init.Write != 15*time.Second {
		t.Errorf("init timeouts = %+v", cfg.Init)
	}
}

func TestNewOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_BACKEND", "Mongo")
	t.Setenv("CORS_ORIGINS", "https://admin.example.com, ,http://localhost:5173")
	t.Setenv("LOGIN_BURST", "2")
	t.Setenv("TRUSTED_PROXY_HOPS", "1")
	t.Setenv("INIT_CATEGORIES", "true")
	t.Setenv("INIT_WRITE_TIMEOUT", "3s")

	cfg := New()
	if cfg.Port != "9000" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.StoreBackend != dto.StoreMongo {
		t.Errorf("StoreBackend = %q, want mongo", cfg.StoreBackend)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://localhost:5173" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if cfg.LoginBurst != 2 {
		t.Errorf("LoginBurst = %d", cfg.LoginBurst)
	}
	if cfg.TrustedProxies != 1 {
		t.Errorf("TrustedProxies = %d", cfg.TrustedProxies)
	}
	if !cfg.InitCategories {
		t.Error("InitCategories not parsed")
	}
	if cfg.Init.Write != 3*time.Second {
		t.Errorf("Init.Write = %v", cfg.Init.Write)
	}
}
