package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/GregMSThompson/travel-admin/internal/dto"
	"github.com/GregMSThompson/travel-admin/pkg/helpers"
)

type Config struct {
	ProjectID      string
	LogLevel       string
	Port           string
	StoreBackend   dto.StoreBackend
	MongoURI       string
	MongoDatabase  string
	WebAPIKey      string
	WebAPIKeyName  string // Secret Manager secret holding the web API key
	CORSOrigins    []string
	LoginRate      float64 // requests per second per client
	LoginBurst     int
	TrustedProxies int // proxies in front that append to X-Forwarded-For
	InitCategories bool
	Init           dto.InitTimeouts
}

// New loads an optional .env file and reads configuration from the
// environment.
func New() *Config {
	_ = godotenv.Load()

	return &Config{
		ProjectID:      os.Getenv("PROJECTID"),
		LogLevel:       os.Getenv("LOGLEVEL"),
		Port:           getString("PORT", "8080"),
		StoreBackend:   getStoreBackend(os.Getenv("STORE_BACKEND")),
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDatabase:  getString("MONGO_DATABASE", "travel"),
		WebAPIKey:      os.Getenv("WEBAPIKEY"),
		WebAPIKeyName:  os.Getenv("WEBAPIKEY_SECRET"),
		CORSOrigins:    getList("CORS_ORIGINS"),
		LoginRate:      getFloat("LOGIN_RATE", 0.2),
		LoginBurst:     getInt("LOGIN_BURST", 5),
		TrustedProxies: getInt("TRUSTED_PROXY_HOPS", 0),
		InitCategories: getBool("INIT_CATEGORIES", false),
		Init: dto.InitTimeouts{
			Batch: getDuration("INIT_BATCH_TIMEOUT", 20*time.Second),
			Write: getDuration("INIT_WRITE_TIMEOUT", 15*time.Second),
		},
	}
}

func getStoreBackend(v string) dto.StoreBackend {
	switch strings.ToLower(v) {
	case "mongo":
		return dto.StoreMongo
	case "memory":
		return dto.StoreMemory
	default: // "firestore"
		return dto.StoreFirestore
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getList(key string) []string {
	return helpers.SplitCSV(os.Getenv(key))
}

func getInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if f, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return f
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return fallback
}
