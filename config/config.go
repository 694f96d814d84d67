// Package config loads process configuration from the environment and an
// optional .env.local file, and derives the Firebase backend identifiers
// for the selected deployment environment.
package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// FirebaseConfig identifies the backend project a process talks to.
type FirebaseConfig struct {
	ProjectID     string
	StorageBucket string
	DatabaseID    string
}

type Config struct {
	ProjectName  string
	Environment  string
	GCPProjectID string
	Port         string

	// JSON-encoded service account credential. Empty means ambient
	// (Application Default) credentials.
	FirebaseServiceAccountKey string

	// Accepted but unused by the core; reserved for future wiring.
	DatabaseURL   string
	AzureClientID string
	AzureTenantID string

	Firebase FirebaseConfig
}

var (
	once    sync.Once
	cfg     *Config
	loadErr error
)

// Load resolves the configuration once per process; later calls return the
// cached record.
func Load() (*Config, error) {
	once.Do(func() {
		cfg, loadErr = load()
	})
	return cfg, loadErr
}

func load() (*Config, error) {
	// Process environment takes precedence; godotenv never overwrites
	// variables that are already set.
	_ = godotenv.Load(".env.local")

	env := getString("ENVIRONMENT", EnvDevelopment)
	switch env {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		return nil, fmt.Errorf("invalid ENVIRONMENT %q: must be one of development, staging, production", env)
	}

	c := &Config{
		ProjectName:               getString("PROJECT_NAME", "NxtDo"),
		Environment:               env,
		GCPProjectID:              getString("GCP_PROJECT_ID", "nxtdo-dev"),
		Port:                      getString("PORT", "8080"),
		FirebaseServiceAccountKey: os.Getenv("FIREBASE_SERVICE_ACCOUNT_KEY"),
		DatabaseURL:               os.Getenv("DATABASE_URL"),
		AzureClientID:             os.Getenv("AZURE_CLIENT_ID"),
		AzureTenantID:             os.Getenv("AZURE_TENANT_ID"),
		Firebase:                  firebaseConfigFor(env),
	}
	return c, nil
}

func firebaseConfigFor(env string) FirebaseConfig {
	if env == EnvProduction {
		return FirebaseConfig{
			ProjectID:     "nxtdo-prod",
			StorageBucket: "nxtdo-prod.firebasestorage.app",
			DatabaseID:    "nxtdo-prod-db",
		}
	}
	return FirebaseConfig{
		ProjectID:     "nxtdo-dev",
		StorageBucket: "nxtdo-dev.firebasestorage.app",
		DatabaseID:    "nxtdo-dev-db",
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
