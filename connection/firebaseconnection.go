package connection

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"nxtdo-backend/config"
)

// Firebase owns the process-wide Firebase app and Firestore client. The
// client is initialized on first use and cached, so a failed bootstrap at
// startup is retried on the next database access.
type Firebase struct {
	cfg    *config.Config
	logger *zap.Logger

	mu     sync.Mutex
	app    *firebase.App
	client *firestore.Client
}

func NewFirebase(cfg *config.Config, logger *zap.Logger) *Firebase {
	return &Firebase{cfg: cfg, logger: logger}
}

// Client returns the shared Firestore client, connecting if needed.
func (f *Firebase) Client(ctx context.Context) (*firestore.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.client != nil {
		return f.client, nil
	}

	opts, err := credentialOptions(f.cfg)
	if err != nil {
		return nil, err
	}

	fbConfig := &firebase.Config{
		ProjectID:     f.cfg.Firebase.ProjectID,
		StorageBucket: f.cfg.Firebase.StorageBucket,
	}
	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	// app.Firestore cannot target a named database, so the client is
	// created directly against the derived database id.
	client, err := firestore.NewClientWithDatabase(ctx, f.cfg.Firebase.ProjectID, f.cfg.Firebase.DatabaseID, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firestore client: %w", err)
	}

	f.logger.Info("firestore connection established",
		zap.String("project", f.cfg.Firebase.ProjectID),
		zap.String("database", f.cfg.Firebase.DatabaseID))

	f.app = app
	f.client = client
	return f.client, nil
}

// Close releases the Firestore client if one was ever created.
func (f *Firebase) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.client == nil {
		return nil
	}
	err := f.client.Close()
	f.client = nil
	return err
}

// credentialOptions selects between an inline service-account key and
// ambient platform credentials.
func credentialOptions(cfg *config.Config) ([]option.ClientOption, error) {
	key := cfg.FirebaseServiceAccountKey
	if key == "" {
		// Application Default Credentials; works on GCP and with
		// GOOGLE_APPLICATION_CREDENTIALS locally.
		return nil, nil
	}

	var serviceAccount map[string]interface{}
	if err := json.Unmarshal([]byte(key), &serviceAccount); err != nil {
		return nil, fmt.Errorf("FIREBASE_SERVICE_ACCOUNT_KEY is not valid JSON: %w", err)
	}
	return []option.ClientOption{option.WithCredentialsJSON([]byte(key))}, nil
}
