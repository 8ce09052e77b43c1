package firebase

import (
	"context"
	"fmt"

	fb "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"
	"github.com/vitalwatch/backend/internal/config"
	"google.golang.org/api/option"
)

// Clients bundles the provider handles constructed once at startup and
// injected into the verifier and store adapter. There is no package-level
// singleton; tests substitute fakes behind the consuming interfaces.
type Clients struct {
	App  *fb.App
	Auth *auth.Client
	DB   *db.Client
}

// Connect initializes the Firebase app plus the auth client and, when a
// database URL is configured, the Realtime Database client.
func Connect(ctx context.Context, cfg *config.FirebaseConfig) (*Clients, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	app, err := fb.NewApp(ctx, &fb.Config{
		ProjectID:   cfg.ProjectID,
		DatabaseURL: cfg.DatabaseURL,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth: %w", err)
	}

	clients := &Clients{App: app, Auth: authClient}
	if cfg.DatabaseURL != "" {
		dbClient, err := app.Database(ctx)
		if err != nil {
			return nil, fmt.Errorf("firebase database: %w", err)
		}
		clients.DB = dbClient
	}
	return clients, nil
}
