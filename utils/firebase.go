// utils/firebase.go
package utils

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// FirebaseAppConfig describes one Firebase Admin app. Each tenant gets its own app and credentials.
type FirebaseAppConfig struct {
	Name            string
	ProjectID       string
	CredentialsFile string
}

// NewFirebaseApp initializes a Firebase Admin app. With no credentials file the
// application default credentials of the hosting project are used.
func NewFirebaseApp(ctx context.Context, cfg FirebaseAppConfig) (*firebase.App, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase: error initializing %s app: %w", cfg.Name, err)
	}
	return app, nil
}
