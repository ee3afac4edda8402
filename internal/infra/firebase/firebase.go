// Package firebase initializes the shared Firebase app and the per-service
// clients derived from it.
package firebase

import (
	"context"

	"socialgate/config"
	"socialgate/internal/domain/lifecycle"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// NewApp initializes the Firebase app from configuration. Returns nil when
// no Firebase project is configured, so deployments backed entirely by the
// Postgres store and local directory need no credentials.
func NewApp(cfg *config.Config) (*firebase.App, error) {
	if cfg.Firebase == nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:   cfg.Firebase.ProjectID,
		DatabaseURL: cfg.Firebase.DatabaseURL,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}

// NewAuthClient derives the Firebase Auth client from the app.
func NewAuthClient(app *firebase.App) (*auth.Client, error) {
	if app == nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return client, nil
}

// NewDatabaseClient derives the Realtime Database client from the app.
func NewDatabaseClient(app *firebase.App) (*db.Client, error) {
	if app == nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	client, err := app.Database(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get database client")
	}

	return client, nil
}

// NewMessagingClient derives the Cloud Messaging client from the app.
func NewMessagingClient(app *firebase.App) (*messaging.Client, error) {
	if app == nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return client, nil
}
