// Package directory provides the account directory backends: Firebase Auth
// for production and a database-backed directory for local development.
package directory

import (
	"context"

	"socialgate/internal/domain/entity"
	"socialgate/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

type firebaseDirectory struct {
	client *auth.Client
}

// NewFirebaseDirectory creates an account directory backed by Firebase Auth.
func NewFirebaseDirectory(client *auth.Client) service.AccountDirectory {
	return &firebaseDirectory{client: client}
}

// GetAccountByID looks up a Firebase Auth user by uid.
func (d *firebaseDirectory) GetAccountByID(ctx context.Context, id string) (*entity.AccountRecord, error) {
	user, err := d.client.GetUser(ctx, id)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, service.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to get user")
	}

	return toAccountRecord(user), nil
}

// GetAccountByEmail looks up a Firebase Auth user by email.
func (d *firebaseDirectory) GetAccountByEmail(ctx context.Context, email string) (*entity.AccountRecord, error) {
	user, err := d.client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, service.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to get user by email")
	}

	return toAccountRecord(user), nil
}

// CreateAccount creates a Firebase Auth user with a caller-chosen uid.
func (d *firebaseDirectory) CreateAccount(ctx context.Context, id string, fields entity.AccountFields) error {
	params := (&auth.UserToCreate{}).UID(id)
	if fields.DisplayName != "" {
		params = params.DisplayName(fields.DisplayName)
	}
	if fields.PhotoURL != "" {
		params = params.PhotoURL(fields.PhotoURL)
	}
	if fields.Email != "" {
		params = params.Email(fields.Email)
	}

	if _, err := d.client.CreateUser(ctx, params); err != nil {
		return errors.Wrap(err, "failed to create user")
	}

	return nil
}

// PatchAccount sets the given fields on an existing Firebase Auth user.
// Empty fields are left untouched.
func (d *firebaseDirectory) PatchAccount(ctx context.Context, id string, fields entity.AccountFields) error {
	if fields.IsZero() {
		return nil
	}

	params := &auth.UserToUpdate{}
	if fields.DisplayName != "" {
		params = params.DisplayName(fields.DisplayName)
	}
	if fields.PhotoURL != "" {
		params = params.PhotoURL(fields.PhotoURL)
	}
	if fields.Email != "" {
		params = params.Email(fields.Email)
	}

	if _, err := d.client.UpdateUser(ctx, id, params); err != nil {
		if auth.IsUserNotFound(err) {
			return service.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to update user")
	}

	return nil
}

// IssueSessionToken mints a Firebase custom token for the account.
func (d *firebaseDirectory) IssueSessionToken(ctx context.Context, id string) (string, error) {
	token, err := d.client.CustomToken(ctx, id)
	if err != nil {
		return "", errors.Wrap(err, "failed to mint custom token")
	}

	return token, nil
}

func toAccountRecord(user *auth.UserRecord) *entity.AccountRecord {
	return &entity.AccountRecord{
		ID:          user.UID,
		DisplayName: user.DisplayName,
		PhotoURL:    user.PhotoURL,
		Email:       user.Email,
	}
}
