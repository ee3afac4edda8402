package service

import (
	"context"
	"errors"

	"socialgate/internal/domain/entity"
)

// ErrAccountNotFound is returned when the directory holds no record for the
// requested account id or email.
var ErrAccountNotFound = errors.New("account not found")

// AccountDirectory is the externally-owned account registry. Creation is
// idempotent keyed by account id; the core treats the directory as
// append/patch-only and never deletes or overwrites populated fields.
type AccountDirectory interface {
	// GetAccountByID looks up an account record, or ErrAccountNotFound.
	GetAccountByID(ctx context.Context, id string) (*entity.AccountRecord, error)

	// GetAccountByEmail looks up an account record by email, or ErrAccountNotFound.
	GetAccountByEmail(ctx context.Context, email string) (*entity.AccountRecord, error)

	// CreateAccount creates an account with the given id and initial fields.
	CreateAccount(ctx context.Context, id string, fields entity.AccountFields) error

	// PatchAccount sets the given fields on an existing account. Empty fields
	// are ignored. Returns ErrAccountNotFound when the id is unknown.
	PatchAccount(ctx context.Context, id string, fields entity.AccountFields) error

	// IssueSessionToken mints a bearer session token for an account id.
	IssueSessionToken(ctx context.Context, id string) (string, error)
}
