package directory

import (
	"context"
	"time"

	"socialgate/config"
	"socialgate/internal/domain/entity"
	"socialgate/internal/domain/service"
	"socialgate/internal/infra/persistence/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultSessionTTL = 24 * time.Hour

// localDirectory is a database-backed directory for development environments
// without a Firebase project. Session tokens are signed JWTs instead of
// Firebase custom tokens.
type localDirectory struct {
	db            *gorm.DB
	sessionSecret []byte
	sessionTTL    time.Duration
}

// NewLocalDirectory creates a development account directory on PostgreSQL.
func NewLocalDirectory(db *gorm.DB, cfg *config.DirectoryConfig) service.AccountDirectory {
	sessionTTL := cfg.SessionTTL
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}

	return &localDirectory{
		db:            db,
		sessionSecret: []byte(cfg.SessionSecret),
		sessionTTL:    sessionTTL,
	}
}

// GetAccountByID looks up an account row by id.
func (d *localDirectory) GetAccountByID(ctx context.Context, id string) (*entity.AccountRecord, error) {
	var accountM model.AccountModel
	err := d.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrAccountNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toLocalAccountRecord(&accountM), nil
}

// GetAccountByEmail looks up an account row by email.
func (d *localDirectory) GetAccountByEmail(ctx context.Context, email string) (*entity.AccountRecord, error) {
	var accountM model.AccountModel
	err := d.db.WithContext(ctx).
		Where("email = ?", email).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrAccountNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toLocalAccountRecord(&accountM), nil
}

// CreateAccount inserts an account row with the given id.
func (d *localDirectory) CreateAccount(ctx context.Context, id string, fields entity.AccountFields) error {
	accountM := model.AccountModel{
		ID:          id,
		DisplayName: fields.DisplayName,
		PhotoURL:    fields.PhotoURL,
		Email:       fields.Email,
	}
	if err := d.db.WithContext(ctx).Create(&accountM).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// PatchAccount sets the given fields on an existing account row. Empty
// fields are left untouched.
func (d *localDirectory) PatchAccount(ctx context.Context, id string, fields entity.AccountFields) error {
	if fields.IsZero() {
		return nil
	}

	updates := map[string]interface{}{}
	if fields.DisplayName != "" {
		updates["display_name"] = fields.DisplayName
	}
	if fields.PhotoURL != "" {
		updates["photo_url"] = fields.PhotoURL
	}
	if fields.Email != "" {
		updates["email"] = fields.Email
	}

	result := d.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return service.ErrAccountNotFound
	}

	return nil
}

// IssueSessionToken mints a signed JWT with the account id as subject.
func (d *localDirectory) IssueSessionToken(_ context.Context, id string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(d.sessionTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(d.sessionSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return token, nil
}

func toLocalAccountRecord(accountM *model.AccountModel) *entity.AccountRecord {
	return &entity.AccountRecord{
		ID:          accountM.ID,
		DisplayName: accountM.DisplayName,
		PhotoURL:    accountM.PhotoURL,
		Email:       accountM.Email,
	}
}
