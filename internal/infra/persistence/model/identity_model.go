// Package model holds the GORM-specific structs for the persistence layer.
package model

import (
	"time"
)

// SocialIdentityModel is the GORM-specific struct for the 'social_identities'
// table. The composite primary key enforces at most one row per provider
// identity; a concurrent insert for the same key fails on the constraint.
type SocialIdentityModel struct {
	Provider       string            `gorm:"type:text;primaryKey"`
	ProviderUserID string            `gorm:"type:text;primaryKey"`
	AccessToken    string            `gorm:"type:text;not null"`
	AccountID      string            `gorm:"type:text;not null;index"`
	Extra          map[string]string `gorm:"serializer:json"`
	UpdatedAt      time.Time
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (SocialIdentityModel) TableName() string {
	return "social_identities"
}

// HandshakeSecretModel is the GORM-specific struct for the
// 'handshake_secrets' table holding pending three-legged request secrets.
type HandshakeSecretModel struct {
	ClientID  string `gorm:"type:text;primaryKey"`
	Secret    string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (HandshakeSecretModel) TableName() string {
	return "handshake_secrets"
}

// AccountModel is the GORM-specific struct for the 'accounts' table used by
// the local account directory.
type AccountModel struct {
	ID          string `gorm:"type:text;primaryKey"`
	DisplayName string `gorm:"type:text"`
	PhotoURL    string `gorm:"type:text"`
	Email       string `gorm:"type:text;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
