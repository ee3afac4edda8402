// Package constants defines shared configuration values used across layers.
package constants

// Identity store backends.
const (
	IdentityStoreFirebase = "firebase"
	IdentityStorePostgres = "postgres"
)

// Account directory backends.
const (
	DirectoryFirebase = "firebase"
	DirectoryLocal    = "local"
)

// Pub/Sub providers.
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
)

// Environment names.
const (
	EnvDevelop = "develop"
)
