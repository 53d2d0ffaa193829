// Package constants holds string constants shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Pub/Sub message attributes
const (
	AttrRequestID = "request_id"
	AttrEventID   = "event_id"
	AttrUserID    = "user_id"
)

// DefaultPhotoFolder is the blob prefix for evidence photos.
const DefaultPhotoFolder = "photos"
