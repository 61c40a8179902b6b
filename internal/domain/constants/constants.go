// Package constants holds values shared across binaries and layers.
package constants

const (
	// EnvDevelop is the env name used for local development.
	EnvDevelop = "develop"

	// PubSubProviderLocal pushes events straight to the worker over HTTP.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// Cache keys for candidate lists read by the proximity engine.
const (
	CacheKeyLocatedUsers = "lostfound:candidates:users"
	CacheKeyPostsPrefix  = "lostfound:candidates:posts:"
)
