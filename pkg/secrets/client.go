package secrets

import "strings"

// Client retrieves secret values by key, regardless of the backend that
// sourced them. Implementations hold no mutable state after construction and
// are safe for concurrent lookups.
type Client interface {
	// GetByKey returns the secret value stored under key. Missing keys and
	// values of the wrong shape yield ErrSecretNotFound.
	GetByKey(key string) (string, error)
}

// KeyMarker is the prefix convention signaling that a key is a secret
// reference and should be normalized before lookup.
const KeyMarker = "!"

// NormalizeKey strips a single leading KeyMarker from key. Keys without the
// marker are used unchanged.
func NormalizeKey(key string) string {
	return strings.TrimPrefix(key, KeyMarker)
}
