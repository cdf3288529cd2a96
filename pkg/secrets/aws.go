package secrets

import "go.uber.org/zap"

// AWSClient answers lookups from an in-memory snapshot fetched once from AWS
// Secrets Manager by AWSClientBuilder. The snapshot is immutable for the
// lifetime of the client; lookups never touch the network. Callers needing a
// fresh snapshot build a new client.
type AWSClient struct {
	secrets map[string]any
	logger  *zap.Logger
}

var _ Client = (*AWSClient)(nil)

// GetByKey looks up key in the cached snapshot. A leading "!" marker is
// stripped before lookup; keys without the marker are used unchanged. Keys
// that are absent, or present with a non-string value, yield
// ErrSecretNotFound.
func (c *AWSClient) GetByKey(key string) (string, error) {
	value, ok := c.secrets[NormalizeKey(key)]
	if !ok {
		c.logger.Warn("aws.secret_lookup_miss", zap.String("key", key))
		return "", ErrSecretNotFound
	}

	secret, ok := value.(string)
	if !ok {
		c.logger.Warn("aws.secret_wrong_shape", zap.String("key", key))
		return "", ErrSecretNotFound
	}

	return secret, nil
}
