package secrets

import "errors"

// Errors returned by secret clients. Compare with errors.Is; callers may see
// these wrapped with additional context, but wrapping never changes the kind.
var (
	// ErrInternal signals a local processing failure, e.g. a secret payload
	// that could not be decoded into a key/value object.
	ErrInternal = errors.New("internal error")

	// ErrRequestFailure signals that the request to the remote secret store
	// could not be completed.
	ErrRequestFailure = errors.New("failure to send request")

	// ErrSecretNotFound signals that the key is absent from the cached
	// mapping, or maps to something other than a plain string.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrAWSSecretNotFound signals that AWS Secrets Manager responded but the
	// secret payload was missing.
	ErrAWSSecretNotFound = errors.New("aws secret was not found")
)
