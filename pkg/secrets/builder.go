package secrets

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"
)

// SecretsManagerAPI is the slice of the AWS Secrets Manager client used by
// the builder. It exists so tests can inject a fake transport.
type SecretsManagerAPI interface {
	GetSecretValue(
		ctx context.Context,
		params *secretsmanager.GetSecretValueInput,
		optFns ...func(*secretsmanager.Options),
	) (*secretsmanager.GetSecretValueOutput, error)
}

// AWSClientBuilder performs the one-time fetch of a secret record from AWS
// Secrets Manager and produces a ready-to-query AWSClient. Every Build call
// is an independent fetch; resulting clients share no state.
type AWSClientBuilder struct {
	secretID string
	region   string
	logger   *zap.Logger
	api      SecretsManagerAPI
}

// Option configures an AWSClientBuilder.
type Option func(*AWSClientBuilder)

// WithRegion overrides the AWS region used when loading the default SDK
// config.
func WithRegion(region string) Option {
	return func(b *AWSClientBuilder) { b.region = region }
}

// WithLogger sets the logger used on failure paths. Defaults to a no-op
// logger.
func WithLogger(logger *zap.Logger) Option {
	return func(b *AWSClientBuilder) { b.logger = logger }
}

// WithAPI injects a pre-built Secrets Manager API, bypassing SDK config
// loading. Intended for tests and custom endpoints.
func WithAPI(api SecretsManagerAPI) Option {
	return func(b *AWSClientBuilder) { b.api = api }
}

// NewAWSClientBuilder creates a builder for the given secret ID, the name or
// ARN under which the key/value record is stored in AWS Secrets Manager.
func NewAWSClientBuilder(secretID string, opts ...Option) *AWSClientBuilder {
	b := &AWSClientBuilder{
		secretID: secretID,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build fetches the configured secret record, checks that a payload is
// present and parses it as a flat JSON object of key/value pairs. The
// returned client answers all lookups from memory.
func (b *AWSClientBuilder) Build(ctx context.Context) (*AWSClient, error) {
	api := b.api
	if api == nil {
		var optFns []func(*config.LoadOptions) error
		if b.region != "" {
			optFns = append(optFns, config.WithRegion(b.region))
		}
		cfg, err := config.LoadDefaultConfig(ctx, optFns...)
		if err != nil {
			b.logger.Error("aws.config_load_failed", zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrRequestFailure, err)
		}
		api = secretsmanager.NewFromConfig(cfg)
	}

	out, err := api.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(b.secretID),
	})
	if err != nil {
		b.logger.Error("aws.secret_fetch_failed",
			zap.String("secret_id", b.secretID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrRequestFailure, err)
	}

	if out.SecretString == nil || *out.SecretString == "" {
		b.logger.Error("aws.secret_missing",
			zap.String("secret_id", b.secretID))
		return nil, ErrAWSSecretNotFound
	}

	var mapping map[string]any
	if err := json.Unmarshal([]byte(*out.SecretString), &mapping); err != nil {
		b.logger.Error("aws.secret_parse_failed",
			zap.String("secret_id", b.secretID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &AWSClient{secrets: mapping, logger: b.logger}, nil
}
