package secrets

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestClient(mapping map[string]any) *AWSClient {
	return &AWSClient{secrets: mapping, logger: zap.NewNop()}
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "db-pass", NormalizeKey("!db-pass"))
	assert.Equal(t, "db-pass", NormalizeKey("db-pass"))
	assert.Equal(t, "!db-pass", NormalizeKey("!!db-pass"))
	assert.Equal(t, "", NormalizeKey("!"))
	assert.Equal(t, "", NormalizeKey(""))
}

func TestAWSClient_GetByKey(t *testing.T) {
	client := newTestClient(map[string]any{
		"db-pass": "s3cr3t",
		"flag":    true,
	})

	tests := []struct {
		name    string
		key     string
		want    string
		wantErr error
	}{
		{name: "marker prefix stripped", key: "!db-pass", want: "s3cr3t"},
		{name: "key without marker used unchanged", key: "db-pass", want: "s3cr3t"},
		{name: "missing key", key: "!missing", wantErr: ErrSecretNotFound},
		{name: "non-string value", key: "!flag", wantErr: ErrSecretNotFound},
		{name: "empty key", key: "", wantErr: ErrSecretNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := client.GetByKey(tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAWSClient_GetByKey_Idempotent(t *testing.T) {
	client := newTestClient(map[string]any{"api-key": "abc123"})

	for i := 0; i < 3; i++ {
		got, err := client.GetByKey("!api-key")
		assert.NoError(t, err)
		assert.Equal(t, "abc123", got)
	}
}

func TestAWSClient_ConcurrentLookups(t *testing.T) {
	client := newTestClient(map[string]any{
		"api-key": "abc123",
		"flag":    42.0,
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got, err := client.GetByKey("!api-key"); err != nil || got != "abc123" {
					t.Errorf("got %q, err %v", got, err)
					return
				}
				if _, err := client.GetByKey("!flag"); err == nil {
					t.Error("expected error for non-string value")
					return
				}
			}
		}()
	}
	wg.Wait()
}
