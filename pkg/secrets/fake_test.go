package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFakeClient_GetByKey(t *testing.T) {
	client := NewFakeClient()

	for _, key := range []string{"", "!db-pass", "db-pass", "!", "!!weird"} {
		got, err := client.GetByKey(key)
		assert.NoError(t, err)
		assert.Equal(t, "", got)
	}
}
