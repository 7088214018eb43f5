package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// A nil client must behave like a cache that never hits; the services lean on
// that when Redis is absent.
func TestNilClientFailsSafe(t *testing.T) {
	var c *Client
	ctx := context.Background()

	data, err := c.Get(ctx, "key")
	assert.NoError(t, err)
	assert.Nil(t, data)

	assert.NoError(t, c.Set(ctx, "key", []byte("value"), 0))
	assert.NoError(t, c.Delete(ctx, "key"))

	var dest map[string]string
	assert.False(t, c.GetJSON(ctx, "key", &dest))
	assert.NoError(t, c.SetJSON(ctx, "key", map[string]string{"a": "b"}, 0))
}
