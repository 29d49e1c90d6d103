package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemory_GetSetInvalidate(t *testing.T) {
	c := NewMemory()

	_, ok := c.Get("k")
	assert.False(t, ok)

	c.Set("k", "v", time.Minute)
	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	c.Invalidate("k")
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestMemory_Expiracion(t *testing.T) {
	c := NewMemory()
	c.Set("k", 42, 10*time.Millisecond)

	_, ok := c.Get("k")
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestMemory_TTLNoPositivoNoCachea(t *testing.T) {
	c := NewMemory()
	c.Set("k", "v", 0)
	_, ok := c.Get("k")
	assert.False(t, ok)
}
