package cache

import (
	"os"
	"testing"
	"time"

	"github.com/capsule-admin/campaign-governance-service/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.Init(false)
	os.Exit(m.Run())
}

func TestSetAndGet(t *testing.T) {
	c := NewCache(time.Minute)

	c.Set("token-1", "claims")

	value, found := c.Get("token-1")
	assert.True(t, found)
	assert.Equal(t, "claims", value)
}

func TestGetMissingKey(t *testing.T) {
	c := NewCache(time.Minute)

	_, found := c.Get("absent")

	assert.False(t, found)
}

func TestExpiredEntryIsNotReturned(t *testing.T) {
	c := NewCache(10 * time.Millisecond)

	c.Set("token-1", "claims")
	time.Sleep(20 * time.Millisecond)

	_, found := c.Get("token-1")
	assert.False(t, found)
}

func TestDelete(t *testing.T) {
	c := NewCache(time.Minute)

	c.Set("token-1", "claims")
	c.Delete("token-1")

	_, found := c.Get("token-1")
	assert.False(t, found)
}
