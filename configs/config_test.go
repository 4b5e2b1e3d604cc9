package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitIDs(t *testing.T) {
	assert.Nil(t, splitIDs(""))
	assert.Nil(t, splitIDs("   "))
	assert.Equal(t, []string{"123"}, splitIDs("123"))
	assert.Equal(t, []string{"123", "456"}, splitIDs("123,456"))
	assert.Equal(t, []string{"123", "456"}, splitIDs(" 123 , 456 ,"))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SOME_KEY", "value")
	assert.Equal(t, "value", getEnv("SOME_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnv("MISSING_KEY_FOR_TEST", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("MAX_ACTIVE_ORDERS", "7")
	assert.Equal(t, 7, getEnvInt("MAX_ACTIVE_ORDERS", 3))
	assert.Equal(t, 3, getEnvInt("MISSING_INT_FOR_TEST", 3))
}
