package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryCtx(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestQueryUint(t *testing.T) {
	t.Run("absent parameter is nil", func(t *testing.T) {
		v, ok := queryUint(queryCtx(t, ""), "userId")
		assert.True(t, ok)
		assert.Nil(t, v)
	})

	t.Run("numeric value parses", func(t *testing.T) {
		v, ok := queryUint(queryCtx(t, "userId=42"), "userId")
		assert.True(t, ok)
		require.NotNil(t, v)
		assert.Equal(t, uint(42), *v)
	})

	t.Run("malformed value is rejected, not ignored", func(t *testing.T) {
		for _, raw := range []string{"userId=abc", "userId=-1", "userId=1.5"} {
			_, ok := queryUint(queryCtx(t, raw), "userId")
			assert.False(t, ok, raw)
		}
	})
}
