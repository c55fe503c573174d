// Copyright (c) 2026 AutoVault. All rights reserved.

package cache_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autovault/autovault/internal/platform/cache"
)

func newTestCache(t *testing.T, ttl time.Duration) *cache.Cache {
	t.Helper()
	return cache.New(ttl, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCache_SetGetDelete(t *testing.T) {
	c := newTestCache(t, time.Minute)

	_, found := c.Get("missing")
	assert.False(t, found)

	c.Set("page:/cars", "payload")
	value, found := c.Get("page:/cars")
	require.True(t, found)
	assert.Equal(t, "payload", value)
	assert.True(t, c.Has("page:/cars"))

	c.Delete("page:/cars")
	assert.False(t, c.Has("page:/cars"))
}

func TestCache_TTLExpiry(t *testing.T) {
	c := newTestCache(t, time.Minute)

	c.SetTTL("ephemeral", 42, 20*time.Millisecond)
	assert.True(t, c.Has("ephemeral"))

	time.Sleep(50 * time.Millisecond)
	assert.False(t, c.Has("ephemeral"))
}

func TestCache_GetOrSet(t *testing.T) {
	c := newTestCache(t, time.Minute)
	calls := 0

	supplier := func() (interface{}, error) {
		calls++
		return "computed", nil
	}

	// First call computes and stores
	value, err := c.GetOrSet("key", time.Minute, supplier)
	require.NoError(t, err)
	assert.Equal(t, "computed", value)
	assert.Equal(t, 1, calls)

	// Second call is served from cache
	value, err = c.GetOrSet("key", time.Minute, supplier)
	require.NoError(t, err)
	assert.Equal(t, "computed", value)
	assert.Equal(t, 1, calls)
}

func TestCache_GetOrSet_SupplierError(t *testing.T) {
	c := newTestCache(t, time.Minute)

	_, err := c.GetOrSet("broken", time.Minute, func() (interface{}, error) {
		return nil, errors.New("store unavailable")
	})

	require.Error(t, err)
	assert.False(t, c.Has("broken"))
}

func TestCache_DeletePattern(t *testing.T) {
	c := newTestCache(t, time.Minute)

	c.Set("page:/cars", 1)
	c.Set("page:/cars?page=2", 2)
	c.Set("page:/dealers", 3)

	deleted, err := c.DeletePattern(`^page:/cars`)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	assert.False(t, c.Has("page:/cars"))
	assert.False(t, c.Has("page:/cars?page=2"))
	assert.True(t, c.Has("page:/dealers"))

	_, err = c.DeletePattern(`[invalid`)
	assert.Error(t, err)
}

func TestCache_Middleware(t *testing.T) {
	c := newTestCache(t, time.Minute)
	renders := 0

	handler := c.Middleware(time.Minute)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		renders++
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"data":[]}`))
	}))

	// First GET renders and stores
	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest("GET", "/cars?make=BMW", nil))
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, 1, renders)

	// Second GET is replayed from cache
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest("GET", "/cars?make=BMW", nil))
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, `{"data":[]}`, second.Body.String())
	assert.Equal(t, 1, renders)

	// Parameter order must not fragment the cache
	third := httptest.NewRecorder()
	handler.ServeHTTP(third, httptest.NewRequest("GET", "/cars?make=BMW&", nil))
	assert.Equal(t, "HIT", third.Header().Get("X-Cache"))

	// POST requests bypass the cache entirely
	post := httptest.NewRecorder()
	handler.ServeHTTP(post, httptest.NewRequest("POST", "/cars?make=BMW", nil))
	assert.Equal(t, 2, renders)
}
