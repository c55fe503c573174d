// Copyright (c) 2026 AutoVault. All rights reserved.

package cache

import (
	"bytes"
	"net/http"
	"time"

	"github.com/autovault/autovault/internal/platform/constants"
)

// cachedResponse is the stored form of a completed GET response.
//
// Body is shared by reference between requests; it is written to clients
// but never modified after being stored.
type cachedResponse struct {
	status      int
	contentType string
	body        []byte
}

// bodyRecorder tees the response body so a successful render can be cached.
type bodyRecorder struct {
	http.ResponseWriter
	status int
	buffer bytes.Buffer
}

func (recorder *bodyRecorder) WriteHeader(code int) {
	recorder.status = code
	recorder.ResponseWriter.WriteHeader(code)
}

func (recorder *bodyRecorder) Write(payload []byte) (int, error) {
	recorder.buffer.Write(payload)
	return recorder.ResponseWriter.Write(payload)
}

// Middleware serves GET responses from the cache, keyed by the normalized
// request path and query string.
//
// Only GET-equivalent reads are cached, and only successful (200) responses
// are stored. Everything else passes straight through.
func (c *Cache) Middleware(ttl time.Duration) func(http.Handler) http.Handler {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.Method != http.MethodGet {
				next.ServeHTTP(writer, request)
				return
			}

			key := Key(request)

			// Serve from cache on hit
			if value, found := c.Get(key); found {
				if cached, ok := value.(*cachedResponse); ok {
					writer.Header().Set("Content-Type", cached.contentType)
					writer.Header().Set(constants.HeaderXCache, "HIT")
					writer.WriteHeader(cached.status)
					_, _ = writer.Write(cached.body)
					return
				}
			}

			writer.Header().Set(constants.HeaderXCache, "MISS")
			recorder := &bodyRecorder{ResponseWriter: writer, status: http.StatusOK}
			next.ServeHTTP(recorder, request)

			// Only successful renders are worth replaying
			if recorder.status != http.StatusOK {
				return
			}

			c.SetTTL(key, &cachedResponse{
				status:      recorder.status,
				contentType: recorder.Header().Get("Content-Type"),
				body:        recorder.buffer.Bytes(),
			}, ttl)
		})
	}
}

// Key derives the cache key for a request: the prefixed path plus the
// normalized (sorted) query string, so parameter order does not fragment
// the cache.
func Key(request *http.Request) string {
	key := constants.ResponseCachePrefix + request.URL.Path
	if query := request.URL.Query().Encode(); query != "" {
		key += "?" + query
	}
	return key
}
