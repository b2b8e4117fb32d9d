// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vsrerrors "github.com/NVIDIA/serializer-registry/pkg/errors"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestNew(t *testing.T) {
	s := New(WithHandler(map[string]http.HandlerFunc{"/v1/versions": okHandler}))

	require.NotNil(t, s)
	assert.NotNil(t, s.config)
	assert.NotNil(t, s.httpServer)
	assert.NotNil(t, s.rateLimiter)
	assert.Equal(t, "server", s.config.Name)
	assert.Contains(t, s.config.Handlers, "/v1/versions")
	assert.Contains(t, s.config.Handlers, "/", "default root handler")
}

func TestOptions(t *testing.T) {
	t.Run("name and version", func(t *testing.T) {
		s := New(WithName("vsrd"), WithVersion("1.2.3"))
		assert.Equal(t, "vsrd", s.config.Name)
		assert.Equal(t, "1.2.3", s.config.Version)
	})

	t.Run("handlers merge across options", func(t *testing.T) {
		s := New(
			WithHandler(map[string]http.HandlerFunc{"/v1/{resource}": okHandler}),
			WithHandler(map[string]http.HandlerFunc{"/v1/{resource}/{id}": okHandler}),
		)
		assert.Equal(t, []string{"/v1/{resource}", "/v1/{resource}/{id}"}, s.routes())
	})

	t.Run("config replaces defaults", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Name = "catalog-server"
		cfg.Port = 9090
		cfg.RateLimit = 500

		s := New(WithConfig(cfg))
		assert.Equal(t, "catalog-server", s.config.Name)
		assert.Equal(t, 9090, s.config.Port)
		assert.InDelta(t, 500, float64(s.config.RateLimit), 0)
	})

	t.Run("nil config is ignored", func(t *testing.T) {
		s := New(WithConfig(nil))
		assert.Equal(t, NewConfig().Port, s.config.Port)
	})
}

func TestProbes(t *testing.T) {
	s := New()

	rec := serve(s.Handler(), http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	tests := []struct {
		ready  bool
		status int
		body   string
	}{
		{ready: false, status: http.StatusServiceUnavailable, body: "not_ready"},
		{ready: true, status: http.StatusOK, body: "ready"},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			s.setReady(tt.ready)
			rec := serve(s.Handler(), http.MethodGet, "/ready")
			require.Equal(t, tt.status, rec.Code)

			var resp HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.body, resp.Status)
		})
	}
}

func TestRateLimiting(t *testing.T) {
	cfg := NewConfig()
	cfg.RateLimit = 1
	cfg.RateLimitBurst = 1
	cfg.Handlers = map[string]http.HandlerFunc{"/v1/versions": okHandler}

	h := New(WithConfig(cfg)).Handler()

	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/v1/versions").Code)

	rec := serve(h, http.MethodGet, "/v1/versions")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// Probes sit outside the limiter.
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/health").Code)
}

func TestPanicInHandlerIsRecovered(t *testing.T) {
	h := New(WithHandler(map[string]http.HandlerFunc{
		"/v1/{resource}": func(http.ResponseWriter, *http.Request) {
			panic("no serializer")
		},
	})).Handler()

	rec := serve(h, http.MethodGet, "/v1/Speaker")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(vsrerrors.ErrCodeInternal), resp.Code)
	assert.Equal(t, rec.Header().Get(HeaderRequestID), resp.RequestID)
}

func TestGracefulShutdown(t *testing.T) {
	cfg := NewConfig()
	cfg.Address = "127.0.0.1"
	cfg.Port = 0
	cfg.ShutdownTimeout = 100 * time.Millisecond
	cfg.Handlers = map[string]http.HandlerFunc{"/v1/versions": okHandler}

	s := New(WithConfig(cfg))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start(ctx)
	}()

	require.Eventually(t, s.isReady, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("shutdown timed out")
	}
	assert.False(t, s.isReady())
}

func TestRootHandler(t *testing.T) {
	t.Run("default lists routes", func(t *testing.T) {
		s := New(
			WithName("router-test"),
			WithVersion("v9"),
			WithHandler(map[string]http.HandlerFunc{"/v1/{resource}": okHandler}),
		)

		rec := serve(s.Handler(), http.MethodGet, "/")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp RootResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "router-test", resp.Name)
		assert.Equal(t, "v9", resp.Version)
		assert.Equal(t, []string{"/v1/{resource}"}, resp.Routes)
	})

	t.Run("default rejects writes", func(t *testing.T) {
		rec := serve(New().Handler(), http.MethodPost, "/")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("custom root is kept", func(t *testing.T) {
		called := false
		s := New(WithHandler(map[string]http.HandlerFunc{
			"/": func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusAccepted)
			},
		}))

		rec := serve(s.Handler(), http.MethodGet, "/")
		assert.True(t, called)
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})
}

func TestRouter(t *testing.T) {
	h := New(WithHandler(map[string]http.HandlerFunc{
		"/v1/{resource}": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(chi.URLParam(r, "resource")))
		},
	})).Handler()

	t.Run("route params reach handler", func(t *testing.T) {
		rec := serve(h, http.MethodGet, "/v1/Speaker")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Speaker", rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
	})

	t.Run("unknown route is a structured 404", func(t *testing.T) {
		rec := serve(h, http.MethodGet, "/nope/a/b")
		require.Equal(t, http.StatusNotFound, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, string(vsrerrors.ErrCodeNotFound), resp.Code)
		assert.Equal(t, "/nope/a/b", resp.Details["path"])
	})

	t.Run("health bypasses middleware", func(t *testing.T) {
		rec := serve(h, http.MethodGet, "/health")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get(HeaderRequestID))
	})

	t.Run("metrics use route patterns", func(t *testing.T) {
		serve(h, http.MethodGet, "/v1/Submission")

		rec := serve(h, http.MethodGet, "/metrics")
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "vsr_http_requests_total")
		assert.Contains(t, body, `path="/v1/{resource}"`)
		assert.NotContains(t, body, `path="/v1/Submission"`)
	})
}
