package transport

import (
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type nopMetrics struct{}

func (nopMetrics) ObserveClinicAPI(string, string, float64) {}

type payload struct {
	Name string `json:"name"`
}

func TestClientDo(t *testing.T) {
	t.Run("decodes success and forwards headers", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/doctors", r.URL.Path)
			assert.Equal(t, "true", r.URL.Query().Get("hasSchedule"))
			assert.Equal(t, "Bearer secret", r.Header.Get(constvars.HeaderAuthorization))
			assert.Equal(t, "req-1", r.Header.Get(constvars.HeaderXRequestID))
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"name":"ok"}`)
		}))
		defer srv.Close()

		c := NewClient(Options{BaseURL: srv.URL + "/v1/", APIKey: "secret"}, zap.NewNop(), nopMetrics{})
		ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")

		var out payload
		err := c.Do(ctx, http.MethodGet, "/doctors", url.Values{"hasSchedule": {"true"}}, nil, &out, "doctors")
		require.NoError(t, err)
		assert.Equal(t, "ok", out.Name)
	})

	t.Run("sends JSON body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get(constvars.HeaderContentType))
			b, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"name":"in"}`, string(b))
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"name":"out"}`)
		}))
		defer srv.Close()

		c := NewClient(Options{BaseURL: srv.URL}, zap.NewNop(), nopMetrics{})
		var out payload
		require.NoError(t, c.Do(context.Background(), http.MethodPost, "/things", nil, payload{Name: "in"}, &out, "things"))
		assert.Equal(t, "out", out.Name)
	})

	t.Run("applies request options", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "attempt-1", r.Header.Get(constvars.HeaderIdempotencyKey))
			_, hasEmpty := r.Header["X-Empty"]
			assert.False(t, hasEmpty)
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		c := NewClient(Options{BaseURL: srv.URL}, zap.NewNop(), nopMetrics{})
		err := c.Do(context.Background(), http.MethodPost, "/things", nil, payload{Name: "in"}, nil, "things",
			WithHeader(constvars.HeaderIdempotencyKey, "attempt-1"),
			WithHeader("X-Empty", ""),
		)
		require.NoError(t, err)
	})

	statusCases := []struct {
		name     string
		status   int
		sentinel error
		wantCode int
	}{
		{name: "not found", status: http.StatusNotFound, sentinel: exceptions.ErrStoreNotFound, wantCode: http.StatusNotFound},
		{name: "conflict", status: http.StatusConflict, sentinel: exceptions.ErrStoreConflict, wantCode: http.StatusConflict},
		{name: "server error", status: http.StatusInternalServerError, wantCode: http.StatusBadGateway},
	}
	for _, tc := range statusCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, `{"error":"nope"}`)
			}))
			defer srv.Close()

			c := NewClient(Options{BaseURL: srv.URL}, zap.NewNop(), nopMetrics{})
			err := c.Do(context.Background(), http.MethodGet, "/x", nil, nil, nil, "x")
			require.Error(t, err)
			assert.Equal(t, tc.wantCode, exceptions.StatusCodeOf(err))
			if tc.sentinel != nil {
				assert.True(t, errors.Is(err, tc.sentinel))
			}
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `not json`)
		}))
		defer srv.Close()

		c := NewClient(Options{BaseURL: srv.URL}, zap.NewNop(), nopMetrics{})
		var out payload
		err := c.Do(context.Background(), http.MethodGet, "/x", nil, nil, &out, "x")
		assert.Equal(t, http.StatusBadGateway, exceptions.StatusCodeOf(err))
	})

	t.Run("unreachable upstream", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		c := NewClient(Options{BaseURL: srv.URL, Timeout: time.Second}, zap.NewNop(), nopMetrics{})
		err := c.Do(context.Background(), http.MethodGet, "/x", nil, nil, nil, "x")
		assert.Equal(t, http.StatusBadGateway, exceptions.StatusCodeOf(err))
	})

	t.Run("limiter honours cancelled context", func(t *testing.T) {
		c := NewClient(Options{BaseURL: "http://127.0.0.1:1", RateLimitPerSecond: 0.001, RateLimitBurst: 1}, zap.NewNop(), nopMetrics{})
		c.limiter.Allow()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		err := c.Do(ctx, http.MethodGet, "/x", nil, nil, nil, "x")
		assert.Equal(t, http.StatusServiceUnavailable, exceptions.StatusCodeOf(err))
	})
}
