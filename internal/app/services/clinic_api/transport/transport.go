package transport

import (
	"bytes"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const maxErrorBodyBytes = 512

type requestMetrics interface {
	ObserveClinicAPI(resource, status string, seconds float64)
}

type Options struct {
	BaseURL            string
	APIKey             string
	Timeout            time.Duration
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// RequestOption adjusts an outgoing request before it is sent.
type RequestOption func(*http.Request)

// WithHeader sets header key to value, skipping empty values.
func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		if value != "" {
			req.Header.Set(key, value)
		}
	}
}

// Client sends JSON requests to the clinic admin API. Every request waits on
// a shared token bucket so a burst of slot lookups cannot flood the upstream.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *zap.Logger
	metrics    requestMetrics
}

func NewClient(opts Options, log *zap.Logger, metrics requestMetrics) *Client {
	limit := rate.Inf
	if opts.RateLimitPerSecond > 0 {
		limit = rate.Limit(opts.RateLimitPerSecond)
	}
	burst := opts.RateLimitBurst
	if burst <= 0 {
		burst = 1
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, burst),
		log:        log,
		metrics:    metrics,
	}
}

// Do issues method on path (relative to the base URL), encoding body as JSON
// when non-nil and decoding a 2xx response into out when non-nil. 404 and 409
// map to ErrClinicAPINotFound and ErrClinicAPIConflict.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out interface{}, resource string, opts ...RequestOption) error {
	requestID := utils.RequestIDFromContext(ctx)

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewReader(payload)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return exceptions.ErrClinicAPIRateLimited(err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if c.apiKey != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.apiKey)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	for _, opt := range opts {
		opt(req)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveClinicAPI(resource, "error", time.Since(start).Seconds())
		c.log.Error("clinicAPI.Do error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingURLKey, endpoint),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()
	c.metrics.ObserveClinicAPI(resource, strconv.Itoa(resp.StatusCode), time.Since(start).Seconds())

	c.log.Debug("clinicAPI.Do response received",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingURLKey, endpoint),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)

	switch {
	case resp.StatusCode == constvars.StatusNotFound:
		return exceptions.ErrClinicAPINotFound(resource)
	case resp.StatusCode == constvars.StatusConflict:
		return exceptions.ErrClinicAPIConflict(resource)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return exceptions.ErrClinicAPIStatus(resp.StatusCode, resource, strings.TrimSpace(string(bodyBytes)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return exceptions.ErrDecodeResponse(err, resource)
	}
	return nil
}
