// Package geocoding validates destination addresses against a Mapbox-style
// forward geocoding API.
package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.mapbox.com"
	DefaultCountry = "CO"
	resultLimit    = 10
)

type Config struct {
	BaseURL string
	Token   string
	Country string
	Timeout time.Duration
	// RetryBackoff is the first wait between attempts; it doubles each time.
	RetryBackoff time.Duration
}

// Client implements ports.AddressValidator. It is safe for concurrent use.
type Client struct {
	session *http.Client
	baseURL string
	token   string
	country string
	logger  *slog.Logger
	backoff time.Duration
}

func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.Token == "" {
		return nil, errors.New("geocoder token is empty")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Country == "" {
		cfg.Country = DefaultCountry
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = 200 * time.Millisecond
	}

	return &Client{
		session: &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		country: cfg.Country,
		logger:  logger.With("component", "geocoding"),
		backoff: cfg.RetryBackoff,
	}, nil
}

type placesResponse struct {
	Features []struct {
		PlaceName string `json:"place_name"`
	} `json:"features"`
}

// Validate reports whether the best match for "address, city" lies in city.
// An empty address is rejected without a request. Transport and decoding
// failures are logged and count as invalid; only a cancelled context is
// returned as an error.
func (c *Client) Validate(ctx context.Context, address, city string) (bool, error) {
	address = strings.TrimSpace(address)
	city = strings.TrimSpace(city)
	if address == "" {
		return false, nil
	}

	start := time.Now()
	places, err := c.search(ctx, address+", "+city)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		c.logger.WarnContext(ctx, "address lookup failed",
			"address", address, "city", city, "dur_ms", time.Since(start).Milliseconds(), "error", err)
		return false, nil
	}

	if len(places.Features) == 0 {
		c.logger.InfoContext(ctx, "address not found", "address", address, "city", city)
		return false, nil
	}

	placeName := strings.ToLower(places.Features[0].PlaceName)
	if !strings.Contains(placeName, strings.ToLower(city)) {
		c.logger.InfoContext(ctx, "address outside expected city",
			"address", address, "city", city, "place_name", places.Features[0].PlaceName)
		return false, nil
	}

	c.logger.DebugContext(ctx, "address validated",
		"address", address, "city", city, "dur_ms", time.Since(start).Milliseconds())
	return true, nil
}

func (c *Client) search(ctx context.Context, query string) (placesResponse, error) {
	endpoint := c.baseURL + "/geocoding/v5/mapbox.places/" + url.PathEscape(query) + ".json"

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		q := req.URL.Query()
		q.Set("access_token", c.token)
		q.Set("country", c.country)
		q.Set("types", "address,place")
		q.Set("limit", fmt.Sprint(resultLimit))
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return placesResponse{}, err
	}
	defer resp.Body.Close()

	var decoded placesResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return placesResponse{}, fmt.Errorf("decode geocoding response: %w", err)
	}
	return decoded, nil
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("geocoder status %d: %s", e.Code, e.Body)
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &httpStatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	return resp, nil
}

// doWithRetry retries rate limiting, 5xx responses and network errors with
// exponential backoff, giving up early when ctx is done.
func (c *Client) doWithRetry(ctx context.Context, makeReq func() (*http.Request, error)) (*http.Response, error) {
	const maxAttempts = 4
	backoff := c.backoff

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, err
		}

		resp, err := c.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err) || attempt == maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
		backoff *= 2
	}

	return nil, lastErr
}

func retryable(err error) bool {
	var he *httpStatusError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
