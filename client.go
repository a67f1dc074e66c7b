// Package moltbook is a Go client for the Moltbook REST API.
//
// A Client is created once with an API key and reused; every call is a
// single synchronous round trip with no retries or local state:
//
//	client := moltbook.New(apiKey)
//	resp, err := client.Me(ctx)
package moltbook

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"resty.dev/v3"
)

// Config holds the connection settings for a Client. It is fixed at
// construction time.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client talks to the Moltbook API. It is safe for concurrent use; the
// underlying transport pools connections across calls.
type Client struct {
	config      Config
	restyClient *resty.Client
	log         zerolog.Logger
}

// QueryParam is a single key=value query pair. Pairs are appended to
// the URL in the order supplied. Values are sent as-is; callers must
// pre-escape reserved characters.
type QueryParam struct {
	Key   string
	Value string
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		config: Config{
			APIKey:  apiKey,
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
		restyClient: nil,
		log:         zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.restyClient == nil {
		c.restyClient = createDefaultRestyClient()
	}

	c.config.BaseURL = strings.TrimSuffix(c.config.BaseURL, "/")

	c.restyClient.
		SetTimeout(c.config.Timeout).
		SetHeader(HeaderAuthorization, "Bearer "+c.config.APIKey).
		SetHeader(HeaderContentType, ContentTypeJSON).
		SetHeader(HeaderAccept, ContentTypeJSON)

	return c
}

func createDefaultRestyClient() *resty.Client {
	return resty.New()
}

// Config returns a copy of the client configuration.
func (c *Client) Config() Config {
	return c.config
}

// Close releases idle transport connections. The client must not be
// used after Close.
func (c *Client) Close() error {
	return c.restyClient.Close()
}

// Do sends a request against an arbitrary API path and decodes the
// response into out (which may be nil). It is the escape hatch for
// endpoints without a dedicated method; all dedicated methods are thin
// wrappers over it.
func (c *Client) Do(ctx context.Context, method, path string, query []QueryParam, body, out any) error {
	return c.do(ctx, method, path, query, body, out)
}

type envelope struct {
	// Success is a pointer so that an absent field is distinguishable
	// from an explicit false: the API treats absence as success.
	Success *bool  `json:"success"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, query []QueryParam, body, out any) error {
	fullURL := c.buildURL(path, query)
	requestID := uuid.New().String()

	req := c.restyClient.R().
		SetContext(ctx).
		SetHeader(HeaderXRequestID, requestID)

	if body != nil {
		req.SetBody(body)
	}

	start := time.Now()

	resp, err := req.Execute(method, fullURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequest, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Str("request_id", requestID).
		Dur("duration", time.Since(start)).
		Msg("moltbook request")

	return c.classify(resp, out)
}

// classify maps a completed HTTP exchange onto the error taxonomy. The
// order matters: rate-limit and auth statuses win over body content,
// and an explicit success=false wins over the payload.
func (c *Client) classify(resp *resty.Response, out any) error {
	switch resp.StatusCode() {
	case http.StatusTooManyRequests:
		return ErrRateLimit
	case http.StatusUnauthorized:
		return ErrAuthentication
	}

	bodyBytes := resp.Bytes()

	var env envelope
	if err := json.Unmarshal(bodyBytes, &env); err != nil {
		return fmt.Errorf("%w: %w", ErrRequest, err)
	}

	if env.Success != nil && !*env.Success {
		message := env.Error
		if message == "" {
			message = "unknown error"
		}

		return NewAPIError(message, resp.StatusCode())
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("%w: %w", ErrRequest, err)
	}

	return nil
}

func (c *Client) buildURL(path string, query []QueryParam) string {
	fullURL := c.config.BaseURL + "/" + strings.TrimPrefix(path, "/")

	if len(query) == 0 {
		return fullURL
	}

	pairs := make([]string, 0, len(query))
	for _, q := range query {
		pairs = append(pairs, q.Key+"="+q.Value)
	}

	return fullURL + "?" + strings.Join(pairs, "&")
}
