package moltbook

import (
	"time"

	"github.com/rs/zerolog"
	"resty.dev/v3"
)

const (
	DefaultBaseURL = "https://www.moltbook.com/api/v1"
	DefaultTimeout = 10 * time.Second

	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderAccept        = "Accept"
	HeaderXRequestID    = "X-Request-ID"

	ContentTypeJSON = "application/json"
)

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.config.BaseURL = baseURL
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.config.Timeout = timeout
		}
	}
}

// WithLogger enables debug logging of each request. The default logger
// discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

func WithRestyClient(restyClient *resty.Client) Option {
	return func(c *Client) {
		if restyClient != nil {
			c.restyClient = restyClient
		}
	}
}
