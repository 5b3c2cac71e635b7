package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{BaseURL: "https://patientvault.com/patientvaultapi"})
//	resp, err := client.R().SetBody(req).Post("/api/user/authentication")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures a new [HTTPClient]. Zero values keep the
// resty defaults.
type HTTPClientOptions struct {
	// BaseURL is prefixed to every relative request URL.
	BaseURL string
	// Timeout bounds every request, including retries of a single attempt.
	Timeout time.Duration
	// RetryCount is the number of additional attempts after a transport
	// error or a 5xx response.
	RetryCount int
	// Headers are sent with every request.
	Headers map[string]string
}

// NewHTTPClient creates and returns a new HTTPClient instance that speaks
// JSON and applies opts.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.RetryCount > 0 {
		client.SetRetryCount(opts.RetryCount).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				return err != nil || r.StatusCode() >= 500
			})
	}
	for k, v := range opts.Headers {
		client.SetHeader(k, v)
	}

	return &HTTPClient{Client: client}
}
