// Package http implements the transport layer of the markline client. It
// attaches credentials, speaks JSON, and converts every failure into the
// normalized markline.APIError at the boundary, so no raw transport error
// reaches resource clients or their callers.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/markline-io/markline/internal/auth"
	"github.com/markline-io/markline/internal/constants"
	"github.com/markline-io/markline/pkg/markline"
)

const defaultUserAgent = "markline-go-client/1.0"

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an HTTP request to the API.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an HTTP response from the API.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client issues HTTP requests against the API base URL.
type Client struct {
	baseURL      string
	tokenManager auth.TokenManager
	httpClient   *retryablehttp.Client
	logger       Logger
	debug        bool
	userAgent    string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables retries for transient failures (>=500, 429, and
// connection errors). Without this option every operation is a single
// request with a single failure path.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// NewClient creates a transport client for the given base URL. tokenManager
// may be nil for unauthenticated use.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	// Surface the final response after retries are exhausted so 5xx bodies
	// still normalize as HTTP errors rather than transport failures.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenManager: tokenManager,
		httpClient:   retryClient,
		userAgent:    defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a request. Non-2xx responses return both the response and an
// error; transport-level failures return a nil response. Every error is a
// normalized *markline.APIError, possibly wrapped.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    httpReq.URL.String(),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", markline.NewNetworkError())
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         httpReq.URL.String(),
			"status_code": resp.StatusCode,
		})
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		return resp, markline.NewHTTPError(httpResp.StatusCode, body)
	}

	return resp, nil
}

// buildRequest assembles the outbound request with credentials and JSON
// headers.
func (c *Client) buildRequest(ctx context.Context, req *Request) (*retryablehttp.Request, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var bodyBytes []byte

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", markline.NewCustomError(err.Error()))
		}

		bodyBytes = encoded
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", markline.NewCustomError(err.Error()))
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting token: %w", markline.NewCustomError(err.Error()))
		}

		if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

// classifyTransportError maps a failed round trip to the timeout or network
// template.
func classifyTransportError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("request timed out: %w", markline.NewTimeoutError())
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("request timed out: %w", markline.NewTimeoutError())
	}

	return fmt.Errorf("request failed: %w", markline.NewNetworkError())
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
