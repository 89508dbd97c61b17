// Package client implements the markline.Client interface.
package client

import (
	"context"
	"time"

	"github.com/markline-io/markline/internal/auth"
	"github.com/markline-io/markline/internal/constants"
	internalhttp "github.com/markline-io/markline/internal/http"
	"github.com/markline-io/markline/pkg/markline"
)

// Client implements markline.Client.
type Client struct {
	httpClient   *internalhttp.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       markline.Logger

	contents markline.ContentsClient
	tags     markline.TagsClient
}

// New creates a new markline API client from config. The endpoint must
// already be normalized (see pkg/mlclient).
func New(ctx context.Context, config *markline.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, markline.ErrAPIEndpointRequired
	}

	tokenManager := auth.NewStaticTokenManager(config.AccessToken)
	httpClient := internalhttp.NewClient(config.APIEndpoint, tokenManager, httpOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.APIEndpoint,
		logger:       config.Logger,
	}

	client.contents = NewContentsClient(httpClient)
	client.tags = NewTagsClient(httpClient, tagsCache(config), tagsCacheTTL(config))

	return client, nil
}

// httpOptions builds transport options from config.
func httpOptions(config *markline.Config) []internalhttp.Option {
	var opts []internalhttp.Option

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		waitMin := constants.DefaultRetryWaitMin
		waitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			waitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			waitMax = config.RetryWaitMax
		}

		opts = append(opts, internalhttp.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	return opts
}

func tagsCache(config *markline.Config) markline.Cache {
	if config.TagsCache != nil {
		return config.TagsCache
	}

	return markline.NewMemoryCache(constants.DefaultCacheSize)
}

func tagsCacheTTL(config *markline.Config) time.Duration {
	if config.TagsCacheTTL > 0 {
		return config.TagsCacheTTL
	}

	return constants.DefaultTagsCacheTTL
}

// Contents implements markline.Client.Contents.
func (c *Client) Contents() markline.ContentsClient {
	return c.contents
}

// Tags implements markline.Client.Tags.
func (c *Client) Tags() markline.TagsClient {
	return c.tags
}

// GetToken returns the client's current bearer token.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	return c.tokenManager.GetToken(ctx)
}

// loggerAdapter adapts markline.Logger to the transport's logger.
type loggerAdapter struct {
	logger markline.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
