package mlclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/markline-io/markline/internal/client"
	"github.com/markline-io/markline/pkg/markline"
)

// New creates a new markline API client.
func New(ctx context.Context, config *markline.Config) (markline.Client, error) {
	if config == nil {
		return nil, markline.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, markline.ErrAPIEndpointRequired
	}

	// Normalize API endpoint
	apiEndpoint := strings.TrimSuffix(config.APIEndpoint, "/")
	if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	config.APIEndpoint = apiEndpoint

	apiClient, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithEndpoint creates a new client with just an API endpoint (no auth).
func NewWithEndpoint(ctx context.Context, endpoint string) (markline.Client, error) {
	return New(ctx, &markline.Config{
		APIEndpoint: endpoint,
	})
}

// NewWithToken creates a new client with an API endpoint and access token.
func NewWithToken(ctx context.Context, endpoint, token string) (markline.Client, error) {
	return New(ctx, &markline.Config{
		APIEndpoint: endpoint,
		AccessToken: token,
	})
}
