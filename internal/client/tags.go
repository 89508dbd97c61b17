package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/markline-io/markline/internal/constants"
	internalhttp "github.com/markline-io/markline/internal/http"
	"github.com/markline-io/markline/pkg/markline"
)

const tagsCacheKey = "tags"

// TagsClient implements the markline.TagsClient interface. The tag list
// changes rarely, so successful lookups are cached for the configured TTL.
type TagsClient struct {
	httpClient *internalhttp.Client
	cache      markline.Cache
	ttl        time.Duration
}

// NewTagsClient creates a new TagsClient.
func NewTagsClient(httpClient *internalhttp.Client, cache markline.Cache, ttl time.Duration) *TagsClient {
	return &TagsClient{
		httpClient: httpClient,
		cache:      cache,
		ttl:        ttl,
	}
}

// List returns all tags in server order, from cache when fresh.
func (c *TagsClient) List(ctx context.Context) ([]markline.Tag, error) {
	if entry, err := c.cache.Get(ctx, tagsCacheKey); err == nil {
		var tags []markline.Tag
		if err := json.Unmarshal(entry.Data, &tags); err == nil {
			return tags, nil
		}
	}

	resp, err := c.httpClient.Get(ctx, constants.APIPathTags, nil)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	var envelope markline.Envelope[[]markline.Tag]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing tags response: %w", markline.NewParseError())
	}

	if data, err := json.Marshal(envelope.Data); err == nil {
		_ = c.cache.Set(ctx, tagsCacheKey, &markline.CacheEntry{
			Data:      data,
			ExpiresAt: time.Now().Add(c.ttl),
		})
	}

	return envelope.Data, nil
}

// FindByName resolves a tag by its display name, case-sensitively.
func (c *TagsClient) FindByName(ctx context.Context, name string) (*markline.Tag, error) {
	tags, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, tag := range tags {
		if tag.Name == name {
			return &tag, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", markline.ErrTagNotFound, name)
}
