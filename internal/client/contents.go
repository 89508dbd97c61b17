package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/markline-io/markline/internal/constants"
	internalhttp "github.com/markline-io/markline/internal/http"
	"github.com/markline-io/markline/pkg/markline"
)

// ContentsClient implements the markline.ContentsClient interface.
type ContentsClient struct {
	httpClient *internalhttp.Client
}

// NewContentsClient creates a new ContentsClient.
func NewContentsClient(httpClient *internalhttp.Client) *ContentsClient {
	return &ContentsClient{
		httpClient: httpClient,
	}
}

// Create registers new content. request.UniqueID must be a fresh
// caller-minted UUID; the client neither generates nor caches it.
func (c *ContentsClient) Create(ctx context.Context, request *markline.ContentCreateRequest) (*markline.Content, error) {
	if request == nil {
		return nil, markline.ErrRequestRequired
	}

	if request.UniqueID == "" {
		return nil, markline.ErrUniqueIDRequired
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathRegisterContent, request)
	if err != nil {
		return nil, fmt.Errorf("creating content: %w", err)
	}

	return unwrapContent(resp.Body, "content")
}

// Get retrieves a single content item by id.
func (c *ContentsClient) Get(ctx context.Context, id int) (*markline.Content, error) {
	path := constants.APIPathContentByID + "/" + strconv.Itoa(id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting content: %w", err)
	}

	return unwrapContent(resp.Body, "content")
}

// List fetches one page of contents, optionally filtered by tag. A nil
// params uses the first page with the default page size.
func (c *ContentsClient) List(ctx context.Context, params *markline.ListContentsParams) (*markline.ContentPage, error) {
	if params == nil {
		params = &markline.ListContentsParams{
			Page:  constants.DefaultPage,
			Limit: constants.DefaultPageSize,
		}
	}

	resp, err := c.httpClient.Get(ctx, constants.APIPathListContents, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing contents: %w", err)
	}

	var envelope markline.Envelope[markline.ContentPage]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing contents list response: %w", markline.NewParseError())
	}

	return &envelope.Data, nil
}

// Update applies a partial update to the content with the given id.
func (c *ContentsClient) Update(ctx context.Context, id int, request *markline.ContentUpdateRequest) (*markline.Content, error) {
	if request == nil {
		return nil, markline.ErrRequestRequired
	}

	path := constants.APIPathUpdateContent + "/" + strconv.Itoa(id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating content: %w", err)
	}

	return unwrapContent(resp.Body, "updated content")
}

// Delete removes the content with the given id.
func (c *ContentsClient) Delete(ctx context.Context, id int) (*markline.DeleteResult, error) {
	path := constants.APIPathDeleteContent + "/" + strconv.Itoa(id)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting content: %w", err)
	}

	var envelope markline.Envelope[markline.DeleteResult]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing delete response: %w", markline.NewParseError())
	}

	return &envelope.Data, nil
}

// unwrapContent decodes a single-entity envelope.
func unwrapContent(body []byte, what string) (*markline.Content, error) {
	var envelope markline.Envelope[markline.Content]

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", what, markline.NewParseError())
	}

	return &envelope.Data, nil
}
