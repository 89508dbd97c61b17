package markline

import (
	"net/url"
	"strconv"
)

// Envelope is the wrapper shared by every successful API response.
type Envelope[T any] struct {
	StatusCode int    `json:"statusCode" yaml:"statusCode"`
	Data       T      `json:"data"       yaml:"data"`
	Message    string `json:"message"    yaml:"message"`
	Success    bool   `json:"success"    yaml:"success"`
}

// Content represents a saved content item.
type Content struct {
	ID       int    `json:"id"             yaml:"id"`
	UniqueID string `json:"uniqueId"       yaml:"uniqueId"`
	Title    string `json:"title"          yaml:"title"`
	Body     string `json:"content"        yaml:"content"`
	URL      string `json:"url,omitempty"  yaml:"url,omitempty"`
	UserID   int    `json:"userId"         yaml:"userId"`
	Tag      string `json:"tag"            yaml:"tag"`
	Link     string `json:"link,omitempty" yaml:"link,omitempty"`
}

// ContentPage represents one page of a content listing.
//
// The server reports the overall item count as "totalLinks" and the page
// items as "contents".
type ContentPage struct {
	TotalItems      int       `json:"totalLinks"      yaml:"totalLinks"`
	CurrentPage     int       `json:"currentPage"     yaml:"currentPage"`
	TotalPages      int       `json:"totalPages"      yaml:"totalPages"`
	ItemsPerPage    int       `json:"itemsPerPage"    yaml:"itemsPerPage"`
	HasNextPage     bool      `json:"hasNextPage"     yaml:"hasNextPage"`
	HasPreviousPage bool      `json:"hasPreviousPage" yaml:"hasPreviousPage"`
	Items           []Content `json:"contents"        yaml:"contents"`
}

// Tag is a category label attached to content items.
type Tag struct {
	ID   int    `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// AuthData is the payload of a successful login or signup.
type AuthData struct {
	Token    string `json:"token"    yaml:"token"`
	User     string `json:"user"     yaml:"user"`
	UniqueID string `json:"uniqueId" yaml:"uniqueId"`
}

// LoginRequest is the body for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the body for POST /signup. UniqueID must be a fresh
// client-generated UUID.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UniqueID string `json:"uniqueId"`
}

// ContentCreateRequest is the body for POST /register-content. UniqueID is
// the caller-minted idempotency key; the client never generates or reuses it.
type ContentCreateRequest struct {
	UniqueID string `json:"uniqueId"`
	Title    string `json:"title"`
	Body     string `json:"content"`
	URL      string `json:"url"`
	TagID    int    `json:"tagId"`
	LinkID   *int   `json:"linkId,omitempty"`
}

// ContentUpdateRequest is the partial body for PUT /update-content/:id.
// Nil fields are left unchanged by the server.
type ContentUpdateRequest struct {
	Title  *string `json:"title,omitempty"`
	Body   *string `json:"content,omitempty"`
	URL    *string `json:"url,omitempty"`
	TagID  *int    `json:"tagId,omitempty"`
	LinkID *int    `json:"linkId,omitempty"`
}

// DeleteResult is the payload of a successful content deletion.
type DeleteResult struct {
	Message string `json:"message" yaml:"message"`
}

// ListContentsParams are the query parameters for the paginated content
// listing. TagID is optional.
type ListContentsParams struct {
	Page  int
	Limit int
	TagID *int
}

// ToValues converts the params to URL query values.
func (p *ListContentsParams) ToValues() url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(p.Page))
	values.Set("limit", strconv.Itoa(p.Limit))

	if p.TagID != nil {
		values.Set("tagId", strconv.Itoa(*p.TagID))
	}

	return values
}
