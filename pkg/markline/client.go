package markline

import (
	"context"
	"time"
)

// ContentsClient covers the content CRUD operations.
type ContentsClient interface {
	Create(ctx context.Context, request *ContentCreateRequest) (*Content, error)
	Get(ctx context.Context, id int) (*Content, error)
	List(ctx context.Context, params *ListContentsParams) (*ContentPage, error)
	Update(ctx context.Context, id int, request *ContentUpdateRequest) (*Content, error)
	Delete(ctx context.Context, id int) (*DeleteResult, error)
}

// TagsClient covers tag lookups.
type TagsClient interface {
	List(ctx context.Context) ([]Tag, error)
	FindByName(ctx context.Context, name string) (*Tag, error)
}

// AuthClient covers account authentication. A successful login or signup
// makes the returned token the client's bearer token for later requests.
// Logout drops that token; durable credential storage is the caller's
// concern.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (*AuthData, error)
	Signup(ctx context.Context, name, email, password, uniqueID string) (*AuthData, error)
	Logout()
}

// Client is the typed interface to the markline API. Use
// github.com/markline-io/markline/pkg/mlclient.New to construct one.
type Client interface {
	AuthClient

	Contents() ContentsClient
	Tags() TagsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a markline.Client.
//
// Requests carry "Authorization: Bearer <AccessToken>" whenever a token is
// known, either from this config or from a later successful login. Retries
// are off unless RetryMax is set; by default each operation is a single
// request with a single failure path.
type Config struct {
	// APIEndpoint: base URL of the markline API. mlclient.New normalizes
	// this value by trimming a trailing slash and adding "https://" if no
	// scheme is present.
	APIEndpoint string

	// AccessToken: optional bearer token, e.g. restored from the credential
	// store of an earlier session.
	AccessToken string

	// HTTPTimeout: per-request timeout. Defaults to 30s.
	HTTPTimeout time.Duration

	// RetryMax: maximum number of retries for transient failures. 0 keeps
	// retries disabled.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug: enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger

	// UserAgent: overrides the default User-Agent header.
	UserAgent string

	// TagsCache: optional cache for the tag listing. Defaults to an
	// in-process memory cache; use NewNoOpCache to disable.
	TagsCache Cache
	// TagsCacheTTL: freshness window for cached tags. Defaults to 10m.
	TagsCacheTTL time.Duration
}
