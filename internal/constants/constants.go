package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are disabled unless explicitly configured.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Pagination defaults.
const (
	// DefaultPage is the first page of a listing.
	DefaultPage = 1

	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 10
)

// API endpoint paths.
const (
	APIPathLogin           = "/login"
	APIPathSignup          = "/signup"
	APIPathRegisterContent = "/register-content"
	APIPathListContents    = "/get-all-contents-by-range-and-tag"
	APIPathContentByID     = "/get-content-by-id"
	APIPathUpdateContent   = "/update-content"
	APIPathDeleteContent   = "/delete-content"
	APIPathTags            = "/get-all-tags"
)

// Cache defaults.
const (
	// DefaultCacheSize is the maximum number of entries in the memory cache.
	DefaultCacheSize = 128

	// DefaultTagsCacheTTL is how long the tag list stays fresh client-side.
	DefaultTagsCacheTTL = 10 * time.Minute
)
