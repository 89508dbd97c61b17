package markline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
)

// ErrorKind classifies a failure at the transport boundary. The set is
// closed: every error a caller can observe from this library belongs to
// exactly one kind.
type ErrorKind int

const (
	// KindHTTP is a non-2xx response carrying a server error body.
	KindHTTP ErrorKind = iota

	// KindNetwork is a connection-level failure before any response arrived.
	KindNetwork

	// KindTimeout is a request that exceeded its deadline.
	KindTimeout

	// KindParse is a response body that could not be decoded.
	KindParse

	// KindCustom is an error raised by client code rather than the transport.
	KindCustom

	// KindUnexpected is any other error value.
	KindUnexpected
)

// ErrorDetail carries the root cause and optional extra detail of a failure.
type ErrorDetail struct {
	Message string `json:"message"          yaml:"message"`
	Errors  string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// APIError is the single error shape callers may depend on. Every failure
// path of the client terminates in one of these; raw transport errors never
// escape.
type APIError struct {
	Kind       ErrorKind   `json:"-"          yaml:"-"`
	StatusCode int         `json:"statusCode" yaml:"statusCode"`
	Success    bool        `json:"success"    yaml:"success"`
	Message    string      `json:"message"    yaml:"message"`
	Data       ErrorDetail `json:"data"       yaml:"data"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Data.Errors != "" {
		return fmt.Sprintf("%s: %s (status: %d)", e.Data.Message, e.Data.Errors, e.StatusCode)
	}

	return fmt.Sprintf("%s (status: %d)", e.Data.Message, e.StatusCode)
}

// Fallback strings for the fixed normalization templates.
const (
	msgServerError     = "Server Error"
	msgNetworkError    = "Network Error"
	msgRequestTimeout  = "Request Timeout"
	msgParsingError    = "Parsing Error"
	msgCustomError     = "Error"
	msgUnexpectedError = "Unexpected Error"

	detailNetworkError   = "Please check your internet connection and try again"
	detailRequestTimeout = "The request took too long to complete"
	detailParsingError   = "Invalid response from server"
	detailFallback       = "Something went wrong"
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrUniqueIDRequired    = errors.New("uniqueId is required")
	ErrRequestRequired     = errors.New("request is required")
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrTagNotFound         = errors.New("tag not found")
)

// serverErrorBody mirrors the error envelope the server sends alongside a
// non-2xx status. Both nestings occur in practice.
type serverErrorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       struct {
		Message string `json:"message"`
		Errors  string `json:"errors"`
	} `json:"data"`
}

// NewHTTPError builds an APIError from a non-2xx status and response body.
// The root cause is the body's nested message, falling back to its top-level
// message, then to a generic server error.
func NewHTTPError(statusCode int, body []byte) *APIError {
	var parsed serverErrorBody

	_ = json.Unmarshal(body, &parsed)

	message := parsed.Data.Message
	if message == "" {
		message = parsed.Message
	}

	if message == "" {
		message = msgServerError
	}

	return &APIError{
		Kind:       KindHTTP,
		StatusCode: statusCode,
		Data: ErrorDetail{
			Message: message,
			Errors:  parsed.Data.Errors,
		},
	}
}

// NewNetworkError reports an unreachable server.
func NewNetworkError() *APIError {
	return &APIError{
		Kind: KindNetwork,
		Data: ErrorDetail{
			Message: msgNetworkError,
			Errors:  detailNetworkError,
		},
	}
}

// NewTimeoutError reports an expired request deadline.
func NewTimeoutError() *APIError {
	return &APIError{
		Kind:       KindTimeout,
		StatusCode: http.StatusRequestTimeout,
		Data: ErrorDetail{
			Message: msgRequestTimeout,
			Errors:  detailRequestTimeout,
		},
	}
}

// NewParseError reports an undecodable response body.
func NewParseError() *APIError {
	return &APIError{
		Kind: KindParse,
		Data: ErrorDetail{
			Message: msgParsingError,
			Errors:  detailParsingError,
		},
	}
}

// NewCustomError wraps an error raised by client code.
func NewCustomError(message string) *APIError {
	if message == "" {
		message = detailFallback
	}

	return &APIError{
		Kind: KindCustom,
		Data: ErrorDetail{
			Message: msgCustomError,
			Errors:  message,
		},
	}
}

// Normalize converts any error into the APIError contract. defaultMessage
// becomes the contextual Message; the root cause lands in Data.Message and
// Data.Errors. Already-normalized errors keep their classification.
func Normalize(err error, defaultMessage string) *APIError {
	if err == nil {
		return nil
	}

	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		normalized := *apiErr
		normalized.Message = defaultMessage
		normalized.Success = false

		return &normalized
	}

	result := classify(err)
	result.Message = defaultMessage

	return result
}

// classify maps a raw error to a fresh APIError template.
func classify(err error) *APIError {
	if errors.Is(err, context.DeadlineExceeded) {
		return NewTimeoutError()
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return NewTimeoutError()
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return NewNetworkError()
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return NewParseError()
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return NewParseError()
	}

	detail := err.Error()
	if detail == "" {
		detail = detailFallback
	}

	return &APIError{
		Kind:       KindUnexpected,
		StatusCode: http.StatusInternalServerError,
		Data: ErrorDetail{
			Message: msgUnexpectedError,
			Errors:  detail,
		},
	}
}

// ErrorMessage renders a single user-facing string from any error, joining
// the root cause with its detail when both are present.
func ErrorMessage(err error, defaultMessage string) string {
	normalized := Normalize(err, defaultMessage)
	if normalized == nil {
		return ""
	}

	if normalized.Data.Errors != "" {
		return fmt.Sprintf("%s: %s", normalized.Data.Message, normalized.Data.Errors)
	}

	return normalized.Data.Message
}

// IsNotFound checks whether the error is a 404 server rejection.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind == KindHTTP && apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks whether the error is a 401 server rejection.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind == KindHTTP && apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}
