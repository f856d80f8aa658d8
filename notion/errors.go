package notion

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Error codes for categorizing errors.
type ErrorCode int

const (
	ErrorCodeUnknown ErrorCode = iota
	ErrorCodeNoToken
	ErrorCodeUnauthorized
	ErrorCodeRateLimited
	ErrorCodeNetworkError
	ErrorCodeNotFound
	ErrorCodeInvalidReference
	ErrorCodeMissingDiscriminator
	ErrorCodeNoSuchProperty
	ErrorCodeSchemaMismatch
	ErrorCodeInvalidDate
)

// Base errors for the transport layer. API calls wrap these with
// request-specific context.
var (
	// ErrNoToken is returned when no API token is configured.
	ErrNoToken = NewBaseError(ErrorCodeNoToken, "api token not found")

	// ErrUnauthorized is returned when the API token is invalid or expired.
	ErrUnauthorized = NewBaseError(ErrorCodeUnauthorized, "token unauthorized or expired")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = NewBaseError(ErrorCodeRateLimited, "api rate limit exceeded")

	// ErrNetworkError is returned for network-related errors.
	ErrNetworkError = NewBaseError(ErrorCodeNetworkError, "network error")

	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = NewBaseError(ErrorCodeNotFound, "resource not found")

	// ErrInvalidReference is returned when a page or database reference
	// cannot be parsed.
	ErrInvalidReference = NewBaseError(ErrorCodeInvalidReference, "invalid reference")
)

// Base errors for the decoding layer. These classify failures to map a JSON
// fragment onto a typed entity; they never indicate a transport problem.
var (
	// ErrMissingDiscriminator is returned when a union fragment lacks its
	// type tag, or the tag is not a string.
	ErrMissingDiscriminator = NewBaseError(ErrorCodeMissingDiscriminator, "missing type discriminator")

	// ErrNoSuchProperty is returned when a required field is absent from an
	// otherwise well-formed fragment.
	ErrNoSuchProperty = NewBaseError(ErrorCodeNoSuchProperty, "no such property")

	// ErrSchemaMismatch is returned when a field is present but has the
	// wrong shape.
	ErrSchemaMismatch = NewBaseError(ErrorCodeSchemaMismatch, "schema mismatch")

	// ErrInvalidDate is returned when a date string matches neither the
	// bare-date nor the RFC 3339 timestamp format.
	ErrInvalidDate = NewBaseError(ErrorCodeInvalidDate, "invalid date")
)

// BaseError is a typed error that can be identified by code.
type BaseError struct {
	Msg  string
	Code ErrorCode
}

func (e *BaseError) Error() string {
	return e.Msg
}

// NewBaseError creates a new BaseError with the given code and message.
func NewBaseError(code ErrorCode, msg string) error {
	return &BaseError{Code: code, Msg: msg}
}

// DecodeError reports a failure to decode a JSON fragment into a typed
// entity. Raw retains the offending payload so upstream schema drift can be
// diagnosed without re-fetching.
type DecodeError struct {
	Err   error
	Field string
	Raw   json.RawMessage
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decode %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("decode: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// newFieldError reports a structurally absent or malformed field against one
// of the decode base errors.
func newFieldError(base error, field string, raw json.RawMessage) error {
	return &DecodeError{Err: base, Field: field, Raw: cloneRaw(raw)}
}

// newSchemaError reports a field whose payload failed to parse, keeping both
// the parse error and the raw fragment.
func newSchemaError(field string, raw json.RawMessage, cause error) error {
	return &DecodeError{
		Err:   fmt.Errorf("%w: %v", ErrSchemaMismatch, cause),
		Field: field,
		Raw:   cloneRaw(raw),
	}
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	return append(json.RawMessage(nil), raw...)
}

// APIError is the structured error body the API returns on failure statuses.
// When the body cannot be parsed as a structured error, RawBody keeps the
// best-effort raw text instead.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`

	StatusCode int    `json:"-"`
	RawBody    []byte `json:"-"`
}

func (e *APIError) Error() string {
	if e.Code != "" || e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s: %s", e.StatusCode, e.Code, e.Message)
	}
	if len(e.RawBody) > 0 {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.RawBody)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// HTTPStatusCode returns the HTTP status code.
func (e *APIError) HTTPStatusCode() int {
	return e.StatusCode
}

// classifyStatus converts a failure status and response body into a typed
// error. The body is parsed as a structured API error when possible; parse
// failures degrade to a raw-text attachment rather than masking the status.
func classifyStatus(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status}

	var parsed APIError
	if err := json.Unmarshal(body, &parsed); err == nil && (parsed.Code != "" || parsed.Message != "") {
		parsed.StatusCode = status
		apiErr = &parsed
	} else {
		apiErr.RawBody = append([]byte(nil), body...)
	}

	switch status {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", ErrUnauthorized, apiErr)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrRateLimited, apiErr)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, apiErr)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", ErrRateLimited, apiErr)
	default:
		return apiErr
	}
}

// wrapTransportError converts low-level request failures to typed errors.
func wrapTransportError(err error) error {
	if err == nil {
		return nil
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrNetworkError, err)
	}

	return err
}

// IsUnauthorized returns true if err is or wraps ErrUnauthorized.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsRateLimited returns true if err is or wraps ErrRateLimited.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsNotFound returns true if err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsNetworkError returns true if err is or wraps ErrNetworkError.
func IsNetworkError(err error) bool {
	return errors.Is(err, ErrNetworkError)
}

// IsDecodeError returns true if err is any decoding failure, and the typed
// error when it is.
func IsDecodeError(err error) (*DecodeError, bool) {
	var decErr *DecodeError
	if errors.As(err, &decErr) {
		return decErr, true
	}
	return nil, false
}
