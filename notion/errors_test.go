package notion

import (
	"errors"
	"net/http"
	"testing"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
	}{
		{
			name:     "unauthorized",
			status:   http.StatusUnauthorized,
			body:     `{"object":"error","status":401,"code":"unauthorized","message":"API token is invalid."}`,
			sentinel: ErrUnauthorized,
		},
		{
			name:     "forbidden maps to rate limited",
			status:   http.StatusForbidden,
			body:     `{"code":"restricted_resource","message":"insufficient permissions"}`,
			sentinel: ErrRateLimited,
		},
		{
			name:     "not found",
			status:   http.StatusNotFound,
			body:     `{"code":"object_not_found","message":"Could not find page."}`,
			sentinel: ErrNotFound,
		},
		{
			name:     "too many requests",
			status:   http.StatusTooManyRequests,
			body:     `{"code":"rate_limited","message":"slow down"}`,
			sentinel: ErrRateLimited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyStatus(tt.status, []byte(tt.body))
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("classifyStatus(%d) = %v, want %v", tt.status, err, tt.sentinel)
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("classifyStatus(%d) does not expose *APIError: %v", tt.status, err)
			}
			if apiErr.HTTPStatusCode() != tt.status {
				t.Errorf("HTTPStatusCode = %d, want %d", apiErr.HTTPStatusCode(), tt.status)
			}
		})
	}
}

func TestClassifyStatusUnparseableBody(t *testing.T) {
	err := classifyStatus(http.StatusInternalServerError, []byte("<html>boom</html>"))

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if string(apiErr.RawBody) != "<html>boom</html>" {
		t.Errorf("RawBody = %s, want raw text kept", apiErr.RawBody)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d", apiErr.StatusCode)
	}
}

func TestAPIErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "structured",
			err:  &APIError{StatusCode: 400, Code: "validation_error", Message: "bad cursor"},
			want: "HTTP 400: validation_error: bad cursor",
		},
		{
			name: "raw body",
			err:  &APIError{StatusCode: 502, RawBody: []byte("bad gateway")},
			want: "HTTP 502: bad gateway",
		},
		{
			name: "status only",
			err:  &APIError{StatusCode: 500},
			want: "HTTP 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	if !IsUnauthorized(classifyStatus(401, nil)) {
		t.Error("IsUnauthorized(401 classification) = false")
	}
	if !IsRateLimited(classifyStatus(429, nil)) {
		t.Error("IsRateLimited(429 classification) = false")
	}
	if !IsNotFound(classifyStatus(404, nil)) {
		t.Error("IsNotFound(404 classification) = false")
	}
	if IsNotFound(classifyStatus(401, nil)) {
		t.Error("IsNotFound(401 classification) = true")
	}

	decErr, ok := IsDecodeError(newFieldError(ErrNoSuchProperty, "id", nil))
	if !ok || decErr.Field != "id" {
		t.Errorf("IsDecodeError = %+v, %v", decErr, ok)
	}
	if _, ok := IsDecodeError(errors.New("plain")); ok {
		t.Error("IsDecodeError(plain error) = true")
	}
}

func TestWrapTransportError(t *testing.T) {
	if wrapTransportError(nil) != nil {
		t.Error("wrapTransportError(nil) should be nil")
	}

	plain := errors.New("plain failure")
	if got := wrapTransportError(plain); !errors.Is(got, plain) {
		t.Errorf("wrapTransportError(plain) = %v", got)
	}

	netErr := &timeoutError{}
	wrapped := wrapTransportError(netErr)
	if !IsNetworkError(wrapped) {
		t.Errorf("wrapTransportError(net.Error) = %v, want ErrNetworkError", wrapped)
	}
}

// timeoutError implements net.Error for the transport wrapping test.
type timeoutError struct{}

func (*timeoutError) Error() string   { return "i/o timeout" }
func (*timeoutError) Timeout() bool   { return true }
func (*timeoutError) Temporary() bool { return true }
