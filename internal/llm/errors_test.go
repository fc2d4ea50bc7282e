package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorCodes(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&ErrAuth{}, "provider_auth"},
		{&ErrQuotaExceeded{}, "provider_quota"},
		{&ErrRateLimit{}, "provider_rate_limited"},
		{&ErrTimeout{}, "provider_timeout"},
		{&ErrProviderUnavailable{}, "provider_error"},
		{&ErrInvalidResponse{}, "provider_error"},
		{context.DeadlineExceeded, "provider_timeout"},
		{errors.New("anything else"), "provider_error"},
	}
	for _, tc := range cases {
		if got := ErrorCode(tc.err); got != tc.want {
			t.Errorf("ErrorCode(%T) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestErrorCodeUnwrapsWrapped(t *testing.T) {
	wrapped := fmt.Errorf("calling provider: %w", &ErrRateLimit{})
	if got := ErrorCode(wrapped); got != "provider_rate_limited" {
		t.Errorf("ErrorCode = %q, want provider_rate_limited", got)
	}
}

func TestMapStatus(t *testing.T) {
	cases := []struct {
		status  int
		message string
		want    string
	}{
		{http.StatusUnauthorized, "", "provider_auth"},
		{http.StatusForbidden, "", "provider_auth"},
		{http.StatusTooManyRequests, "slow down", "provider_rate_limited"},
		{http.StatusTooManyRequests, "You exceeded your current quota", "provider_quota"},
		{http.StatusTooManyRequests, "billing hard limit reached", "provider_quota"},
		{http.StatusRequestTimeout, "", "provider_timeout"},
		{http.StatusGatewayTimeout, "", "provider_timeout"},
		{http.StatusInternalServerError, "", "provider_error"},
		{http.StatusBadRequest, "", "provider_error"},
	}
	for _, tc := range cases {
		got := ErrorCode(mapStatus(tc.status, tc.message, errors.New(tc.message)))
		if got != tc.want {
			t.Errorf("mapStatus(%d, %q) code = %q, want %q", tc.status, tc.message, got, tc.want)
		}
	}
}

func TestMapTransportError(t *testing.T) {
	if got := ErrorCode(mapTransportError(context.DeadlineExceeded)); got != "provider_timeout" {
		t.Errorf("deadline exceeded code = %q, want provider_timeout", got)
	}
	// Cancellation passes through so callers can distinguish it.
	if err := mapTransportError(context.Canceled); !errors.Is(err, context.Canceled) {
		t.Errorf("canceled mapped to %v, want passthrough", err)
	}
}
