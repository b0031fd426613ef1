package probe

import (
	"errors"
	"testing"
	"time"
)

func TestNewResult(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name         string
		address      string
		timestamp    time.Time
		available    bool
		latency      time.Duration
		statusCode   int
		errorMessage string
		wantError    error
	}{
		{
			name:       "valid successful probe",
			address:    "http://a.test/1.m3u8",
			timestamp:  now,
			available:  true,
			latency:    150 * time.Millisecond,
			statusCode: 200,
		},
		{
			name:         "valid failed probe",
			address:      "http://a.test/1.m3u8",
			timestamp:    now,
			statusCode:   404,
			errorMessage: "unexpected status 404",
		},
		{
			name:      "empty address",
			address:   "",
			timestamp: now,
			wantError: ErrEmptyAddress,
		},
		{
			name:      "whitespace-only address",
			address:   "   ",
			timestamp: now,
			wantError: ErrEmptyAddress,
		},
		{
			name:      "zero timestamp",
			address:   "http://a.test/1.m3u8",
			timestamp: time.Time{},
			wantError: ErrInvalidTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewResult(tt.address, tt.timestamp, tt.available, tt.latency, tt.statusCode, tt.errorMessage)

			if tt.wantError != nil {
				if !errors.Is(err, tt.wantError) {
					t.Errorf("expected error %v, got %v", tt.wantError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.Address() != tt.address {
				t.Errorf("Address() = %q, want %q", result.Address(), tt.address)
			}
			if !result.Timestamp().Equal(tt.timestamp) {
				t.Errorf("Timestamp() = %v, want %v", result.Timestamp(), tt.timestamp)
			}
			if result.Available() != tt.available {
				t.Errorf("Available() = %v, want %v", result.Available(), tt.available)
			}
			if result.Latency() != tt.latency {
				t.Errorf("Latency() = %v, want %v", result.Latency(), tt.latency)
			}
			if result.StatusCode() != tt.statusCode {
				t.Errorf("StatusCode() = %d, want %d", result.StatusCode(), tt.statusCode)
			}
			if result.ErrorMessage() != tt.errorMessage {
				t.Errorf("ErrorMessage() = %q, want %q", result.ErrorMessage(), tt.errorMessage)
			}
		})
	}
}

func TestNewResult_TrimsWhitespace(t *testing.T) {
	result, err := NewResult("  http://a.test/1  ", time.Now(), true, 0, 200, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Address() != "http://a.test/1" {
		t.Errorf("Address() = %q, want %q", result.Address(), "http://a.test/1")
	}
}

func TestFailed(t *testing.T) {
	now := time.Now()
	result := Failed("http://a.test/1", now, "rate limiter: context canceled")

	if result.Available() {
		t.Error("Available() = true, want false")
	}
	if result.Address() != "http://a.test/1" {
		t.Errorf("Address() = %q", result.Address())
	}
	if result.ErrorMessage() != "rate limiter: context canceled" {
		t.Errorf("ErrorMessage() = %q", result.ErrorMessage())
	}
	if result.StatusCode() != 0 {
		t.Errorf("StatusCode() = %d, want 0", result.StatusCode())
	}
}

func TestDomainErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{name: "ErrEmptyAddress", err: ErrEmptyAddress, msg: "probe address cannot be empty"},
		{name: "ErrInvalidTimestamp", err: ErrInvalidTimestamp, msg: "probe timestamp must not be zero"},
		{name: "ErrNoProbeData", err: ErrNoProbeData, msg: "no probe data available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.msg {
				t.Errorf("error message = %q, want %q", tt.err.Error(), tt.msg)
			}
		})
	}
}
