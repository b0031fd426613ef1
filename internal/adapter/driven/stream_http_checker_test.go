package driven

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestStreamHTTPChecker_Check_Available(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/vnd.apple.mpegurl")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("#EXTM3U\n"))
	}))
	defer server.Close()

	checker := NewStreamHTTPChecker(time.Second, "", newTestLogger())
	result := checker.Check(context.Background(), server.URL+"/live.m3u8")

	if !result.Available() {
		t.Fatalf("Available() = false, error %q", result.ErrorMessage())
	}
	if result.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode() = %d, want 200", result.StatusCode())
	}
	if result.Address() != server.URL+"/live.m3u8" {
		t.Errorf("Address() = %q", result.Address())
	}
	if result.Timestamp().IsZero() {
		t.Error("Timestamp() is zero")
	}
}

func TestStreamHTTPChecker_Check_EndlessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		flusher, _ := w.(http.Flusher)
		for {
			if _, err := w.Write(make([]byte, 4096)); err != nil {
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
			select {
			case <-r.Context().Done():
				return
			case <-time.After(10 * time.Millisecond):
			}
		}
	}))
	defer server.Close()

	checker := NewStreamHTTPChecker(time.Second, "", newTestLogger())
	start := time.Now()
	result := checker.Check(context.Background(), server.URL)

	if !result.Available() {
		t.Fatalf("Available() = false, error %q", result.ErrorMessage())
	}
	if elapsed := time.Since(start); elapsed > 900*time.Millisecond {
		t.Errorf("check took %v, expected it not to wait for the body", elapsed)
	}
}

func TestStreamHTTPChecker_Check_NonOKStatus(t *testing.T) {
	statuses := []int{http.StatusForbidden, http.StatusNotFound, http.StatusBadGateway, http.StatusPartialContent}

	for _, status := range statuses {
		t.Run(http.StatusText(status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))
			defer server.Close()

			checker := NewStreamHTTPChecker(time.Second, "", newTestLogger())
			result := checker.Check(context.Background(), server.URL)

			if result.Available() {
				t.Error("Available() = true, want false")
			}
			if result.StatusCode() != status {
				t.Errorf("StatusCode() = %d, want %d", result.StatusCode(), status)
			}
		})
	}
}

func TestStreamHTTPChecker_Check_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	checker := NewStreamHTTPChecker(100*time.Millisecond, "", newTestLogger())
	result := checker.Check(context.Background(), server.URL)

	if result.Available() {
		t.Fatal("Available() = true, want false")
	}
	if !strings.Contains(result.ErrorMessage(), "timed out") {
		t.Errorf("ErrorMessage() = %q, want timeout", result.ErrorMessage())
	}
}

func TestStreamHTTPChecker_Check_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	checker := NewStreamHTTPChecker(time.Second, "", newTestLogger())
	if result := checker.Check(context.Background(), addr); result.Available() {
		t.Error("Available() = true for closed server")
	}
}

func TestStreamHTTPChecker_Check_UnsupportedScheme(t *testing.T) {
	checker := NewStreamHTTPChecker(time.Second, "", newTestLogger())

	result := checker.Check(context.Background(), "rtmp://live.test/jade")
	if result.Available() {
		t.Error("Available() = true, want false")
	}
	if !strings.Contains(result.ErrorMessage(), "unsupported scheme") {
		t.Errorf("ErrorMessage() = %q", result.ErrorMessage())
	}
}
