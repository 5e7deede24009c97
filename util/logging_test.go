package util

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLogFPostsToEndpoint(t *testing.T) {
	received := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		received <- string(b)
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	LoggingEnabled, LogEndpoint = true, server.URL
	defer func() {
		LoggingEnabled, LogEndpoint = false, ""
	}()

	LogF("translated %d glyphs", 3)
	select {
	case message := <-received:
		if message != "translated 3 glyphs" {
			t.Errorf("Unexpected message %q", message)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Timed out waiting for the log message")
	}
}

func TestLogFDisabled(t *testing.T) {
	called := make(chan struct{}, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called <- struct{}{}
	}))
	defer server.Close()

	LoggingEnabled, LogEndpoint = false, server.URL
	defer func() { LogEndpoint = "" }()

	LogF("ignored")
	select {
	case <-called:
		t.Errorf("Expected no request while logging is disabled")
	case <-time.After(100 * time.Millisecond):
	}
}
