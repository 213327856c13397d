package download

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mediasaver/media-saver/internal/model"
)

func TestRequestDownloadSuccess(t *testing.T) {
	var gotBody model.DownloadRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.URL.Path != DownloadPath {
			t.Errorf("Expected path %s, got %s", DownloadPath, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected Content-Type application/json, got %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("Failed to decode request body: %v", err)
		}

		json.NewEncoder(w).Encode(model.DownloadResponse{
			Status:   model.StatusSuccess,
			Filename: "clip.mp4",
			Data:     "aGVsbG8=",
			Message:  "Downloaded successfully.",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	resp, err := client.RequestDownload(context.Background(), "https://youtu.be/abc", model.KindMP4)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if resp.Status != model.StatusSuccess {
		t.Errorf("Expected status success, got %s", resp.Status)
	}
	if resp.Filename != "clip.mp4" {
		t.Errorf("Expected filename clip.mp4, got %s", resp.Filename)
	}
	if resp.Data != "aGVsbG8=" {
		t.Errorf("Expected data to be returned verbatim, got %s", resp.Data)
	}

	// Canonical wire contract: field is named "kind"
	if gotBody.URL != "https://youtu.be/abc" {
		t.Errorf("Expected url in body, got %s", gotBody.URL)
	}
	if gotBody.Kind != model.KindMP4 {
		t.Errorf("Expected kind mp4 in body, got %s", gotBody.Kind)
	}
}

func TestRequestDownloadDefaultsKindToMP4(t *testing.T) {
	var raw map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Fatalf("Failed to decode request body: %v", err)
		}
		json.NewEncoder(w).Encode(model.DownloadResponse{Status: model.StatusSuccess})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	if _, err := client.RequestDownload(context.Background(), "https://youtu.be/abc", model.Kind("")); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if raw["kind"] != "mp4" {
		t.Errorf("Expected unspecified kind to default to mp4, got %q", raw["kind"])
	}
	if _, hasLegacy := raw["format"]; hasLegacy {
		t.Error("Legacy 'format' field must not be sent")
	}
}

func TestRequestDownloadEmptyURL(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	if _, err := client.RequestDownload(context.Background(), "  ", model.KindMP4); err == nil {
		t.Error("Expected error for empty URL, got nil")
	}
	if called {
		t.Error("Empty URL must not reach the server")
	}
}

func TestRequestDownloadErrorDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"bad url"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.RequestDownload(context.Background(), "https://youtu.be/abc", model.KindMP4)
	if err == nil {
		t.Fatal("Expected error for non-2xx response, got nil")
	}
	if err.Error() != "bad url" {
		t.Errorf("Expected error message 'bad url', got %q", err.Error())
	}
}

func TestRequestDownloadErrorWithoutDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>nope</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.RequestDownload(context.Background(), "https://youtu.be/abc", model.KindMP4)
	if err == nil {
		t.Fatal("Expected error for non-2xx response, got nil")
	}
	if err.Error() != "download failed with status 500" {
		t.Errorf("Expected synthesized status message, got %q", err.Error())
	}
}

func TestRequestDownloadNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	client := NewClient(server.URL, nil)

	_, err := client.RequestDownload(context.Background(), "https://youtu.be/abc", model.KindMP4)
	if !errors.Is(err, ErrBackendUnreachable) {
		t.Errorf("Expected ErrBackendUnreachable, got %v", err)
	}
}

func TestRequestDownloadMalformedSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	if _, err := client.RequestDownload(context.Background(), "https://youtu.be/abc", model.KindMP4); err == nil {
		t.Error("Expected error for malformed 2xx body, got nil")
	}
}

func TestRequestDownloadReturnsErrorStatusVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(model.DownloadResponse{
			Status:  model.StatusError,
			Message: "unsupported",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	resp, err := client.RequestDownload(context.Background(), "https://youtu.be/abc", model.KindMP4)
	if err != nil {
		t.Fatalf("A 2xx error body is not a client error, got %v", err)
	}
	if !resp.IsError() {
		t.Error("Expected IsError to be true")
	}
	if resp.Message != "unsupported" {
		t.Errorf("Expected message 'unsupported', got %q", resp.Message)
	}
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != HealthPath {
			t.Errorf("Expected path %s, got %s", HealthPath, r.URL.Path)
		}
		w.Write([]byte(`{"status":"healthy"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	if err := client.Health(context.Background()); err != nil {
		t.Errorf("Expected healthy backend, got %v", err)
	}
}

func TestHealthUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, nil)

	if err := client.Health(context.Background()); !errors.Is(err, ErrBackendUnreachable) {
		t.Errorf("Expected ErrBackendUnreachable, got %v", err)
	}
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	client := NewClient("http://127.0.0.1:8000/", nil)

	if client.BaseURL() != "http://127.0.0.1:8000" {
		t.Errorf("Expected trailing slash to be trimmed, got %s", client.BaseURL())
	}
}
