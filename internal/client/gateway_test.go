// Package client_test exercises the gateway against httptest servers.
package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/senso-ai/senso-mcp/internal/client"
)

func TestGateway_Do_SendsAPIKeyHeaders(t *testing.T) {
	t.Helper()

	var received atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.Store(true)

		if got := r.Header.Get("X-API-Key"); got != "tgr_test_key" {
			t.Errorf("X-API-Key = %q, want tgr_test_key", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q, want application/json", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", got)
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	g := client.NewGateway(server.URL, "tgr_test_key", 0, nil)
	body, err := g.Do(context.Background(), http.MethodPost, "/search", nil, map[string]any{"query": "q"})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if !received.Load() {
		t.Fatal("expected server to receive the request")
	}
	if !strings.Contains(string(body), "ok") {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestGateway_Do_UnsupportedMethod_NoRequestIssued(t *testing.T) {
	t.Helper()

	var requestCount atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requestCount.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	g := client.NewGateway(server.URL, "key", 0, nil)
	_, err := g.Do(context.Background(), "TRACE", "/search", nil, nil)
	if err == nil {
		t.Fatal("expected error for unsupported method")
	}

	var cerr *client.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *client.Error, got %T", err)
	}
	if cerr.Kind != client.KindValidation {
		t.Errorf("Kind = %v, want KindValidation", cerr.Kind)
	}
	if requestCount.Load() != 0 {
		t.Errorf("expected no request issued, got %d", requestCount.Load())
	}
}

func TestGateway_Do_RemoteErrorBodyParsed(t *testing.T) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "X"}`))
	}))
	defer server.Close()

	g := client.NewGateway(server.URL, "key", 0, nil)
	_, err := g.Do(context.Background(), http.MethodGet, "/prompts", nil, nil)
	if err == nil {
		t.Fatal("expected error for 400 response")
	}

	var cerr *client.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *client.Error, got %T", err)
	}
	if cerr.Kind != client.KindRemote {
		t.Errorf("Kind = %v, want KindRemote", cerr.Kind)
	}
	if err.Error() != "API Error: X" {
		t.Errorf("Error() = %q, want %q", err.Error(), "API Error: X")
	}
}

func TestGateway_Do_RemoteErrorWithoutStructuredBody(t *testing.T) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	g := client.NewGateway(server.URL, "key", 0, nil)
	_, err := g.Do(context.Background(), http.MethodGet, "/prompts", nil, nil)
	if err == nil {
		t.Fatal("expected error for 502 response")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("expected status code in message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "upstream exploded") {
		t.Errorf("expected raw body in message, got %q", err.Error())
	}
}

func TestGateway_Do_TransportFailure(t *testing.T) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	server.Close() // connection refused from here on

	g := client.NewGateway(server.URL, "key", 0, nil)
	_, err := g.Do(context.Background(), http.MethodGet, "/prompts", nil, nil)
	if err == nil {
		t.Fatal("expected transport error")
	}

	var cerr *client.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *client.Error, got %T", err)
	}
	if cerr.Kind != client.KindTransport {
		t.Errorf("Kind = %v, want KindTransport", cerr.Kind)
	}
	if !strings.HasPrefix(err.Error(), "Request failed: ") {
		t.Errorf("expected 'Request failed: ' prefix, got %q", err.Error())
	}
}

func TestGateway_Do_QueryParamsEncoded(t *testing.T) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "10" {
			t.Errorf("limit = %q, want 10", got)
		}
		if got := r.URL.Query().Get("offset"); got != "20" {
			t.Errorf("offset = %q, want 20", got)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	query := url.Values{}
	query.Set("limit", "10")
	query.Set("offset", "20")

	g := client.NewGateway(server.URL, "key", 0, nil)
	if _, err := g.Do(context.Background(), http.MethodGet, "/prompts", query, nil); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
}

func TestGateway_DoMultipart_FieldsAndFile(t *testing.T) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("Content-Type = %q, want multipart/form-data", r.Header.Get("Content-Type"))
		}
		if parseErr := r.ParseMultipartForm(1 << 20); parseErr != nil {
			t.Fatalf("parse multipart: %v", parseErr)
		}
		if got := r.FormValue("title"); got != "Notes" {
			t.Errorf("title field = %q, want Notes", got)
		}

		file, header, fileErr := r.FormFile("file")
		if fileErr != nil {
			t.Fatalf("form file: %v", fileErr)
		}
		defer file.Close()
		if header.Filename != "notes.md" {
			t.Errorf("filename = %q, want notes.md", header.Filename)
		}

		buf := make([]byte, 64)
		n, _ := file.Read(buf)
		if string(buf[:n]) != "# heading" {
			t.Errorf("file content = %q, want '# heading'", string(buf[:n]))
		}

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "c-1", "title": "Notes"})
	}))
	defer server.Close()

	g := client.NewGateway(server.URL, "key", 0, nil)
	body, err := g.DoMultipart(
		context.Background(),
		"/content/file",
		map[string]string{"title": "Notes"},
		"file", "notes.md",
		strings.NewReader("# heading"),
	)
	if err != nil {
		t.Fatalf("DoMultipart() error = %v", err)
	}
	if !strings.Contains(string(body), "c-1") {
		t.Errorf("unexpected body: %s", body)
	}
}
