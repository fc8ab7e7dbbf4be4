package stability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dskvich/image-api/pkg/domain"
)

func TestNewClient_RequiresToken(t *testing.T) {
	if _, err := NewClient(""); err == nil {
		t.Error("expected error for empty token")
	}
}

func TestGenerateImage_Success(t *testing.T) {
	var gotAuth, gotPrompt, gotFormat, gotRatio string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("got method %s, want POST", r.Method)
		}
		if r.URL.Path != generateCorePath {
			t.Errorf("got path %s, want %s", r.URL.Path, generateCorePath)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parsing form: %v", err)
		}
		gotAuth = r.Header.Get("Authorization")
		gotPrompt = r.PostFormValue("prompt")
		gotFormat = r.PostFormValue("output_format")
		gotRatio = r.PostFormValue("aspect_ratio")

		w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	c, err := NewClient("secret", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}

	data, err := c.GenerateImage(context.Background(), "a red fox", 768, 512)
	if err != nil {
		t.Fatalf("GenerateImage failed: %v", err)
	}

	if string(data) != "png-bytes" {
		t.Errorf("got image %q, want raw response body", data)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("got auth %q, want bearer token", gotAuth)
	}
	if gotPrompt != "a red fox" {
		t.Errorf("got prompt %q", gotPrompt)
	}
	if gotFormat != "png" {
		t.Errorf("got output_format %q, want png", gotFormat)
	}
	// Non-square dimensions are still collapsed to 1:1.
	if gotRatio != "1:1" {
		t.Errorf("got aspect_ratio %q, want 1:1", gotRatio)
	}
}

func TestGenerateImage_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := NewClient("secret", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}

	_, err = c.GenerateImage(context.Background(), "a red fox", 512, 512)

	var provErr *domain.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("got %v, want *domain.ProviderError", err)
	}
	if provErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("got status %d, want 500", provErr.StatusCode)
	}
	if provErr.Body == "" {
		t.Error("error body should carry the upstream message")
	}
}

func TestGenerateImage_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c, err := NewClient("secret", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}

	if _, err := c.GenerateImage(context.Background(), "a red fox", 512, 512); err == nil {
		t.Error("expected transport error")
	}
}
