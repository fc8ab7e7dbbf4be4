package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dskvich/image-api/pkg/domain"
)

type stubGenerator struct{}

func (stubGenerator) Generate(context.Context, domain.GenerationRequest) domain.GenerationResult {
	return domain.GenerationResult{
		ImageData: []byte("png"),
		Provider:  domain.DemoProvider,
		Mode:      domain.ModeDemo,
		Note:      domain.DemoModeNote,
	}
}

func TestRouter_Routes(t *testing.T) {
	srv := httptest.NewServer(NewRouter(stubGenerator{}, nil))
	defer srv.Close()

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/api/hello", "", http.StatusOK},
		{http.MethodGet, "/test", "", http.StatusOK},
		{http.MethodPost, "/api/generate", `{"prompt":"a red fox"}`, http.StatusOK},
		{http.MethodGet, "/api/generate", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		req, err := http.NewRequest(tt.method, srv.URL+tt.path, strings.NewReader(tt.body))
		if err != nil {
			t.Fatalf("creating request: %v", err)
		}

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("%s %s: %v", tt.method, tt.path, err)
		}
		resp.Body.Close()

		if resp.StatusCode != tt.want {
			t.Errorf("%s %s: got status %d, want %d", tt.method, tt.path, resp.StatusCode, tt.want)
		}
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	srv := httptest.NewServer(NewRouter(stubGenerator{}, nil))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/generate", nil)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight request: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got == "" {
		t.Error("preflight response missing Access-Control-Allow-Origin")
	}
}

func TestRouter_RequestIDEchoed(t *testing.T) {
	srv := httptest.NewServer(NewRouter(stubGenerator{}, nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/hello")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("response missing X-Request-ID")
	}
}
