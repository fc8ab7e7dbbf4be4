package stock

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetImage_Success(t *testing.T) {
	var gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte("jpeg-bytes"))
	}))
	defer srv.Close()

	c := NewPicsumClient(WithBaseURL(srv.URL))

	data, err := c.GetImage(context.Background(), 78648756, 640, 480)
	if err != nil {
		t.Fatalf("GetImage failed: %v", err)
	}

	if string(data) != "jpeg-bytes" {
		t.Errorf("got image %q, want raw response body", data)
	}
	if gotPath != "/seed/78648756/640/480" {
		t.Errorf("got path %q, want seed and dimensions in the URL", gotPath)
	}
}

func TestGetImage_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewPicsumClient(WithBaseURL(srv.URL))

	if _, err := c.GetImage(context.Background(), 1, 512, 512); err == nil {
		t.Error("expected error on non-2xx status")
	}
}

func TestGetImage_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewPicsumClient(WithBaseURL(srv.URL))

	if _, err := c.GetImage(context.Background(), 1, 512, 512); err == nil {
		t.Error("expected transport error")
	}
}
