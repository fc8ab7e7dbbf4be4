package stock

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://picsum.photos"

	// Fallback path; must not stall the overall request for long.
	defaultTimeout = 30 * time.Second
)

// PicsumClient fetches seeded placeholder images. The same seed always maps
// to the same picture, which keeps demo output reproducible per prompt.
type PicsumClient struct {
	baseURL string
	hc      *http.Client
}

type Option func(*PicsumClient)

func WithBaseURL(u string) Option {
	return func(c *PicsumClient) { c.baseURL = u }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *PicsumClient) { c.hc = hc }
}

func NewPicsumClient(opts ...Option) *PicsumClient {
	c := &PicsumClient{
		baseURL: defaultBaseURL,
		hc:      &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *PicsumClient) GetImage(ctx context.Context, seed int64, width, height int) ([]byte, error) {
	imageURL := fmt.Sprintf("%s/seed/%d/%d/%d", c.baseURL, seed, width, height)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading image data: %w", err)
	}

	return data, nil
}
