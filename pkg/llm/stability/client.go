package stability

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dskvich/image-api/pkg/domain"
)

const (
	defaultBaseURL   = "https://api.stability.ai"
	generateCorePath = "/v2beta/stable-image/generate/core"

	// Live generation is slow; allow the backend plenty of time before
	// giving up on a request.
	defaultTimeout = 2 * time.Minute

	maxErrorBodyLen = 200
)

type client struct {
	token   string
	baseURL string
	hc      *http.Client
}

type Option func(*client)

// WithBaseURL points the client at a different endpoint. Used in tests.
func WithBaseURL(u string) Option {
	return func(c *client) { c.baseURL = u }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) { c.hc = hc }
}

func NewClient(token string, opts ...Option) (*client, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}
	c := &client{
		token:   token,
		baseURL: defaultBaseURL,
		hc:      &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GenerateImage asks the stable-image-core model for a PNG matching the
// prompt. On a non-2xx response the error is a *domain.ProviderError.
func (c *client) GenerateImage(ctx context.Context, prompt string, width, height int) ([]byte, error) {
	form := url.Values{}
	form.Set("prompt", prompt)
	form.Set("output_format", "png")
	form.Set("aspect_ratio", aspectRatio(width, height))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generateCorePath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		if len(body) > maxErrorBodyLen {
			body = body[:maxErrorBodyLen]
		}
		return nil, &domain.ProviderError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	// Success responses carry the raw image bytes, not JSON.
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading image data: %w", err)
	}

	return data, nil
}

// aspectRatio maps the requested dimensions onto the short list of ratios
// the API accepts (1:1, 16:9, 3:2, ...). Everything currently collapses to
// 1:1, so the requested dimensions never reach the live backend.
// TODO: round width:height to the nearest accepted ratio instead.
func aspectRatio(_, _ int) string {
	return "1:1"
}
