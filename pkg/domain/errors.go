package domain

import "fmt"

// ProviderError is returned when the live backend answers with a non-2xx
// status. The body is truncated by the client before it lands here.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}
