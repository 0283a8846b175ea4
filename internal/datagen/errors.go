package datagen

import (
	"fmt"
)

// NetworkError means the request never produced a response: DNS, TLS,
// connection or request construction failures.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError means a response arrived with a status outside 2xx.
type HTTPError struct {
	Endpoint   string
	StatusCode int
	StatusText string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d - %s", e.StatusCode, e.StatusText)
}
