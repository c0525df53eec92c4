package services

import "fmt"

// UpstreamUnavailableError means the provider could not be reached at all
// (DNS, connect, timeout). Never retried.
type UpstreamUnavailableError struct {
	Err error
}

func (e *UpstreamUnavailableError) Error() string {
	return fmt.Sprintf("sentiment provider unreachable: %v", e.Err)
}

func (e *UpstreamUnavailableError) Unwrap() error {
	return e.Err
}

// UpstreamRejectedError means the provider answered with a non-2xx status.
// StatusCode is the provider's own code and is relayed to the client.
type UpstreamRejectedError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamRejectedError) Error() string {
	return fmt.Sprintf("provider request failed with status %d", e.StatusCode)
}

// UpstreamMalformedError means the provider answered 2xx but the reply
// JSON was missing the expected candidates/content/parts structure.
type UpstreamMalformedError struct {
	Reason string
}

func (e *UpstreamMalformedError) Error() string {
	return fmt.Sprintf("invalid response structure from provider: %s", e.Reason)
}
