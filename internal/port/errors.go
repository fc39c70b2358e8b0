package port

import "fmt"

// UpstreamError reports a non-2xx answer from the chat platform. Status and
// Detail are filled from the upstream response when it carried a structured
// error body; Status 0 means the upstream never produced a status code.
type UpstreamError struct {
	Status int    // HTTP status returned by the platform
	Code   int    // platform-specific error code, 0 when absent
	Detail string // platform-provided message, or raw body when undecodable
}

func (e *UpstreamError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("upstream returned %d", e.Status)
}
