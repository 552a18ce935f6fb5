package dispatcher

import (
	"net/http"
)

// Kind buckets provider failures by how the API layer reports them.
type Kind string

const (
	KindUnavailable Kind = "unavailable"
	KindTimeout     Kind = "timeout"
	KindBackend     Kind = "backend"
)

// Error carries a user-facing detail along with the provider failure
// behind it.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status maps the failure kind to an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
