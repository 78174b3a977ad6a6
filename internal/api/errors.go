package api

import "fmt"

// ErrorKind classifies an API client failure.
type ErrorKind int

const (
	// KindAuthentication indicates the API key was rejected (HTTP 401).
	KindAuthentication ErrorKind = iota
	// KindPermission indicates the key lacks access to the resource (HTTP 403).
	KindPermission
	// KindNotFound indicates the requested resource does not exist (HTTP 404).
	KindNotFound
	// KindRateLimit indicates the request was throttled (HTTP 429).
	KindRateLimit
	// KindAPI covers any other non-2xx response from the service.
	KindAPI
	// KindNetwork indicates the request was sent but no response arrived.
	KindNetwork
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindPermission:
		return "permission"
	case KindNotFound:
		return "not found"
	case KindRateLimit:
		return "rate limit"
	case KindAPI:
		return "api"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// Error is a classified API client failure. Every Error carries a single
// human-readable message; StatusCode is zero for network failures.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// errorForStatus maps a non-2xx response to a classified Error.
// The body message is only consulted for the generic KindAPI case.
func errorForStatus(status int, bodyMessage string) *Error {
	switch status {
	case 401:
		return &Error{
			Kind:       KindAuthentication,
			StatusCode: status,
			Message:    "authentication failed: invalid or expired API key",
		}
	case 403:
		return &Error{
			Kind:       KindPermission,
			StatusCode: status,
			Message:    "permission denied: your API key does not have access to this resource",
		}
	case 404:
		return &Error{
			Kind:       KindNotFound,
			StatusCode: status,
			Message:    "resource not found",
		}
	case 429:
		return &Error{
			Kind:       KindRateLimit,
			StatusCode: status,
			Message:    "rate limit exceeded: try again later",
		}
	default:
		return &Error{
			Kind:       KindAPI,
			StatusCode: status,
			Message:    fmt.Sprintf("API error (%d): %s", status, bodyMessage),
		}
	}
}

// networkError wraps a transport-level failure (request sent, no response).
func networkError(err error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Message: fmt.Sprintf("network error: %v", err),
	}
}
