package errors

import (
	"errors"

	"github.com/ariel-frischer/agroctl/internal/api"
)

// Common error constructors for the agroctl CLI.
// These templates keep messages consistent and actionable.

// NotConfigured creates the error shown when no API key is set.
// It is raised locally, before any network call.
func NotConfigured() *CLIError {
	return NewConfigError(
		"no API key configured",
		"Run 'agroctl config set api_key <your-key>'",
		"Or set the AGROCTL_API_KEY environment variable",
	)
}

// MissingID creates an error for a get command called without an id.
func MissingID(usage string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     "resource id is required",
		Usage:       usage,
		Remediation: []string{"Pass the resource id as the first argument"},
	}
}

// FromAPI converts an API client failure into a categorized CLIError.
// Non-API errors come back wrapped as runtime errors.
func FromAPI(err error) *CLIError {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return Wrap(err, Runtime)
	}

	switch apiErr.Kind {
	case api.KindAuthentication:
		return NewConfigError(
			apiErr.Message,
			"Check the key with 'agroctl config show'",
			"Set a new key with 'agroctl config set api_key <your-key>'",
		)
	case api.KindPermission:
		return NewAPIError(
			apiErr.Message,
			"Ask your account admin to grant access to this resource",
		)
	case api.KindNotFound:
		return NewAPIError(
			apiErr.Message,
			"Check the id; 'list' shows the ids you can access",
		)
	case api.KindRateLimit:
		return NewAPIError(
			apiErr.Message,
			"Wait a moment and retry",
		)
	case api.KindNetwork:
		return NewNetworkError(
			apiErr.Message,
			"Check your internet connection",
			"Verify base_url with 'agroctl config show'",
		)
	default:
		return NewAPIError(apiErr.Message)
	}
}
