package gateway

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrUnauthorized is returned for 401 responses and for token errors
	// reported inside the envelope. The session has already been expired.
	ErrUnauthorized = errors.New("session expired, please login again")

	// ErrNetwork marks transport failures. The caller may retry.
	ErrNetwork = errors.New("network error, please check your connection")

	ErrTimeout     = fmt.Errorf("%w: request timeout", ErrNetwork)
	ErrUnavailable = fmt.Errorf("%w: service unavailable", ErrNetwork)

	ErrInvalidResponse = errors.New("server returned an invalid response")
)

var unauthorizedPattern = regexp.MustCompile(`(?i)unauthori[sz]ed|invalid[ _-]?token|expired[ _-]?token|token[ _-]?(has[ _-]?)?expired|session[ _-]?expired`)

// IsUnauthorizedMessage reports whether a server error text signals a dead session.
func IsUnauthorizedMessage(msg string) bool {
	return unauthorizedPattern.MatchString(msg)
}

// APIError is a business error reported by the backend. Message is the
// server's own text when it sent one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Message extracts the text to show a user for any gateway error.
func Message(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, ErrUnauthorized):
		return ErrUnauthorized.Error()
	case errors.Is(err, ErrTimeout):
		return "Request timeout. Please try again."
	case errors.Is(err, ErrNetwork):
		return "Network error. Please try again."
	case errors.Is(err, ErrInvalidResponse):
		return ErrInvalidResponse.Error()
	default:
		return err.Error()
	}
}

// Retryable reports whether a retry affordance makes sense for err.
func Retryable(err error) bool {
	return errors.Is(err, ErrNetwork) || errors.Is(err, ErrInvalidResponse)
}
