package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailExists is returned when signing up with an email that is taken.
	ErrEmailExists = errors.New("Email already registered")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrForbidden is returned when the caller's role lacks permission.
	ErrForbidden = errors.New("forbidden")
	// ErrSubmissionNotFound is returned when a submission id does not exist.
	ErrSubmissionNotFound = errors.New("Submission not found")
	// ErrAlreadyVoted is returned on a second vote for the same case.
	ErrAlreadyVoted = errors.New("You already voted for this case")
	// ErrUnauthenticated is returned when the request carries no valid identity.
	ErrUnauthenticated = errors.New("invalid or missing token")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors collapse
// to a generic 500 so storage detail never leaks to the caller.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailExists):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrSubmissionNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SUBMISSION_NOT_FOUND")
	case errors.Is(err, ErrAlreadyVoted):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ALREADY_VOTED")
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
