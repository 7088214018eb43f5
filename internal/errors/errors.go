package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrPlanetNotFound is returned when no planet matches the given id.
	ErrPlanetNotFound = errors.New("that planet does not exist")
	// ErrPlanetExists is returned when a planet with the same name already exists.
	ErrPlanetExists = errors.New("there is already a planet by that name")
	// ErrEmailExists is returned when registering with an email that is taken.
	ErrEmailExists = errors.New("that email already exists")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
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

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrPlanetNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PLANET_NOT_FOUND")
	case ErrPlanetExists:
		return NewHTTPError(http.StatusConflict, err.Error(), "PLANET_EXISTS")
	case ErrEmailExists:
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_EXISTS")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
