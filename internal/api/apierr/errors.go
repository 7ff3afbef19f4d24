package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/wordtiles/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeMethodNotAllowed    = "METHOD_NOT_ALLOWED"
	CodeInvalidRack         = "INVALID_RACK"
	CodeUnknownLetter       = "UNKNOWN_LETTER"
	CodeTooManyBlanks       = "TOO_MANY_BLANKS"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodeInsufficientPlayers = "INSUFFICIENT_PLAYERS"
	CodePoolTooSmall        = "POOL_TOO_SMALL"
	CodeDictionaryNotLoaded = "DICTIONARY_NOT_LOADED"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrInvalidLetter):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRack, "Rack may only hold letters and '?' blanks"}}
	case errors.Is(err, model.ErrRackTooLarge):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRack, "Rack holds at most 7 tiles"}}
	case errors.Is(err, model.ErrUnknownLetter):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownLetter, "Letter is not part of the tile set"}}
	case errors.Is(err, model.ErrTooManyBlanks):
		return &httpError{http.StatusBadRequest, APIError{CodeTooManyBlanks, "Rack holds at most 2 blanks"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrInsufficientPlayers):
		return &httpError{http.StatusBadRequest, APIError{CodeInsufficientPlayers, "A game needs at least 2 players"}}
	case errors.Is(err, model.ErrPoolTooSmall):
		return &httpError{http.StatusBadRequest, APIError{CodePoolTooSmall, "Not enough tiles for that many players"}}
	case errors.Is(err, model.ErrDictionaryNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeDictionaryNotLoaded, "Dictionary not loaded"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewMethodNotAllowedError rejects a method the path does not serve
func NewMethodNotAllowedError(method string) error {
	return &httpError{http.StatusMethodNotAllowed, APIError{CodeMethodNotAllowed, "Method " + method + " not allowed"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
