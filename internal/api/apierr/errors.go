package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/lifegame/internal/model"
	"github.com/mcoot/lifegame/internal/services/auth"
)

// StatusFailure tags every error body
const StatusFailure = "FAILURE"

// APIError is the body of every failed action
type APIError struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Error codes
const (
	CodeInvalidFormat     = "INVALID_FORMAT"
	CodeNoSuchAction      = "NO_SUCH_ACTION"
	CodeNotPermitted      = "NOT_PERMITTED"
	CodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeDoubleAnswer      = "DOUBLE_ANSWER"
	CodeMissingAnswer     = "MISSING_ANSWER"
	CodeUsernameTaken     = "USERNAME_TAKEN"
	CodePlayerNotFound    = "PLAYER_NOT_FOUND"
	CodeIncorrectPassword = "INCORRECT_PASSWORD"
	CodeUnknownActivity   = "UNKNOWN_ACTIVITY"
	CodeInternalError     = "INTERNAL_ERROR"
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
	_ = json.NewEncoder(w).Encode(he.apiError)
}

func newError(status int, code, message string) *httpError {
	return &httpError{status, APIError{Status: StatusFailure, Code: code, Message: message}}
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var out *httpError
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		out = newError(http.StatusUnprocessableEntity, CodeInvalidInput, err.Error())
	case errors.Is(err, model.ErrDoubleAnswer):
		out = newError(http.StatusUnprocessableEntity, CodeDoubleAnswer, err.Error())
	case errors.Is(err, model.ErrMissingAnswer):
		out = newError(http.StatusUnprocessableEntity, CodeMissingAnswer, err.Error())
	case errors.Is(err, model.ErrUsernameTaken):
		out = newError(http.StatusConflict, CodeUsernameTaken, "Username already taken")
	case errors.Is(err, model.ErrPlayerNotFound):
		out = newError(http.StatusNotFound, CodePlayerNotFound, "Player not found")
	case errors.Is(err, model.ErrIncorrectPassword):
		out = newError(http.StatusUnauthorized, CodeIncorrectPassword, "Incorrect password")
	case errors.Is(err, model.ErrUnknownActivity):
		out = newError(http.StatusBadRequest, CodeUnknownActivity, err.Error())
	case errors.Is(err, auth.ErrInvalidSession):
		out = newError(http.StatusUnauthorized, CodeUnauthorized, "Invalid or expired session")
	default:
		// Persistence failures land here too: nothing is acknowledged.
		return newError(http.StatusInternalServerError, CodeInternalError, "Internal server error")
	}

	var fe *model.FieldError
	if errors.As(err, &fe) {
		out.apiError.Field = string(fe.Field)
	}
	return out
}

// NewInvalidFormatError reports a request body that is not the expected JSON shape
func NewInvalidFormatError(message string) error {
	return newError(http.StatusBadRequest, CodeInvalidFormat, message)
}

// NewNoSuchActionError reports an action name missing from the action table
func NewNoSuchActionError(action string) error {
	return newError(http.StatusNotFound, CodeNoSuchAction, "No such action: "+action)
}

// NewNotPermittedError reports an attempt to invoke an internal action
func NewNotPermittedError(action string) error {
	return newError(http.StatusForbidden, CodeNotPermitted, "Not permitted for action: "+action)
}

// NewMethodNotAllowedError reports an action invoked with the wrong HTTP method
func NewMethodNotAllowedError(method string) error {
	return newError(http.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method not allowed: "+method)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return newError(http.StatusUnauthorized, CodeUnauthorized, "Authentication required")
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return newError(http.StatusInternalServerError, CodeInternalError, "Internal server error")
}
