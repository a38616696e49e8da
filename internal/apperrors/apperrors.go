package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifies a domain failure. Four kinds cover every component:
// referenced entity missing, entity administratively disabled, structurally
// invalid input, or actor lacking the required relationship to the target.
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindInactive     Kind = "inactive"
	KindBadRequest   Kind = "bad_request"
	KindUnauthorized Kind = "unauthorized"
)

// Error is the one error type domain components return. The message always
// names the identifying key of the entity involved.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// StatusCode maps the kind to its HTTP status 1:1.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindInactive:
		return http.StatusForbidden
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// NotFound builds a not-found error.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Inactive builds an error for an entity that exists but is disabled.
func Inactive(format string, args ...any) *Error {
	return &Error{Kind: KindInactive, Message: fmt.Sprintf(format, args...)}
}

// BadRequest builds an error for structurally invalid input.
func BadRequest(format string, args ...any) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized builds an error for a forbidden actor/target relationship.
func Unauthorized(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is a domain error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

type errorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Respond writes err as {"error":{"message","status"}}. Errors that are not
// domain errors surface as 500 without leaking their message.
func Respond(c *gin.Context, err error) {
	var e *Error
	if errors.As(err, &e) {
		c.JSON(e.StatusCode(), gin.H{"error": errorBody{Message: e.Message, Status: e.StatusCode()}})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": errorBody{
		Message: "internal server error",
		Status:  http.StatusInternalServerError,
	}})
}
