package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorKind is the machine-readable error classification exposed to clients.
type ErrorKind string

const (
	KindUnauthorized    ErrorKind = "unauthorized"
	KindForbidden       ErrorKind = "forbidden"
	KindInvalidArgument ErrorKind = "invalid_argument"
	KindAlreadyBooked   ErrorKind = "already_booked"
	KindNotFound        ErrorKind = "not_found"
	KindInfrastructure  ErrorKind = "infrastructure"
)

// ServiceError carries a kind plus a human-readable message. Services return
// these for every expected failure; anything else is treated as internal.
type ServiceError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// Errorf builds a ServiceError of the given kind.
func Errorf(kind ErrorKind, format string, args ...any) *ServiceError {
	return &ServiceError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// AlreadyBookedError builds the duplicate-booking rejection, naming the
// conflicting date in the user-facing message.
func AlreadyBookedError(date string) *ServiceError {
	return &ServiceError{
		Kind:    KindAlreadyBooked,
		Message: fmt.Sprintf("You already have a booking on %s", date),
	}
}

// InfraError wraps a store or provider failure.
func InfraError(op string, err error) *ServiceError {
	return &ServiceError{Kind: KindInfrastructure, Message: op + " failed", Err: err}
}

// HTTPStatus maps an error kind to its response status code.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindInvalidArgument, KindAlreadyBooked:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse defines the structure of error responses.
type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// RespondError writes a structured error response. Unclassified errors are
// reported as infrastructure failures without leaking internals.
func RespondError(c *gin.Context, err error) {
	var se *ServiceError
	if errors.As(err, &se) {
		if se.Kind == KindInfrastructure {
			GetLogger().Error("request failed", zap.Error(err))
		}
		c.JSON(se.Kind.HTTPStatus(), ErrorResponse{Kind: string(se.Kind), Message: se.Message})
		return
	}
	GetLogger().Error("unclassified error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Kind:    string(KindInfrastructure),
		Message: "An unexpected error occurred. Please try again later.",
	})
}

// ErrorHandler is a middleware that catches panics and returns structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", r))
				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Kind:    string(KindInfrastructure),
					Message: "Internal Server Error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
