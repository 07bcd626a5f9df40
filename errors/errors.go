package errors

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error represents an application error
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// JSON returns the error as a JSON string
func (e *Error) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ErrNotFound is the generic missing-resource error.
var ErrNotFound = New(http.StatusNotFound, "Not found", nil)

// ErrValidation is the generic validation failure.
var ErrValidation = New(http.StatusBadRequest, "Validation error", nil)

// Storefront error types
var (
	ErrInvalidCredentials   = New(http.StatusUnauthorized, "Invalid email or password", nil)
	ErrEmailTaken           = New(http.StatusConflict, "An account with this email already exists", nil)
	ErrNotLoggedIn          = New(http.StatusUnauthorized, "You must be logged in", nil)
	ErrInvalidCoupon        = New(http.StatusBadRequest, "Invalid coupon code", nil)
	ErrEmptyCart            = New(http.StatusBadRequest, "Your cart is empty", nil)
	ErrDeliveryUnavailable  = New(http.StatusUnprocessableEntity, "Sorry, delivery is not available to this location", nil)
	ErrNoLocationSelected   = New(http.StatusBadRequest, "Please select a delivery location", nil)
	ErrConfirmationRequired = New(http.StatusBadRequest, "Confirmation required", nil)
)

// ValidationError is a field-level validation failure. It aborts the
// operation that raised it with state unchanged, and is surfaced next to the
// offending field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation creates a field-level validation error.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ErrorMiddleware turns errors attached to the gin context into JSON
// responses. Validation errors carry their field name so the presentation
// layer can place them inline.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		if ve, ok := err.(*ValidationError); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field})
			c.Abort()
			return
		}

		var appErr *Error
		if e, ok := err.(*Error); ok {
			appErr = e
		} else {
			appErr = New(http.StatusInternalServerError, "Internal server error", err)
		}
		c.JSON(appErr.Code, appErr)
		c.Abort()
	}
}
