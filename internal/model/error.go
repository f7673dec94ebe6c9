package model

import "errors"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Standard error codes for API responses
const (
	ErrCodeAuthMissing        = "AUTH_MISSING"
	ErrCodeAuthExpired        = "AUTH_EXPIRED"
	ErrCodeAuthInvalid        = "AUTH_INVALID"
	ErrCodeAuthForbidden      = "AUTH_FORBIDDEN"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeUploadDisabled     = "UPLOAD_DISABLED"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target carries the same code, so validation errors
// built with different messages still match ErrValidation.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a VALIDATION_ERROR with the given message.
func NewValidationError(message string) *DomainError {
	return NewDomainError(ErrCodeValidation, message)
}

// Common domain errors
var (
	ErrTokenMissing        = NewDomainError(ErrCodeAuthMissing, "Authorization token is missing")
	ErrTokenExpired        = NewDomainError(ErrCodeAuthExpired, "Token has expired")
	ErrTokenInvalid        = NewDomainError(ErrCodeAuthInvalid, "Invalid token")
	ErrForbidden           = NewDomainError(ErrCodeAuthForbidden, "Admin access required")
	ErrInvalidCredentials  = NewDomainError(ErrCodeInvalidCredentials, "Invalid credentials or not an admin")
	ErrValidation          = NewValidationError("Invalid request")
	ErrProductNotFound     = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrImageUploadDisabled = NewDomainError(ErrCodeUploadDisabled, "Image uploads are not configured")
)

// DomainCode extracts the domain error code from err, or "" when err is not a domain error.
func DomainCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
