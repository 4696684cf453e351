// Package errors provides unified error handling for wirekit.
// It implements structured error types with machine-readable codes so callers
// can distinguish declaration mistakes from startup failures without string
// matching.
package errors

import (
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Declaration Error Constructors ---

// DuplicateDeclaration creates an AppError for a type or setup declared twice.
func DuplicateDeclaration(kind, name string) *AppError {
	return &AppError{
		Code:    ErrCodeDuplicateDeclaration,
		Message: fmt.Sprintf("%s %q is already declared", kind, name),
		Details: map[string]any{"kind": kind, "name": name},
	}
}

// InvalidDeclaration creates an AppError for a declaration that can never be
// applied, naming the offending type and the reason.
func InvalidDeclaration(typeName, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidDeclaration,
		Message: fmt.Sprintf("invalid declaration for %s: %s", typeName, reason),
		Details: map[string]any{"type": typeName},
	}
}

// InvalidSetup creates an AppError for a setup registration with an unusable
// shape, naming the setup and the required shape.
func InvalidSetup(name, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidSetup,
		Message: fmt.Sprintf("setup %q: %s (a setup must be a uniquely named, non-nil function)", name, reason),
		Details: map[string]any{"setup": name},
	}
}

// --- Startup Error Constructors ---

// MissingSection creates an AppError for a static configuration declaration
// whose key path is absent, naming the type and the path.
func MissingSection(typeName, path string) *AppError {
	return &AppError{
		Code:    ErrCodeMissingSection,
		Message: fmt.Sprintf("configuration section %q required by %s is missing", path, typeName),
		Details: map[string]any{"type": typeName, "path": path},
	}
}

// Instantiation creates an AppError for a configuration type that could not be
// instantiated or populated.
func Instantiation(typeName string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeInstantiation,
		Message: fmt.Sprintf("failed to instantiate %s from configuration", typeName),
		Details: map[string]any{"type": typeName},
		Cause:   cause,
	}
}

// InvalidConfig creates an AppError for a bound configuration instance that
// failed validation.
func InvalidConfig(typeName, path string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidConfig,
		Message: fmt.Sprintf("configuration %s bound from %q is invalid", typeName, path),
		Details: map[string]any{"type": typeName, "path": path},
		Cause:   cause,
	}
}

// SetupFailed wraps an error returned by a setup function with the setup's
// identity for diagnosis.
func SetupFailed(name string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeSetupFailed,
		Message: fmt.Sprintf("setup %q failed", name),
		Details: map[string]any{"setup": name},
		Cause:   cause,
	}
}

// --- Resolution Error Constructors ---

// NotRegistered creates an AppError for a capability with no registration.
func NotRegistered(capability string) *AppError {
	return &AppError{
		Code:    ErrCodeNotRegistered,
		Message: fmt.Sprintf("no registration for %s", capability),
		Details: map[string]any{"capability": capability},
	}
}

// ScopeRequired creates an AppError for a scoped registration resolved
// without an active scope.
func ScopeRequired(capability string) *AppError {
	return &AppError{
		Code:    ErrCodeScopeRequired,
		Message: fmt.Sprintf("%s has a scoped lifetime and must be resolved through a scope", capability),
		Details: map[string]any{"capability": capability},
	}
}

// WrongType creates an AppError for a resolved instance of an unexpected type.
func WrongType(capability, got, want string) *AppError {
	return &AppError{
		Code:    ErrCodeWrongType,
		Message: fmt.Sprintf("%s resolved to %s, expected %s", capability, got, want),
		Details: map[string]any{"capability": capability, "got": got, "want": want},
	}
}

// --- Helpers ---

// IsCode checks if an error is an AppError with the given code.
func IsCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// AsAppError extracts an AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	for err != nil {
		if appErr, ok := err.(*AppError); ok {
			return appErr, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = u.Unwrap()
	}
	return nil, false
}
