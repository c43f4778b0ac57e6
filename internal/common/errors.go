package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Stable error codes surfaced by the OCR pipeline. SCHEMA_VIOLATION is kept
// distinct from extraction and I/O failures: post-processing is expected to
// make validation pass, so hitting it indicates a logic bug or an
// unrecoverable extraction.
const (
	CodeFileInvalid          = "FILE_INVALID"
	CodeUnsupportedMediaType = "UNSUPPORTED_MEDIA_TYPE"
	CodeMissingField         = "MISSING_FIELD"
	CodeSchemaViolation      = "SCHEMA_VIOLATION"
	CodeInternal             = "INTERNAL_ERROR"
)

func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsCode reports whether err is an *AppError carrying the given code.
func IsCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func UnauthenticatedError(message string) error {
	return status.Error(codes.Unauthenticated, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}

// ToStatusError maps an *AppError onto the gRPC status space.
func ToStatusError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return InternalError(err.Error())
	}
	switch appErr.Code {
	case CodeFileInvalid, CodeUnsupportedMediaType, CodeMissingField:
		return status.Error(codes.InvalidArgument, appErr.Error())
	case CodeSchemaViolation:
		return status.Error(codes.FailedPrecondition, appErr.Error())
	default:
		return status.Error(codes.Internal, appErr.Error())
	}
}
