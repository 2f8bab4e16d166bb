package common

import (
	"errors"
	"net/http"
)

// ErrorResponse is the JSON error envelope returned to callers.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"` // only filled in debug mode
}

// CustomError carries a caller-visible code, message and HTTP status.
type CustomError struct {
	Code    string
	Message string
	Err     error
	Status  int
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// Response renders the error envelope. Details are included only when debug is set.
func (e *CustomError) Response(debug bool) ErrorResponse {
	resp := ErrorResponse{
		Code:    e.Code,
		Message: e.Message,
	}
	if debug && e.Err != nil {
		resp.Details = e.Err.Error()
	}
	return resp
}

// NewError creates a CustomError.
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// NewInvalidArgument reports missing or malformed input.
func NewInvalidArgument(message string, err error) *CustomError {
	return NewError(ErrCodeInvalidArgument, message, http.StatusBadRequest, err)
}

// NewInternal reports an unexpected failure that no fallback handled.
func NewInternal(message string, err error) *CustomError {
	return NewError(ErrCodeInternal, message, http.StatusInternalServerError, err)
}

// AsCustomError returns err as a CustomError, wrapping unknown errors as internal.
func AsCustomError(err error) *CustomError {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce
	}
	return NewInternal(ErrInternal.Message, err)
}

const (
	// 4xx
	ErrCodeInvalidArgument = "INVALID_ARGUMENT"  // 400
	ErrCodeUnauthenticated = "UNAUTHENTICATED"   // 401
	ErrCodeNotFound        = "NOT_FOUND"         // 404
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE" // 413
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS" // 429

	// 5xx
	ErrCodeInternal       = "INTERNAL"        // 500
	ErrCodeGatewayTimeout = "GATEWAY_TIMEOUT" // 504
)

var (
	ErrUnauthenticated = NewError(ErrCodeUnauthenticated, "Kullanıcı girişi gerekli", http.StatusUnauthorized, nil)
	ErrInvalidRequest  = NewError(ErrCodeInvalidArgument, "Geçersiz istek", http.StatusBadRequest, nil)
	ErrNotFound        = NewError(ErrCodeNotFound, "Kaynak bulunamadı", http.StatusNotFound, nil)
	ErrRequestTooLarge = NewError(ErrCodeRequestTooLarge, "İstek gövdesi çok büyük", http.StatusRequestEntityTooLarge, nil)
	ErrTooManyRequests = NewError(ErrCodeTooManyRequests, "Çok fazla istek", http.StatusTooManyRequests, nil)
	ErrInternal        = NewError(ErrCodeInternal, "Sunucu hatası", http.StatusInternalServerError, nil)
	ErrGatewayTimeout  = NewError(ErrCodeGatewayTimeout, "İstek zaman aşımına uğradı", http.StatusGatewayTimeout, nil)
)
