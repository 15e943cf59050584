// Package errors provides coded errors for cardmaker.
//
// Rendering distinguishes failures that degrade to a fallback (assets, fonts,
// preview) from the one failure that ends the run (writing the output file).
// The codes make that split visible to callers:
//
//	err := errors.Wrap(errors.ErrCodeWrite, cause, "save %s", path)
//	if errors.Is(err, errors.ErrCodeWrite) {
//	    // fatal
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// Optional asset (avatar, badge) could not be opened or decoded.
	ErrCodeAssetLoad Code = "ASSET_LOAD"
	// Font file missing or unparsable.
	ErrCodeFontLoad Code = "FONT_LOAD"
	// Output image could not be encoded or written.
	ErrCodeWrite Code = "WRITE"
	// Config file could not be read or decoded.
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	// Framebuffer preview could not be shown.
	ErrCodeFramebuffer Code = "FRAMEBUFFER"
	// QR payload could not be encoded.
	ErrCodeQRCode Code = "QRCODE"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error wrapping cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether any *Error in err's chain has the given code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the code of the first *Error in err's chain.
// Returns empty string if there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix for *Error values
// and err.Error() otherwise.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
