package steam

import (
	"errors"
	"fmt"
)

// Kind identifies which stage of a call produced an Error.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindTransport
	KindDecode
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	case KindNotFound:
		return "not_found"
	}
	return "unknown"
}

// Sentinels for use with errors.Is. Every *Error matches exactly one of these.
var (
	ErrValidation = errors.New("validation failed")
	ErrTransport  = errors.New("request failed")
	ErrDecode     = errors.New("decode failed")
	ErrNotFound   = errors.New("not found")
)

const (
	ERR_MISSING_API_KEY          = "API key not provided. Please provide an API key."
	ERR_INVALID_STEAM_ID         = "Invalid Steam ID was provided."
	ERR_TOP_COUNT_RANGE          = "Count must be between 1 and 10."
	ERR_RECENT_COUNT_RANGE       = "Count must be at least 1."
	ERR_INVALID_APP_ID           = "Invalid app ID was provided."
	ERR_REQUEST_FAILED           = "An error occurred while making the request"
	ERR_MALFORMED_RESPONSE       = "Steam response could not be decoded."
	ERR_UNEXPECTED_TEXT          = "Steam responded with a non-JSON body."
	ERR_USER_NOT_FOUND           = "No Steam user was found for that Steam ID."
	ERR_STORE_ITEM_NOT_FOUND     = "No store item was found for that app ID."
	ERR_STORE_RESPONSE_MALFORMED = "Steam store response was malformed."
)

// Error is returned by every Client method. Message is always human readable
// and StatusCode is only set for transport errors that got a response.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	var errs []error
	if sentinel := e.sentinel(); sentinel != nil {
		errs = append(errs, sentinel)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindValidation:
		return ErrValidation
	case KindTransport:
		return ErrTransport
	case KindDecode:
		return ErrDecode
	case KindNotFound:
		return ErrNotFound
	}
	return nil
}

func validationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func transportError(statusCode int, message string, cause error) *Error {
	return &Error{Kind: KindTransport, StatusCode: statusCode, Message: message, Err: cause}
}

func decodeError(message string, cause error) *Error {
	return &Error{Kind: KindDecode, Message: message, Err: cause}
}

func notFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// KindOf reports the Kind of err, or 0 when err did not come from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
