package slipo

import "fmt"

// Error codes carried by [Error]. Every failure surfaced by this package,
// whatever its origin, is reported as an *Error with one of these codes.
const (
	// CodeInvalidConfig is returned for construction-time configuration
	// errors, before any network call is attempted.
	CodeInvalidConfig = "INVALID_CONFIG"

	// CodeInvalidInput is returned when a toolkit input descriptor is
	// missing, malformed, or of an unsupported shape.
	CodeInvalidInput = "INVALID_INPUT"

	// CodeTransport is returned when the HTTP request itself fails
	// (connection refused, context cancelled, timeout).
	CodeTransport = "TRANSPORT"

	// CodeAPI is returned when the server reports a failure, either via a
	// non-OK status or a {success: false} response envelope. The message
	// is taken from the envelope.
	CodeAPI = "API"

	// CodeDecode is returned when a request body cannot be encoded or a
	// response envelope cannot be parsed.
	CodeDecode = "DECODE"

	// CodeIO is returned when a local file operation fails, such as
	// writing a downloaded file or reading a file for upload.
	CodeIO = "IO"
)

// Error represents a SLIPO API client error.
//
// All failure classes surface as this single type: transport failures,
// non-OK HTTP statuses, {success: false} envelopes, local I/O failures,
// and configuration or input errors.
//
//	result, err := client.CatalogQuery(ctx, opts)
//	if err != nil {
//	    var apiErr *slipo.Error
//	    if errors.As(err, &apiErr) {
//	        log.Printf("code=%s status=%d: %s", apiErr.Code, apiErr.Status, apiErr.Message)
//	    }
//	}
type Error struct {
	// Code classifies the failure; one of the Code* constants.
	Code string

	// Message is the human-readable description. For API failures it is
	// the message reported by the server envelope.
	Message string

	// Status is the HTTP status code, when a response was received.
	Status int

	// Cause is the underlying error, when one exists.
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("slipo: %s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("slipo: %s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(code, message string, status int, cause error) *Error {
	return &Error{Code: code, Message: message, Status: status, Cause: cause}
}
