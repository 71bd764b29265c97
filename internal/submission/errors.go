package submission

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
)

// ErrorKind represents the category of a failed submission
type ErrorKind int

const (
	// ErrNetwork indicates the request never produced a response (offline, DNS, refused, cancelled)
	ErrNetwork ErrorKind = iota
	// ErrRejected indicates the backend answered with a non-2xx status
	ErrRejected
	// ErrMalformed indicates a 2xx answer whose body could not be understood
	ErrMalformed
)

// NetworkErrorSubtype provides more specific network error classification.
// It is recorded for diagnostics only; visitors always see the generic text.
type NetworkErrorSubtype int

const (
	NetworkErrorGeneral NetworkErrorSubtype = iota
	NetworkErrorTimeout
	NetworkErrorConnectionRefused
	NetworkErrorDNS
	NetworkErrorHostUnreachable
	NetworkErrorNetworkUnreachable
	NetworkErrorCancelled
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrNetwork:
		return "Network Error"
	case ErrRejected:
		return "Rejected"
	case ErrMalformed:
		return "Malformed Response"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// String returns a short name for the subtype
func (s NetworkErrorSubtype) String() string {
	switch s {
	case NetworkErrorTimeout:
		return "timeout"
	case NetworkErrorConnectionRefused:
		return "connection_refused"
	case NetworkErrorDNS:
		return "dns"
	case NetworkErrorHostUnreachable:
		return "host_unreachable"
	case NetworkErrorNetworkUnreachable:
		return "network_unreachable"
	case NetworkErrorCancelled:
		return "cancelled"
	default:
		return "general"
	}
}

// Error represents a submission that did not reach an Accepted or Declined outcome
type Error struct {
	Kind           ErrorKind           // Category of error
	Message        string              // Developer-facing description, or the server detail for ErrRejected
	Detail         string              // Server-provided detail text (ErrRejected only, may be empty)
	StatusCode     int                 // HTTP status code (if a response arrived)
	Err            error               // Underlying error (if any)
	NetworkSubtype NetworkErrorSubtype // More specific network error type
	RequestID      string              // X-Request-ID of the failed call
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError analyzes a transport error and returns a classified *Error
func ClassifyNetworkError(err error) *Error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return &Error{
			Kind:           ErrNetwork,
			Message:        "Request cancelled",
			Err:            err,
			NetworkSubtype: NetworkErrorCancelled,
		}
	}

	if os.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return &Error{
			Kind:           ErrNetwork,
			Message:        "Request timed out",
			Err:            err,
			NetworkSubtype: NetworkErrorTimeout,
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &Error{
			Kind:           ErrNetwork,
			Message:        fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:            err,
			NetworkSubtype: NetworkErrorDNS,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if errors.Is(opErr.Err, syscall.ECONNREFUSED) {
			return &Error{
				Kind:           ErrNetwork,
				Message:        "Backend refused connection",
				Err:            err,
				NetworkSubtype: NetworkErrorConnectionRefused,
			}
		}
		if errors.Is(opErr.Err, syscall.EHOSTUNREACH) {
			return &Error{
				Kind:           ErrNetwork,
				Message:        "Host unreachable",
				Err:            err,
				NetworkSubtype: NetworkErrorHostUnreachable,
			}
		}
		if errors.Is(opErr.Err, syscall.ENETUNREACH) {
			return &Error{
				Kind:           ErrNetwork,
				Message:        "Network unreachable",
				Err:            err,
				NetworkSubtype: NetworkErrorNetworkUnreachable,
			}
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil && urlErr.Err != err {
		// Recursively classify the underlying error
		return ClassifyNetworkError(urlErr.Err)
	}

	return &Error{
		Kind:           ErrNetwork,
		Message:        "Network error occurred",
		Err:            err,
		NetworkSubtype: NetworkErrorGeneral,
	}
}

// NewNetworkError creates a network-level error with automatic classification
func NewNetworkError(message string, err error) *Error {
	classified := ClassifyNetworkError(err)
	if classified != nil {
		classified.Message = message
		return classified
	}
	return &Error{
		Kind:    ErrNetwork,
		Message: message,
		Err:     err,
	}
}

// NewRejectedError creates an error for a non-2xx response.
// detail is the server's explanation and may be empty.
func NewRejectedError(statusCode int, detail string) *Error {
	message := detail
	if message == "" {
		message = fmt.Sprintf("unexpected status code: %d", statusCode)
	}
	return &Error{
		Kind:       ErrRejected,
		Message:    message,
		Detail:     detail,
		StatusCode: statusCode,
	}
}

// NewMalformedError creates an error for a 2xx response that could not be decoded
func NewMalformedError(statusCode int, message string, err error) *Error {
	return &Error{
		Kind:       ErrMalformed,
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
	}
}

// IsNetworkError checks if an error is a transport failure
func IsNetworkError(err error) bool {
	var subErr *Error
	return errors.As(err, &subErr) && subErr.Kind == ErrNetwork
}

// IsRejected checks if an error is a non-2xx answer from the backend
func IsRejected(err error) bool {
	var subErr *Error
	return errors.As(err, &subErr) && subErr.Kind == ErrRejected
}

// IsMalformed checks if an error is an undecodable success response
func IsMalformed(err error) bool {
	var subErr *Error
	return errors.As(err, &subErr) && subErr.Kind == ErrMalformed
}

// GenericMessage returns the text shown when a submission fails without a usable explanation
func GenericMessage(contact string) string {
	if contact == "" {
		return "Something went wrong. Please try again."
	}
	return fmt.Sprintf("Something went wrong. Please try again or contact us at %s.", contact)
}

// UserMessage returns the visitor-facing text for a failed submission.
// A rejection carrying a server detail shows that detail verbatim; everything
// else falls back to GenericMessage.
func UserMessage(err error, contact string) string {
	var subErr *Error
	if errors.As(err, &subErr) && subErr.Kind == ErrRejected && subErr.Detail != "" {
		return subErr.Detail
	}
	return GenericMessage(contact)
}

// GetShortErrorMessage returns a concise diagnostic description, e.g. for log lines and --verbose output
func GetShortErrorMessage(err error) string {
	var subErr *Error
	if !errors.As(err, &subErr) {
		return err.Error()
	}

	switch subErr.Kind {
	case ErrNetwork:
		switch subErr.NetworkSubtype {
		case NetworkErrorTimeout:
			return "Backend not responding (timeout)"
		case NetworkErrorConnectionRefused:
			return "Backend refused connection"
		case NetworkErrorDNS:
			return "Cannot resolve backend hostname"
		case NetworkErrorHostUnreachable:
			return "Backend unreachable - check network connection"
		case NetworkErrorNetworkUnreachable:
			return "Network unreachable - check internet connection"
		case NetworkErrorCancelled:
			return "Submission cancelled"
		default:
			return "Network error - check connection"
		}
	case ErrRejected:
		return fmt.Sprintf("Backend rejected submission (HTTP %d)", subErr.StatusCode)
	case ErrMalformed:
		return "Failed to parse backend response"
	default:
		return subErr.Message
	}
}
