package domain

import "errors"

const translationErrorPrefix = "An error occurred when translating: "

// TranslationError is the closed set of reasons a translation request can fail.
// The unexported marker method keeps the set to the four variants below; branch
// on it with a type switch or errors.Is against the Err* values.
type TranslationError interface {
	error
	// Label is the short kind name embedded in the rendered message.
	Label() string
	translationError()
}

// ServiceNotAvailable: the translation backend could not be reached.
type ServiceNotAvailable struct{}

// ClientError: the backend rejected the request (HTTP 4xx).
type ClientError struct{}

// ServerError: the backend failed to process the request (HTTP 5xx or an unreadable reply).
type ServerError struct{}

// UnknownError: anything the client could not classify.
type UnknownError struct{}

// ServiceNotAvailable renders as "ServiceUnavailable"; clients match on that label.
func (ServiceNotAvailable) Label() string { return "ServiceUnavailable" }
func (ClientError) Label() string         { return "ClientError" }
func (ServerError) Label() string         { return "ServerError" }
func (UnknownError) Label() string        { return "UnknownError" }

func (e ServiceNotAvailable) Error() string { return translationErrorPrefix + e.Label() }
func (e ClientError) Error() string         { return translationErrorPrefix + e.Label() }
func (e ServerError) Error() string         { return translationErrorPrefix + e.Label() }
func (e UnknownError) Error() string        { return translationErrorPrefix + e.Label() }

func (ServiceNotAvailable) translationError() {}
func (ClientError) translationError()         {}
func (ServerError) translationError()         {}
func (UnknownError) translationError()        {}

// Sentinel values for errors.Is. The variants carry no fields, so any two values
// of the same variant compare equal.
var (
	ErrServiceNotAvailable TranslationError = ServiceNotAvailable{}
	ErrClientError         TranslationError = ClientError{}
	ErrServerError         TranslationError = ServerError{}
	ErrUnknownError        TranslationError = UnknownError{}
)

// TranslationErrors lists every variant in declaration order.
func TranslationErrors() []TranslationError {
	return []TranslationError{ErrServiceNotAvailable, ErrClientError, ErrServerError, ErrUnknownError}
}

// AsTranslationError extracts the translation failure kind from err's chain.
func AsTranslationError(err error) (TranslationError, bool) {
	var te TranslationError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
