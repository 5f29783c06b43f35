package binder

import "errors"

var (
	// ErrBinderNotApplicable is returned when a binder does not handle the
	// request's content type. Callers chaining binders skip to the next one.
	ErrBinderNotApplicable = errors.New("binder not applicable to this request")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidTarget        = errors.New("bind target must be a non-nil pointer to struct")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrFailedToParseSignals = errors.New("failed to parse datastar signals")
)
