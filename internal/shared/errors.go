// Package shared holds sentinel errors used on both sides of the
// daybox client/server split.
package shared

import "errors"

var (

	// common errors
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")
	ErrorValidation    = errors.New("validation error")

	// auth-specific errors
	ErrorInvalidToken            = errors.New("invalid token")
	ErrorInvalidAuthHeaderFormat = errors.New("invalid auth header format")
	ErrorInvalidLoginPassword    = errors.New("invalid login/password")

	// submission-specific errors (client)
	ErrorMissingCredential  = errors.New("missing access token")
	ErrorSubmissionInFlight = errors.New("submission already in flight")
	ErrorMissingAnchor      = errors.New("calendar has no start date")

	// guest-storage errors: every device-local persistence failure wraps
	// this sentinel so callers can surface it instead of crashing
	ErrorStorage = errors.New("local storage failure")

	// upload-specific errors
	ErrorUploadRequiresSession = errors.New("image upload requires a signed-in session")
)
