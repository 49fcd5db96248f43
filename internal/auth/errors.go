package auth

import (
	goerrors "github.com/goliatone/go-errors"
)

// Text codes let transports map domain errors to responses without
// matching on message strings.
const (
	TextCodeDuplicateEmail     = "DUPLICATE_EMAIL"
	TextCodeInvalidCredentials = "INVALID_CREDENTIALS"
	TextCodeMissingAuth        = "MISSING_AUTH"
	TextCodeTokenInvalid       = "TOKEN_INVALID"
	TextCodeAccountNotFound    = "ACCOUNT_NOT_FOUND"
)

// ErrDuplicateEmail is returned when a registration reuses an existing email.
var ErrDuplicateEmail = goerrors.New("Email already registered", goerrors.CategoryConflict).
	WithCode(goerrors.CodeConflict).
	WithTextCode(TextCodeDuplicateEmail)

// ErrInvalidCredentials covers both unknown email and wrong password.
// The single message is deliberate, we never reveal which one it was.
var ErrInvalidCredentials = goerrors.New("Invalid email or password", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode(TextCodeInvalidCredentials)

// ErrMissingAuth is returned when the Authorization header is absent or
// uses the wrong scheme.
var ErrMissingAuth = goerrors.New("Missing or invalid authorization header", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode(TextCodeMissingAuth)

// ErrTokenInvalid collapses every token failure mode: bad signature,
// malformed structure, wrong algorithm, and expiry.
var ErrTokenInvalid = goerrors.New("Invalid or expired token", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode(TextCodeTokenInvalid)

// ErrAccountNotFound is returned when a token resolves to an account that
// no longer exists.
var ErrAccountNotFound = goerrors.New("User not found", goerrors.CategoryNotFound).
	WithCode(goerrors.CodeNotFound).
	WithTextCode(TextCodeAccountNotFound)

// ErrEmptyPassword rejects hashing an empty string.
var ErrEmptyPassword = goerrors.New("password must not be empty", goerrors.CategoryBadInput)

// ErrMismatchedHashAndPassword is the normalized bcrypt mismatch error.
var ErrMismatchedHashAndPassword = goerrors.New("password does not match", goerrors.CategoryAuth)

func hasTextCode(err error, code string) bool {
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return false
	}
	return rich.TextCode == code
}

// IsDuplicateEmail will check for duplicate registration errors.
func IsDuplicateEmail(err error) bool {
	return hasTextCode(err, TextCodeDuplicateEmail)
}

// IsInvalidCredentials will check for failed login errors.
func IsInvalidCredentials(err error) bool {
	return hasTextCode(err, TextCodeInvalidCredentials)
}

// IsTokenInvalid will check for rejected token errors.
func IsTokenInvalid(err error) bool {
	return hasTextCode(err, TextCodeTokenInvalid)
}

// IsAccountNotFound will check for orphaned identity errors.
func IsAccountNotFound(err error) bool {
	return hasTextCode(err, TextCodeAccountNotFound)
}
