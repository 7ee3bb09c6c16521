package auth

import "errors"

// Verification and token failures. Handlers map these to HTTP responses;
// ErrUnknownIdentity and ErrInvalidSecret must serialize identically so a
// caller cannot enumerate accounts.
var (
	ErrMissingCredentials = errors.New("dni and password are required")
	ErrUnknownIdentity    = errors.New("no account matches the given dni")
	ErrInvalidSecret      = errors.New("password does not match")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrStoreUnavailable   = errors.New("credential store unavailable")
	ErrUnauthenticated    = errors.New("missing or invalid token")
)
