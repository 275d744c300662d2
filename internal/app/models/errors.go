package models

import "errors"

// Errors surfaced by the authentication collaborator. The UI collapses all of
// them into a single invalid-credentials notice.
var (
	ErrUnauthenticated   = errors.New("authentication required or invalid credentials")
	ErrMalformedResponse = errors.New("malformed authentication response")
	ErrUpstream          = errors.New("authentication service unavailable")
)
