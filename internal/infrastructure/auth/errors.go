package auth

import "net/http"

// Kind classifies why a credential was rejected. Every rejection is
// terminal for the request; nothing is retried here.
type Kind string

const (
	KindMissingCredential       Kind = "missing_credential"
	KindMalformedCredential     Kind = "malformed_credential"
	KindInvalidSignature        Kind = "invalid_signature"
	KindExpired                 Kind = "expired"
	KindMissingPermissionsClaim Kind = "missing_permissions_claim"
	KindInsufficientScope       Kind = "insufficient_scope"
)

type Error struct {
	Kind Kind
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.err }

// StatusCode maps the failure kind onto the HTTP layer: credential
// problems are 401, permission problems are 403.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindMissingPermissionsClaim, KindInsufficientScope:
		return http.StatusForbidden
	default:
		return http.StatusUnauthorized
	}
}

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, err: err}
}
