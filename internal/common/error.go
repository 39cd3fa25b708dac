// Package common defines shared constants and sentinel errors used across
// the client and server layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("username already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal  = errors.New("internal error")
	ErrorForbidden = errors.New("forbidden")

	// Credential errors.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingCredentials = errors.New("missing credentials")
	ErrCorruptCredential  = errors.New("corrupt credential record")

	// Token lifecycle errors.
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrTokenExpired     = errors.New("token expired")
	ErrUnknownPrincipal = errors.New("unknown principal")

	// Validation errors.
	ErrInvalidStatus = errors.New("invalid board status")
)
