// Package users implements account storage and the authentication service:
// registration, credential login and principal resolution.
package users

import "time"

// User is the persisted identity record. PasswordHash is the opaque bcrypt
// record produced by auth.PasswordHasher; the plaintext password is never
// stored or logged.
type User struct {
	ID           string
	UserName     string
	PasswordHash string
	CreatedAt    time.Time
}

// Principal is the authenticated identity attached to a request after
// token validation. It is a read-only projection of User scoped to the
// request lifetime and is never persisted.
type Principal struct {
	ID       string
	UserName string
}

// AsPrincipal projects the user onto the request-scoped identity.
func (u *User) AsPrincipal() *Principal {
	return &Principal{ID: u.ID, UserName: u.UserName}
}
