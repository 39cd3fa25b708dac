package users

import "context"

// Repository persists user accounts. Create must be atomic with respect to
// the username-uniqueness invariant: of two concurrent creates with the
// same username exactly one succeeds and the other gets
// common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByLogin(ctx context.Context, login string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}
