package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/mjpark-dev/boardapp/internal/common"
	"github.com/mjpark-dev/boardapp/internal/server/auth"
)

// Service orchestrates sign-up and sign-in over the account repository,
// the password hasher and the token issuer.
type Service struct {
	repo   Repository
	hasher auth.PasswordHasher
	tokens *auth.JWTManager
}

func NewService(repo Repository, hasher auth.PasswordHasher, tokens *auth.JWTManager) *Service {
	return &Service{repo: repo, hasher: hasher, tokens: tokens}
}

// Register hashes the password and creates the account. A taken username
// yields common.ErrorAlreadyExists.
func (s *Service) Register(ctx context.Context, username, password string) (*User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		UserName:     username,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and returns a signed session token.
// Unknown usernames burn a dummy verification so the response time does
// not reveal account existence; wrong passwords and unknown usernames are
// both common.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", s.hasher.DummyVerify(password)
		}
		return "", common.ErrorInternal
	}

	if err := s.hasher.Verify(password, user.PasswordHash); err != nil {
		// Includes corrupt stored records: those are an authentication
		// failure, not a server crash.
		return "", common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// ResolvePrincipal maps a verified token subject back to a live account.
// The extra lookup exists because a token can outlive its account: a
// subject with no backing user yields common.ErrUnknownPrincipal.
func (s *Service) ResolvePrincipal(ctx context.Context, userID string) (*Principal, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnknownPrincipal
		}
		return nil, common.ErrorInternal
	}

	return user.AsPrincipal(), nil
}
