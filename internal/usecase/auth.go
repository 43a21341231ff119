package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/staybook/internal/domain/errors"
	"github.com/polkiloo/staybook/internal/domain/model"
	"github.com/polkiloo/staybook/internal/domain/repository"
	pkgAuth "github.com/polkiloo/staybook/internal/pkg/auth"
)

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register stores a new user under name and returns it with a session token.
// Names are not unique.
func (u *AuthUseCase) Register(ctx context.Context, name, secret string) (*model.User, string, error) {
	digest, err := u.hasher.Hash(secret)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, name, digest)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Login returns the first user registered under name whose digest matches secret.
func (u *AuthUseCase) Login(ctx context.Context, name, secret string) (*model.User, string, error) {
	candidates, err := u.users.ListByName(ctx, name)
	if err != nil {
		return nil, "", err
	}

	for i := range candidates {
		if u.hasher.Compare(candidates[i].SecretDigest, secret) != nil {
			continue
		}
		usr := candidates[i]
		token, err := u.tokens.IssueToken(usr.ID)
		if err != nil {
			return nil, "", err
		}
		return &usr, token, nil
	}

	return nil, "", domainErrors.ErrLoginFailed
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
