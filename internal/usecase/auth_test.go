package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	domainErrors "github.com/polkiloo/staybook/internal/domain/errors"
	pkgAuth "github.com/polkiloo/staybook/internal/pkg/auth"
	testhelpers "github.com/polkiloo/staybook/internal/test"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(userID int64) (string, error) {
			return fmt.Sprintf("token-%d", userID), nil
		},
		ParseFn: func(token string) (int64, error) {
			var id int64
			if _, err := fmt.Sscanf(token, "token-%d", &id); err != nil {
				return 0, pkgAuth.ErrInvalidToken
			}
			return id, nil
		},
	}
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	user, token, err := uc.Register(ctx, "Alice", "pw1")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID != 1 {
		t.Fatalf("expected first user to get id 1, got %d", user.ID)
	}
	if token != "token-1" {
		t.Fatalf("unexpected token %q", token)
	}
	if len(repo.Users) != 1 || repo.Users[0].SecretDigest != "hash:pw1" {
		t.Fatalf("secret digest not stored: %+v", repo.Users)
	}
	if repo.Users[0].SecretDigest == "pw1" {
		t.Fatal("secret stored in clear text")
	}
}

func TestAuthUseCaseRegisterAllowsDuplicateNames(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	first, _, err := uc.Register(ctx, "bob", "one")
	if err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	second, _, err := uc.Register(ctx, "bob", "two")
	if err != nil {
		t.Fatalf("unexpected error on second register: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, got %d twice", first.ID)
	}

	usr, token, err := uc.Login(ctx, "bob", "two")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if usr.ID != second.ID || token != fmt.Sprintf("token-%d", second.ID) {
		t.Fatalf("expected second bob, got %+v / %q", usr, token)
	}
}

func TestAuthUseCaseLoginReturnsFirstMatch(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	first, _, _ := uc.Register(ctx, "carol", "same")
	if _, _, err := uc.Register(ctx, "carol", "same"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	usr, _, err := uc.Login(ctx, "carol", "same")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if usr.ID != first.ID {
		t.Fatalf("expected first registered user %d, got %d", first.ID, usr.ID)
	}
}

func TestAuthUseCaseLoginFailures(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "Alice", "pw1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := uc.Login(ctx, "Alice", "wrong"); !errors.Is(err, domainErrors.ErrLoginFailed) {
		t.Fatalf("expected login failed for wrong secret, got %v", err)
	}
	if _, _, err := uc.Login(ctx, "alice", "pw1"); !errors.Is(err, domainErrors.ErrLoginFailed) {
		t.Fatalf("expected names to be case sensitive, got %v", err)
	}
	if _, _, err := uc.Login(ctx, "absent", "pw1"); !errors.Is(err, domainErrors.ErrLoginFailed) {
		t.Fatalf("expected login failed for unknown name, got %v", err)
	}
}

func TestAuthUseCaseRegisterHasherError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{HashFn: func(string) (string, error) {
		return "", fmt.Errorf("hash error")
	}}, newStrategyStub())
	if _, _, err := uc.Register(context.Background(), "user", "pass"); err == nil {
		t.Fatal("expected hashing error")
	}
	if len(repo.Users) != 0 {
		t.Fatalf("expected no user stored, got %d", len(repo.Users))
	}
}

func TestAuthUseCaseRegisterRepositoryError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	repo.Err = fmt.Errorf("store down")
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())
	if _, _, err := uc.Register(context.Background(), "user", "pass"); err == nil {
		t.Fatal("expected repository error")
	}
}

func TestAuthUseCaseRegisterIssueTokenError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	strategy := testhelpers.StrategyStub{IssueFn: func(int64) (string, error) {
		return "", fmt.Errorf("cannot issue token")
	}}
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, strategy)
	if _, _, err := uc.Register(context.Background(), "user", "pass"); err == nil {
		t.Fatal("expected token issuing error")
	}
}

func TestAuthUseCaseLoginIssueTokenError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	calls := 0
	strategy := testhelpers.StrategyStub{
		IssueFn: func(int64) (string, error) {
			calls++
			if calls > 1 {
				return "", fmt.Errorf("issue error")
			}
			return "token", nil
		},
	}
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, strategy)
	if _, _, err := uc.Register(context.Background(), "user", "pass"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if _, _, err := uc.Login(context.Background(), "user", "pass"); err == nil || errors.Is(err, domainErrors.ErrLoginFailed) {
		t.Fatalf("expected issue error on login, got %v", err)
	}
}

func TestAuthUseCaseLoginRepositoryError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())
	if _, _, err := uc.Register(context.Background(), "user", "pass"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	repo.Err = fmt.Errorf("storage unavailable")
	if _, _, err := uc.Login(context.Background(), "user", "pass"); err == nil || err.Error() != "storage unavailable" {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())

	id, err := uc.ParseToken("token-42")
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}

	if _, err := uc.ParseToken("bad-token"); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}

	if _, err := uc.ParseToken(""); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestAuthUseCaseGetByID(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())
	user, _, err := uc.Register(context.Background(), "dave", "pwd")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	fetched, err := uc.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("get by id returned error: %v", err)
	}
	if fetched.Name != user.Name {
		t.Fatalf("expected name %q, got %q", user.Name, fetched.Name)
	}
	if _, err := uc.GetByID(context.Background(), 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAuthUseCaseWithBcrypt(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, pkgAuth.NewBcryptHasher(4), newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "Alice", "pw1"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if _, _, err := uc.Login(ctx, "Alice", "nope"); !errors.Is(err, domainErrors.ErrLoginFailed) {
		t.Fatalf("expected login failed, got %v", err)
	}
	if _, _, err := uc.Login(ctx, "Alice", "pw1"); err != nil {
		t.Fatalf("login returned error: %v", err)
	}
}

func TestAuthUseCaseWithBcryptLongSecret(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, pkgAuth.NewBcryptHasher(4), newStrategyStub())

	ctx := context.Background()
	secret := strings.Repeat("s", 73)
	user, _, err := uc.Register(ctx, "Alice", secret)
	if err != nil {
		t.Fatalf("register with %d byte secret returned error: %v", len(secret), err)
	}
	logged, _, err := uc.Login(ctx, "Alice", secret)
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if logged.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, logged.ID)
	}
	if _, _, err := uc.Login(ctx, "Alice", secret[:72]); !errors.Is(err, domainErrors.ErrLoginFailed) {
		t.Fatalf("expected login failed for truncated secret, got %v", err)
	}
}
