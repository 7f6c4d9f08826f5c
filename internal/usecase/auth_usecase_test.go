package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-match/internal/pkg/jwt"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (*Auth, repository.User) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	usr := repository.User{
		ID:           uuid.New(),
		Email:        "dana@example.com",
		PasswordHash: string(hash),
		Role:         "candidate",
	}
	users := &mockUserRepo{
		byEmail: map[string]repository.User{usr.Email: usr},
		byID:    map[uuid.UUID]repository.User{usr.ID: usr},
	}
	svc := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	return NewAuthUsecase(users, svc), usr
}

func TestLoginSuccess(t *testing.T) {
	auth, usr := newAuthFixture(t)

	got, access, refresh, err := auth.Login(context.Background(), usr.Email, "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.ID != usr.ID {
		t.Errorf("user ID = %s, want %s", got.ID, usr.ID)
	}
	if access == "" || refresh == "" {
		t.Error("expected both tokens to be issued")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	auth, usr := newAuthFixture(t)

	if _, _, _, err := auth.Login(context.Background(), usr.Email, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	auth, _ := newAuthFixture(t)

	if _, _, _, err := auth.Login(context.Background(), "nobody@example.com", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	auth, usr := newAuthFixture(t)

	_, access, _, err := auth.Login(context.Background(), usr.Email, "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, _, err := auth.Refresh(context.Background(), access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("err = %v, want ErrInvalidRefreshToken", err)
	}
}

func TestRefreshIssuesNewPair(t *testing.T) {
	auth, usr := newAuthFixture(t)

	_, _, refresh, err := auth.Login(context.Background(), usr.Email, "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	access, newRefresh, err := auth.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if access == "" || newRefresh == "" {
		t.Error("expected a fresh token pair")
	}
}
