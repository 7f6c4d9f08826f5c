package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestService() *HMACService {
	s := NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	s.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestAccessTokenRoundTrip(t *testing.T) {
	s := newTestService()
	userID := uuid.New()

	tok, err := s.GenerateAccessToken(userID, "ana@example.com", "recruiter")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := s.ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Role != "recruiter" {
		t.Errorf("Role = %q, want %q", claims.Role, "recruiter")
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, TokenTypeAccess)
	}
	if s.IsRefreshToken(claims) {
		t.Error("access token reported as refresh")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	s := newTestService()
	userID := uuid.New()

	tok, err := s.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	claims, err := s.ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if !s.IsRefreshToken(claims) {
		t.Error("refresh token not reported as refresh")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	s := newTestService()
	tok, err := s.GenerateAccessToken(uuid.New(), "", "candidate")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	s.now = func() time.Time { return time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC) }
	if _, err := s.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("err = %v, want ErrTokenExpired", err)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	s := newTestService()
	tok, err := s.GenerateAccessToken(uuid.New(), "", "candidate")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	other := NewHMACService("other-access", "other-refresh", time.Minute, time.Minute)
	other.now = s.now
	if _, err := other.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}
