package service

import (
	"errors"
	"testing"
	"time"

	"bigfive-api/internal/domain"
)

func TestJWTGenerateAndParse(t *testing.T) {
	svc := NewJWTService("secret", time.Minute, time.Hour)
	user := domain.User{ID: "u1", Email: "u1@example.com", DisplayName: "Uno"}

	pair, err := svc.GeneratePair(user)
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected non-empty tokens")
	}

	claims, err := svc.ParseAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "u1@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	// Un refresh token no sirve como access token.
	if _, err := svc.ParseAccessToken(pair.RefreshToken); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for refresh-as-access, got %v", err)
	}
}

func TestJWTRefreshRotatesToken(t *testing.T) {
	svc := NewJWTService("secret", time.Minute, time.Hour)
	user := domain.User{ID: "u1", Email: "u1@example.com"}

	pair, err := svc.GeneratePair(user)
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	rotated, err := svc.RefreshPair(pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh pair: %v", err)
	}
	if rotated.AccessToken == "" {
		t.Fatalf("expected new access token")
	}

	// El refresh token usado queda revocado.
	if _, err := svc.RefreshPair(pair.RefreshToken); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for reused refresh, got %v", err)
	}
}

func TestJWTRejectsWithoutSecret(t *testing.T) {
	svc := NewJWTService("", time.Minute, time.Hour)
	if _, err := svc.GeneratePair(domain.User{ID: "u1"}); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid without secret, got %v", err)
	}
}

func TestJWTExpiredToken(t *testing.T) {
	svc := NewJWTService("secret", time.Minute, time.Hour)
	user := domain.User{ID: "u1"}

	token, err := svc.signToken(user, time.Now().UTC().Add(-2*time.Hour), time.Minute, "access")
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := svc.ParseAccessToken(token); !errors.Is(err, ErrJWTExpired) {
		t.Fatalf("expected ErrJWTExpired, got %v", err)
	}
}
