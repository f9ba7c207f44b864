package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewHMACService("access", "refresh", time.Hour, 24*time.Hour)
	id := Identity{UserID: uuid.New(), Email: "a@example.com", Role: "recruiter", Status: "approved"}

	token, err := svc.GenerateAccessToken(id)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != id.UserID || claims.Email != id.Email || claims.Role != id.Role {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if svc.IsRefreshToken(claims) {
		t.Fatalf("access token classified as refresh")
	}
}

func TestRefreshTokenIsDetected(t *testing.T) {
	svc := NewHMACService("access", "refresh", time.Hour, 24*time.Hour)

	token, err := svc.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !svc.IsRefreshToken(claims) {
		t.Fatalf("refresh token not detected")
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewHMACService("access-a", "refresh-a", time.Hour, 24*time.Hour)
	verifier := NewHMACService("access-b", "refresh-b", time.Hour, 24*time.Hour)

	token, err := issuer.GenerateAccessToken(Identity{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := verifier.ValidateToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewHMACService("access", "refresh", time.Hour, 24*time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.GenerateAccessToken(Identity{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	svc.now = time.Now

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}
