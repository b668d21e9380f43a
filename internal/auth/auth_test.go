package auth

import (
	"testing"
	"time"

	"becomebetter/internal/models"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash == "correct horse battery staple" {
		t.Fatal("password stored in plaintext")
	}
	if !CheckPassword(hash, "correct horse battery staple") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong password") {
		t.Error("expected mismatched password to fail")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{ID: "coach@club.org", Role: models.RoleCoach}

	token, err := GenerateToken(user, "secret", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := VerifyToken(token, "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != "coach@club.org" || claims.Role != models.RoleCoach {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestVerifyTokenRejectsBadSecret(t *testing.T) {
	user := &models.User{ID: "coach@club.org", Role: models.RoleCoach}

	token, err := GenerateToken(user, "secret", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := VerifyToken(token, "other-secret"); err != InvalidTokenError {
		t.Errorf("expected InvalidTokenError, got %v", err)
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	user := &models.User{ID: "coach@club.org", Role: models.RoleCoach}

	token, err := GenerateToken(user, "secret", -time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := VerifyToken(token, "secret"); err != InvalidTokenError {
		t.Errorf("expected InvalidTokenError, got %v", err)
	}
}
