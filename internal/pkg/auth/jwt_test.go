package auth

import (
	"testing"
	"time"

	"github.com/internhub/internhub/internal/app/models"
)

func testService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := testService(time.Hour)
	user := &models.User{ID: 7, Email: "a@b.com", Role: models.RoleMentor}

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair returned error: %v", err)
	}
	if accessToken == "" || refreshToken == "" {
		t.Fatal("expected non-empty tokens")
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}
	if refreshExpiresIn != 86400 {
		t.Errorf("refreshExpiresIn = %d, want 86400", refreshExpiresIn)
	}

	claims, err := svc.ValidateToken(accessToken)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
	if claims.Email != "a@b.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Role != string(models.RoleMentor) {
		t.Errorf("Role = %q, want mentor", claims.Role)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testService(-time.Minute)
	accessToken, _, _, _, err := svc.GenerateTokenPair(&models.User{ID: 1, Email: "a@b.com", Role: models.RoleStudent})
	if err != nil {
		t.Fatalf("GenerateTokenPair returned error: %v", err)
	}

	if _, err := svc.ValidateToken(accessToken); err != ErrExpiredToken {
		t.Errorf("err = %v, want ErrExpiredToken", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc123")
	if err != nil {
		t.Fatalf("ExtractBearerToken returned error: %v", err)
	}
	if token != "abc123" {
		t.Errorf("token = %q, want abc123", token)
	}

	for _, header := range []string{"", "abc123", "Basic abc123"} {
		if _, err := ExtractBearerToken(header); err != ErrInvalidFormat {
			t.Errorf("header %q: err = %v, want ErrInvalidFormat", header, err)
		}
	}
}
