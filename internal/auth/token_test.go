package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/skyops/fuelrecon/internal/model"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims accessClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func TestParseValidToken(t *testing.T) {
	parser := NewParser(testSecret)
	userID := uuid.New()

	raw := signToken(t, testSecret, accessClaims{
		Name: "Thandi M",
		Role: "ANALYST",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	principal, err := parser.Parse(raw)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if principal.UserID != userID {
		t.Errorf("UserID = %s, want %s", principal.UserID, userID)
	}
	if principal.Name != "Thandi M" {
		t.Errorf("Name = %q, want %q", principal.Name, "Thandi M")
	}
	if principal.Role != model.RoleAnalyst {
		t.Errorf("Role = %s, want %s", principal.Role, model.RoleAnalyst)
	}
}

func TestParseWrongSecret(t *testing.T) {
	parser := NewParser(testSecret)

	raw := signToken(t, "other-secret", accessClaims{
		Role: "ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	if _, err := parser.Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Parse error = %v, want ErrInvalidToken", err)
	}
}

func TestParseExpiredToken(t *testing.T) {
	parser := NewParser(testSecret)

	raw := signToken(t, testSecret, accessClaims{
		Role: "ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	if _, err := parser.Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Parse error = %v, want ErrInvalidToken", err)
	}
}

func TestParseUnknownRole(t *testing.T) {
	parser := NewParser(testSecret)

	raw := signToken(t, testSecret, accessClaims{
		Role: "SUPERUSER",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	if _, err := parser.Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Parse error = %v, want ErrInvalidToken", err)
	}
}

func TestParseBadSubject(t *testing.T) {
	parser := NewParser(testSecret)

	raw := signToken(t, testSecret, accessClaims{
		Role: "VIEWER",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-uuid",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	if _, err := parser.Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Parse error = %v, want ErrInvalidToken", err)
	}
}
