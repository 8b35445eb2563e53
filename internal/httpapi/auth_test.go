package httpapi

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"inv-go/internal/inv"
)

var authNow = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func signToken(t *testing.T, method jwt.SigningMethod, secret string, claims Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}
	return s
}

func claimsFor(sub, role string, exp time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: sub, ExpiresAt: jwt.NewNumericDate(exp)},
		Role:             role,
	}
}

func TestNewAuthenticator(t *testing.T) {
	if _, err := NewAuthenticator("  ", nil); err == nil {
		t.Error("NewAuthenticator() expected error for empty secret")
	}
	a, err := NewAuthenticator("secret", nil)
	if err != nil {
		t.Fatalf("NewAuthenticator() error = %v", err)
	}
	if a.now == nil {
		t.Error("now defaults to nil, want time.Now")
	}
}

func TestAuthenticator_Verify(t *testing.T) {
	a, err := NewAuthenticator("secret", func() time.Time { return authNow })
	if err != nil {
		t.Fatalf("NewAuthenticator() error = %v", err)
	}
	valid := authNow.Add(time.Hour)

	t.Run("valid token", func(t *testing.T) {
		id, err := a.Verify(signToken(t, jwt.SigningMethodHS256, "secret", claimsFor("maria", "maintenance", valid)))
		if err != nil {
			t.Fatalf("Verify() error = %v", err)
		}
		if id.ActorID != "maria" || id.Role != inv.RoleMaintenance {
			t.Errorf("Verify() = %+v, want maria/MAINTENANCE", id)
		}
	})

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{"expired", func(t *testing.T) string {
			return signToken(t, jwt.SigningMethodHS256, "secret", claimsFor("maria", "admin", authNow.Add(-time.Minute)))
		}},
		{"no expiry", func(t *testing.T) string {
			return signToken(t, jwt.SigningMethodHS256, "secret", Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "maria"}, Role: "admin"})
		}},
		{"wrong secret", func(t *testing.T) string {
			return signToken(t, jwt.SigningMethodHS256, "other", claimsFor("maria", "admin", valid))
		}},
		{"other algorithm", func(t *testing.T) string {
			return signToken(t, jwt.SigningMethodHS512, "secret", claimsFor("maria", "admin", valid))
		}},
		{"unknown role", func(t *testing.T) string {
			return signToken(t, jwt.SigningMethodHS256, "secret", claimsFor("maria", "janitor", valid))
		}},
		{"missing subject", func(t *testing.T) string {
			return signToken(t, jwt.SigningMethodHS256, "secret", claimsFor("", "admin", valid))
		}},
		{"garbage", func(t *testing.T) string { return "not-a-token" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := a.Verify(tt.token(t)); err == nil {
				t.Error("Verify() expected error")
			}
		})
	}
}
