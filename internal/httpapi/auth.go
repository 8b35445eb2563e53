package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"inv-go/internal/inv"
)

// Claims is the bearer token payload: the subject is the actor id.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Authenticator verifies HS256 bearer tokens and turns them into identities.
// Tokens are issued elsewhere; only verification happens here.
type Authenticator struct {
	secret []byte
	now    func() time.Time
}

func NewAuthenticator(secret string, now func() time.Time) (*Authenticator, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if now == nil {
		now = time.Now
	}
	return &Authenticator{secret: []byte(secret), now: now}, nil
}

// Verify parses token and returns the identity it carries.
func (a *Authenticator) Verify(token string) (inv.Identity, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return inv.Identity{}, fmt.Errorf("token expired")
		}
		return inv.Identity{}, fmt.Errorf("invalid token: %w", err)
	}
	id, err := inv.NewIdentity(claims.Subject, claims.Role)
	if err != nil {
		return inv.Identity{}, fmt.Errorf("invalid token claims: %w", err)
	}
	return id, nil
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

// authenticate rejects requests without a valid bearer token and stores the
// identity in the request context.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			s.unauthorized(w, r, "missing bearer token")
			return
		}
		id, err := s.auth.Verify(token)
		if err != nil {
			s.unauthorized(w, r, err.Error())
			return
		}
		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), id)))
	})
}

func (s *Server) unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="inv"`)
	writeErrorBody(w, r, http.StatusUnauthorized, errorBody{
		Code:    "UNAUTHENTICATED",
		Kind:    string(inv.KindPermission),
		Message: message,
	})
}
