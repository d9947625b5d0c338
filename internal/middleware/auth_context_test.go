package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtadp "petshop-api/internal/adapters/auth/jwt"
	"petshop-api/internal/ports/auth"
)

func TestAuthContextSetsClaimsForValidToken(t *testing.T) {
	tokens := jwtadp.New("test-secret", time.Hour)

	signed, err := tokens.Issue(context.Background(), auth.Claims{UserID: 9, Email: "a@b.c", Role: auth.RoleAdmin})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	var got auth.Claims
	var ok bool
	h := AuthContext(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = GetClaims(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if !ok {
		t.Fatalf("expected claims in context")
	}
	if got.UserID != 9 || got.Role != auth.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", got)
	}
}

func TestAuthContextIgnoresBadToken(t *testing.T) {
	tokens := jwtadp.New("test-secret", time.Hour)

	for _, header := range []string{"", "Bearer garbage", "Basic abc", "Bearer"} {
		h := AuthContext(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := GetClaims(r.Context()); ok {
				t.Fatalf("header %q: expected no claims", header)
			}
		}))

		req := httptest.NewRequest("GET", "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		h.ServeHTTP(httptest.NewRecorder(), req)
	}
}
