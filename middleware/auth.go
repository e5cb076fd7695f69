package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

type contextKey string

const identityContextKey contextKey = "identity"

// Authenticate verifies the bearer token and stores the caller's email in
// the request context. An expired or malformed token is rejected exactly
// like a missing one; the caller's role is never read from the token but
// re-resolved from the store by the service-layer guard.
func Authenticate(jwtSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, err := emailFromRequest(r, jwtSecret)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error": "You are not authorised to access this resource"}`))
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func emailFromRequest(r *http.Request, jwtSecret []byte) (string, error) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", errors.New("missing bearer token")
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return "", errors.New("missing subject claim")
	}
	return email, nil
}

// CallerEmail returns the authenticated identity placed by Authenticate.
func CallerEmail(ctx context.Context) (string, error) {
	email, ok := ctx.Value(identityContextKey).(string)
	if !ok || email == "" {
		return "", errors.New("caller identity not found in context")
	}
	return email, nil
}
