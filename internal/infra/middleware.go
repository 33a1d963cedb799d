// Package infra holds the HTTP middleware shared by the reference backend:
// request logger injection and bearer token auth.
package infra

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/pingr-im/pingr-go/internal/api"
	"github.com/pingr-im/pingr-go/internal/config"
	"github.com/pingr-im/pingr-go/internal/model"
)

// TokenValidator checks an access token and returns its claims.
type TokenValidator interface {
	Validate(tokenString string) (*model.AccessClaims, error)
}

// LoggerHTTP puts the service logger into the request context so handlers
// can pick it up with logger_lib.FromContext.
func LoggerHTTP(next http.Handler, logger *logger_lib.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), config.KeyLogger, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthInterceptorHTTP rejects requests without a valid bearer token and puts
// the authenticated user id into the request context under config.KeyUUID.
func AuthInterceptorHTTP(next http.Handler, tokenValidator TokenValidator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := BearerToken(r)
		if tokenString == "" {
			writeUnauthorized(w, "missing authorization token")
			return
		}

		claims, err := tokenValidator.Validate(tokenString)
		if err != nil {
			writeUnauthorized(w, "invalid authorization token")
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// BearerToken extracts the token from the Authorization header, falling back
// to the token query parameter for websocket upgrades where custom headers
// are unavailable.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return r.URL.Query().Get("token")
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(api.Error{Success: false, Message: message})
}
