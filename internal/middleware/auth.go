// Package middleware provides HTTP middleware shared by the API handlers.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"dutchpay/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// kakaoIDKey is the context key for storing the authenticated Kakao ID.
const kakaoIDKey contextKey = "kakao_id"

// GetKakaoID extracts the authenticated Kakao ID from the context.
// Returns empty string if the request carried no valid token.
func GetKakaoID(ctx context.Context) string {
	kakaoID, _ := ctx.Value(kakaoIDKey).(string)
	return kakaoID
}

// SessionAuth validates a Bearer session token if one is present and adds
// the caller's Kakao ID to the request context. Requests without a token
// pass through untouched; every endpoint stays reachable without one, the
// way the Kakao client currently calls the API.
func SessionAuth(tokens *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header != "" {
				parts := strings.Split(header, " ")
				if len(parts) == 2 && parts[0] == "Bearer" {
					if claims, err := tokens.Validate(parts[1]); err == nil {
						ctx := context.WithValue(r.Context(), kakaoIDKey, claims.KakaoID)
						r = r.WithContext(ctx)
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
