package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/threadly-market/marketplace-backend/internal/models"
)

type viewerContextKey string

const viewerKey = viewerContextKey("viewer")

// SessionMiddleware decodes an optional bearer token into viewer claims.
// Storefront pages are public, so a missing or invalid token never rejects
// the request; it just means an anonymous viewer with default country
// scoping.
type SessionMiddleware struct {
	jwtKey []byte
}

func NewSessionMiddleware(jwtKey []byte) *SessionMiddleware {
	return &SessionMiddleware{jwtKey: jwtKey}
}

func (m *SessionMiddleware) WithViewer(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" || len(m.jwtKey) == 0 {
			next.ServeHTTP(w, r)

			return
		}

		claims := &models.Claims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return m.jwtKey, nil
		})

		if err != nil || !token.Valid {
			LoggerFromContext(r.Context()).Warn("ignoring invalid session token")
			next.ServeHTTP(w, r)

			return
		}

		ctx := context.WithValue(r.Context(), viewerKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

// ViewerFromContext returns the decoded session claims, or nil for anonymous
// viewers.
func ViewerFromContext(ctx context.Context) *models.Claims {
	if claims, ok := ctx.Value(viewerKey).(*models.Claims); ok {
		return claims
	}

	return nil
}
